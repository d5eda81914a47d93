package grid

import (
	"testing"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

func TestInBounds(t *testing.T) {
	s := state.New(3, 3, nil, nil)
	cases := []struct {
		pos  component.Position
		want bool
	}{
		{component.Position{X: 0, Y: 0}, true},
		{component.Position{X: 2, Y: 2}, true},
		{component.Position{X: 3, Y: 0}, false},
		{component.Position{X: 0, Y: -1}, false},
	}
	for _, c := range cases {
		if got := InBounds(s, c.pos); got != c.want {
			t.Errorf("InBounds(%v) = %v, want %v", c.pos, got, c.want)
		}
	}
}

func TestWrap(t *testing.T) {
	cases := []struct {
		x, y, w, h int
		want       component.Position
	}{
		{-1, 0, 5, 5, component.Position{X: 4, Y: 0}},
		{5, 0, 5, 5, component.Position{X: 0, Y: 0}},
		{2, -1, 5, 5, component.Position{X: 2, Y: 4}},
	}
	for _, c := range cases {
		if got := Wrap(c.x, c.y, c.w, c.h); got != c.want {
			t.Errorf("Wrap(%d,%d,%d,%d) = %v, want %v", c.x, c.y, c.w, c.h, got, c.want)
		}
	}
}

func TestIsBlockedAtHonorsCheckCollidable(t *testing.T) {
	s := state.New(3, 3, nil, nil)
	pos := component.Position{X: 1, Y: 1}
	s.Position = s.Position.Set(1, pos)
	s.Collidable = s.Collidable.Set(1, component.Collidable{})

	if IsBlockedAt(s, pos, false) {
		t.Fatalf("collidable-only entity should not block when checkCollidable is false")
	}
	if !IsBlockedAt(s, pos, true) {
		t.Fatalf("collidable-only entity should block when checkCollidable is true")
	}
}

func TestIsBlockedAtBlockingAndPushable(t *testing.T) {
	s := state.New(3, 3, nil, nil)
	pos := component.Position{X: 0, Y: 0}
	s.Position = s.Position.Set(1, pos)
	s.Blocking = s.Blocking.Set(1, component.Blocking{})

	if !IsBlockedAt(s, pos, false) {
		t.Fatalf("Blocking entity should block regardless of checkCollidable")
	}
}

func TestNeighbors4Order(t *testing.T) {
	pos := component.Position{X: 1, Y: 1}
	want := [4]component.Position{
		{X: 1, Y: 2}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1},
	}
	if got := Neighbors4(pos); got != want {
		t.Fatalf("Neighbors4(%v) = %v, want %v", pos, got, want)
	}
}

func TestManhattan(t *testing.T) {
	a := component.Position{X: 0, Y: 0}
	b := component.Position{X: 3, Y: 4}
	if got := Manhattan(a, b); got != 7 {
		t.Fatalf("Manhattan(%v, %v) = %d, want 7", a, b, got)
	}
}

func TestEntitiesWithAtFiltersByAllPredicates(t *testing.T) {
	s := state.New(3, 3, nil, nil)
	pos := component.Position{X: 0, Y: 0}
	s.Position = s.Position.Set(1, pos).Set(2, pos)
	s.Collectible = s.Collectible.Set(1, component.Collectible{})
	s.Rewardable = s.Rewardable.Set(1, component.Rewardable{Amount: 5})
	s.Rewardable = s.Rewardable.Set(2, component.Rewardable{Amount: 1})

	got := EntitiesWithAt(s, pos, s.Collectible.Has, s.Rewardable.Has)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("EntitiesWithAt = %v, want [1]", got)
	}
}
