package move

import (
	"testing"

	"github.com/rizkiarm/grid-universe-sub000/internal/action"
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

func newAgentAt(width, height int, pos component.Position) (state.State, component.EntityID) {
	s := state.New(width, height, Default, nil)
	const id = component.EntityID(1)
	s.Position = s.Position.Set(id, pos)
	return s, id
}

func TestDefaultMovesOneTile(t *testing.T) {
	s, id := newAgentAt(5, 5, component.Position{X: 2, Y: 2})
	got := Default(s, id, action.Right)
	want := []component.Position{{X: 3, Y: 2}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("Default = %v, want %v", got, want)
	}
}

func TestWrapAtEdge(t *testing.T) {
	s, id := newAgentAt(5, 5, component.Position{X: 0, Y: 0})
	got := Wrap(s, id, action.Left)
	want := component.Position{X: 4, Y: 0}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Wrap = %v, want [%v]", got, want)
	}
}

func TestMirrorSwapsLeftRight(t *testing.T) {
	s, id := newAgentAt(5, 5, component.Position{X: 2, Y: 2})
	left := Mirror(s, id, action.Left)
	right := Mirror(s, id, action.Right)
	if left[0] != (component.Position{X: 3, Y: 2}) {
		t.Fatalf("Mirror(Left) = %v, want moving right", left)
	}
	if right[0] != (component.Position{X: 1, Y: 2}) {
		t.Fatalf("Mirror(Right) = %v, want moving left", right)
	}
}

func TestMirrorLeavesUpDownUnchanged(t *testing.T) {
	s, id := newAgentAt(5, 5, component.Position{X: 2, Y: 2})
	up := Mirror(s, id, action.Up)
	want := Default(s, id, action.Up)
	if up[0] != want[0] {
		t.Fatalf("Mirror(Up) = %v, want %v", up, want)
	}
}

func TestSlipperySlidesUntilBlocked(t *testing.T) {
	s, id := newAgentAt(5, 1, component.Position{X: 0, Y: 0})
	s.Position = s.Position.Set(99, component.Position{X: 3, Y: 0})
	s.Blocking = s.Blocking.Set(99, component.Blocking{})

	got := Slippery(s, id, action.Right)
	want := []component.Position{{X: 1, Y: 0}, {X: 2, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("Slippery = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slippery[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSlipperyBlockedImmediatelyReturnsCurrentTile(t *testing.T) {
	s, id := newAgentAt(5, 1, component.Position{X: 0, Y: 0})
	s.Position = s.Position.Set(99, component.Position{X: 1, Y: 0})
	s.Blocking = s.Blocking.Set(99, component.Blocking{})

	got := Slippery(s, id, action.Right)
	want := component.Position{X: 0, Y: 0}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Slippery = %v, want [%v]", got, want)
	}
}

func TestGravityFallsUntilBlocked(t *testing.T) {
	s, id := newAgentAt(1, 5, component.Position{X: 0, Y: 0})
	s.Position = s.Position.Set(99, component.Position{X: 0, Y: 3})
	s.Blocking = s.Blocking.Set(99, component.Blocking{})

	got := Gravity(s, id, action.Down)
	want := []component.Position{{X: 0, Y: 1}, {X: 0, Y: 2}}
	if len(got) != len(want) {
		t.Fatalf("Gravity = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Gravity[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWindyIsDeterministicForSameSeedAndTurn(t *testing.T) {
	s, id := newAgentAt(9, 9, component.Position{X: 4, Y: 4})
	s.Seed = "a-fixed-seed"
	s.Turn = 7

	a := Windy(s, id, action.Right)
	b := Windy(s, id, action.Right)
	if len(a) != len(b) {
		t.Fatalf("Windy not deterministic: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Windy not deterministic at index %d: %v vs %v", i, a, b)
		}
	}
}

func TestIsWrapIdentifiesWrapVariant(t *testing.T) {
	if !IsWrap(Wrap) {
		t.Fatalf("IsWrap(Wrap) = false, want true")
	}
	if IsWrap(Default) {
		t.Fatalf("IsWrap(Default) = true, want false")
	}
	if IsWrap(nil) {
		t.Fatalf("IsWrap(nil) = true, want false")
	}
}

func TestRegistryHasEveryVariant(t *testing.T) {
	for _, name := range []string{"default", "wrap", "mirror", "slippery", "windy", "gravity"} {
		if _, ok := Registry[name]; !ok {
			t.Errorf("Registry missing entry %q", name)
		}
	}
}
