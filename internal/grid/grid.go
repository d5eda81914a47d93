// Package grid holds the pure grid-math predicates shared by the movement,
// push, and pathfinding systems. Grounded on
// original_source/grid_universe/utils/{grid,ecs}.py.
package grid

import (
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

// InBounds reports whether pos lies within the level rectangle.
func InBounds(s state.State, pos component.Position) bool {
	return pos.X >= 0 && pos.X < s.Width && pos.Y >= 0 && pos.Y < s.Height
}

// Wrap applies a toroidal wrap to (x, y) for the given dimensions.
func Wrap(x, y, width, height int) component.Position {
	return component.Position{X: wrapInt(x, width), Y: wrapInt(y, height)}
}

func wrapInt(v, m int) int {
	if m <= 0 {
		return 0
	}
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// IsBlockedAt reports whether any Blocking or Pushable entity occupies pos;
// Collidable is additionally treated as blocking when checkCollidable is
// true (spec.md §4.5 ignores Collidable for plain movement; §4.4 and §4.6
// selectively include it).
func IsBlockedAt(s state.State, pos component.Position, checkCollidable bool) bool {
	blocked := false
	s.Position.Range(func(id component.EntityID, p component.Position) bool {
		if p != pos {
			return true
		}
		if s.Blocking.Has(id) || s.Pushable.Has(id) || (checkCollidable && s.Collidable.Has(id)) {
			blocked = true
			return false
		}
		return true
	})
	return blocked
}

// EntitiesAt returns every entity id positioned at pos.
func EntitiesAt(s state.State, pos component.Position) []component.EntityID {
	var ids []component.EntityID
	s.Position.Range(func(id component.EntityID, p component.Position) bool {
		if p == pos {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Has is implemented by any component.EntityID-keyed store's Has method;
// used to build ad-hoc component-membership predicates for FilterHaving.
type Has func(component.EntityID) bool

// FilterHaving returns the subset of ids for which every predicate holds.
func FilterHaving(ids []component.EntityID, predicates ...Has) []component.EntityID {
	var out []component.EntityID
	for _, id := range ids {
		ok := true
		for _, has := range predicates {
			if !has(id) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, id)
		}
	}
	return out
}

// EntitiesWithAt returns the entity ids at pos that satisfy every predicate,
// e.g. grid.EntitiesWithAt(s, pos, s.Collectible.Has).
func EntitiesWithAt(s state.State, pos component.Position, predicates ...Has) []component.EntityID {
	return FilterHaving(EntitiesAt(s, pos), predicates...)
}

// Neighbors4 returns the four orthogonal neighbors of pos in the fixed tie-
// break order spec.md §4.7 mandates: (0,+1), (0,-1), (+1,0), (-1,0).
func Neighbors4(pos component.Position) [4]component.Position {
	return [4]component.Position{
		pos.Add(0, 1),
		pos.Add(0, -1),
		pos.Add(1, 0),
		pos.Add(-1, 0),
	}
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b component.Position) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
