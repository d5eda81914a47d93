// Package move implements the registered MoveFn variants spec.md §6 names:
// default, wrap, mirror, slippery, windy, gravity. Each returns the
// candidate-position sequence state.MoveFn expects; none mutate the state
// they are given. Grounded on original_source/grid_universe/moves.py, with
// windy's random wind gust seeded deterministically per spec.md §5 via
// internal/random instead of the original's unseeded global random.random().
package move

import (
	"reflect"

	"github.com/rizkiarm/grid-universe-sub000/internal/action"
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/grid"
	"github.com/rizkiarm/grid-universe-sub000/internal/random"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

// IsWrap reports whether fn is the Wrap variant, the one case spec.md §4.4
// requires push destinations to wrap instead of being bounds-checked.
// Grounded on original_source/grid_universe/utils/grid.py's
// compute_destination, which tests move_fn identity the same way.
func IsWrap(fn state.MoveFn) bool {
	if fn == nil {
		return false
	}
	return reflect.ValueOf(fn).Pointer() == reflect.ValueOf(Wrap).Pointer()
}

// Registry maps a configuration-time name to a MoveFn, the "data, not
// behavior inheritance" pattern spec.md §9 mandates.
var Registry = map[string]state.MoveFn{
	"default":  Default,
	"wrap":     Wrap,
	"mirror":   Mirror,
	"slippery": Slippery,
	"windy":    Windy,
	"gravity":  Gravity,
}

func delta(dir action.Direction) (int, int) {
	return dir.Delta()
}

// Default moves one tile in dir, unconditionally (bounds and blocking are
// checked by the movement/push systems, not the MoveFn itself).
func Default(s state.State, id component.EntityID, dir action.Direction) []component.Position {
	pos, ok := s.Position.Get(id)
	if !ok {
		return nil
	}
	dx, dy := delta(dir)
	return []component.Position{pos.Add(dx, dy)}
}

// Wrap moves one tile in dir, toroidally wrapping at the grid edges.
func Wrap(s state.State, id component.EntityID, dir action.Direction) []component.Position {
	pos, ok := s.Position.Get(id)
	if !ok {
		return nil
	}
	dx, dy := delta(dir)
	return []component.Position{grid.Wrap(pos.X+dx, pos.Y+dy, s.Width, s.Height)}
}

var mirrorOf = map[action.Direction]action.Direction{
	action.Left:  action.Right,
	action.Right: action.Left,
	action.Up:    action.Up,
	action.Down:  action.Down,
}

// Mirror swaps LEFT and RIGHT before delegating to Default.
func Mirror(s state.State, id component.EntityID, dir action.Direction) []component.Position {
	return Default(s, id, mirrorOf[dir])
}

// Slippery slides in dir until the next tile would be out of bounds or
// blocked, returning every tile crossed (or the current tile, unchanged,
// if the very first tile is already blocked).
func Slippery(s state.State, id component.EntityID, dir action.Direction) []component.Position {
	pos, ok := s.Position.Get(id)
	if !ok {
		return nil
	}
	dx, dy := delta(dir)
	var path []component.Position
	next := pos.Add(dx, dy)
	for grid.InBounds(s, next) && !grid.IsBlockedAt(s, next, false) {
		path = append(path, next)
		next = next.Add(dx, dy)
	}
	if len(path) == 0 {
		return []component.Position{pos}
	}
	return path
}

// windDeltas is the fixed gust candidate order; Windy samples uniformly
// among the entries perpendicular to the move direction.
var windDeltas = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Windy moves one tile in dir, then with probability 0.3 adds a second tile
// one step perpendicular to dir (either side, uniformly), seeded from
// state.Seed and the current turn so replay is deterministic (spec.md §5).
func Windy(s state.State, id component.EntityID, dir action.Direction) []component.Position {
	pos, ok := s.Position.Get(id)
	if !ok {
		return nil
	}
	dx, dy := delta(dir)
	first := pos.Add(dx, dy)
	if !grid.InBounds(s, first) {
		return []component.Position{pos}
	}
	path := []component.Position{first}

	rng := random.ForTurn(s.Seed, "windy:"+dir.String(), s.Turn)
	if rng.Float64() < 0.3 {
		var gusts [][2]int
		for _, g := range windDeltas {
			if g[0]*dx+g[1]*dy == 0 {
				gusts = append(gusts, g)
			}
		}
		g := gusts[rng.Intn(len(gusts))]
		second := first.Add(g[0], g[1])
		if grid.InBounds(s, second) {
			path = append(path, second)
		}
	}
	return path
}

// Gravity moves one tile in dir, then keeps falling in the +Y direction
// until blocked or out of bounds.
func Gravity(s state.State, id component.EntityID, dir action.Direction) []component.Position {
	pos, ok := s.Position.Get(id)
	if !ok {
		return nil
	}
	dx, dy := delta(dir)
	next := pos.Add(dx, dy)
	if !grid.InBounds(s, next) || grid.IsBlockedAt(s, next, false) {
		return []component.Position{pos}
	}
	path := []component.Position{next}
	for {
		below := path[len(path)-1].Add(0, 1)
		if !grid.InBounds(s, below) || grid.IsBlockedAt(s, below, false) {
			break
		}
		path = append(path, below)
	}
	return path
}
