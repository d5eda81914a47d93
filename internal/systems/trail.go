package systems

import (
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

// between yields the Manhattan-path positions strictly between curr and
// prev (both exclusive), walking the x axis first then the y axis. A direct
// orthogonal neighbor hop yields nothing; a multi-tile slide or autonomous
// jump yields the tiles passed over but never landed on.
func between(curr, prev component.Position) []component.Position {
	var out []component.Position
	x, y := curr.X, curr.Y
	stepX := sign(prev.X - x)
	for x != prev.X {
		x += stepX
		if x == prev.X && y == prev.Y {
			break
		}
		out = append(out, component.Position{X: x, Y: y})
	}
	stepY := sign(prev.Y - y)
	for y != prev.Y {
		y += stepY
		if y == prev.Y {
			break
		}
		out = append(out, component.Position{X: x, Y: y})
	}
	return out
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// RecordTrail is step 5 of spec.md §4.2: for every entity whose position
// changed since the step-start snapshot (autonomous movers advanced in
// steps 2-3), record the tiles it passed over but did not land on. Grounded
// on original_source/grid_universe/systems/trail.py.
func RecordTrail(s state.State) state.State {
	s.Position.Range(func(id component.EntityID, curr component.Position) bool {
		prev, ok := s.PrevPosition.Get(id)
		if !ok {
			return true
		}
		for _, pos := range between(curr, prev) {
			set, _ := s.Trail.Get(pos)
			next := make(state.PositionSet, len(set)+1)
			for eid := range set {
				next[eid] = struct{}{}
			}
			next[id] = struct{}{}
			s.Trail = s.Trail.Set(pos, next)
		}
		return true
	})
	return s
}

// AugmentedTrail merges the recorded trail with the live current positions
// of ids, the read-time view spec.md §4.8's portal system queries at every
// sub-step (it must see the agent's latest position even though RecordTrail
// only ran once, before action dispatch). Grounded on
// original_source/grid_universe/utils/trail.py's get_augmented_trail.
func AugmentedTrail(s state.State, ids []component.EntityID) map[component.Position][]component.EntityID {
	out := make(map[component.Position][]component.EntityID)
	for _, id := range ids {
		pos, ok := s.Position.Get(id)
		if !ok {
			continue
		}
		out[pos] = append(out[pos], id)
	}
	s.Trail.Range(func(pos component.Position, set state.PositionSet) bool {
		for id := range set {
			out[pos] = appendUnique(out[pos], id)
		}
		return true
	})
	return out
}

func appendUnique(ids []component.EntityID, id component.EntityID) []component.EntityID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
