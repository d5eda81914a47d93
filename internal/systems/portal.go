package systems

import (
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

// ApplyPortals runs after every sub-step (spec.md §4.8): any Collidable
// entity occupying a portal's tile that actually moved this step (current
// position != prev_position) is teleported to the paired portal's current
// position. Grounded on
// original_source/grid_universe/systems/portal.py.
func ApplyPortals(s state.State) state.State {
	collidableIDs := s.Collidable.Keys(component.IDLess)
	augmented := AugmentedTrail(s, collidableIDs)

	portalIDs := s.Portal.Keys(component.IDLess)
	for _, portalID := range portalIDs {
		s = applyOnePortal(s, augmented, portalID)
	}
	return s
}

func applyOnePortal(s state.State, augmented map[component.Position][]component.EntityID, portalID component.EntityID) state.State {
	portal, ok := s.Portal.Get(portalID)
	if !ok {
		return s
	}
	portalPos, ok := s.Position.Get(portalID)
	if !ok {
		return s
	}
	pairPos, ok := s.Position.Get(portal.Pair)
	if !ok {
		return s
	}

	for _, id := range augmented[portalPos] {
		if !s.Collidable.Has(id) {
			continue
		}
		prev, hasPrev := s.PrevPosition.Get(id)
		curr, hasCurr := s.Position.Get(id)
		if !hasCurr || (hasPrev && prev == curr) {
			continue
		}
		s.Position = s.Position.Set(id, pairPos)
	}
	return s
}
