package systems

import (
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/grid"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

// AdvanceMoving is step 2 of spec.md §4.2: every entity with Moving steps up
// to Speed times along (Axis, Direction), bouncing or staying put when
// blocked. Grounded on original_source/grid_universe/systems/moving.py, with
// one deliberate deviation spec.md §4.6 calls out explicitly: the
// blocked-check consults the position map as it is updated by earlier
// movers in this same pass (not the pre-pass snapshot), so a mover is
// turned away from a tile that an earlier Blocking or Pushable mover has
// just entered. Movers that are neither Blocking nor Pushable do not block
// each other and can end on the same tile.
func AdvanceMoving(s state.State) state.State {
	ids := s.Moving.Keys(component.IDLess)
	for _, id := range ids {
		moving, ok := s.Moving.Get(id)
		if !ok {
			continue
		}
		if _, ok := s.Position.Get(id); !ok {
			continue
		}
		for delta := 0; delta < moving.Speed; delta++ {
			pos, _ := s.Position.Get(id)
			dx, dy := 0, 0
			if moving.Axis == component.Horizontal {
				dx = moving.Direction
			} else {
				dy = moving.Direction
			}
			next := pos.Add(dx, dy)

			checkCollidable := s.Blocking.Has(id)
			if !grid.InBounds(s, next) || grid.IsBlockedAt(s, next, checkCollidable) {
				if moving.Bounce {
					moving.Direction = -moving.Direction
				}
				moving.PrevPosition = pos
				s.Moving = s.Moving.Set(id, moving)
				continue
			}

			s.Position = s.Position.Set(id, next)
			moving.PrevPosition = pos
			s.Moving = s.Moving.Set(id, moving)
		}
	}
	return s
}
