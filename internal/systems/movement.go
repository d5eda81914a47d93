package systems

import (
	"context"
	"strconv"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/grid"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
	"github.com/rizkiarm/grid-universe-sub000/logging"
	"github.com/rizkiarm/grid-universe-sub000/logging/movementlog"
)

// MovePlain attempts to move id to next, honoring an active Phasing effect
// (spec.md §4.5). It reports whether the state changed (a successful move
// or phase-through), matching spec.md §4.3(c)'s "neither produced a state
// change" block test. Grounded on
// original_source/grid_universe/systems/movement.py.
func MovePlain(ctx context.Context, pub logging.Publisher, turn int, s state.State, id component.EntityID, next component.Position) (state.State, bool) {
	if !s.Agent.Has(id) {
		return s, false
	}
	if !grid.InBounds(s, next) {
		return s, false
	}

	if st, ok := s.Status.Get(id); ok {
		moved, effectID, phased := selectAndConsumeLogged(ctx, pub, turn, s, id, st, s.Phasing.Has)
		s = moved
		if phased {
			s.Position = s.Position.Set(id, next)
			movementlog.Phased(ctx, pub, turn, actorRef(id), strconv.FormatInt(int64(effectID), 10))
			return s, true
		}
	}

	if grid.IsBlockedAt(s, next, false) {
		movementlog.Blocked(ctx, pub, turn, actorRef(id), "blocked")
		return s, false
	}

	s.Position = s.Position.Set(id, next)
	return s, true
}
