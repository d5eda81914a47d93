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

// TryPush attempts to shove the first Pushable entity at next one tile
// further along the same delta the pusher used to reach next (spec.md
// §4.4). isWrap selects toroidal wrapping of the destination (the wrap
// MoveFn variant); all other variants require the destination in-bounds.
// Reports whether a push happened. Grounded on
// original_source/grid_universe/systems/push.py.
func TryPush(ctx context.Context, pub logging.Publisher, turn int, s state.State, id component.EntityID, next component.Position, isWrap bool) (state.State, bool) {
	current, ok := s.Position.Get(id)
	if !ok {
		return s, false
	}

	pushableIDs := grid.EntitiesWithAt(s, next, s.Pushable.Has)
	if len(pushableIDs) == 0 {
		return s, false
	}
	pushableID := pushableIDs[0]

	dx, dy := next.X-current.X, next.Y-current.Y
	pushTo := next.Add(dx, dy)
	if isWrap {
		pushTo = grid.Wrap(pushTo.X, pushTo.Y, s.Width, s.Height)
	} else if !grid.InBounds(s, pushTo) {
		return s, false
	}

	if grid.IsBlockedAt(s, pushTo, true) {
		return s, false
	}

	s.Position = s.Position.Set(pushableID, pushTo).Set(id, next)
	movementlog.Pushed(ctx, pub, turn, actorRef(id), movementlog.PushedPayload{
		PushableID: strconv.FormatInt(int64(pushableID), 10),
		DX:         dx,
		DY:         dy,
	})
	return s, true
}
