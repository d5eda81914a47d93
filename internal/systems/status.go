package systems

import (
	"context"
	"strconv"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
	"github.com/rizkiarm/grid-universe-sub000/logging"
	"github.com/rizkiarm/grid-universe-sub000/logging/statuslog"
)

func idString(id component.EntityID) string {
	return strconv.FormatInt(int64(id), 10)
}

// TickStatus is step 4 of spec.md §4.2: decrement every TimeLimit
// referenced by an active Status, then garbage-collect effect ids that are
// no longer backed by any of Immunity/Phasing/Speed or that have expired by
// time or usage. Grounded on
// original_source/grid_universe/systems/status.py.
func TickStatus(ctx context.Context, pub logging.Publisher, turn int, s state.State) state.State {
	ids := s.Status.Keys(component.IDLess)
	for _, id := range ids {
		status, ok := s.Status.Get(id)
		if !ok {
			continue
		}
		s = tickTimeLimits(s, status)
		status, ok = s.Status.Get(id)
		if !ok {
			continue
		}
		s, status = garbageCollectEffects(ctx, pub, turn, s, status)
		s.Status = s.Status.Set(id, status)
	}
	return s
}

func tickTimeLimits(s state.State, status component.Status) state.State {
	for effectID := range status.Effects {
		if tl, ok := s.TimeLimit.Get(effectID); ok {
			s.TimeLimit = s.TimeLimit.Set(effectID, component.TimeLimit{Amount: tl.Amount - 1})
		}
	}
	return s
}

func garbageCollectEffects(ctx context.Context, pub logging.Publisher, turn int, s state.State, status component.Status) (state.State, component.Status) {
	for effectID := range status.Effects {
		if !s.Immunity.Has(effectID) && !s.Phasing.Has(effectID) && !s.Speed.Has(effectID) {
			status = status.WithoutEffect(effectID)
			s.Entities = s.Entities.Remove(effectID)
			statuslog.Expired(ctx, pub, turn, logging.EntityRef{}, idString(effectID), "orphaned")
		}
	}
	for effectID := range status.Effects {
		if isExpired(s, effectID) {
			status = status.WithoutEffect(effectID)
			s.Entities = s.Entities.Remove(effectID)
			statuslog.Expired(ctx, pub, turn, logging.EntityRef{}, idString(effectID), "expired")
		}
	}
	return s, status
}

func isExpired(s state.State, effectID component.EntityID) bool {
	if tl, ok := s.TimeLimit.Get(effectID); ok && tl.Amount <= 0 {
		return true
	}
	if ul, ok := s.UsageLimit.Get(effectID); ok && ul.Amount <= 0 {
		return true
	}
	return false
}
