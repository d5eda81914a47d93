// Package systems implements the ordered sub-systems spec.md §4 describes:
// position snapshotting, autonomous motion, pathfinding, status ticking,
// trail recording, movement/push, portal, damage, collectible pickup,
// locks/keys, tile reward/cost, terminal, and orphan GC. Every function
// takes a state.State and returns a new state.State; none mutate a
// receiver in place. Grounded file-by-file on
// original_source/grid_universe/systems/*.py and original_source's
// utils/status.py.
package systems

import (
	"context"
	"strconv"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
	"github.com/rizkiarm/grid-universe-sub000/logging"
	"github.com/rizkiarm/grid-universe-sub000/logging/statuslog"
)

// hasEffect is satisfied by an effect store's Has method (Immunity.Has,
// Phasing.Has, Speed.Has).
type hasEffect func(component.EntityID) bool

// selectEffect implements spec.md §4.12's selection rule steps 1-4: among
// the ids in status that belong to the target effect store and are not
// expired by time or usage, prefer one with no UsageLimit; otherwise return
// the first remaining usage-limited candidate. Candidates are visited in
// ascending entity-id order for determinism (spec.md §5).
func selectEffect(s state.State, status component.Status, has hasEffect) (component.EntityID, bool) {
	ids := make([]component.EntityID, 0, len(status.Effects))
	for id := range status.Effects {
		if has(id) {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)

	var valid []component.EntityID
	for _, id := range ids {
		if tl, ok := s.TimeLimit.Get(id); ok && tl.Amount <= 0 {
			continue
		}
		if ul, ok := s.UsageLimit.Get(id); ok && ul.Amount <= 0 {
			continue
		}
		valid = append(valid, id)
	}
	if len(valid) == 0 {
		return 0, false
	}

	for _, id := range valid {
		if !s.UsageLimit.Has(id) {
			return id, true
		}
	}
	return valid[0], true
}

// consumeIfUsageLimited decrements id's UsageLimit by one if it has one,
// returning the updated state. Non-usage-limited effects are untouched.
func consumeIfUsageLimited(s state.State, id component.EntityID) state.State {
	ul, ok := s.UsageLimit.Get(id)
	if !ok {
		return s
	}
	s.UsageLimit = s.UsageLimit.Set(id, component.UsageLimit{Amount: ul.Amount - 1})
	return s
}

// selectAndConsume is the single call-site spec.md §4.12 mandates for every
// consumer (damage immunity, movement speed, movement phasing, pathfinding
// phasing-on-target): it selects an effect per selectEffect and, if the
// choice is usage-limited, consumes one usage.
func selectAndConsume(s state.State, status component.Status, has hasEffect) (state.State, component.EntityID, bool) {
	id, ok := selectEffect(s, status, has)
	if !ok {
		return s, 0, false
	}
	return consumeIfUsageLimited(s, id), id, true
}

// selectAndConsumeLogged wraps selectAndConsume with the statuslog.Consumed
// telemetry call every one of its four call sites must emit.
func selectAndConsumeLogged(ctx context.Context, pub logging.Publisher, turn int, s state.State, holder component.EntityID, status component.Status, has hasEffect) (state.State, component.EntityID, bool) {
	next, id, ok := selectAndConsume(s, status, has)
	if !ok {
		return next, id, false
	}
	var usageLeft *int
	if ul, ok := next.UsageLimit.Get(id); ok {
		v := ul.Amount
		usageLeft = &v
	}
	statuslog.Consumed(ctx, pub, turn, actorRef(holder), statuslog.ConsumedPayload{
		EffectID:  strconv.FormatInt(int64(id), 10),
		UsageLeft: usageLeft,
	})
	return next, id, true
}

// SelectAndConsumeSpeed applies the selection-and-consumption rule against
// holder's Speed effects; it is the one call-site step.go needs from
// outside the systems package (spec.md §4.3's move-count calculation).
func SelectAndConsumeSpeed(ctx context.Context, pub logging.Publisher, turn int, s state.State, holder component.EntityID, status component.Status) (state.State, component.EntityID, bool) {
	return selectAndConsumeLogged(ctx, pub, turn, s, holder, status, s.Speed.Has)
}

func sortIDs(ids []component.EntityID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

func actorRef(id component.EntityID) logging.EntityRef {
	return logging.EntityRef{ID: strconv.FormatInt(int64(id), 10), Kind: "entity"}
}
