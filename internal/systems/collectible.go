package systems

import (
	"context"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/grid"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
	"github.com/rizkiarm/grid-universe-sub000/logging"
	"github.com/rizkiarm/grid-universe-sub000/logging/economylog"
)

// PickUp runs the PICK_UP action at id's tile (spec.md §4.10): effect
// collectibles join Status (if not already expired), plain items join
// Inventory, Rewardable collectibles add to score regardless of kind, and
// every collected entity is removed from Position and Collectible.
// Grounded on original_source/grid_universe/systems/collectible.py.
func PickUp(ctx context.Context, pub logging.Publisher, turn int, s state.State, id component.EntityID) state.State {
	pos, ok := s.Position.Get(id)
	if !ok {
		return s
	}

	collectibleIDs := grid.EntitiesWithAt(s, pos, s.Collectible.Has)
	if len(collectibleIDs) == 0 {
		return s
	}

	inv, hasInv := s.Inventory.Get(id)
	status, hasStatus := s.Status.Get(id)
	var collected []component.EntityID

	for _, cid := range collectibleIDs {
		isEffect := s.Immunity.Has(cid) || s.Phasing.Has(cid) || s.Speed.Has(cid)

		switch {
		case hasStatus && isEffect && effectIsValid(s, cid):
			status = status.WithEffect(cid)
			collected = append(collected, cid)
		case hasInv && !isEffect:
			inv = inv.WithItem(cid)
			collected = append(collected, cid)
		}

		if rw, ok := s.Rewardable.Get(cid); ok {
			delta := rw.Amount
			s.Score += delta
			economylog.ScoreChanged(ctx, pub, turn, actorRef(id), economylog.ScoreChangedPayload{Delta: delta, Source: "collectible"})
			collected = appendEntityUnique(collected, cid)
		}
	}

	for _, cid := range collected {
		s.Position = s.Position.Remove(cid)
		s.Collectible = s.Collectible.Remove(cid)
	}
	if hasInv {
		s.Inventory = s.Inventory.Set(id, inv)
	}
	if hasStatus {
		s.Status = s.Status.Set(id, status)
	}
	return s
}

// effectIsValid reports whether an effect entity is still usable: positive
// or absent TimeLimit/UsageLimit (spec.md §4.12's valid_effect check).
func effectIsValid(s state.State, id component.EntityID) bool {
	if tl, ok := s.TimeLimit.Get(id); ok && tl.Amount <= 0 {
		return false
	}
	if ul, ok := s.UsageLimit.Get(id); ok && ul.Amount <= 0 {
		return false
	}
	return true
}

func appendEntityUnique(ids []component.EntityID, id component.EntityID) []component.EntityID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
