package systems

import (
	"context"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/grid"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
	"github.com/rizkiarm/grid-universe-sub000/logging"
	"github.com/rizkiarm/grid-universe-sub000/logging/economylog"
)

// TileReward runs after every sub-step (spec.md §4.13): every non-
// Collectible Rewardable entity at id's tile adds its amount to score.
func TileReward(ctx context.Context, pub logging.Publisher, turn int, s state.State, id component.EntityID) state.State {
	if !s.IsValid(id) || terminalFor(s, id) {
		return s
	}
	pos, ok := s.Position.Get(id)
	if !ok {
		return s
	}
	delta := 0
	for _, rid := range nonCollectibleAt(s, pos, s.Rewardable.Has) {
		rw, _ := s.Rewardable.Get(rid)
		delta += rw.Amount
	}
	if delta == 0 {
		return s
	}
	s.Score += delta
	economylog.ScoreChanged(ctx, pub, turn, actorRef(id), economylog.ScoreChangedPayload{Delta: delta, Source: "tile_reward"})
	return s
}

// TileCost runs once after the full step (spec.md §4.13, §4.2): every non-
// Collectible Cost entity at id's tile subtracts its amount from score.
func TileCost(ctx context.Context, pub logging.Publisher, turn int, s state.State, id component.EntityID) state.State {
	if !s.IsValid(id) || terminalFor(s, id) {
		return s
	}
	pos, ok := s.Position.Get(id)
	if !ok {
		return s
	}
	delta := 0
	for _, cid := range nonCollectibleAt(s, pos, s.Cost.Has) {
		cost, _ := s.Cost.Get(cid)
		delta += cost.Amount
	}
	if delta == 0 {
		return s
	}
	s.Score -= delta
	economylog.ScoreChanged(ctx, pub, turn, actorRef(id), economylog.ScoreChangedPayload{Delta: -delta, Source: "tile_cost"})
	return s
}

// terminalFor matches original_source's is_terminal_state: win/lose flags
// or the given entity already being Dead.
func terminalFor(s state.State, id component.EntityID) bool {
	return s.IsTerminal() || s.Dead.Has(id)
}

func nonCollectibleAt(s state.State, pos component.Position, has grid.Has) []component.EntityID {
	var out []component.EntityID
	for _, id := range grid.EntitiesAt(s, pos) {
		if has(id) && !s.Collectible.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
