package systems

import (
	"context"
	"strconv"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/gerr"
	"github.com/rizkiarm/grid-universe-sub000/internal/grid"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
	"github.com/rizkiarm/grid-universe-sub000/logging"
	"github.com/rizkiarm/grid-universe-sub000/logging/combatlog"
)

// ApplyDamage is the unified hazard/contact damage system run after every
// sub-step (spec.md §4.9): every entity with Health at the same tile as a
// Damage or LethalDamage entity takes damage unless an active Immunity
// effect intervenes. Grounded on
// original_source/grid_universe/systems/damage.py and utils/health.py.
func ApplyDamage(ctx context.Context, pub logging.Publisher, turn int, s state.State) state.State {
	ids := s.Health.Keys(component.IDLess)
	for _, id := range ids {
		s = applyDamageTo(ctx, pub, turn, s, id)
	}
	return s
}

func applyDamageTo(ctx context.Context, pub logging.Publisher, turn int, s state.State, id component.EntityID) state.State {
	pos, ok := s.Position.Get(id)
	if !ok || s.Dead.Has(id) {
		return s
	}

	damagerIDs := grid.EntitiesAt(s, pos)
	var damagers []component.EntityID
	for _, did := range damagerIDs {
		if s.Damage.Has(did) || s.LethalDamage.Has(did) {
			damagers = append(damagers, did)
		}
	}
	if len(damagers) == 0 {
		return s
	}

	for _, damagerID := range damagers {
		if st, ok := s.Status.Get(id); ok {
			next, _, immune := selectAndConsumeLogged(ctx, pub, turn, s, id, st, s.Immunity.Has)
			s = next
			if immune {
				combatlog.Immune(ctx, pub, turn, actorRef(id), strconv.FormatInt(int64(damagerID), 10))
				continue
			}
		}

		amount := 0
		if dmg, ok := s.Damage.Get(damagerID); ok {
			amount = dmg.Amount
		}
		if amount < 0 {
			gerr.Panic("damage", "Damage.Amount is negative")
		}

		s = dealDamage(ctx, pub, turn, s, id, damagerID, amount, s.LethalDamage.Has(damagerID))
	}
	return s
}

// dealDamage clamps hp at 0 and marks Dead on lethal contact or hp reaching
// zero, matching utils/health.py's apply_damage_and_check_death.
func dealDamage(ctx context.Context, pub logging.Publisher, turn int, s state.State, id, damagerID component.EntityID, amount int, lethal bool) state.State {
	hp, ok := s.Health.Get(id)
	if !ok {
		if lethal {
			s.Dead = s.Dead.Set(id, component.Dead{})
		}
		return s
	}
	newHP := hp.HP - amount
	if newHP < 0 {
		newHP = 0
	}
	s.Health = s.Health.Set(id, component.Health{HP: newHP, Max: hp.Max})
	died := newHP == 0 || lethal
	if died {
		s.Dead = s.Dead.Set(id, component.Dead{})
		s.Health = s.Health.Set(id, component.Health{HP: 0, Max: hp.Max})
	}
	combatlog.Damaged(ctx, pub, turn, actorRef(id), combatlog.DamagedPayload{
		DamagerID: strconv.FormatInt(int64(damagerID), 10),
		Amount:    amount,
		Lethal:    lethal,
	})
	if died {
		combatlog.Died(ctx, pub, turn, actorRef(id))
	}
	return s
}
