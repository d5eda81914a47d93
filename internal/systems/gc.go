package systems

import (
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
	"github.com/rizkiarm/grid-universe-sub000/internal/store"
)

// CollectOrphans is the final step of spec.md §4.2 (via §4.15): compute the
// live set (entity roots, effect ids referenced by any Status, item ids
// referenced by any Inventory) and drop every other key from every
// component store. Grounded on
// original_source/grid_universe/utils/gc.py's run_garbage_collector, made
// explicit per-store since Go has no runtime field reflection over the
// dataclass-wide sweep the original performs.
func CollectOrphans(s state.State) state.State {
	alive := make(map[component.EntityID]struct{}, s.Entities.Len())
	s.Entities.Range(func(id component.EntityID, _ component.Entity) bool {
		alive[id] = struct{}{}
		return true
	})
	s.Status.Range(func(_ component.EntityID, st component.Status) bool {
		for id := range st.Effects {
			alive[id] = struct{}{}
		}
		return true
	})
	s.Inventory.Range(func(_ component.EntityID, inv component.Inventory) bool {
		for id := range inv.Items {
			alive[id] = struct{}{}
		}
		return true
	})

	s.Entities = filterStore(s.Entities, alive)
	s.Position = filterStore(s.Position, alive)
	s.PrevPosition = filterStore(s.PrevPosition, alive)
	s.Agent = filterStore(s.Agent, alive)
	s.Appearance = filterStore(s.Appearance, alive)
	s.Blocking = filterStore(s.Blocking, alive)
	s.Collidable = filterStore(s.Collidable, alive)
	s.Pushable = filterStore(s.Pushable, alive)
	s.Health = filterStore(s.Health, alive)
	s.Dead = filterStore(s.Dead, alive)
	s.Damage = filterStore(s.Damage, alive)
	s.LethalDamage = filterStore(s.LethalDamage, alive)
	s.Inventory = filterStore(s.Inventory, alive)
	s.Key = filterStore(s.Key, alive)
	s.Locked = filterStore(s.Locked, alive)
	s.Collectible = filterStore(s.Collectible, alive)
	s.Rewardable = filterStore(s.Rewardable, alive)
	s.Required = filterStore(s.Required, alive)
	s.Cost = filterStore(s.Cost, alive)
	s.Exit = filterStore(s.Exit, alive)
	s.Portal = filterStore(s.Portal, alive)
	s.Moving = filterStore(s.Moving, alive)
	s.Pathfinding = filterStore(s.Pathfinding, alive)
	s.Immunity = filterStore(s.Immunity, alive)
	s.Phasing = filterStore(s.Phasing, alive)
	s.Speed = filterStore(s.Speed, alive)
	s.TimeLimit = filterStore(s.TimeLimit, alive)
	s.UsageLimit = filterStore(s.UsageLimit, alive)
	s.Status = filterStore(s.Status, alive)

	return s
}

func filterStore[V any](src store.Store[component.EntityID, V], alive map[component.EntityID]struct{}) store.Store[component.EntityID, V] {
	out := src
	src.Range(func(id component.EntityID, _ V) bool {
		if _, ok := alive[id]; !ok {
			out = out.Remove(id)
		}
		return true
	})
	return out
}
