package systems

import (
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/grid"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

// UseKey runs the USE_KEY action (spec.md §4.11): for each of the four
// orthogonal neighbors of id, unlock every Locked entity there whose key id
// matches an inventory Key, consuming exactly one matching key per lock.
// Grounded on original_source/grid_universe/systems/locked.py.
func UseKey(s state.State, id component.EntityID) state.State {
	pos, ok := s.Position.Get(id)
	if !ok {
		return s
	}
	for _, neighbor := range grid.Neighbors4(pos) {
		s = unlockAt(s, id, neighbor)
	}
	return s
}

func unlockAt(s state.State, id component.EntityID, pos component.Position) state.State {
	lockedIDs := grid.EntitiesWithAt(s, pos, s.Locked.Has)
	if len(lockedIDs) == 0 {
		return s
	}
	inv, ok := s.Inventory.Get(id)
	if !ok {
		return s
	}

	for _, lockedID := range lockedIDs {
		locked, ok := s.Locked.Get(lockedID)
		if !ok {
			continue
		}
		keyID, found := findKeyWithID(s, inv, locked.KeyID)
		if !found {
			continue
		}
		s.Locked = s.Locked.Remove(lockedID)
		if s.Blocking.Has(lockedID) {
			s.Blocking = s.Blocking.Remove(lockedID)
		}
		inv = inv.WithoutItem(keyID)
		s.Key = s.Key.Remove(keyID)
	}
	s.Inventory = s.Inventory.Set(id, inv)
	return s
}

func findKeyWithID(s state.State, inv component.Inventory, keyID string) (component.EntityID, bool) {
	for itemID := range inv.Items {
		if key, ok := s.Key.Get(itemID); ok && key.ID == keyID {
			return itemID, true
		}
	}
	return 0, false
}
