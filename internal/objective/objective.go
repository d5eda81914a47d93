// Package objective implements the registered ObjectiveFn variants spec.md
// §4.14 names: default, exit, collect, all_unlocked, all_pushables_at_exit.
// Grounded on original_source/grid_universe/objectives.py.
package objective

import (
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/grid"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

// Registry maps a configuration-time name to an ObjectiveFn.
var Registry = map[string]state.ObjectiveFn{
	"default":               Default,
	"exit":                  Exit,
	"collect":               Collect,
	"all_unlocked":          AllUnlocked,
	"all_pushables_at_exit": AllPushablesAtExit,
}

// Default requires every Required entity to no longer be Collectible AND
// the agent to be standing on any Exit tile.
func Default(s state.State, agentID component.EntityID) bool {
	return Collect(s, agentID) && Exit(s, agentID)
}

// Exit reports whether the agent occupies a tile with an Exit entity.
func Exit(s state.State, agentID component.EntityID) bool {
	pos, ok := s.Position.Get(agentID)
	if !ok {
		return false
	}
	return len(grid.EntitiesWithAt(s, pos, s.Exit.Has)) > 0
}

// Collect reports whether every Required entity has been picked up (no
// longer present in the Collectible store).
func Collect(s state.State, agentID component.EntityID) bool {
	won := true
	s.Required.Range(func(id component.EntityID, _ component.Required) bool {
		if s.Collectible.Has(id) {
			won = false
			return false
		}
		return true
	})
	return won
}

// AllUnlocked reports whether no Locked entities remain in the world.
func AllUnlocked(s state.State, agentID component.EntityID) bool {
	return s.Locked.Len() == 0
}

// AllPushablesAtExit reports whether every Pushable entity is positioned on
// an Exit tile.
func AllPushablesAtExit(s state.State, agentID component.EntityID) bool {
	ok := true
	s.Pushable.Range(func(id component.EntityID, _ component.Pushable) bool {
		pos, hasPos := s.Position.Get(id)
		if !hasPos || len(grid.EntitiesWithAt(s, pos, s.Exit.Has)) == 0 {
			ok = false
			return false
		}
		return true
	})
	return ok
}
