// Package state defines the immutable world snapshot (spec.md §4.1): grid
// size, the pluggable move/objective functions, every component store listed
// in spec.md §3, the turn counter, score, and win/lose flags. Every system
// in internal/systems takes a State and returns a new State; nothing here
// ever mutates a receiver in place.
package state

import (
	"github.com/rizkiarm/grid-universe-sub000/internal/action"
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/store"
)

// MoveFn computes the candidate-position path for one unit of movement in
// direction dir, per spec.md §6. It must not mutate s.
type MoveFn func(s State, id component.EntityID, dir action.Direction) []component.Position

// ObjectiveFn decides whether the agent has won, per spec.md §6.
type ObjectiveFn func(s State, agentID component.EntityID) bool

// PositionSet is the value type stored per-position in Trail: the set of
// entity ids that crossed that tile during the current step.
type PositionSet = map[component.EntityID]struct{}

// State is the immutable world snapshot described in spec.md §4.1.
type State struct {
	Width  int
	Height int

	MoveFn      MoveFn
	ObjectiveFn ObjectiveFn

	Seed string

	// Entity roots: every id known to the world, regardless of which other
	// component stores reference it (spec.md §3, §4.15).
	Entities store.Store[component.EntityID, component.Entity]

	// Properties.
	Position     store.Store[component.EntityID, component.Position]
	PrevPosition store.Store[component.EntityID, component.Position]
	Agent        store.Store[component.EntityID, component.Agent]
	Appearance   store.Store[component.EntityID, component.Appearance]
	Blocking     store.Store[component.EntityID, component.Blocking]
	Collidable   store.Store[component.EntityID, component.Collidable]
	Pushable     store.Store[component.EntityID, component.Pushable]
	Health       store.Store[component.EntityID, component.Health]
	Dead         store.Store[component.EntityID, component.Dead]
	Damage       store.Store[component.EntityID, component.Damage]
	LethalDamage store.Store[component.EntityID, component.LethalDamage]
	Inventory    store.Store[component.EntityID, component.Inventory]
	Key          store.Store[component.EntityID, component.Key]
	Locked       store.Store[component.EntityID, component.Locked]
	Collectible  store.Store[component.EntityID, component.Collectible]
	Rewardable   store.Store[component.EntityID, component.Rewardable]
	Required     store.Store[component.EntityID, component.Required]
	Cost         store.Store[component.EntityID, component.Cost]
	Exit         store.Store[component.EntityID, component.Exit]
	Portal       store.Store[component.EntityID, component.Portal]
	Moving       store.Store[component.EntityID, component.Moving]
	Pathfinding  store.Store[component.EntityID, component.Pathfinding]

	// Effects.
	Immunity   store.Store[component.EntityID, component.Immunity]
	Phasing    store.Store[component.EntityID, component.Phasing]
	Speed      store.Store[component.EntityID, component.Speed]
	TimeLimit  store.Store[component.EntityID, component.TimeLimit]
	UsageLimit store.Store[component.EntityID, component.UsageLimit]
	Status     store.Store[component.EntityID, component.Status]

	// Trail: positions crossed during the current step, keyed by position.
	Trail store.Store[component.Position, PositionSet]

	Turn    int
	Score   int
	Win     bool
	Lose    bool
	Message string
}

// New returns an empty state ready for level construction.
func New(width, height int, moveFn MoveFn, objectiveFn ObjectiveFn) State {
	return State{
		Width:        width,
		Height:       height,
		MoveFn:       moveFn,
		ObjectiveFn:  objectiveFn,
		Entities:     store.New[component.EntityID, component.Entity](),
		Position:     store.New[component.EntityID, component.Position](),
		PrevPosition: store.New[component.EntityID, component.Position](),
		Agent:        store.New[component.EntityID, component.Agent](),
		Appearance:   store.New[component.EntityID, component.Appearance](),
		Blocking:     store.New[component.EntityID, component.Blocking](),
		Collidable:   store.New[component.EntityID, component.Collidable](),
		Pushable:     store.New[component.EntityID, component.Pushable](),
		Health:       store.New[component.EntityID, component.Health](),
		Dead:         store.New[component.EntityID, component.Dead](),
		Damage:       store.New[component.EntityID, component.Damage](),
		LethalDamage: store.New[component.EntityID, component.LethalDamage](),
		Inventory:    store.New[component.EntityID, component.Inventory](),
		Key:          store.New[component.EntityID, component.Key](),
		Locked:       store.New[component.EntityID, component.Locked](),
		Collectible:  store.New[component.EntityID, component.Collectible](),
		Rewardable:   store.New[component.EntityID, component.Rewardable](),
		Required:     store.New[component.EntityID, component.Required](),
		Cost:         store.New[component.EntityID, component.Cost](),
		Exit:         store.New[component.EntityID, component.Exit](),
		Portal:       store.New[component.EntityID, component.Portal](),
		Moving:       store.New[component.EntityID, component.Moving](),
		Pathfinding:  store.New[component.EntityID, component.Pathfinding](),
		Immunity:     store.New[component.EntityID, component.Immunity](),
		Phasing:      store.New[component.EntityID, component.Phasing](),
		Speed:        store.New[component.EntityID, component.Speed](),
		TimeLimit:    store.New[component.EntityID, component.TimeLimit](),
		UsageLimit:   store.New[component.EntityID, component.UsageLimit](),
		Status:       store.New[component.EntityID, component.Status](),
		Trail:        store.New[component.Position, PositionSet](),
	}
}

// FirstAgent returns the lowest-id entity in the Agent store, matching
// spec.md §4.2's "first agent in the Agent store" default selection.
func (s State) FirstAgent() (component.EntityID, bool) {
	ids := s.Agent.Keys(component.IDLess)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// IsValid reports whether the agent has a Position, per spec.md §4.2's
// "invalid" short-circuit.
func (s State) IsValid(agentID component.EntityID) bool {
	_, ok := s.Position.Get(agentID)
	return ok
}

// IsTerminal reports whether the state has already won or lost.
func (s State) IsTerminal() bool {
	return s.Win || s.Lose
}
