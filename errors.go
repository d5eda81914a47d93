package gridworld

import (
	"errors"

	"github.com/rizkiarm/grid-universe-sub000/internal/gerr"
)

// ErrNoAgent is returned by Step when agentID is omitted and the state has
// no entity in the Agent store (spec.md §4.2).
var ErrNoAgent = errors.New("gridworld: state contains no agent")

// ProgrammerError marks an invariant violation that indicates a bug in a
// caller or level configuration rather than a recoverable game event
// (spec.md §7): negative damage, an unknown Pathfinding.Type, or a MoveFn
// returning an out-of-dimension position. Systems raise it via panic; Step
// recovers it at the top level and returns the ORIGINAL, untouched state
// alongside the error — persistent stores guarantee nothing was mutated in
// place, so there is no half-applied state to roll back.
type ProgrammerError = gerr.ProgrammerError

// ConfigurationError reports that a state or level construction request
// violated one of spec.md §3's invariants (e.g. an asymmetric portal pair,
// a non-positive grid dimension). Unlike ProgrammerError it is returned, not
// panicked, since it is always caught at construction time before any step
// has run.
type ConfigurationError = gerr.ConfigurationError
