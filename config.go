package gridworld

import (
	"fmt"
	"strings"

	"github.com/rizkiarm/grid-universe-sub000/internal/move"
	"github.com/rizkiarm/grid-universe-sub000/internal/objective"
)

const (
	// DefaultSeed is used when a Config carries no explicit seed.
	DefaultSeed = "default"
	// DefaultWidth and DefaultHeight size a level when construction omits
	// dimensions entirely (level.Spec always supplies its own; Config backs
	// ad-hoc, non-level-file state construction such as tests).
	DefaultWidth  = 10
	DefaultHeight = 10
	// DefaultMoveFn and DefaultObjectiveFn name the registry entries used
	// when a Config doesn't pick one explicitly.
	DefaultMoveFn      = "default"
	DefaultObjectiveFn = "default"
)

// Config describes how to construct a State outside of a level file: grid
// size, seed, and the named MoveFn/ObjectiveFn registry entries. Grounded
// on the teacher repository's internal/world.Config and its
// normalized()/DefaultConfig() pattern.
type Config struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Seed        string `json:"seed"`
	MoveFn      string `json:"moveFn"`
	ObjectiveFn string `json:"objectiveFn"`
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Seed:        DefaultSeed,
		MoveFn:      DefaultMoveFn,
		ObjectiveFn: DefaultObjectiveFn,
	}
}

// Normalized clamps non-positive dimensions to the defaults and fills a
// blank seed/registry name, the same defensive pass the teacher's
// Config.normalized applies before construction.
func (cfg Config) Normalized() Config {
	normalized := cfg
	normalized.Seed = strings.TrimSpace(normalized.Seed)
	if normalized.Seed == "" {
		normalized.Seed = DefaultSeed
	}
	if normalized.Width <= 0 {
		normalized.Width = DefaultWidth
	}
	if normalized.Height <= 0 {
		normalized.Height = DefaultHeight
	}
	if strings.TrimSpace(normalized.MoveFn) == "" {
		normalized.MoveFn = DefaultMoveFn
	}
	if strings.TrimSpace(normalized.ObjectiveFn) == "" {
		normalized.ObjectiveFn = DefaultObjectiveFn
	}
	return normalized
}

// Build resolves cfg's named MoveFn/ObjectiveFn against their registries and
// returns an empty State ready for entities to be added. An unknown
// registry name is a ConfigurationError (spec.md §7): it is always caught
// here, before any Step has run.
func (cfg Config) Build() (State, error) {
	cfg = cfg.Normalized()

	moveFn, ok := move.Registry[cfg.MoveFn]
	if !ok {
		return State{}, &ConfigurationError{Reason: fmt.Sprintf("unknown moveFn %q", cfg.MoveFn)}
	}
	objectiveFn, ok := objective.Registry[cfg.ObjectiveFn]
	if !ok {
		return State{}, &ConfigurationError{Reason: fmt.Sprintf("unknown objectiveFn %q", cfg.ObjectiveFn)}
	}

	s := NewState(cfg.Width, cfg.Height, moveFn, objectiveFn)
	s.Seed = cfg.Seed
	return s, nil
}
