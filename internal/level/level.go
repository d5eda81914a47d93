// Package level turns a declarative, JSON-authored Spec into an initial
// state.State (SPEC_FULL.md §4.17 — a direct, data-driven loader, not a
// procedural generator; maze/level authoring systems remain a spec.md
// Non-goal). Grounded on original_source/grid_universe/levels/{grid,
// entity_spec,convert}.py's authoring-object -> State conversion, adapted
// to a flat JSON list since this kernel has no fixed cast of entity kinds
// and Go has no equivalent of Level's 2D grid-of-lists authoring API.
package level

import (
	"fmt"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/gerr"
	"github.com/rizkiarm/grid-universe-sub000/internal/move"
	"github.com/rizkiarm/grid-universe-sub000/internal/objective"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

// Position is a level file's grid coordinate.
type Position struct {
	X int `json:"x" jsonschema:"minimum=0"`
	Y int `json:"y" jsonschema:"minimum=0"`
}

// Appearance mirrors component.Appearance for authoring.
type Appearance struct {
	Name       string `json:"name,omitempty"`
	Priority   int    `json:"priority,omitempty"`
	Icon       bool   `json:"icon,omitempty"`
	Background bool   `json:"background,omitempty"`
}

// Health mirrors component.Health.
type Health struct {
	HP  int `json:"hp"`
	Max int `json:"max"`
}

// Damage mirrors component.Damage.
type Damage struct {
	Amount int `json:"amount" jsonschema:"minimum=0"`
}

// Key mirrors component.Key.
type Key struct {
	ID string `json:"id"`
}

// Locked mirrors component.Locked.
type Locked struct {
	KeyID string `json:"keyId"`
}

// Cost mirrors component.Cost.
type Cost struct {
	Amount int `json:"amount"`
}

// Rewardable mirrors component.Rewardable.
type Rewardable struct {
	Amount int `json:"amount"`
}

// Portal names the paired portal entity by Ref.
type Portal struct {
	PairRef string `json:"pairRef" jsonschema:"description=Ref of the linked portal entity"`
}

// Moving mirrors component.Moving; Axis is "horizontal" or "vertical".
type Moving struct {
	Axis      string `json:"axis" jsonschema:"enum=horizontal,enum=vertical"`
	Direction int    `json:"direction" jsonschema:"enum=-1,enum=1"`
	Speed     int    `json:"speed" jsonschema:"minimum=1"`
	Bounce    bool   `json:"bounce,omitempty"`
}

// Pathfinding names the seek target by Ref; Type is "straightLine" or
// "astar".
type Pathfinding struct {
	TargetRef string `json:"targetRef"`
	Type      string `json:"type" jsonschema:"enum=straightLine,enum=astar"`
}

// Speed mirrors component.Speed.
type Speed struct {
	Multiplier int `json:"multiplier" jsonschema:"minimum=1"`
}

// TimeLimit mirrors component.TimeLimit.
type TimeLimit struct {
	Amount int `json:"amount"`
}

// UsageLimit mirrors component.UsageLimit.
type UsageLimit struct {
	Amount int `json:"amount"`
}

// Entity is one declared entity: a flat bag of optional components plus a
// few authoring-only cross-reference fields (Ref, Inventory, Status,
// Portal.PairRef, Pathfinding.TargetRef), resolved against other entities
// declared in the same Spec. Grounded on
// original_source/grid_universe/levels/entity_spec.py's EntitySpec, which
// plays the identical role for the Python authoring API.
type Entity struct {
	Ref      string    `json:"ref,omitempty" jsonschema:"description=Local label other entities in this file may reference"`
	Position *Position `json:"position,omitempty" jsonschema:"description=Grid placement; omit for off-grid entities such as inventory items and effects"`

	Agent        bool `json:"agent,omitempty"`
	Blocking     bool `json:"blocking,omitempty"`
	Collidable   bool `json:"collidable,omitempty"`
	Pushable     bool `json:"pushable,omitempty"`
	Dead         bool `json:"dead,omitempty"`
	LethalDamage bool `json:"lethalDamage,omitempty"`
	Collectible  bool `json:"collectible,omitempty"`
	Required     bool `json:"required,omitempty"`
	Exit         bool `json:"exit,omitempty"`
	Immunity     bool `json:"immunity,omitempty"`
	Phasing      bool `json:"phasing,omitempty"`

	Appearance  *Appearance  `json:"appearance,omitempty"`
	Health      *Health      `json:"health,omitempty"`
	Damage      *Damage      `json:"damage,omitempty"`
	Key         *Key         `json:"key,omitempty"`
	Locked      *Locked      `json:"locked,omitempty"`
	Cost        *Cost        `json:"cost,omitempty"`
	Rewardable  *Rewardable  `json:"rewardable,omitempty"`
	Portal      *Portal      `json:"portal,omitempty"`
	Moving      *Moving      `json:"moving,omitempty"`
	Pathfinding *Pathfinding `json:"pathfinding,omitempty"`
	Speed       *Speed       `json:"speed,omitempty"`
	TimeLimit   *TimeLimit   `json:"timeLimit,omitempty"`
	UsageLimit  *UsageLimit  `json:"usageLimit,omitempty"`

	// Inventory and Status name, by Ref, other entities in this Spec that
	// should be materialized into this entity's Inventory/Status stores
	// instead of placed on the grid themselves.
	Inventory []string `json:"inventory,omitempty"`
	Status    []string `json:"status,omitempty"`
}

// Spec is the on-disk level file format: grid size, the named MoveFn and
// ObjectiveFn registry entries (internal/move.Registry,
// internal/objective.Registry), an optional seed, and the flat entity
// list. cmd/schemagen emits this type's JSON Schema.
type Spec struct {
	Width       int      `json:"width" jsonschema:"minimum=1"`
	Height      int      `json:"height" jsonschema:"minimum=1"`
	Seed        string   `json:"seed,omitempty"`
	MoveFn      string   `json:"moveFn,omitempty" jsonschema:"description=Name registered in the MoveFn registry; defaults to 'default'"`
	ObjectiveFn string   `json:"objectiveFn,omitempty" jsonschema:"description=Name registered in the ObjectiveFn registry; defaults to 'default'"`
	Entities    []Entity `json:"entities"`
}

// Build converts spec into an initial state.State, allocating one
// component.EntityID per declared Entity in declaration order. Any
// unresolved reference or unknown registry name is a *gerr.ConfigurationError,
// returned rather than panicked (spec.md §7).
func Build(spec Spec) (state.State, error) {
	moveFn, ok := move.Registry[orDefault(spec.MoveFn, "default")]
	if !ok {
		return state.State{}, &gerr.ConfigurationError{Reason: fmt.Sprintf("unknown moveFn %q", spec.MoveFn)}
	}
	objectiveFn, ok := objective.Registry[orDefault(spec.ObjectiveFn, "default")]
	if !ok {
		return state.State{}, &gerr.ConfigurationError{Reason: fmt.Sprintf("unknown objectiveFn %q", spec.ObjectiveFn)}
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return state.State{}, &gerr.ConfigurationError{Reason: "width and height must be positive"}
	}

	s := state.New(spec.Width, spec.Height, moveFn, objectiveFn)
	s.Seed = orDefault(spec.Seed, "default")

	ids := make([]component.EntityID, len(spec.Entities))
	refs := make(map[string]component.EntityID, len(spec.Entities))
	for i, e := range spec.Entities {
		id := component.EntityID(i)
		ids[i] = id
		s.Entities = s.Entities.Set(id, component.Entity{})
		if e.Ref != "" {
			if _, dup := refs[e.Ref]; dup {
				return state.State{}, &gerr.ConfigurationError{Reason: fmt.Sprintf("duplicate entity ref %q", e.Ref)}
			}
			refs[e.Ref] = id
		}
	}

	resolve := func(ref string) (component.EntityID, error) {
		id, ok := refs[ref]
		if !ok {
			return 0, &gerr.ConfigurationError{Reason: fmt.Sprintf("unresolved entity ref %q", ref)}
		}
		return id, nil
	}

	for i, e := range spec.Entities {
		id := ids[i]

		if e.Position != nil {
			s.Position = s.Position.Set(id, component.Position{X: e.Position.X, Y: e.Position.Y})
		}
		if e.Agent {
			s.Agent = s.Agent.Set(id, component.Agent{})
		}
		if e.Blocking {
			s.Blocking = s.Blocking.Set(id, component.Blocking{})
		}
		if e.Collidable {
			s.Collidable = s.Collidable.Set(id, component.Collidable{})
		}
		if e.Pushable {
			s.Pushable = s.Pushable.Set(id, component.Pushable{})
		}
		if e.Dead {
			s.Dead = s.Dead.Set(id, component.Dead{})
		}
		if e.LethalDamage {
			s.LethalDamage = s.LethalDamage.Set(id, component.LethalDamage{})
		}
		if e.Collectible {
			s.Collectible = s.Collectible.Set(id, component.Collectible{})
		}
		if e.Required {
			s.Required = s.Required.Set(id, component.Required{})
		}
		if e.Exit {
			s.Exit = s.Exit.Set(id, component.Exit{})
		}
		if e.Immunity {
			s.Immunity = s.Immunity.Set(id, component.Immunity{})
		}
		if e.Phasing {
			s.Phasing = s.Phasing.Set(id, component.Phasing{})
		}
		if e.Appearance != nil {
			s.Appearance = s.Appearance.Set(id, component.Appearance{
				Name: e.Appearance.Name, Priority: e.Appearance.Priority,
				Icon: e.Appearance.Icon, Background: e.Appearance.Background,
			})
		}
		if e.Health != nil {
			s.Health = s.Health.Set(id, component.Health{HP: e.Health.HP, Max: e.Health.Max})
		}
		if e.Damage != nil {
			if e.Damage.Amount < 0 {
				return state.State{}, &gerr.ConfigurationError{Reason: "damage.amount must be >= 0"}
			}
			s.Damage = s.Damage.Set(id, component.Damage{Amount: e.Damage.Amount})
		}
		if e.Key != nil {
			s.Key = s.Key.Set(id, component.Key{ID: e.Key.ID})
		}
		if e.Locked != nil {
			s.Locked = s.Locked.Set(id, component.Locked{KeyID: e.Locked.KeyID})
		}
		if e.Cost != nil {
			s.Cost = s.Cost.Set(id, component.Cost{Amount: e.Cost.Amount})
		}
		if e.Rewardable != nil {
			s.Rewardable = s.Rewardable.Set(id, component.Rewardable{Amount: e.Rewardable.Amount})
		}
		if e.Speed != nil {
			s.Speed = s.Speed.Set(id, component.Speed{Multiplier: e.Speed.Multiplier})
		}
		if e.TimeLimit != nil {
			s.TimeLimit = s.TimeLimit.Set(id, component.TimeLimit{Amount: e.TimeLimit.Amount})
		}
		if e.UsageLimit != nil {
			s.UsageLimit = s.UsageLimit.Set(id, component.UsageLimit{Amount: e.UsageLimit.Amount})
		}
		if e.Moving != nil {
			axis := component.Horizontal
			switch e.Moving.Axis {
			case "horizontal":
				axis = component.Horizontal
			case "vertical":
				axis = component.Vertical
			default:
				return state.State{}, &gerr.ConfigurationError{Reason: fmt.Sprintf("entity %d: unknown moving.axis %q", i, e.Moving.Axis)}
			}
			s.Moving = s.Moving.Set(id, component.Moving{
				Axis: axis, Direction: e.Moving.Direction, Speed: e.Moving.Speed, Bounce: e.Moving.Bounce,
			})
		}
		if e.Pathfinding != nil {
			target, err := resolve(e.Pathfinding.TargetRef)
			if err != nil {
				return state.State{}, err
			}
			var ptype component.PathfindingType
			switch e.Pathfinding.Type {
			case "straightLine":
				ptype = component.StraightLine
			case "astar":
				ptype = component.PathAStar
			default:
				return state.State{}, &gerr.ConfigurationError{Reason: fmt.Sprintf("entity %d: unknown pathfinding.type %q", i, e.Pathfinding.Type)}
			}
			s.Pathfinding = s.Pathfinding.Set(id, component.Pathfinding{Target: target, Type: ptype})
		}
		if len(e.Inventory) > 0 {
			items := make(map[component.EntityID]struct{}, len(e.Inventory))
			for _, ref := range e.Inventory {
				itemID, err := resolve(ref)
				if err != nil {
					return state.State{}, err
				}
				items[itemID] = struct{}{}
			}
			s.Inventory = s.Inventory.Set(id, component.Inventory{Items: items})
		}
		if len(e.Status) > 0 {
			effects := make(map[component.EntityID]struct{}, len(e.Status))
			for _, ref := range e.Status {
				effectID, err := resolve(ref)
				if err != nil {
					return state.State{}, err
				}
				effects[effectID] = struct{}{}
			}
			s.Status = s.Status.Set(id, component.Status{Effects: effects})
		}
	}

	// Portal pairing is wired after every entity has an allocated id so a
	// portal may reference one declared later in the file.
	for i, e := range spec.Entities {
		if e.Portal == nil {
			continue
		}
		id := ids[i]
		pair, err := resolve(e.Portal.PairRef)
		if err != nil {
			return state.State{}, err
		}
		s.Portal = s.Portal.Set(id, component.Portal{Pair: pair})
	}
	for i, e := range spec.Entities {
		if e.Portal == nil {
			continue
		}
		id := ids[i]
		p, _ := s.Portal.Get(id)
		back, ok := s.Portal.Get(p.Pair)
		if !ok || back.Pair != id {
			return state.State{}, &gerr.ConfigurationError{Reason: fmt.Sprintf("entity %d: asymmetric portal pair %q", i, e.Portal.PairRef)}
		}
	}

	return s, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
