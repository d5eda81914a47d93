// Package gridworld is the public facade of the deterministic, turn-based
// grid-world simulation kernel described by SPEC_FULL.md. It re-exports the
// types implemented in internal/{component,action,state} so callers never
// need to import internal packages directly, while keeping the mechanics
// themselves — stores, systems, registries — in internal/ the way the
// teacher repository keeps nearly everything under internal/ and exposes a
// thin surface from cmd/ and a handful of root files.
package gridworld

import (
	"github.com/rizkiarm/grid-universe-sub000/internal/action"
	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/move"
	"github.com/rizkiarm/grid-universe-sub000/internal/objective"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

// EntityID identifies an entity (spec.md §3).
type EntityID = component.EntityID

// Position is a grid coordinate (spec.md §3).
type Position = component.Position

// Direction is one of the four orthogonal grid directions (spec.md §6).
type Direction = action.Direction

const (
	Up    = action.Up
	Down  = action.Down
	Left  = action.Left
	Right = action.Right
)

// Action is the top-level command accepted by Step (spec.md §6).
type Action = action.Action

const (
	MoveUp    = action.MoveUp
	MoveDown  = action.MoveDown
	MoveLeft  = action.MoveLeft
	MoveRight = action.MoveRight
	UseKey    = action.UseKey
	PickUp    = action.PickUp
	Wait      = action.Wait
)

// State is the immutable world snapshot (spec.md §4.1).
type State = state.State

// MoveFn computes candidate next positions for one unit of movement
// (spec.md §6).
type MoveFn = state.MoveFn

// ObjectiveFn decides whether the agent has won (spec.md §6).
type ObjectiveFn = state.ObjectiveFn

// NewState returns an empty state sized width x height using moveFn and
// objectiveFn. Level construction (internal/level) populates entities on
// top of this.
func NewState(width, height int, moveFn MoveFn, objectiveFn ObjectiveFn) State {
	return state.New(width, height, moveFn, objectiveFn)
}

// RegisterMoveFn adds fn to the named MoveFn registry so Config and
// level.Spec can select it by name. Switching movement rules is
// configuration, not a code change (spec.md §9).
func RegisterMoveFn(name string, fn MoveFn) {
	move.Registry[name] = fn
}

// RegisterObjectiveFn adds fn to the named ObjectiveFn registry so Config
// and level.Spec can select it by name.
func RegisterObjectiveFn(name string, fn ObjectiveFn) {
	objective.Registry[name] = fn
}
