// Package combatlog defines the damage-subsystem telemetry events, grounded
// on the teacher repository's logging/combat/helpers.go pattern.
package combatlog

import (
	"context"

	"github.com/rizkiarm/grid-universe-sub000/logging"
)

const (
	// EventDamaged fires when damage is applied to a target.
	EventDamaged logging.EventType = "combat.damaged"
	// EventImmune fires when an Immunity effect absorbed a damager.
	EventImmune logging.EventType = "combat.immune"
	// EventDied fires when a target reaches zero HP or suffers lethal damage.
	EventDied logging.EventType = "combat.died"
)

// DamagedPayload captures the damager and amount applied.
type DamagedPayload struct {
	DamagerID string `json:"damagerId"`
	Amount    int    `json:"amount"`
	Lethal    bool   `json:"lethal"`
}

// Damaged publishes a combat-damaged event.
func Damaged(ctx context.Context, pub logging.Publisher, turn int, target logging.EntityRef, payload DamagedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDamaged,
		Turn:     turn,
		Actor:    target,
		Severity: logging.SeverityInfo,
		Category: "combat",
		Payload:  payload,
	})
}

// Immune publishes a combat-immune event.
func Immune(ctx context.Context, pub logging.Publisher, turn int, target logging.EntityRef, damagerID string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventImmune,
		Turn:     turn,
		Actor:    target,
		Severity: logging.SeverityDebug,
		Category: "combat",
		Payload:  map[string]string{"damagerId": damagerID},
	})
}

// Died publishes a combat-died event.
func Died(ctx context.Context, pub logging.Publisher, turn int, target logging.EntityRef) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDied,
		Turn:     turn,
		Actor:    target,
		Severity: logging.SeverityWarn,
		Category: "combat",
	})
}
