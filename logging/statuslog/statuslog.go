// Package statuslog defines the status-effect telemetry events, grounded on
// the teacher repository's logging/status_effects/helpers.go pattern.
package statuslog

import (
	"context"

	"github.com/rizkiarm/grid-universe-sub000/logging"
)

const (
	// EventConsumed fires when an effect is selected and consumed (spec.md
	// §4.12's selection-and-consumption rule).
	EventConsumed logging.EventType = "status.effect_consumed"
	// EventExpired fires when an effect is garbage-collected.
	EventExpired logging.EventType = "status.effect_expired"
)

// ConsumedPayload captures which effect was consumed and by which rule.
type ConsumedPayload struct {
	EffectID  string `json:"effectId"`
	UsageLeft *int   `json:"usageLeft,omitempty"`
}

// Consumed publishes a status-effect-consumed event.
func Consumed(ctx context.Context, pub logging.Publisher, turn int, actor logging.EntityRef, payload ConsumedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventConsumed,
		Turn:     turn,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Category: "status",
		Payload:  payload,
	})
}

// Expired publishes a status-effect-expired event.
func Expired(ctx context.Context, pub logging.Publisher, turn int, actor logging.EntityRef, effectID, reason string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventExpired,
		Turn:     turn,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Category: "status",
		Payload:  map[string]string{"effectId": effectID, "reason": reason},
	})
}
