// Package movementlog defines the movement-subsystem telemetry events,
// grounded on the teacher repository's logging/lifecycle/helpers.go pattern
// of per-subsystem EventType constants, typed payloads, and publish helpers.
package movementlog

import (
	"context"

	"github.com/rizkiarm/grid-universe-sub000/logging"
)

const (
	// EventBlocked fires when a move or push attempt is blocked.
	EventBlocked logging.EventType = "movement.blocked"
	// EventPushed fires when a push succeeds.
	EventPushed logging.EventType = "movement.pushed"
	// EventPhased fires when a move consumed a Phasing effect.
	EventPhased logging.EventType = "movement.phased"
)

// BlockedPayload captures why a movement attempt made no progress.
type BlockedPayload struct {
	Reason string `json:"reason"`
}

// PushedPayload captures the pushable entity and the delta it moved by.
type PushedPayload struct {
	PushableID string `json:"pushableId"`
	DX         int    `json:"dx"`
	DY         int    `json:"dy"`
}

// Blocked publishes a movement-blocked event.
func Blocked(ctx context.Context, pub logging.Publisher, turn int, actor logging.EntityRef, reason string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventBlocked,
		Turn:     turn,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Category: "movement",
		Payload:  BlockedPayload{Reason: reason},
	})
}

// Pushed publishes a movement-pushed event.
func Pushed(ctx context.Context, pub logging.Publisher, turn int, actor logging.EntityRef, payload PushedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventPushed,
		Turn:     turn,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: "movement",
		Payload:  payload,
	})
}

// Phased publishes a movement-phased event.
func Phased(ctx context.Context, pub logging.Publisher, turn int, actor logging.EntityRef, effectID string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventPhased,
		Turn:     turn,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Category: "movement",
		Payload:  map[string]string{"effectId": effectID},
	})
}
