// Package economylog defines the scoring telemetry events (tile reward/cost,
// collectible pickup), grounded on the teacher repository's
// logging/economy/helpers.go pattern.
package economylog

import (
	"context"

	"github.com/rizkiarm/grid-universe-sub000/logging"
)

const (
	// EventScoreChanged fires whenever score changes, whether from a reward,
	// a cost, or a collectible pickup.
	EventScoreChanged logging.EventType = "economy.score_changed"
)

// ScoreChangedPayload captures the score delta and its source.
type ScoreChangedPayload struct {
	Delta  int    `json:"delta"`
	Source string `json:"source"`
}

// ScoreChanged publishes a score-changed event.
func ScoreChanged(ctx context.Context, pub logging.Publisher, turn int, actor logging.EntityRef, payload ScoreChangedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventScoreChanged,
		Turn:     turn,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Category: "economy",
		Payload:  payload,
	})
}
