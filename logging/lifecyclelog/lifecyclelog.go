// Package lifecyclelog defines the terminal-state telemetry events, grounded
// directly on the teacher repository's logging/lifecycle/helpers.go.
package lifecyclelog

import (
	"context"

	"github.com/rizkiarm/grid-universe-sub000/logging"
)

const (
	// EventWin fires when the objective function reports victory.
	EventWin logging.EventType = "lifecycle.win"
	// EventLose fires when the agent dies.
	EventLose logging.EventType = "lifecycle.lose"
)

// Win publishes a win event.
func Win(ctx context.Context, pub logging.Publisher, turn int, actor logging.EntityRef) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventWin,
		Turn:     turn,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: "lifecycle",
	})
}

// Lose publishes a lose event.
func Lose(ctx context.Context, pub logging.Publisher, turn int, actor logging.EntityRef) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventLose,
		Turn:     turn,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: "lifecycle",
	})
}
