package gridworld

import "github.com/rizkiarm/grid-universe-sub000/logging"

// Engine binds a telemetry Publisher to repeated Step calls, the same role
// the teacher repository's World plays for its own Deps (publisher, rng
// factory). Engine itself carries no game state — every State it steps
// remains a free-standing, independently replayable value; Engine only
// saves callers from re-threading a Publisher through every call.
type Engine struct {
	Publisher logging.Publisher
}

// NewEngine returns an Engine that publishes telemetry to pub. A nil pub is
// replaced with logging.NopPublisher{}.
func NewEngine(pub logging.Publisher) *Engine {
	if pub == nil {
		pub = logging.NopPublisher{}
	}
	return &Engine{Publisher: pub}
}
