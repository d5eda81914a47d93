package systems

import (
	"context"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
	"github.com/rizkiarm/grid-universe-sub000/logging"
	"github.com/rizkiarm/grid-universe-sub000/logging/lifecyclelog"
)

// Win sets s.Win if the agent is alive, positioned, and objectiveFn reports
// victory (spec.md §4.14). Grounded on
// original_source/grid_universe/systems/terminal.py's win_system.
func Win(ctx context.Context, pub logging.Publisher, turn int, s state.State, agentID component.EntityID) state.State {
	if s.Dead.Has(agentID) || s.Agent.Len() == 0 {
		return s
	}
	if _, ok := s.Position.Get(agentID); !ok || s.Win {
		return s
	}
	if s.ObjectiveFn != nil && s.ObjectiveFn(s, agentID) {
		s.Win = true
		lifecyclelog.Win(ctx, pub, turn, actorRef(agentID))
	}
	return s
}

// Lose sets s.Lose if the agent is Dead.
func Lose(ctx context.Context, pub logging.Publisher, turn int, s state.State, agentID component.EntityID) state.State {
	if s.Dead.Has(agentID) && !s.Lose {
		s.Lose = true
		lifecyclelog.Lose(ctx, pub, turn, actorRef(agentID))
	}
	return s
}
