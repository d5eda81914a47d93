package gridworld

import (
	"context"

	"github.com/rizkiarm/grid-universe-sub000/internal/gerr"
	"github.com/rizkiarm/grid-universe-sub000/internal/move"
	"github.com/rizkiarm/grid-universe-sub000/internal/systems"
	"github.com/rizkiarm/grid-universe-sub000/logging"
)

// Step applies one action to s and returns the resulting state, per spec.md
// §4.2. agentID is optional; when omitted, the first agent in the Agent
// store is used. It delegates to a Nop-published Engine; use NewEngine to
// observe telemetry.
func Step(s State, act Action, agentID ...EntityID) (State, error) {
	return defaultEngine.Step(context.Background(), s, act, agentID...)
}

var defaultEngine = &Engine{Publisher: logging.NopPublisher{}}

// Step runs the fixed system pipeline spec.md §4.2 describes and returns
// the resulting state. A ProgrammerError aborts the step and returns the
// untouched input state alongside the error; every other condition spec.md
// §7 calls "recoverable" is absorbed silently by the system that hit it.
func (e *Engine) Step(ctx context.Context, s State, act Action, agentID ...EntityID) (result State, err error) {
	orig := s
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*gerr.ProgrammerError); ok {
				result = orig
				err = pe
				return
			}
			panic(r)
		}
	}()

	var id EntityID
	if len(agentID) > 0 {
		id = agentID[0]
	} else {
		first, ok := s.FirstAgent()
		if !ok {
			return s, ErrNoAgent
		}
		id = first
	}

	if s.Dead.Has(id) {
		s.Lose = true
		return s, nil
	}
	if !s.IsValid(id) || s.IsTerminal() {
		return s, nil
	}

	turn := s.Turn
	pub := e.Publisher

	s = systems.CapturePrevPosition(s)
	s = systems.AdvanceMoving(s)
	s = systems.AdvancePathfinding(ctx, pub, turn, s)
	s = systems.TickStatus(ctx, pub, turn, s)
	s = systems.RecordTrail(s)

	switch {
	case act.IsMove():
		s = stepMove(ctx, pub, turn, s, act, id)
	case act == UseKey:
		s = systems.UseKey(s, id)
		s = afterSubstep(ctx, pub, turn, s, id)
	case act == PickUp:
		s = systems.PickUp(ctx, pub, turn, s, id)
		s = afterSubstep(ctx, pub, turn, s, id)
	case act == Wait:
		s = afterSubstep(ctx, pub, turn, s, id)
	default:
		gerr.Panic("step", "unknown action")
	}

	return afterStep(ctx, pub, turn, s, id), nil
}

// stepMove implements spec.md §4.3: consult Speed for a sub-step count,
// then for each sub-step ask MoveFn for a candidate path and walk it one
// position at a time, trying push then plain movement, running
// post-substep interactions after every candidate regardless of outcome.
func stepMove(ctx context.Context, pub logging.Publisher, turn int, s State, act Action, id EntityID) State {
	if _, ok := s.Position.Get(id); !ok {
		return s
	}
	dir, _ := act.Direction()

	moveCount := 1
	if st, ok := s.Status.Get(id); ok {
		next, effectID, ok := systems.SelectAndConsumeSpeed(ctx, pub, turn, s, id, st)
		s = next
		if ok {
			if sp, ok := s.Speed.Get(effectID); ok {
				moveCount = sp.Multiplier
			}
		}
	}

	isWrap := move.IsWrap(s.MoveFn)

	for i := 0; i < moveCount; i++ {
		if s.MoveFn == nil {
			break
		}
		candidates := s.MoveFn(s, id, dir)
		blocked := false

		for _, next := range candidates {
			pushed, didPush := systems.TryPush(ctx, pub, turn, s, id, next, isWrap)
			if didPush {
				s = pushed
			} else {
				moved, didMove := systems.MovePlain(ctx, pub, turn, s, id, next)
				s = moved
				if !didMove {
					blocked = true
				}
			}

			s = afterSubstep(ctx, pub, turn, s, id)

			if s.Win || s.Lose || s.Dead.Has(id) || blocked {
				return s
			}
		}
	}
	return s
}

func afterSubstep(ctx context.Context, pub logging.Publisher, turn int, s State, id EntityID) State {
	s = systems.ApplyPortals(s)
	s = systems.ApplyDamage(ctx, pub, turn, s)
	s = systems.TileReward(ctx, pub, turn, s, id)
	return s
}

func afterStep(ctx context.Context, pub logging.Publisher, turn int, s State, id EntityID) State {
	s = systems.TileCost(ctx, pub, turn, s, id)
	s = systems.Win(ctx, pub, turn, s, id)
	s = systems.Lose(ctx, pub, turn, s, id)
	s.Turn++
	s = systems.CollectOrphans(s)
	return s
}
