package systems

import (
	"container/heap"
	"context"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/gerr"
	"github.com/rizkiarm/grid-universe-sub000/internal/grid"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
	"github.com/rizkiarm/grid-universe-sub000/logging"
)

// AdvancePathfinding is step 3 of spec.md §4.2: every entity with Pathfinding
// takes one step toward its target, unless the target is currently phased.
// Grounded on original_source/grid_universe/systems/pathfinding.py.
func AdvancePathfinding(ctx context.Context, pub logging.Publisher, turn int, s state.State) state.State {
	ids := s.Pathfinding.Keys(component.IDLess)
	for _, id := range ids {
		s = advancePathfinder(ctx, pub, turn, s, id)
	}
	return s
}

func advancePathfinder(ctx context.Context, pub logging.Publisher, turn int, s state.State, id component.EntityID) state.State {
	pf, ok := s.Pathfinding.Get(id)
	if !ok {
		return s
	}
	if _, ok := s.Position.Get(id); !ok {
		return s
	}
	if _, ok := s.Position.Get(pf.Target); !ok {
		return s
	}

	if st, ok := s.Status.Get(pf.Target); ok {
		next, _, deterred := selectAndConsumeLogged(ctx, pub, turn, s, pf.Target, st, s.Phasing.Has)
		s = next
		if deterred {
			return s
		}
	}

	var next component.Position
	switch pf.Type {
	case component.StraightLine:
		next = straightLineNext(s, id, pf.Target)
	case component.PathAStar:
		next = aStarNext(s, id, pf.Target)
	default:
		gerr.Panic("pathfinding", "unknown Pathfinding.Type")
	}

	if !grid.InBounds(s, next) || grid.IsBlockedAt(s, next, false) {
		return s
	}
	s.Position = s.Position.Set(id, next)
	return s
}

// straightLineNext picks the orthogonal neighbor whose unit vector maximizes
// dot product with (target - self), ties broken by grid.Neighbors4's fixed
// order.
func straightLineNext(s state.State, id, target component.EntityID) component.Position {
	self, _ := s.Position.Get(id)
	goal, _ := s.Position.Get(target)
	dx, dy := goal.X-self.X, goal.Y-self.Y

	deltas := [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bestIdx := 0
	bestScore := deltas[0][0]*dx + deltas[0][1]*dy
	for i := 1; i < len(deltas); i++ {
		score := deltas[i][0]*dx + deltas[i][1]*dy
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	return self.Add(deltas[bestIdx][0], deltas[bestIdx][1])
}

// astarNode is one entry in the A* frontier.
type astarNode struct {
	priority int
	seq      int
	pos      component.Position
}

type astarFrontier []astarNode

func (f astarFrontier) Len() int { return len(f) }
func (f astarFrontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}
func (f astarFrontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *astarFrontier) Push(x interface{}) { *f = append(*f, x.(astarNode)) }
func (f *astarFrontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// aStarNext runs A* with a Manhattan heuristic over the 4-neighborhood,
// passable test ignoring Collidable, and a strictly increasing tie-break
// counter so frontier ordering is deterministic (spec.md §4.7). Grounded on
// original_source/grid_universe/systems/pathfinding.py's
// get_astar_next_position, translating its heap+itertools.count tie-break
// into container/heap.
func aStarNext(s state.State, id, target component.EntityID) component.Position {
	start, _ := s.Position.Get(id)
	goal, _ := s.Position.Get(target)
	if start == goal {
		return start
	}

	frontier := &astarFrontier{}
	heap.Init(frontier)
	seq := 0
	heap.Push(frontier, astarNode{priority: 0, seq: seq, pos: start})

	cameFrom := map[component.Position]component.Position{}
	costSoFar := map[component.Position]int{start: 0}

	for frontier.Len() > 0 {
		current := heap.Pop(frontier).(astarNode).pos
		if current == goal {
			break
		}
		for _, next := range grid.Neighbors4(current) {
			if !grid.InBounds(s, next) || grid.IsBlockedAt(s, next, false) {
				continue
			}
			newCost := costSoFar[current] + 1
			if prevCost, ok := costSoFar[next]; ok && newCost >= prevCost {
				continue
			}
			costSoFar[next] = newCost
			seq++
			heap.Push(frontier, astarNode{priority: newCost + grid.Manhattan(next, goal), seq: seq, pos: next})
			cameFrom[next] = current
		}
	}

	if _, ok := cameFrom[goal]; !ok {
		return start
	}
	path := []component.Position{goal}
	current := goal
	for current != start {
		prev, ok := cameFrom[current]
		if !ok {
			return start
		}
		current = prev
		if current != start {
			path = append(path, current)
		}
	}
	if len(path) == 0 {
		return start
	}
	return path[len(path)-1]
}
