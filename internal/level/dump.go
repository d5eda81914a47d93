package level

import (
	"sort"
	"strconv"

	"github.com/iancoleman/orderedmap"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

// Dump renders s as a deterministic, entity-id-ordered JSON-able value for
// debugging and diffing level runs. It is explicitly NOT the RL observation
// encoding spec.md's Non-goals exclude: no feature vector, just a
// human-readable snapshot keyed the same way every time the same state is
// dumped. Grounded on the teacher's reliance on invopop/jsonschema's
// deterministic property ordering; generalized here with
// iancoleman/orderedmap to order entity snapshots by ascending EntityID.
func Dump(s state.State) *orderedmap.OrderedMap {
	root := orderedmap.New()
	root.Set("width", s.Width)
	root.Set("height", s.Height)
	root.Set("seed", s.Seed)
	root.Set("turn", s.Turn)
	root.Set("score", s.Score)
	root.Set("win", s.Win)
	root.Set("lose", s.Lose)
	if s.Message != "" {
		root.Set("message", s.Message)
	}

	ids := s.Entities.Keys(component.IDLess)
	entities := orderedmap.New()
	for _, id := range ids {
		entities.Set(idKey(id), dumpEntity(s, id))
	}
	root.Set("entities", entities)
	return root
}

func dumpEntity(s state.State, id component.EntityID) *orderedmap.OrderedMap {
	e := orderedmap.New()

	if p, ok := s.Position.Get(id); ok {
		e.Set("position", map[string]int{"x": p.X, "y": p.Y})
	}
	if s.Agent.Has(id) {
		e.Set("agent", true)
	}
	if s.Blocking.Has(id) {
		e.Set("blocking", true)
	}
	if s.Collidable.Has(id) {
		e.Set("collidable", true)
	}
	if s.Pushable.Has(id) {
		e.Set("pushable", true)
	}
	if h, ok := s.Health.Get(id); ok {
		e.Set("health", map[string]int{"hp": h.HP, "max": h.Max})
	}
	if s.Dead.Has(id) {
		e.Set("dead", true)
	}
	if d, ok := s.Damage.Get(id); ok {
		e.Set("damage", map[string]int{"amount": d.Amount})
	}
	if s.LethalDamage.Has(id) {
		e.Set("lethalDamage", true)
	}
	if inv, ok := s.Inventory.Get(id); ok {
		e.Set("inventory", idList(inv.Items))
	}
	if k, ok := s.Key.Get(id); ok {
		e.Set("key", map[string]string{"id": k.ID})
	}
	if l, ok := s.Locked.Get(id); ok {
		e.Set("locked", map[string]string{"keyId": l.KeyID})
	}
	if s.Collectible.Has(id) {
		e.Set("collectible", true)
	}
	if r, ok := s.Rewardable.Get(id); ok {
		e.Set("rewardable", map[string]int{"amount": r.Amount})
	}
	if s.Required.Has(id) {
		e.Set("required", true)
	}
	if c, ok := s.Cost.Get(id); ok {
		e.Set("cost", map[string]int{"amount": c.Amount})
	}
	if s.Exit.Has(id) {
		e.Set("exit", true)
	}
	if p, ok := s.Portal.Get(id); ok {
		e.Set("portal", map[string]string{"pair": idKey(p.Pair)})
	}
	if m, ok := s.Moving.Get(id); ok {
		axis := "horizontal"
		if m.Axis == component.Vertical {
			axis = "vertical"
		}
		e.Set("moving", map[string]any{
			"axis": axis, "direction": m.Direction, "speed": m.Speed, "bounce": m.Bounce,
		})
	}
	if pf, ok := s.Pathfinding.Get(id); ok {
		ptype := "straightLine"
		if pf.Type == component.PathAStar {
			ptype = "astar"
		}
		e.Set("pathfinding", map[string]string{"target": idKey(pf.Target), "type": ptype})
	}
	if s.Immunity.Has(id) {
		e.Set("immunity", true)
	}
	if s.Phasing.Has(id) {
		e.Set("phasing", true)
	}
	if sp, ok := s.Speed.Get(id); ok {
		e.Set("speed", map[string]int{"multiplier": sp.Multiplier})
	}
	if tl, ok := s.TimeLimit.Get(id); ok {
		e.Set("timeLimit", map[string]int{"amount": tl.Amount})
	}
	if ul, ok := s.UsageLimit.Get(id); ok {
		e.Set("usageLimit", map[string]int{"amount": ul.Amount})
	}
	if st, ok := s.Status.Get(id); ok {
		e.Set("status", idList(st.Effects))
	}

	return e
}

func idKey(id component.EntityID) string {
	return strconv.FormatInt(int64(id), 10)
}

func idList(set map[component.EntityID]struct{}) []string {
	ids := make([]component.EntityID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = idKey(id)
	}
	return out
}
