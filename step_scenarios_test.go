package gridworld

import (
	"testing"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/move"
	"github.com/rizkiarm/grid-universe-sub000/internal/objective"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	hero     = EntityID(1)
	wall     = EntityID(2)
	pushable = EntityID(3)
	portalA  = EntityID(4)
	portalB  = EntityID(5)
	door     = EntityID(6)
	redkey   = EntityID(7)
)

func TestScenarioSimpleMove(t *testing.T) {
	Convey("Given an agent alone on a 3x1 grid", t, func() {
		s := newStateWithAgent(3, 1, Position{X: 0, Y: 0})

		Convey("When it moves right", func() {
			next, err := Step(s, MoveRight)

			Convey("It ends up one tile right, the turn advances, and score is unchanged", func() {
				So(err, ShouldBeNil)
				pos, _ := next.Position.Get(hero)
				So(pos, ShouldEqual, Position{X: 1, Y: 0})
				So(next.Turn, ShouldEqual, 1)
				So(next.Score, ShouldEqual, s.Score)
			})
		})
	})
}

func TestScenarioPushIntoWall(t *testing.T) {
	Convey("Given a pushable between the agent and a wall", t, func() {
		s := newStateWithAgent(3, 1, Position{X: 0, Y: 0})
		s.Position = s.Position.Set(pushable, Position{X: 1, Y: 0})
		s.Pushable = s.Pushable.Set(pushable, component.Pushable{})
		s.Position = s.Position.Set(wall, Position{X: 2, Y: 0})
		s.Blocking = s.Blocking.Set(wall, component.Blocking{})
		s.Entities = s.Entities.Set(pushable, component.Entity{}).Set(wall, component.Entity{})

		Convey("When the agent moves right", func() {
			next, err := Step(s, MoveRight)

			Convey("Neither the agent nor the pushable moves", func() {
				So(err, ShouldBeNil)
				agentPos, _ := next.Position.Get(hero)
				pushablePos, _ := next.Position.Get(pushable)
				So(agentPos, ShouldEqual, Position{X: 0, Y: 0})
				So(pushablePos, ShouldEqual, Position{X: 1, Y: 0})
			})
		})
	})
}

func TestScenarioPortalTeleport(t *testing.T) {
	Convey("Given a paired portal two tiles ahead of the agent", t, func() {
		s := newStateWithAgent(4, 1, Position{X: 0, Y: 0})
		s.Collidable = s.Collidable.Set(hero, component.Collidable{})
		s.Position = s.Position.Set(portalA, Position{X: 1, Y: 0})
		s.Position = s.Position.Set(portalB, Position{X: 3, Y: 0})
		s.Portal = s.Portal.Set(portalA, component.Portal{Pair: portalB})
		s.Portal = s.Portal.Set(portalB, component.Portal{Pair: portalA})

		Convey("When the agent moves right into the near portal", func() {
			next, err := Step(s, MoveRight)

			Convey("It emerges at the far portal's tile", func() {
				So(err, ShouldBeNil)
				pos, _ := next.Position.Get(hero)
				So(pos, ShouldEqual, Position{X: 3, Y: 0})
			})
		})
	})
}

func TestScenarioSpeedDoublesMovementFloorCostChargedOnce(t *testing.T) {
	Convey("Given an agent with an active Speed x2 effect on a floor that costs 1 per tile", t, func() {
		s := newStateWithAgent(4, 1, Position{X: 0, Y: 0})
		const effect = EntityID(50)
		s.Speed = s.Speed.Set(effect, component.Speed{Multiplier: 2})
		s.TimeLimit = s.TimeLimit.Set(effect, component.TimeLimit{Amount: 5})
		s.Status = s.Status.Set(hero, component.Status{Effects: map[component.EntityID]struct{}{effect: {}}})

		const floor0 = EntityID(60)
		const floor1 = EntityID(61)
		s.Position = s.Position.Set(floor0, Position{X: 1, Y: 0})
		s.Cost = s.Cost.Set(floor0, component.Cost{Amount: 1})
		s.Position = s.Position.Set(floor1, Position{X: 2, Y: 0})
		s.Cost = s.Cost.Set(floor1, component.Cost{Amount: 1})

		Convey("When the agent moves right", func() {
			next, err := Step(s, MoveRight)

			Convey("It advances two tiles but is charged the floor cost only once", func() {
				So(err, ShouldBeNil)
				pos, _ := next.Position.Get(hero)
				So(pos, ShouldEqual, Position{X: 2, Y: 0})
				So(next.Score, ShouldEqual, -1)
			})
		})
	})
}

func TestScenarioKeyUnlocksDoorAndIsConsumed(t *testing.T) {
	Convey("Given an agent holding a matching key next to a locked, blocking door", t, func() {
		s := newStateWithAgent(3, 1, Position{X: 0, Y: 0})
		s.Position = s.Position.Set(door, Position{X: 1, Y: 0})
		s.Locked = s.Locked.Set(door, component.Locked{KeyID: "red"})
		s.Blocking = s.Blocking.Set(door, component.Blocking{})
		s.Key = s.Key.Set(redkey, component.Key{ID: "red"})
		s.Inventory = s.Inventory.Set(hero, component.Inventory{Items: map[component.EntityID]struct{}{redkey: {}}})
		s.Entities = s.Entities.Set(door, component.Entity{}).Set(redkey, component.Entity{})

		Convey("When the agent uses its key", func() {
			next, err := Step(s, UseKey)

			Convey("The door's Locked and Blocking are removed and the key is gone", func() {
				So(err, ShouldBeNil)
				_, lockedStillThere := next.Locked.Get(door)
				_, blockingStillThere := next.Blocking.Get(door)
				So(lockedStillThere, ShouldBeFalse)
				So(blockingStillThere, ShouldBeFalse)

				inv, _ := next.Inventory.Get(hero)
				So(inv.Has(redkey), ShouldBeFalse)

				_, keyEntityStillExists := next.Key.Get(redkey)
				So(keyEntityStillExists, ShouldBeFalse)
			})
		})
	})
}

func TestScenarioLethalHazardOverridesWin(t *testing.T) {
	Convey("Given an agent standing on an Exit tile that is also LethalDamage", t, func() {
		s := newStateWithAgent(1, 1, Position{X: 0, Y: 0})
		s.MoveFn = move.Default
		s.ObjectiveFn = objective.Exit
		s.Position = s.Position.Set(200, Position{X: 0, Y: 0})
		s.Exit = s.Exit.Set(200, component.Exit{})
		s.LethalDamage = s.LethalDamage.Set(200, component.LethalDamage{})
		s.Damage = s.Damage.Set(200, component.Damage{Amount: 9999})
		s.Health = s.Health.Set(hero, component.Health{HP: 10, Max: 10})

		Convey("When the agent waits", func() {
			next, err := Step(s, Wait)

			Convey("The agent dies, losing overrides winning", func() {
				So(err, ShouldBeNil)
				So(next.Lose, ShouldBeTrue)
				So(next.Win, ShouldBeFalse)
				So(next.Dead.Has(hero), ShouldBeTrue)
			})
		})
	})
}
