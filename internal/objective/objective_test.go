package objective

import (
	"testing"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/state"
)

const agentID = component.EntityID(1)

func TestExitRequiresExitTile(t *testing.T) {
	s := state.New(3, 3, nil, nil)
	s.Position = s.Position.Set(agentID, component.Position{X: 1, Y: 1})

	if Exit(s, agentID) {
		t.Fatalf("Exit = true before any Exit entity placed")
	}
	s.Position = s.Position.Set(2, component.Position{X: 1, Y: 1})
	s.Exit = s.Exit.Set(2, component.Exit{})
	if !Exit(s, agentID) {
		t.Fatalf("Exit = false while standing on an Exit tile")
	}
}

func TestCollectFalseWhileRequiredStillCollectible(t *testing.T) {
	s := state.New(3, 3, nil, nil)
	s.Required = s.Required.Set(2, component.Required{})
	s.Collectible = s.Collectible.Set(2, component.Collectible{})

	if Collect(s, agentID) {
		t.Fatalf("Collect = true while a Required entity is still Collectible")
	}

	s.Collectible = s.Collectible.Remove(2)
	if !Collect(s, agentID) {
		t.Fatalf("Collect = false after the Required entity was picked up")
	}
}

func TestDefaultRequiresBothCollectAndExit(t *testing.T) {
	s := state.New(3, 3, nil, nil)
	s.Position = s.Position.Set(agentID, component.Position{X: 0, Y: 0})
	s.Required = s.Required.Set(2, component.Required{})
	s.Collectible = s.Collectible.Set(2, component.Collectible{})

	if Default(s, agentID) {
		t.Fatalf("Default = true with Required still outstanding and agent off any Exit")
	}

	s.Collectible = s.Collectible.Remove(2)
	if Default(s, agentID) {
		t.Fatalf("Default = true before the agent reaches an Exit tile")
	}

	s.Exit = s.Exit.Set(3, component.Exit{})
	s.Position = s.Position.Set(3, component.Position{X: 0, Y: 0})
	if !Default(s, agentID) {
		t.Fatalf("Default = false once Required is collected and agent stands on Exit")
	}
}

func TestAllUnlockedTrueOnlyWhenNoLocksRemain(t *testing.T) {
	s := state.New(3, 3, nil, nil)
	s.Locked = s.Locked.Set(2, component.Locked{KeyID: "red"})
	if AllUnlocked(s, agentID) {
		t.Fatalf("AllUnlocked = true with a Locked entity present")
	}
	s.Locked = s.Locked.Remove(2)
	if !AllUnlocked(s, agentID) {
		t.Fatalf("AllUnlocked = false with no Locked entities remaining")
	}
}

func TestAllPushablesAtExitRequiresEveryPushableOnExit(t *testing.T) {
	s := state.New(3, 3, nil, nil)
	s.Pushable = s.Pushable.Set(2, component.Pushable{})
	s.Position = s.Position.Set(2, component.Position{X: 1, Y: 1})

	if AllPushablesAtExit(s, agentID) {
		t.Fatalf("AllPushablesAtExit = true with a Pushable off any Exit tile")
	}

	s.Exit = s.Exit.Set(3, component.Exit{})
	s.Position = s.Position.Set(3, component.Position{X: 1, Y: 1})
	if !AllPushablesAtExit(s, agentID) {
		t.Fatalf("AllPushablesAtExit = false once every Pushable sits on an Exit tile")
	}
}

func TestRegistryHasEveryVariant(t *testing.T) {
	for _, name := range []string{"default", "exit", "collect", "all_unlocked", "all_pushables_at_exit"} {
		if _, ok := Registry[name]; !ok {
			t.Errorf("Registry missing entry %q", name)
		}
	}
}
