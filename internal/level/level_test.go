package level

import (
	"encoding/json"
	"testing"

	"github.com/rizkiarm/grid-universe-sub000/internal/component"
	"github.com/rizkiarm/grid-universe-sub000/internal/gerr"
)

func TestBuildPlacesEntitiesAtDeclaredPositions(t *testing.T) {
	spec := Spec{
		Width:  4,
		Height: 4,
		Entities: []Entity{
			{Ref: "hero", Position: &Position{X: 0, Y: 0}, Agent: true},
			{Position: &Position{X: 3, Y: 3}, Exit: true},
		},
	}

	s, err := Build(spec)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if s.Agent.Len() != 1 {
		t.Fatalf("expected exactly one Agent entity, got %d", s.Agent.Len())
	}
	agentID, _ := s.FirstAgent()
	if pos, ok := s.Position.Get(agentID); !ok || pos != (component.Position{X: 0, Y: 0}) {
		t.Fatalf("agent position = %v, ok=%v; want (0,0), true", pos, ok)
	}
}

func TestBuildWiresInventoryByRef(t *testing.T) {
	spec := Spec{
		Width:  3,
		Height: 3,
		Entities: []Entity{
			{Ref: "hero", Position: &Position{X: 0, Y: 0}, Agent: true, Inventory: []string{"redkey"}},
			{Ref: "redkey", Key: &Key{ID: "red"}},
		},
	}

	s, err := Build(spec)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	agentID, _ := s.FirstAgent()
	inv, ok := s.Inventory.Get(agentID)
	if !ok || len(inv.Items) != 1 {
		t.Fatalf("agent inventory = %+v, ok=%v; want exactly one item", inv, ok)
	}
}

func TestBuildWiresStatusAndSpeed(t *testing.T) {
	spec := Spec{
		Width:  3,
		Height: 3,
		Entities: []Entity{
			{Ref: "hero", Position: &Position{X: 0, Y: 0}, Agent: true, Status: []string{"haste"}},
			{Ref: "haste", Speed: &Speed{Multiplier: 2}, TimeLimit: &TimeLimit{Amount: 5}},
		},
	}

	s, err := Build(spec)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	agentID, _ := s.FirstAgent()
	status, ok := s.Status.Get(agentID)
	if !ok || len(status.Effects) != 1 {
		t.Fatalf("agent status = %+v, ok=%v; want exactly one effect", status, ok)
	}
}

func TestBuildResolvesBidirectionalPortalPair(t *testing.T) {
	spec := Spec{
		Width:  5,
		Height: 5,
		Entities: []Entity{
			{Ref: "a", Position: &Position{X: 0, Y: 0}, Portal: &Portal{PairRef: "b"}},
			{Ref: "b", Position: &Position{X: 4, Y: 4}, Portal: &Portal{PairRef: "a"}},
		},
	}

	if _, err := Build(spec); err != nil {
		t.Fatalf("Build returned error for a valid bidirectional portal pair: %v", err)
	}
}

func TestBuildRejectsAsymmetricPortalPair(t *testing.T) {
	spec := Spec{
		Width:  5,
		Height: 5,
		Entities: []Entity{
			{Ref: "a", Position: &Position{X: 0, Y: 0}, Portal: &Portal{PairRef: "b"}},
			{Ref: "b", Position: &Position{X: 4, Y: 4}},
		},
	}

	_, err := Build(spec)
	if err == nil {
		t.Fatalf("Build accepted an asymmetric portal pair")
	}
	if _, ok := err.(*gerr.ConfigurationError); !ok {
		t.Fatalf("Build error = %T, want *gerr.ConfigurationError", err)
	}
}

func TestBuildRejectsUnresolvedRef(t *testing.T) {
	spec := Spec{
		Width:  3,
		Height: 3,
		Entities: []Entity{
			{Ref: "hero", Position: &Position{X: 0, Y: 0}, Agent: true, Inventory: []string{"missing"}},
		},
	}

	if _, err := Build(spec); err == nil {
		t.Fatalf("Build accepted a reference to an undeclared entity")
	}
}

func TestBuildRejectsUnknownMoveFn(t *testing.T) {
	spec := Spec{Width: 3, Height: 3, MoveFn: "not-a-real-move-fn"}
	if _, err := Build(spec); err == nil {
		t.Fatalf("Build accepted an unknown moveFn name")
	}
}

func TestBuildRejectsNonPositiveDimensions(t *testing.T) {
	spec := Spec{Width: 0, Height: 3}
	if _, err := Build(spec); err == nil {
		t.Fatalf("Build accepted a non-positive width")
	}
}

func TestDumpProducesStableEntityOrderedJSON(t *testing.T) {
	spec := Spec{
		Width:  2,
		Height: 2,
		Entities: []Entity{
			{Position: &Position{X: 1, Y: 1}, Agent: true},
			{Position: &Position{X: 0, Y: 0}, Exit: true},
		},
	}
	s, err := Build(spec)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	data1, err := json.Marshal(Dump(s))
	if err != nil {
		t.Fatalf("Dump/Marshal failed: %v", err)
	}
	data2, err := json.Marshal(Dump(s))
	if err != nil {
		t.Fatalf("Dump/Marshal failed: %v", err)
	}
	if string(data1) != string(data2) {
		t.Fatalf("Dump is not deterministic across calls:\n%s\nvs\n%s", data1, data2)
	}
}
