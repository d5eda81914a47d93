// Command gridctl replays a level file against an action script and prints
// the resulting telemetry and final state, the same "exercise the library
// end-to-end from a small CLI" role cmd/server plays for the teacher
// repository's internal/world.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	gridworld "github.com/rizkiarm/grid-universe-sub000"
	"github.com/rizkiarm/grid-universe-sub000/internal/level"
	"github.com/rizkiarm/grid-universe-sub000/logging"
	"github.com/rizkiarm/grid-universe-sub000/logging/sinks"
)

func main() {
	var levelPath, actionsPath string
	flag.StringVar(&levelPath, "level", "", "path to a level.Spec JSON file")
	flag.StringVar(&actionsPath, "actions", "", "path to a newline-separated action script")
	flag.Parse()

	if levelPath == "" {
		fmt.Fprintln(os.Stderr, "-level is required")
		os.Exit(1)
	}

	if err := run(levelPath, actionsPath); err != nil {
		log.Fatalf("gridctl: %v", err)
	}
}

func run(levelPath, actionsPath string) error {
	spec, err := readSpec(levelPath)
	if err != nil {
		return fmt.Errorf("read level: %w", err)
	}

	s, err := level.Build(spec)
	if err != nil {
		return fmt.Errorf("build level: %w", err)
	}

	actions, err := readActions(actionsPath)
	if err != nil {
		return fmt.Errorf("read actions: %w", err)
	}

	router, err := logging.NewRouter(
		logging.DefaultConfig(),
		logging.SystemClock{},
		nil,
		map[string]logging.Sink{"console": sinks.NewConsole(os.Stdout)},
	)
	if err != nil {
		return fmt.Errorf("start telemetry router: %w", err)
	}
	defer router.Close(context.Background())

	engine := gridworld.NewEngine(router)

	for i, act := range actions {
		s, err = engine.Step(context.Background(), s, act)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, act, err)
		}
		if s.IsTerminal() {
			break
		}
	}

	return printDump(s)
}

func readSpec(path string) (level.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return level.Spec{}, err
	}
	var spec level.Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return level.Spec{}, err
	}
	return spec, nil
}

func readActions(path string) ([]gridworld.Action, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var actions []gridworld.Action
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		act, err := parseAction(line)
		if err != nil {
			return nil, err
		}
		actions = append(actions, act)
	}
	return actions, scanner.Err()
}

func parseAction(name string) (gridworld.Action, error) {
	switch strings.ToLower(name) {
	case "up":
		return gridworld.MoveUp, nil
	case "down":
		return gridworld.MoveDown, nil
	case "left":
		return gridworld.MoveLeft, nil
	case "right":
		return gridworld.MoveRight, nil
	case "usekey":
		return gridworld.UseKey, nil
	case "pickup":
		return gridworld.PickUp, nil
	case "wait":
		return gridworld.Wait, nil
	default:
		return 0, fmt.Errorf("unknown action %q", name)
	}
}

func printDump(s gridworld.State) error {
	data, err := json.MarshalIndent(level.Dump(s), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dump: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
