package gridworld

import "testing"

func TestDefaultConfigIsAlreadyNormalized(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Normalized(); got != cfg {
		t.Fatalf("Normalized() changed an already-default Config: %+v vs %+v", got, cfg)
	}
}

func TestNormalizedFillsBlankFields(t *testing.T) {
	got := Config{}.Normalized()
	want := DefaultConfig()
	if got != want {
		t.Fatalf("Normalized() of a zero Config = %+v, want %+v", got, want)
	}
}

func TestNormalizedClampsNonPositiveDimensions(t *testing.T) {
	got := Config{Width: -1, Height: 0, Seed: "s", MoveFn: "default", ObjectiveFn: "default"}.Normalized()
	if got.Width != DefaultWidth || got.Height != DefaultHeight {
		t.Fatalf("Normalized() = %+v, want Width=%d Height=%d", got, DefaultWidth, DefaultHeight)
	}
}

func TestBuildReturnsPopulatedState(t *testing.T) {
	s, err := DefaultConfig().Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if s.Width != DefaultWidth || s.Height != DefaultHeight {
		t.Fatalf("Build state dims = %dx%d, want %dx%d", s.Width, s.Height, DefaultWidth, DefaultHeight)
	}
	if s.Seed != DefaultSeed {
		t.Fatalf("Build state seed = %q, want %q", s.Seed, DefaultSeed)
	}
}

func TestBuildRejectsUnknownMoveFn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MoveFn = "not-a-real-move-fn"
	_, err := cfg.Build()
	if err == nil {
		t.Fatalf("Build accepted an unknown moveFn name")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("Build error = %T, want *ConfigurationError", err)
	}
}

func TestBuildRejectsUnknownObjectiveFn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ObjectiveFn = "not-a-real-objective-fn"
	_, err := cfg.Build()
	if err == nil {
		t.Fatalf("Build accepted an unknown objectiveFn name")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("Build error = %T, want *ConfigurationError", err)
	}
}
