package config

import (
	"testing"

	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/domain/trial"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Engine.VarianceMethod != trial.VarianceWalter {
		t.Errorf("expected walter default, got %s", cfg.Engine.VarianceMethod)
	}
	if cfg.Engine.IntervalMethod != trial.IntervalWilson {
		t.Errorf("expected wilson default, got %s", cfg.Engine.IntervalMethod)
	}
	if cfg.Engine.SearchStepPct != 0.5 {
		t.Errorf("expected search step 0.5, got %g", cfg.Engine.SearchStepPct)
	}
	if err := cfg.Scenario.Default.Validate(); err != nil {
		t.Errorf("default scenario invalid: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LGC_VARIANCE_METHOD", "katz")
	t.Setenv("LGC_CONTROL_SIZE", "500")
	t.Setenv("LGC_SEARCH_STEP_PCT", "0.25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Engine.VarianceMethod != trial.VarianceKatz {
		t.Errorf("expected katz, got %s", cfg.Engine.VarianceMethod)
	}
	if cfg.Scenario.Default.ControlSize != 500 {
		t.Errorf("expected control size 500, got %d", cfg.Scenario.Default.ControlSize)
	}
	if cfg.Engine.SearchStepPct != 0.25 {
		t.Errorf("expected search step 0.25, got %g", cfg.Engine.SearchStepPct)
	}
}

func TestLoad_RejectsBadMethod(t *testing.T) {
	t.Setenv("LGC_VARIANCE_METHOD", "bayes")

	if _, err := Load(); !core.IsInvalidScenario(err) {
		t.Errorf("expected ErrInvalidScenario, got %v", err)
	}
}
