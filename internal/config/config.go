package config

import (
	"os"
	"strconv"

	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/domain/trial"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Engine   EngineConfig
	Scenario ScenarioConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// EngineConfig holds the method selection for the computation engine
type EngineConfig struct {
	VarianceMethod trial.VarianceMethod
	IntervalMethod trial.IntervalMethod
	// Step of the critical-confidence search, in percentage points. Matches
	// the granularity of the confidence input.
	SearchStepPct float64
}

// ScenarioConfig holds the default scenario and the accepted input ranges
// presented to callers.
type ScenarioConfig struct {
	Default trial.TrialScenario
	Limits  ScenarioLimits
}

// ScenarioLimits bound the interactive inputs.
type ScenarioLimits struct {
	GroupSizeMin      int     `json:"group_size_min"`
	GroupSizeMax      int     `json:"group_size_max"`
	ControlRiskMinPct float64 `json:"control_risk_min_pct"`
	RiskMaxPct        float64 `json:"risk_max_pct"`
	ConfidenceMinPct  float64 `json:"confidence_min_pct"`
	ConfidenceMaxPct  float64 `json:"confidence_max_pct"`
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("LGC_PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Engine: EngineConfig{
			VarianceMethod: trial.VarianceMethod(getEnvOrDefault("LGC_VARIANCE_METHOD", string(trial.VarianceWalter))),
			IntervalMethod: trial.IntervalMethod(getEnvOrDefault("LGC_INTERVAL_METHOD", string(trial.IntervalWilson))),
			SearchStepPct:  getEnvFloatOrDefault("LGC_SEARCH_STEP_PCT", 0.5),
		},
		Scenario: ScenarioConfig{
			Default: trial.TrialScenario{
				ControlSize:    getEnvIntOrDefault("LGC_CONTROL_SIZE", 1000),
				TestSize:       getEnvIntOrDefault("LGC_TEST_SIZE", 1000),
				ControlRiskPct: getEnvFloatOrDefault("LGC_CONTROL_RISK_PCT", 5),
				TestRiskPct:    getEnvFloatOrDefault("LGC_TEST_RISK_PCT", 2),
				ConfidencePct:  getEnvFloatOrDefault("LGC_CONFIDENCE_PCT", 95),
			},
			Limits: ScenarioLimits{
				GroupSizeMin:      50,
				GroupSizeMax:      25000,
				ControlRiskMinPct: 0.25,
				RiskMaxPct:        100,
				ConfidenceMinPct:  90,
				ConfidenceMaxPct:  99,
			},
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if !cfg.Engine.VarianceMethod.Valid() {
		return core.NewInvalidScenarioError("LGC_VARIANCE_METHOD", string(cfg.Engine.VarianceMethod))
	}
	if !cfg.Engine.IntervalMethod.Valid() {
		return core.NewInvalidScenarioError("LGC_INTERVAL_METHOD", string(cfg.Engine.IntervalMethod))
	}
	if cfg.Engine.SearchStepPct <= 0 {
		return core.NewInvalidScenarioError("LGC_SEARCH_STEP_PCT", "must be > 0")
	}
	return cfg.Scenario.Default.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
