package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/domain/trial"
)

func newTestEngine(t *testing.T, variance trial.VarianceMethod) *ComparisonEngine {
	t.Helper()
	eng, err := NewComparisonEngine(variance, trial.IntervalWilson, 0.5)
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}
	return eng
}

func TestCompute_FullBundle(t *testing.T) {
	eng := newTestEngine(t, trial.VarianceWalter)
	scenario := trial.TrialScenario{
		ControlSize:    1000,
		TestSize:       1000,
		ControlRiskPct: 3.0,
		TestRiskPct:    1.5,
		ConfidencePct:  95,
	}

	result, err := eng.Compute(scenario)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RelativeRisk.Ratio != 0.5 {
		t.Errorf("expected risk ratio 0.5, got %g", result.RelativeRisk.Ratio)
	}
	if result.Control.PointPct != 3.0 || result.Test.PointPct != 1.5 {
		t.Errorf("point estimates not carried through: %+v", result)
	}
	if result.Control.Interval.Lower > result.Control.Interval.Upper {
		t.Errorf("control interval reversed: %+v", result.Control.Interval)
	}

	if result.PValue == nil {
		t.Fatal("expected a p-value")
	}
	if math.Abs(*result.PValue-0.0268) > 5e-4 {
		t.Errorf("expected p ~= 0.0268, got %g", *result.PValue)
	}

	if result.CriticalAlpha == nil {
		t.Fatal("expected a critical alpha")
	}
	if math.Abs(*result.CriticalAlpha-0.03) > 1e-6 {
		t.Errorf("expected critical alpha 0.03, got %g", *result.CriticalAlpha)
	}

	// The two Wilson intervals share a band around 2.1%-2.5%.
	if result.Overlap == nil {
		t.Fatal("expected the group intervals to overlap")
	}

	if math.Abs(result.AdverseEffectThresholdPct-0.2991) > 1e-3 {
		t.Errorf("expected detectability threshold near 0.2991%%, got %g", result.AdverseEffectThresholdPct)
	}

	// The interval excludes 1 and the threshold is below the control risk.
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestCompute_WarnsWhenRatioIntervalContainsOne(t *testing.T) {
	eng := newTestEngine(t, trial.VarianceWalter)
	scenario := trial.TrialScenario{
		ControlSize:    1000,
		TestSize:       1000,
		ControlRiskPct: 3.0,
		TestRiskPct:    2.8,
		ConfidencePct:  95,
	}

	result, err := eng.Compute(scenario)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !hasWarning(result, trial.WarningRatioIntervalContainsOne) {
		t.Errorf("expected %s warning, got %v", trial.WarningRatioIntervalContainsOne, result.Warnings)
	}
	if result.CriticalAlpha != nil {
		t.Errorf("no significance boundary exists, critical alpha should be absent, got %g", *result.CriticalAlpha)
	}
}

func TestCompute_WarnsWhenThresholdAboveControlRisk(t *testing.T) {
	eng := newTestEngine(t, trial.VarianceWalter)
	scenario := trial.TrialScenario{
		ControlSize:    1000,
		TestSize:       1000,
		ControlRiskPct: 0.25, // below the ~0.3% detectability threshold
		TestRiskPct:    0.1,
		ConfidencePct:  95,
	}

	result, err := eng.Compute(scenario)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !hasWarning(result, trial.WarningThresholdAboveControlRisk) {
		t.Errorf("expected %s warning, got %v", trial.WarningThresholdAboveControlRisk, result.Warnings)
	}
}

func TestCompute_ZeroTestProportion(t *testing.T) {
	scenario := trial.TrialScenario{
		ControlSize:    1000,
		TestSize:       1000,
		ControlRiskPct: 3.0,
		TestRiskPct:    0,
		ConfidencePct:  95,
	}

	// Walter tolerates the zero: the bundle computes, with the p-value absent.
	walter := newTestEngine(t, trial.VarianceWalter)
	result, err := walter.Compute(scenario)
	if err != nil {
		t.Fatalf("unexpected error with walter: %v", err)
	}
	if result.PValue != nil {
		t.Errorf("p-value should be absent for a zero test proportion, got %g", *result.PValue)
	}
	if result.RelativeRisk.Ratio != 0 {
		t.Errorf("expected ratio 0, got %g", result.RelativeRisk.Ratio)
	}

	// Katz fails explicitly.
	katz := newTestEngine(t, trial.VarianceKatz)
	if _, err := katz.Compute(scenario); !core.IsUndefinedStatistic(err) {
		t.Fatalf("expected ErrUndefinedStatistic with katz, got %v", err)
	}
}

func TestCompute_RejectsInvalidScenarios(t *testing.T) {
	eng := newTestEngine(t, trial.VarianceWalter)

	cases := []struct {
		name     string
		scenario trial.TrialScenario
	}{
		{"zero control size", trial.TrialScenario{ControlSize: 0, TestSize: 1000, ControlRiskPct: 3, TestRiskPct: 1.5, ConfidencePct: 95}},
		{"zero test size", trial.TrialScenario{ControlSize: 1000, TestSize: 0, ControlRiskPct: 3, TestRiskPct: 1.5, ConfidencePct: 95}},
		{"zero control risk", trial.TrialScenario{ControlSize: 1000, TestSize: 1000, ControlRiskPct: 0, TestRiskPct: 1.5, ConfidencePct: 95}},
		{"negative test risk", trial.TrialScenario{ControlSize: 1000, TestSize: 1000, ControlRiskPct: 3, TestRiskPct: -1, ConfidencePct: 95}},
		{"confidence at 100", trial.TrialScenario{ControlSize: 1000, TestSize: 1000, ControlRiskPct: 3, TestRiskPct: 1.5, ConfidencePct: 100}},
	}

	for _, tc := range cases {
		if _, err := eng.Compute(tc.scenario); !core.IsInvalidScenario(err) {
			t.Errorf("%s: expected ErrInvalidScenario, got %v", tc.name, err)
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	eng := newTestEngine(t, trial.VarianceWalter)
	scenario := trial.TrialScenario{
		ControlSize:    1000,
		TestSize:       1000,
		ControlRiskPct: 3.0,
		TestRiskPct:    1.5,
		ConfidencePct:  95,
	}

	first, err := eng.Compute(scenario)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := eng.Compute(scenario)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat invocation differs:\n%+v\n%+v", first, second)
	}
}

func TestNewComparisonEngine_RejectsUnknownMethods(t *testing.T) {
	if _, err := NewComparisonEngine("median", trial.IntervalWilson, 0.5); !core.IsInvalidScenario(err) {
		t.Errorf("expected ErrInvalidScenario for unknown variance method, got %v", err)
	}
	if _, err := NewComparisonEngine(trial.VarianceKatz, "bootstrap", 0.5); !core.IsInvalidScenario(err) {
		t.Errorf("expected ErrInvalidScenario for unknown interval method, got %v", err)
	}
	if _, err := NewComparisonEngine(trial.VarianceKatz, trial.IntervalWilson, 0); !core.IsInvalidScenario(err) {
		t.Errorf("expected ErrInvalidScenario for zero step, got %v", err)
	}
}

func hasWarning(result *trial.ComparisonResult, code trial.WarningCode) bool {
	for _, w := range result.Warnings {
		if w == code {
			return true
		}
	}
	return false
}
