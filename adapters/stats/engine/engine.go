// Package engine turns one trial scenario into the full set of derived
// comparison statistics: per-group confidence intervals, the relative-risk
// estimate, its p-value, the critical significance level, the interval
// overlap and the adverse-effect detectability threshold. Every entry point
// is a deterministic, side-effect-free function of its inputs, so arbitrarily
// many scenario evaluations may run in parallel with no coordination.
package engine

import (
	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/domain/trial"
	"github.com/ghomem/lgc/internal/binomial"
	"github.com/ghomem/lgc/internal/distributions"
)

// ComparisonEngine computes ComparisonResult bundles. The method selectors
// and the critical-alpha search step are fixed at construction; the scenario
// carries everything else.
type ComparisonEngine struct {
	dist           *distributions.StatisticalDistributions
	varianceMethod trial.VarianceMethod
	intervalMethod trial.IntervalMethod
	searchStepPct  float64
}

// NewComparisonEngine creates an engine for the given method selection.
func NewComparisonEngine(varianceMethod trial.VarianceMethod, intervalMethod trial.IntervalMethod, searchStepPct float64) (*ComparisonEngine, error) {
	if !varianceMethod.Valid() {
		return nil, core.NewInvalidScenarioError("variance method", string(varianceMethod))
	}
	if !intervalMethod.Valid() {
		return nil, core.NewInvalidScenarioError("interval method", string(intervalMethod))
	}
	if searchStepPct <= 0 {
		return nil, core.NewInvalidScenarioError("search step", "must be > 0")
	}
	return &ComparisonEngine{
		dist:           distributions.NewDistributions(),
		varianceMethod: varianceMethod,
		intervalMethod: intervalMethod,
		searchStepPct:  searchStepPct,
	}, nil
}

// VarianceMethod returns the configured variance method.
func (e *ComparisonEngine) VarianceMethod() trial.VarianceMethod {
	return e.varianceMethod
}

// EstimateGroupRisk computes one group's risk estimate: the observed
// proportion (percent) plus its binomial confidence interval, delegated to
// the interval collaborator on the [0,1] scale and mapped back to percent.
func (e *ComparisonEngine) EstimateGroupRisk(riskPct float64, size int, z float64) (trial.RiskEstimate, error) {
	lower, upper, err := binomial.ConfidenceInterval(e.dist, riskPct/100, size, z, e.intervalMethod)
	if err != nil {
		return trial.RiskEstimate{}, err
	}
	return trial.RiskEstimate{
		PointPct: riskPct,
		Interval: trial.Interval{Lower: lower * 100, Upper: upper * 100},
	}, nil
}

// Compute evaluates the full comparison bundle for one scenario.
//
// The p-value is omitted when the test-group proportion is zero, where the
// log-ratio statistic is undefined. A critical-alpha search that finds no
// boundary (the relative-risk interval contains 1 at every reachable
// confidence level, or never contains it) leaves CriticalAlpha absent rather
// than failing the whole bundle; any other error aborts the computation.
func (e *ComparisonEngine) Compute(scenario trial.TrialScenario) (*trial.ComparisonResult, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	z := e.dist.NormalISF((1 - scenario.ConfidencePct/100) / 2)

	control, err := e.EstimateGroupRisk(scenario.ControlRiskPct, scenario.ControlSize, z)
	if err != nil {
		return nil, err
	}
	test, err := e.EstimateGroupRisk(scenario.TestRiskPct, scenario.TestSize, z)
	if err != nil {
		return nil, err
	}

	relativeRisk, err := EstimateRelativeRisk(scenario.ControlRiskPct, scenario.TestRiskPct, scenario.ControlSize, scenario.TestSize, z, e.varianceMethod)
	if err != nil {
		return nil, err
	}

	var pValue *float64
	if scenario.TestRiskPct > 0 {
		p, err := PValueForRatio(scenario.ControlRiskPct, scenario.TestRiskPct, scenario.ControlSize, scenario.TestSize)
		if err != nil {
			return nil, err
		}
		pValue = &p
	}

	var criticalAlpha *float64
	alpha, err := CriticalAlpha(scenario, e.varianceMethod, e.searchStepPct)
	switch {
	case err == nil:
		criticalAlpha = &alpha
	case core.IsSearchDidNotConverge(err):
		// No boundary in range: leave the field absent.
	default:
		return nil, err
	}

	threshold, err := DetectabilityThresholdPct(scenario.TestSize, scenario.ConfidencePct)
	if err != nil {
		return nil, err
	}

	result := &trial.ComparisonResult{
		Control:                   control,
		Test:                      test,
		RelativeRisk:              relativeRisk,
		PValue:                    pValue,
		CriticalAlpha:             criticalAlpha,
		Overlap:                   Overlap(control.Interval, test.Interval),
		AdverseEffectThresholdPct: threshold,
	}

	if relativeRisk.Interval.Contains(1) {
		result.Warnings = append(result.Warnings, trial.WarningRatioIntervalContainsOne)
	}
	if threshold > scenario.ControlRiskPct {
		result.Warnings = append(result.Warnings, trial.WarningThresholdAboveControlRisk)
	}

	return result, nil
}
