package trial

import (
	"fmt"

	"github.com/ghomem/lgc/domain/core"
)

// VarianceMethod selects the variance approximation for the log relative-risk.
// Katz et al, 1978 and Walter, 1975; Walter adds a continuity correction that
// tolerates a zero-event test group.
type VarianceMethod string

const (
	VarianceKatz   VarianceMethod = "katz"
	VarianceWalter VarianceMethod = "walter"
)

// Valid reports whether the method is one of the supported variants.
func (m VarianceMethod) Valid() bool {
	return m == VarianceKatz || m == VarianceWalter
}

// IntervalMethod selects the estimator for a single binomial proportion's
// confidence interval.
type IntervalMethod string

const (
	IntervalClopperPearson IntervalMethod = "clopper-pearson"
	IntervalWilson         IntervalMethod = "wilson"
	IntervalJeffreys       IntervalMethod = "jeffreys"
	IntervalNormal         IntervalMethod = "normal"
)

// Valid reports whether the method is one of the supported variants.
func (m IntervalMethod) Valid() bool {
	switch m {
	case IntervalClopperPearson, IntervalWilson, IntervalJeffreys, IntervalNormal:
		return true
	}
	return false
}

// TrialScenario describes one sizing scenario: two group sizes, two observed
// event proportions (percent) and a target confidence level (percent).
// INVARIANTS:
// - ControlSize, TestSize >= 1
// - ControlRiskPct in (0,100]: a zero-event control group makes relative risk undefined
// - TestRiskPct in [0,100]
// - ConfidencePct in (0,100)
type TrialScenario struct {
	ControlSize    int     `json:"control_size"`
	TestSize       int     `json:"test_size"`
	ControlRiskPct float64 `json:"control_risk_pct"`
	TestRiskPct    float64 `json:"test_risk_pct"`
	ConfidencePct  float64 `json:"confidence_pct"`
}

// Validate rejects invalid scenarios before any computation. Nothing is
// silently clamped.
func (s TrialScenario) Validate() error {
	if s.ControlSize < 1 {
		return core.NewInvalidScenarioError("control_size", fmt.Sprintf("must be >= 1, got %d", s.ControlSize))
	}
	if s.TestSize < 1 {
		return core.NewInvalidScenarioError("test_size", fmt.Sprintf("must be >= 1, got %d", s.TestSize))
	}
	if s.ControlRiskPct <= 0 || s.ControlRiskPct > 100 {
		return core.NewInvalidScenarioError("control_risk_pct", fmt.Sprintf("must be in (0,100], got %g", s.ControlRiskPct))
	}
	if s.TestRiskPct < 0 || s.TestRiskPct > 100 {
		return core.NewInvalidScenarioError("test_risk_pct", fmt.Sprintf("must be in [0,100], got %g", s.TestRiskPct))
	}
	if s.ConfidencePct <= 0 || s.ConfidencePct >= 100 {
		return core.NewInvalidScenarioError("confidence_pct", fmt.Sprintf("must be in (0,100), got %g", s.ConfidencePct))
	}
	return nil
}

// Interval is a closed real interval with Lower <= Upper.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Width returns Upper - Lower.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// Contains reports whether x lies inside the interval, endpoints included.
func (iv Interval) Contains(x float64) bool {
	return iv.Lower <= x && x <= iv.Upper
}

// RiskEstimate is a group's observed event proportion (percent) plus its
// confidence interval on the same scale.
type RiskEstimate struct {
	PointPct float64  `json:"point_pct"`
	Interval Interval `json:"interval"`
}

// RelativeRiskEstimate is the test/control risk ratio with its log-scale
// multiplicative confidence interval. The point estimate is always the plain
// ratio of the observed proportions; only the interval depends on Method.
type RelativeRiskEstimate struct {
	Ratio    float64        `json:"ratio"`
	Interval Interval       `json:"interval"`
	Method   VarianceMethod `json:"method"`
}

// WarningCode represents structured advisory warning types
type WarningCode string

const (
	// The relative-risk confidence interval contains 1: the observed
	// difference is not significant at the target confidence level.
	WarningRatioIntervalContainsOne WarningCode = "RATIO_CI_CONTAINS_ONE"
	// The adverse-effect detectability threshold for the test group is above
	// the risk level observed in the control group.
	WarningThresholdAboveControlRisk WarningCode = "THRESHOLD_ABOVE_CONTROL_RISK"
)

// ComparisonResult is the full output bundle for one scenario. Constructed
// fresh per computation, never mutated.
//
// PValue is absent when the test-group proportion is zero (the log-ratio test
// statistic is undefined there). CriticalAlpha is absent when the boundary
// search found no confidence level at which the relative-risk interval
// excludes 1. Overlap is absent when the two group intervals are disjoint.
type ComparisonResult struct {
	Control                   RiskEstimate         `json:"control"`
	Test                      RiskEstimate         `json:"test"`
	RelativeRisk              RelativeRiskEstimate `json:"relative_risk"`
	PValue                    *float64             `json:"p_value,omitempty"`
	CriticalAlpha             *float64             `json:"critical_alpha,omitempty"`
	Overlap                   *Interval            `json:"overlap,omitempty"`
	AdverseEffectThresholdPct float64              `json:"adverse_effect_threshold_pct"`
	Warnings                  []WarningCode        `json:"warnings,omitempty"`
}
