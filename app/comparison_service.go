package app

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/ghomem/lgc/adapters/stats/engine"
	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/domain/trial"
	"github.com/ghomem/lgc/ports"
)

// Warning texts shown alongside the numeric results.
const (
	warningRatioContainsOneText   = "The confidence interval for Relative Risk contains 1."
	warningThresholdAboveRiskText = "The adverse effects detectability threshold for the test group is above the risk level for the control group."
)

// Summary is the display-ready rendering of a ComparisonResult: each line in
// the "point (lower-upper)" form with two-decimal rounding.
type Summary struct {
	ControlRisk    string   `json:"control_risk"`
	TestRisk       string   `json:"test_risk"`
	RiskRatio      string   `json:"risk_ratio"`
	PValue         string   `json:"p_value,omitempty"`
	CriticalAlpha  string   `json:"critical_alpha,omitempty"`
	AdverseEffects string   `json:"adverse_effects"`
	OverlapPct     string   `json:"overlap_pct,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

// ComparisonService wraps the computation engine with result presentation
// for the display layer.
type ComparisonService struct {
	engine ports.ComparisonEngine
}

// NewComparisonService creates a new comparison service
func NewComparisonService(eng ports.ComparisonEngine) *ComparisonService {
	return &ComparisonService{engine: eng}
}

// Compare evaluates one scenario and returns the raw result bundle.
func (s *ComparisonService) Compare(scenario trial.TrialScenario) (*trial.ComparisonResult, error) {
	return s.engine.Compute(scenario)
}

// Summarize evaluates one scenario and renders it for display.
func (s *ComparisonService) Summarize(scenario trial.TrialScenario) (*Summary, error) {
	result, err := s.engine.Compute(scenario)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ControlRisk:    riskLine("Risk on control group (%)", result.Control),
		TestRisk:       riskLine("Risk on test group (%)", result.Test),
		RiskRatio:      fmt.Sprintf("Risk ratio : %v (%v-%v)", round2(result.RelativeRisk.Ratio), round2(result.RelativeRisk.Interval.Lower), round2(result.RelativeRisk.Interval.Upper)),
		AdverseEffects: fmt.Sprintf("Adverse effects detectability threshold (%%): %v", round2(result.AdverseEffectThresholdPct)),
	}

	if result.PValue != nil {
		summary.PValue = fmt.Sprintf("p-value for the risk ratio : %.4f", *result.PValue)
	}
	if result.CriticalAlpha != nil {
		summary.CriticalAlpha = fmt.Sprintf("Critical significance level : %.4f", *result.CriticalAlpha)
	}
	if result.Overlap != nil {
		pct, err := engine.OverlapPercent(*result.Overlap, result.Control.Interval)
		switch {
		case err == nil:
			summary.OverlapPct = fmt.Sprintf("Overlap of the group intervals (%% of control) : %v", round2(pct))
		case core.IsNotComputable(err):
			// Zero-width control interval: leave the line out.
		default:
			return nil, err
		}
	}

	for _, code := range result.Warnings {
		switch code {
		case trial.WarningRatioIntervalContainsOne:
			summary.Warnings = append(summary.Warnings, warningRatioContainsOneText)
		case trial.WarningThresholdAboveControlRisk:
			summary.Warnings = append(summary.Warnings, warningThresholdAboveRiskText)
		}
	}

	return summary, nil
}

func riskLine(title string, estimate trial.RiskEstimate) string {
	return fmt.Sprintf("%s : %v (%v-%v)", title, round2(estimate.PointPct), round2(estimate.Interval.Lower), round2(estimate.Interval.Upper))
}

func round2(v float64) float64 {
	rounded, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return rounded
}
