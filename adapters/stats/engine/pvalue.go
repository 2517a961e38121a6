package engine

import (
	"math"

	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/internal/distributions"
)

// Constants of the empirical tail correction used by PValueFromRatioCI
// (Altman & Bland, BMJ 2011;343:d2304).
const (
	altmanLinearCoeff    = -0.717
	altmanQuadraticCoeff = -0.416
)

// PValueForRatio computes the two-sided p-value for the null hypothesis that
// the true relative risk is 1. Under the null, ln(observed ratio) is modelled
// as normal with mean 0 and standard deviation derived from the per-group
// binomial variances on the log scale. Proportions are percentages.
func PValueForRatio(controlRiskPct, testRiskPct float64, controlSize, testSize int) (float64, error) {
	p0 := controlRiskPct / 100
	p1 := testRiskPct / 100
	if p0 <= 0 || p0 > 1 {
		return 0, core.NewUndefinedStatisticError("p-value", "control proportion must be in (0,1]")
	}
	if p1 <= 0 || p1 > 1 {
		return 0, core.NewUndefinedStatisticError("p-value", "test proportion must be in (0,1]")
	}

	stdev := math.Sqrt((1/p0-1)/float64(controlSize) + (1/p1-1)/float64(testSize))
	logRatio := math.Log(p1 / p0)

	dist := distributions.NewDistributions()
	if stdev == 0 {
		// Degenerate scenario: both proportions are 100%, the observed ratio
		// is exactly 1 and carries no evidence against the null.
		return 1, nil
	}
	cdf := dist.NormalCDF(logRatio, 0, stdev)

	// Twice the smaller tail mass, in [0,1] by construction.
	return 2 * math.Min(cdf, 1-cdf), nil
}

// PValueFromRatioCI reconstructs an approximate p-value from a reported
// relative-risk interval and its confidence level. It is an independent
// sanity check of PValueForRatio, valid only for reasonably large groups
// (around 60 or more per arm), and is not the primary estimate.
func PValueFromRatioCI(ratio, lower, upper, confidence float64) (float64, error) {
	if ratio <= 0 || lower <= 0 || upper <= 0 {
		return 0, core.NewUndefinedStatisticError("p-value cross-check", "ratio and bounds must be > 0")
	}
	if lower > upper {
		return 0, core.NewUndefinedStatisticError("p-value cross-check", "interval bounds are reversed")
	}
	if confidence <= 0 || confidence >= 1 {
		return 0, core.NewUndefinedStatisticError("p-value cross-check", "confidence must be in (0,1)")
	}

	dist := distributions.NewDistributions()
	z := dist.NormalISF((1 - confidence) / 2)

	se := (math.Log(upper) - math.Log(lower)) / (2 * z)
	if se == 0 {
		return 0, core.NewUndefinedStatisticError("p-value cross-check", "interval has zero width on the log scale")
	}
	zStat := math.Abs(math.Log(ratio) / se)

	p := math.Exp(altmanLinearCoeff*zStat + altmanQuadraticCoeff*zStat*zStat)
	return math.Min(p, 1), nil
}
