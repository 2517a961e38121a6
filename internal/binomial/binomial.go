// Package binomial estimates confidence intervals for a single binomial
// proportion. It is the interval collaborator behind the per-group risk
// estimates: a closed one-shot computation with no internal state.
package binomial

import (
	"fmt"
	"math"

	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/domain/trial"
	"github.com/ghomem/lgc/internal/distributions"
)

// ConfidenceInterval computes (lower, upper) bounds for a binomial proportion
// observed on n trials, at the two-sided critical value z, using the selected
// estimator. Bounds are on the [0,1] scale of the input proportion. The
// caller supplies the distribution set; the package holds no state of its own.
func ConfidenceInterval(dist *distributions.StatisticalDistributions, proportion float64, n int, z float64, method trial.IntervalMethod) (float64, float64, error) {
	if n < 1 {
		return 0, 0, core.NewInvalidScenarioError("sample size", fmt.Sprintf("must be >= 1, got %d", n))
	}
	if proportion < 0 || proportion > 1 {
		return 0, 0, core.NewInvalidScenarioError("proportion", fmt.Sprintf("must be in [0,1], got %g", proportion))
	}
	if z <= 0 || math.IsInf(z, 0) || math.IsNaN(z) {
		return 0, 0, core.NewInvalidScenarioError("critical value", fmt.Sprintf("must be a positive finite real, got %g", z))
	}

	switch method {
	case trial.IntervalWilson:
		lo, hi := wilson(proportion, float64(n), z)
		return lo, hi, nil
	case trial.IntervalNormal:
		lo, hi := normalApprox(proportion, float64(n), z)
		return lo, hi, nil
	case trial.IntervalClopperPearson:
		lo, hi := clopperPearson(dist, proportion, float64(n), z)
		return lo, hi, nil
	case trial.IntervalJeffreys:
		lo, hi := jeffreys(dist, proportion, float64(n), z)
		return lo, hi, nil
	default:
		return 0, 0, core.NewInvalidScenarioError("interval method", fmt.Sprintf("unsupported method %q", method))
	}
}

// wilson computes the Wilson score interval. It behaves well for small n and
// proportions near 0 or 1, where the normal approximation degenerates.
func wilson(p, n, z float64) (float64, float64) {
	z2 := z * z
	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	half := z * math.Sqrt(p*(1-p)/n+z2/(4*n*n)) / denom
	return clamp01(center - half), clamp01(center + half)
}

// normalApprox computes the Wald interval p +- z*sqrt(p(1-p)/n).
func normalApprox(p, n, z float64) (float64, float64) {
	half := z * math.Sqrt(p*(1-p)/n)
	return clamp01(p - half), clamp01(p + half)
}

// clopperPearson computes the exact interval from Beta quantiles. The event
// count x = p*n is kept fractional: the scenario proportions come from a
// continuous input scale, and the Beta formulation accepts non-integer counts.
func clopperPearson(dist *distributions.StatisticalDistributions, p, n, z float64) (float64, float64) {
	alphaHalf := dist.NormalSF(z)
	x := p * n

	lower := 0.0
	if x > 0 {
		lower = dist.BetaQuantile(alphaHalf, x, n-x+1)
	}
	upper := 1.0
	if x < n {
		upper = dist.BetaQuantile(1-alphaHalf, x+1, n-x)
	}
	return lower, upper
}

// jeffreys computes the equal-tailed Bayesian interval under the Jeffreys
// prior Beta(1/2, 1/2), with the conventional endpoint fixes at x=0 and x=n.
func jeffreys(dist *distributions.StatisticalDistributions, p, n, z float64) (float64, float64) {
	alphaHalf := dist.NormalSF(z)
	x := p * n

	lower := 0.0
	if x > 0 {
		lower = dist.BetaQuantile(alphaHalf, x+0.5, n-x+0.5)
	}
	upper := 1.0
	if x < n {
		upper = dist.BetaQuantile(1-alphaHalf, x+0.5, n-x+0.5)
	}
	return lower, upper
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
