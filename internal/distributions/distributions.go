package distributions

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// StatisticalDistributions provides unified access to the distribution
// functions the engine consumes, so CDF/quantile calls are not fragmented
// across the computation code.
type StatisticalDistributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *StatisticalDistributions {
	return &StatisticalDistributions{}
}

// NormalISF computes the inverse survival function of the standard normal:
// the z for which P(Z > z) = p. Returns NaN outside (0,1).
func (sd *StatisticalDistributions) NormalISF(p float64) float64 {
	if p <= 0 || p >= 1 {
		return math.NaN()
	}
	return distuv.UnitNormal.Quantile(1 - p)
}

// NormalCDF computes the cumulative distribution function of a normal with
// the given mean and standard deviation.
func (sd *StatisticalDistributions) NormalCDF(x, mean, stdev float64) float64 {
	dist := distuv.Normal{Mu: mean, Sigma: stdev}
	return dist.CDF(x)
}

// NormalSF computes the survival function 1 - CDF for the standard normal.
func (sd *StatisticalDistributions) NormalSF(x float64) float64 {
	return distuv.UnitNormal.Survival(x)
}

// BetaQuantile computes the quantile function of a Beta(alpha, beta)
// distribution. Used for the exact (Clopper-Pearson) and Jeffreys binomial
// interval bounds.
func (sd *StatisticalDistributions) BetaQuantile(p, alpha, beta float64) float64 {
	if alpha <= 0 || beta <= 0 {
		return math.NaN()
	}
	dist := distuv.Beta{Alpha: alpha, Beta: beta}
	return dist.Quantile(p)
}
