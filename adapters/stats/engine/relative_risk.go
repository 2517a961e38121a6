package engine

import (
	"fmt"
	"math"

	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/domain/trial"
)

// EstimateRelativeRisk computes the test/control risk ratio and its log-scale
// confidence interval. Proportions are percentages, z is the two-sided
// critical value for the target confidence level.
//
// Both methods produce an interval of the form phi * exp(+-z*par); they differ
// in phi and in the variance term par. Katz is the simple estimator and is
// undefined when either proportion is zero; Walter applies a 0.5 continuity
// correction to the event counts and tolerates a zero test-group proportion.
func EstimateRelativeRisk(controlRiskPct, testRiskPct float64, controlSize, testSize int, z float64, method trial.VarianceMethod) (trial.RelativeRiskEstimate, error) {
	if controlRiskPct <= 0 {
		return trial.RelativeRiskEstimate{}, core.NewUndefinedStatisticError("relative risk", "control proportion must be > 0")
	}

	p0 := controlRiskPct / 100
	p1 := testRiskPct / 100
	n0 := float64(controlSize)
	n1 := float64(testSize)

	var phi, par float64
	switch method {
	case trial.VarianceKatz:
		if p1 == 0 {
			return trial.RelativeRiskEstimate{}, core.NewUndefinedStatisticError("katz variance", "test proportion is zero; select the walter method")
		}
		phi = p1 / p0
		par = math.Sqrt((1-p0)/(n0*p0) + (1-p1)/(n1*p1))
	case trial.VarianceWalter:
		x0 := p0 * n0
		x1 := p1 * n1
		phi = math.Exp(math.Log((x1+0.5)/(n1+0.5)) - math.Log((x0+0.5)/(n0+0.5)))
		par = math.Sqrt(1/(x1+0.5) - 1/(n1+0.5) + 1/(x0+0.5) - 1/(n0+0.5))
	default:
		return trial.RelativeRiskEstimate{}, core.NewUndefinedStatisticError("relative risk", fmt.Sprintf("unsupported variance method %q", method))
	}

	// The point estimate is the plain observed ratio regardless of method;
	// Walter's phi only shapes the interval.
	return trial.RelativeRiskEstimate{
		Ratio: p1 / p0,
		Interval: trial.Interval{
			Lower: phi * math.Exp(-z*par),
			Upper: phi * math.Exp(+z*par),
		},
		Method: method,
	}, nil
}
