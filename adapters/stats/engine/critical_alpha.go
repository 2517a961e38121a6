package engine

import (
	"github.com/ghomem/lgc/domain/core"
	"github.com/ghomem/lgc/domain/trial"
	"github.com/ghomem/lgc/internal/distributions"
)

// The search never raises the confidence level to or beyond this bound; the
// relative-risk interval keeps widening with confidence, so a boundary not
// found below it does not exist for practical purposes.
const maxSearchConfidencePct = 99.99

// CriticalAlpha finds the smallest significance level at which the observed
// relative risk is still significant, i.e. the complement of the highest
// confidence level whose interval excludes 1.
//
// Starting at the scenario's confidence level, the confidence is raised by
// stepPct (percentage points) and the relative-risk interval recomputed with
// the given variance method until the interval first contains 1; the answer
// is the complement of the last excluding level, as a fraction. Interval
// width is non-decreasing
// in confidence, so there is at most one crossing.
//
// Two failure modes surface as ErrSearchDidNotConverge: the interval already
// contains 1 at the starting confidence (the effect is not significant at any
// reachable level), and the interval still excludes 1 when the confidence
// bound is hit.
func CriticalAlpha(scenario trial.TrialScenario, method trial.VarianceMethod, stepPct float64) (float64, error) {
	if stepPct <= 0 {
		return 0, core.NewInvalidScenarioError("search step", "must be > 0")
	}

	dist := distributions.NewDistributions()

	containsOne := func(confidencePct float64) (bool, error) {
		z := dist.NormalISF((1 - confidencePct/100) / 2)
		rr, err := EstimateRelativeRisk(scenario.ControlRiskPct, scenario.TestRiskPct, scenario.ControlSize, scenario.TestSize, z, method)
		if err != nil {
			return false, err
		}
		return rr.Interval.Contains(1), nil
	}

	confidence := scenario.ConfidencePct
	inside, err := containsOne(confidence)
	if err != nil {
		return 0, err
	}
	if inside {
		return 0, core.ErrSearchDidNotConverge
	}

	for {
		next := confidence + stepPct
		if next >= maxSearchConfidencePct {
			return 0, core.ErrSearchDidNotConverge
		}
		// A step below the float resolution of the confidence makes no
		// progress; report no boundary instead of looping forever.
		if next == confidence {
			return 0, core.ErrSearchDidNotConverge
		}
		inside, err := containsOne(next)
		if err != nil {
			return 0, err
		}
		if inside {
			return 1 - confidence/100, nil
		}
		confidence = next
	}
}
