package engine

import (
	"fmt"
	"math"

	"github.com/ghomem/lgc/domain/core"
)

// DetectabilityThresholdPct computes the minimum true event rate (percent)
// such that, at the given test-group size, at least one event is observed
// with the stated confidence. Rates below the threshold can slip through the
// trial entirely.
func DetectabilityThresholdPct(testSize int, confidencePct float64) (float64, error) {
	if testSize < 1 {
		return 0, core.NewInvalidScenarioError("test_size", fmt.Sprintf("must be >= 1, got %d", testSize))
	}
	if confidencePct <= 0 || confidencePct >= 100 {
		return 0, core.NewInvalidScenarioError("confidence_pct", fmt.Sprintf("must be in (0,100), got %g", confidencePct))
	}

	confidence := confidencePct / 100
	return (1 - math.Pow(1-confidence, 1/float64(testSize))) * 100, nil
}
