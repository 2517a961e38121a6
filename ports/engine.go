package ports

import (
	"github.com/ghomem/lgc/domain/trial"
)

// ComparisonEngine is the single computation entry point exposed to the
// display/caller layer: one scenario in, one result bundle out. The engine is
// pure and synchronous, so implementations are safe for concurrent use.
type ComparisonEngine interface {
	Compute(scenario trial.TrialScenario) (*trial.ComparisonResult, error)
	VarianceMethod() trial.VarianceMethod
}
