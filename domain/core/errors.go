package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Scenario validation errors
	ErrInvalidScenario = errors.New("invalid trial scenario")

	// Estimation errors
	ErrUndefinedStatistic = errors.New("statistic undefined for input")
	ErrNotComputable      = errors.New("value not computable")

	// Search errors
	ErrSearchDidNotConverge = errors.New("critical confidence search did not converge")
)

// Error constructors with context
func NewInvalidScenarioError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidScenario, field, reason)
}

func NewUndefinedStatisticError(statistic string, reason string) error {
	return fmt.Errorf("%w: %s (%s)", ErrUndefinedStatistic, statistic, reason)
}

func NewNotComputableError(value string, reason string) error {
	return fmt.Errorf("%w: %s (%s)", ErrNotComputable, value, reason)
}

// Error checking helpers
func IsInvalidScenario(err error) bool {
	return errors.Is(err, ErrInvalidScenario)
}

func IsUndefinedStatistic(err error) bool {
	return errors.Is(err, ErrUndefinedStatistic)
}

func IsNotComputable(err error) bool {
	return errors.Is(err, ErrNotComputable)
}

func IsSearchDidNotConverge(err error) bool {
	return errors.Is(err, ErrSearchDidNotConverge)
}
