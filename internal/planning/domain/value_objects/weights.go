package value_objects

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeWeight = errors.New("scoring weight must be non-negative")
)

// ScoringWeights defines the relative importance of each value dimension
// in the composite score. Weights are applied multiplicatively before
// summation and division by job size.
type ScoringWeights struct {
	BusinessValue   float64
	TimeCriticality float64
	RiskReduction   float64
}

// DefaultScoringWeights returns an even weighting across dimensions.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		BusinessValue:   1.0,
		TimeCriticality: 1.0,
		RiskReduction:   1.0,
	}
}

// Validate checks that no weight is negative.
func (w ScoringWeights) Validate() error {
	if w.BusinessValue < 0 {
		return fmt.Errorf("business value: %w", ErrNegativeWeight)
	}
	if w.TimeCriticality < 0 {
		return fmt.Errorf("time criticality: %w", ErrNegativeWeight)
	}
	if w.RiskReduction < 0 {
		return fmt.Errorf("risk reduction: %w", ErrNegativeWeight)
	}
	return nil
}
