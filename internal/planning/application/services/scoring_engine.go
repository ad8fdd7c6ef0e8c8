// Package services contains the planning pipeline: scoring, ordering,
// constraint application, and recommendation synthesis. All services are
// stateless aside from immutable configuration, so concurrent use is safe.
package services

import (
	"log/slog"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

// ScoringEngine computes composite WSJF scores from the value dimensions.
type ScoringEngine struct {
	weights value_objects.ScoringWeights
	logger  *slog.Logger
}

// NewScoringEngine creates a new engine with the given weights.
func NewScoringEngine(weights value_objects.ScoringWeights, logger *slog.Logger) *ScoringEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoringEngine{weights: weights, logger: logger}
}

// Weights returns the engine's weight configuration.
func (e *ScoringEngine) Weights() value_objects.ScoringWeights {
	return e.weights
}

// Score computes the composite score for a single set of value dimensions.
// A job size of zero or less yields a zero score rather than an error: the
// item is still plannable, it just cannot be ranked by value density.
func (e *ScoringEngine) Score(businessValue, timeCriticality, riskReduction, jobSize float64) float64 {
	if jobSize <= 0 {
		e.logger.Warn("job size must be positive, assigning zero score",
			"job_size", jobSize,
		)
		return 0
	}

	return (businessValue*e.weights.BusinessValue +
		timeCriticality*e.weights.TimeCriticality +
		riskReduction*e.weights.RiskReduction) / jobSize
}

// ScoreItem returns a copy of the item with its derived fields populated.
func (e *ScoringEngine) ScoreItem(item workitem.ScoredWorkItem) workitem.ScoredWorkItem {
	score := e.Score(item.BusinessValue, item.TimeCriticality, item.RiskReduction, item.JobSize)

	item.Score = score
	item.Tier = value_objects.TierForScore(score)
	item.EstimatedEffort = item.JobSize
	return item
}

// ScoreItems scores every item in the input, returning a new slice.
func (e *ScoringEngine) ScoreItems(items []workitem.ScoredWorkItem) []workitem.ScoredWorkItem {
	scored := make([]workitem.ScoredWorkItem, len(items))
	for i, item := range items {
		scored[i] = e.ScoreItem(item)
	}
	return scored
}
