package services

import (
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

const (
	prioritizeScoreThreshold = 6.0
	prioritizeSizeThreshold  = 3.0

	splitScoreThreshold = 5.0
	splitSizeThreshold  = 8.0

	delayScoreThreshold = 2.0
	delaySizeThreshold  = 5.0

	combineSizeThreshold       = 2.0
	combineSimilarityThreshold = 0.7
)

// RecommendationEngine derives actionable recommendations from a scored
// backlog. Each rule is independent, so a single item can appear in more
// than one recommendation.
type RecommendationEngine struct {
	logger *slog.Logger
}

// NewRecommendationEngine creates a new engine.
func NewRecommendationEngine(logger *slog.Logger) *RecommendationEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecommendationEngine{logger: logger}
}

// Synthesize runs every rule against the items and returns the combined
// recommendations. Output order is prioritize, split, delay, combine.
func (e *RecommendationEngine) Synthesize(items []workitem.ScoredWorkItem) []workitem.Recommendation {
	recommendations := make([]workitem.Recommendation, 0)

	if rec, ok := e.prioritizeRule(items); ok {
		recommendations = append(recommendations, rec)
	}
	if rec, ok := e.splitRule(items); ok {
		recommendations = append(recommendations, rec)
	}
	if rec, ok := e.delayRule(items); ok {
		recommendations = append(recommendations, rec)
	}
	recommendations = append(recommendations, e.combineRule(items)...)

	e.logger.Debug("recommendations synthesized",
		slog.Int("item_count", len(items)),
		slog.Int("recommendation_count", len(recommendations)),
	)

	return recommendations
}

// prioritizeRule flags high-value quick wins: items scoring above 6 with a
// job size of at most 3.
func (e *RecommendationEngine) prioritizeRule(items []workitem.ScoredWorkItem) (workitem.Recommendation, bool) {
	ids := make([]string, 0)
	for _, item := range items {
		if item.Score > prioritizeScoreThreshold && item.JobSize <= prioritizeSizeThreshold {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return workitem.Recommendation{}, false
	}

	return workitem.Recommendation{
		Type:       workitem.RecommendationPrioritize,
		ItemIDs:    ids,
		Rationale:  fmt.Sprintf("%d high-value, low-effort items (score > %.0f, size <= %.0f) should be pulled forward", len(ids), prioritizeScoreThreshold, prioritizeSizeThreshold),
		Impact:     "Delivers the most value per unit of effort early in the cycle",
		Confidence: 0.9,
	}, true
}

// splitRule flags valuable but oversized items that should be broken down
// before they enter a cycle.
func (e *RecommendationEngine) splitRule(items []workitem.ScoredWorkItem) (workitem.Recommendation, bool) {
	ids := make([]string, 0)
	for _, item := range items {
		if item.Score > splitScoreThreshold && item.JobSize > splitSizeThreshold {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return workitem.Recommendation{}, false
	}

	return workitem.Recommendation{
		Type:       workitem.RecommendationSplit,
		ItemIDs:    ids,
		Rationale:  fmt.Sprintf("%d valuable items (score > %.0f) exceed size %.0f and should be decomposed", len(ids), splitScoreThreshold, splitSizeThreshold),
		Impact:     "Smaller slices ship value sooner and reduce delivery risk",
		Confidence: 0.7,
	}, true
}

// delayRule flags low-value, high-effort items that are poor candidates for
// the upcoming cycle.
func (e *RecommendationEngine) delayRule(items []workitem.ScoredWorkItem) (workitem.Recommendation, bool) {
	ids := make([]string, 0)
	for _, item := range items {
		if item.Score < delayScoreThreshold && item.JobSize > delaySizeThreshold {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return workitem.Recommendation{}, false
	}

	return workitem.Recommendation{
		Type:       workitem.RecommendationDelay,
		ItemIDs:    ids,
		Rationale:  fmt.Sprintf("%d low-value items (score < %.0f) carry size above %.0f and can wait", len(ids), delayScoreThreshold, delaySizeThreshold),
		Impact:     "Frees capacity for work with a better value-to-effort ratio",
		Confidence: 0.6,
	}, true
}

// combineRule groups small items with near-identical titles. Each item joins
// at most one group: once grouped it is excluded from later comparisons, so
// groups are formed greedily in input order.
func (e *RecommendationEngine) combineRule(items []workitem.ScoredWorkItem) []workitem.Recommendation {
	small := make([]workitem.ScoredWorkItem, 0)
	for _, item := range items {
		if item.JobSize <= combineSizeThreshold {
			small = append(small, item)
		}
	}

	recommendations := make([]workitem.Recommendation, 0)
	grouped := make(map[string]bool, len(small))

	for i, anchor := range small {
		if grouped[anchor.ID] {
			continue
		}
		group := []string{anchor.ID}
		for _, candidate := range small[i+1:] {
			if grouped[candidate.ID] {
				continue
			}
			if titleSimilarity(anchor.Title, candidate.Title) >= combineSimilarityThreshold {
				group = append(group, candidate.ID)
				grouped[candidate.ID] = true
			}
		}
		if len(group) < 2 {
			continue
		}
		grouped[anchor.ID] = true

		recommendations = append(recommendations, workitem.Recommendation{
			Type:       workitem.RecommendationCombine,
			ItemIDs:    group,
			Rationale:  fmt.Sprintf("%d small items share overlapping scope and could be batched together", len(group)),
			Impact:     "Batching similar small items cuts context-switching overhead",
			Confidence: 0.5,
		})
	}

	return recommendations
}
