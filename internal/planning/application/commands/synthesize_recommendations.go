package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/cadence/internal/planning/application/services"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

// SynthesizeRecommendationsCommand requests improvement suggestions.
// When Items is empty the stored backlog is used instead.
type SynthesizeRecommendationsCommand struct {
	Items             []workitem.ScoredWorkItem
	PrecomputedScores bool
}

// SynthesizeRecommendationsResult contains the derived recommendations.
type SynthesizeRecommendationsResult struct {
	Recommendations []workitem.Recommendation
	ItemCount       int
}

// SynthesizeRecommendationsHandler scores a backlog if needed and runs the
// recommendation rules over it.
type SynthesizeRecommendationsHandler struct {
	itemRepo workitem.Repository
	scorer   *services.ScoringEngine
	engine   *services.RecommendationEngine
	logger   *slog.Logger
}

// NewSynthesizeRecommendationsHandler creates a new handler.
func NewSynthesizeRecommendationsHandler(
	itemRepo workitem.Repository,
	scorer *services.ScoringEngine,
	engine *services.RecommendationEngine,
	logger *slog.Logger,
) *SynthesizeRecommendationsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if scorer == nil {
		scorer = services.NewScoringEngine(value_objects.DefaultScoringWeights(), logger)
	}
	if engine == nil {
		engine = services.NewRecommendationEngine(logger)
	}
	return &SynthesizeRecommendationsHandler{
		itemRepo: itemRepo,
		scorer:   scorer,
		engine:   engine,
		logger:   logger,
	}
}

// Handle executes the synthesis.
func (h *SynthesizeRecommendationsHandler) Handle(ctx context.Context, cmd SynthesizeRecommendationsCommand) (*SynthesizeRecommendationsResult, error) {
	items := cmd.Items
	if len(items) == 0 {
		if h.itemRepo == nil {
			return &SynthesizeRecommendationsResult{}, nil
		}
		stored, err := h.itemRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load work items: %w", err)
		}
		items = stored
		cmd.PrecomputedScores = true
	}

	if !cmd.PrecomputedScores {
		items = h.scorer.ScoreItems(items)
	}

	return &SynthesizeRecommendationsResult{
		Recommendations: h.engine.Synthesize(items),
		ItemCount:       len(items),
	}, nil
}
