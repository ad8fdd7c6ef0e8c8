// Package commands contains the write-side handlers of the planning context.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/cadence/internal/planning/application/services"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/plan"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/eventbus"
)

// OptimizeBacklogCommand contains the data needed to run an optimization.
// Items carry either precomputed scores (PrecomputedScores true) or raw
// value dimensions to be scored first.
type OptimizeBacklogCommand struct {
	PlanName          string
	Items             []workitem.ScoredWorkItem
	Dependencies      workitem.DependencyMap
	Capacity          float64
	PrecomputedScores bool
}

// OptimizeBacklogResult contains the outcome of an optimization run.
type OptimizeBacklogResult struct {
	PlanID      uuid.UUID
	Items       []workitem.ScoredWorkItem
	ItemOrder   []string
	SelectedIDs []string
	Unresolved  []string
	Truncated   int
}

// OptimizeBacklogHandler scores a backlog, runs the optimization pipeline,
// persists the resulting plan and publishes its domain events.
type OptimizeBacklogHandler struct {
	itemRepo  workitem.Repository
	planRepo  plan.Repository
	scorer    *services.ScoringEngine
	optimizer *services.BacklogOptimizer
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewOptimizeBacklogHandler creates a new handler.
func NewOptimizeBacklogHandler(
	itemRepo workitem.Repository,
	planRepo plan.Repository,
	scorer *services.ScoringEngine,
	optimizer *services.BacklogOptimizer,
	publisher eventbus.Publisher,
	logger *slog.Logger,
) *OptimizeBacklogHandler {
	if scorer == nil {
		scorer = services.NewScoringEngine(value_objects.DefaultScoringWeights(), logger)
	}
	if optimizer == nil {
		optimizer = services.NewBacklogOptimizer(logger, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = eventbus.NewNoopPublisher(logger)
	}
	return &OptimizeBacklogHandler{
		itemRepo:  itemRepo,
		planRepo:  planRepo,
		scorer:    scorer,
		optimizer: optimizer,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the optimization and persists the plan.
func (h *OptimizeBacklogHandler) Handle(ctx context.Context, cmd OptimizeBacklogCommand) (*OptimizeBacklogResult, error) {
	items := cmd.Items
	if !cmd.PrecomputedScores {
		items = h.scorer.ScoreItems(items)
	}

	result := h.optimizer.Optimize(ctx, items, cmd.Dependencies, cmd.Capacity)

	p, err := plan.NewPlan(cmd.PlanName, cmd.Capacity, result.ItemOrder, result.SelectedIDs, result.Unresolved)
	if err != nil {
		return nil, err
	}

	if h.itemRepo != nil {
		for _, item := range result.Items {
			if err := h.itemRepo.Save(ctx, item); err != nil {
				return nil, fmt.Errorf("failed to save work item %s: %w", item.ID, err)
			}
		}
	}

	if h.planRepo != nil {
		if err := h.planRepo.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to save plan: %w", err)
		}
	}

	for _, event := range p.DomainEvents() {
		if err := eventbus.PublishDomainEvent(ctx, h.publisher, event); err != nil {
			// Event delivery must not undo a completed optimization.
			h.logger.Error("failed to publish domain event",
				"event_id", event.EventID(),
				"routing_key", event.RoutingKey(),
				"error", err,
			)
		}
	}
	p.ClearDomainEvents()

	return &OptimizeBacklogResult{
		PlanID:      p.ID(),
		Items:       result.Items,
		ItemOrder:   result.ItemOrder,
		SelectedIDs: result.SelectedIDs,
		Unresolved:  result.Unresolved,
		Truncated:   result.Truncated,
	}, nil
}
