package queries

import (
	"context"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/plan"
)

const defaultPlanListLimit = 20

// ListPlansQuery lists stored plans, newest first.
type ListPlansQuery struct {
	Limit int
}

// ListPlansHandler handles the ListPlansQuery.
type ListPlansHandler struct {
	planRepo plan.Repository
}

// NewListPlansHandler creates a new handler.
func NewListPlansHandler(planRepo plan.Repository) *ListPlansHandler {
	return &ListPlansHandler{planRepo: planRepo}
}

// Handle executes the query.
func (h *ListPlansHandler) Handle(ctx context.Context, query ListPlansQuery) ([]PlanView, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultPlanListLimit
	}

	plans, err := h.planRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	views := make([]PlanView, len(plans))
	for i, p := range plans {
		views[i] = toPlanView(p)
	}
	return views, nil
}
