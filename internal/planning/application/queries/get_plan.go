// Package queries contains the read-side handlers of the planning context.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/plan"
)

// GetPlanQuery fetches a single plan. A zero PlanID fetches the most
// recently optimized plan.
type GetPlanQuery struct {
	PlanID uuid.UUID
}

// PlanView is the read model of a stored plan.
type PlanView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Capacity    float64   `json:"capacity"`
	ItemOrder   []string  `json:"item_order"`
	SelectedIDs []string  `json:"selected_ids"`
	Unresolved  []string  `json:"unresolved,omitempty"`
	OptimizedAt time.Time `json:"optimized_at"`
}

// GetPlanHandler handles the GetPlanQuery.
type GetPlanHandler struct {
	planRepo plan.Repository
}

// NewGetPlanHandler creates a new handler.
func NewGetPlanHandler(planRepo plan.Repository) *GetPlanHandler {
	return &GetPlanHandler{planRepo: planRepo}
}

// Handle executes the query.
func (h *GetPlanHandler) Handle(ctx context.Context, query GetPlanQuery) (*PlanView, error) {
	var (
		p   *plan.Plan
		err error
	)
	if query.PlanID == uuid.Nil {
		p, err = h.planRepo.FindLatest(ctx)
	} else {
		p, err = h.planRepo.FindByID(ctx, query.PlanID)
	}
	if err != nil {
		return nil, err
	}

	view := toPlanView(p)
	return &view, nil
}

func toPlanView(p *plan.Plan) PlanView {
	return PlanView{
		ID:          p.ID(),
		Name:        p.Name(),
		Capacity:    p.Capacity(),
		ItemOrder:   p.ItemOrder(),
		SelectedIDs: p.SelectedIDs(),
		Unresolved:  p.UnresolvedIDs(),
		OptimizedAt: p.OptimizedAt(),
	}
}
