package plan

import (
	"github.com/felixgeelhaar/cadence/internal/shared/domain"
	"github.com/google/uuid"
)

const (
	AggregateType = "Plan"

	RoutingKeyOptimized = "planning.plan.optimized"
)

// PlanOptimized is emitted when a backlog optimization run completes.
type PlanOptimized struct {
	domain.BaseEvent
	Name          string `json:"name"`
	ItemCount     int    `json:"item_count"`
	SelectedCount int    `json:"selected_count"`
}

// NewPlanOptimized creates a PlanOptimized event.
func NewPlanOptimized(planID uuid.UUID, name string, itemCount, selectedCount int) PlanOptimized {
	return PlanOptimized{
		BaseEvent:     domain.NewBaseEvent(planID, AggregateType, RoutingKeyOptimized),
		Name:          name,
		ItemCount:     itemCount,
		SelectedCount: selectedCount,
	}
}
