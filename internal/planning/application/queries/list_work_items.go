package queries

import (
	"context"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

// ListWorkItemsQuery lists the stored backlog, optionally filtered by tier.
type ListWorkItemsQuery struct {
	Tier *value_objects.Tier
}

// ListWorkItemsHandler handles the ListWorkItemsQuery.
type ListWorkItemsHandler struct {
	itemRepo workitem.Repository
}

// NewListWorkItemsHandler creates a new handler.
func NewListWorkItemsHandler(itemRepo workitem.Repository) *ListWorkItemsHandler {
	return &ListWorkItemsHandler{itemRepo: itemRepo}
}

// Handle executes the query.
func (h *ListWorkItemsHandler) Handle(ctx context.Context, query ListWorkItemsQuery) ([]workitem.ScoredWorkItem, error) {
	items, err := h.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if query.Tier == nil {
		return items, nil
	}

	filtered := make([]workitem.ScoredWorkItem, 0, len(items))
	for _, item := range items {
		if item.Tier == *query.Tier {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
