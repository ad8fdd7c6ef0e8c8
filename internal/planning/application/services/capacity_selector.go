package services

import (
	"log/slog"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

// CapacitySelector truncates an ordered list to fit a capacity budget.
type CapacitySelector struct {
	logger *slog.Logger
}

// NewCapacitySelector creates a new selector.
func NewCapacitySelector(logger *slog.Logger) *CapacitySelector {
	if logger == nil {
		logger = slog.Default()
	}
	return &CapacitySelector{logger: logger}
}

// Select walks the ordered list accumulating job-size effort and returns
// the longest prefix that fits within capacity. Selection stops at the
// first item that would overflow; later items are never pulled forward to
// fill the slack, so priority order is preserved at the cost of packing
// optimality. Running out of capacity is normal truncation, not an error.
func (s *CapacitySelector) Select(
	items []workitem.ScoredWorkItem,
	capacity float64,
) []workitem.ScoredWorkItem {
	selected := make([]workitem.ScoredWorkItem, 0, len(items))
	used := 0.0

	for i, item := range items {
		if used+item.JobSize > capacity {
			s.logger.Debug("capacity exhausted, truncating plan",
				"capacity", capacity,
				"used", used,
				"selected", len(selected),
				"dropped", len(items)-i,
			)
			break
		}
		used += item.JobSize
		selected = append(selected, item)
	}

	return selected
}
