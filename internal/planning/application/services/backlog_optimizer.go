package services

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
	"github.com/felixgeelhaar/cadence/pkg/observability"
)

// OptimizationResult carries the outcome of a full pipeline run.
type OptimizationResult struct {
	// Items is the final retimed sequence. When a capacity was applied it
	// contains only the selected prefix.
	Items []workitem.ScoredWorkItem
	// ItemOrder is the full retimed execution order before any capacity
	// cut, so dropped items keep their place in a stored plan.
	ItemOrder []string
	// SelectedIDs lists, in order, the items that fit within capacity.
	// Equal to ItemOrder when no capacity constraint was applied.
	SelectedIDs []string
	// Unresolved lists item IDs whose dependencies could not be
	// topologically resolved, in the order they were appended.
	Unresolved []string
	// Truncated is the number of items dropped by the capacity constraint.
	Truncated int
}

// BacklogOptimizer runs the full optimization pipeline over a scored
// backlog: prioritize, then sequence by dependencies, then truncate to
// capacity, then regroup into tiers.
type BacklogOptimizer struct {
	prioritizer *Prioritizer
	sequencer   *DependencySequencer
	selector    *CapacitySelector
	timing      *TimingOptimizer
	logger      *slog.Logger
	metrics     observability.Metrics
}

// NewBacklogOptimizer wires the pipeline stages together.
func NewBacklogOptimizer(logger *slog.Logger, metrics observability.Metrics) *BacklogOptimizer {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &BacklogOptimizer{
		prioritizer: NewPrioritizer(),
		sequencer:   NewDependencySequencer(logger),
		selector:    NewCapacitySelector(logger),
		timing:      NewTimingOptimizer(),
		logger:      logger,
		metrics:     metrics,
	}
}

// Optimize orders items by priority, applies the optional dependency and
// capacity constraints, and produces the final tier-grouped sequence.
// A nil or empty dependency map skips sequencing; a capacity of zero or
// less skips truncation.
func (o *BacklogOptimizer) Optimize(ctx context.Context, items []workitem.ScoredWorkItem, deps workitem.DependencyMap, capacity float64) OptimizationResult {
	timer := observability.StartTimer("backlog_optimize").
		WithLogger(o.logger).
		WithMetrics(o.metrics)
	defer timer.Stop()

	ordered := o.prioritizer.Prioritize(items)

	var unresolved []string
	if len(deps) > 0 {
		ordered, unresolved = o.sequencer.Sequence(ordered, deps)
		o.metrics.Counter(observability.MetricItemsSequenced, int64(len(ordered)))
		if len(unresolved) > 0 {
			o.metrics.Counter(observability.MetricUnresolvedItems, int64(len(unresolved)))
		}
	}

	// Retiming a selected prefix yields the same relative order as retiming
	// the whole list and filtering, so the full retimed order can double as
	// the persisted execution order with dropped items still in place.
	full := o.timing.Retime(ordered)
	itemOrder := make([]string, len(full))
	for i, item := range full {
		itemOrder[i] = item.ID
	}

	truncated := 0
	final := full
	if capacity > 0 {
		selected := o.selector.Select(ordered, capacity)
		truncated = len(ordered) - len(selected)
		if truncated > 0 {
			o.metrics.Counter(observability.MetricItemsTruncated, int64(truncated))
			keep := make(map[string]bool, len(selected))
			for _, item := range selected {
				keep[item.ID] = true
			}
			final = make([]workitem.ScoredWorkItem, 0, len(selected))
			for _, item := range full {
				if keep[item.ID] {
					final = append(final, item)
				}
			}
		}
	}

	selectedIDs := make([]string, len(final))
	for i, item := range final {
		selectedIDs[i] = item.ID
	}

	o.logger.Info("backlog optimized",
		slog.Int("input_count", len(items)),
		slog.Int("final_count", len(final)),
		slog.Int("unresolved_count", len(unresolved)),
		slog.Int("truncated_count", truncated),
	)
	o.metrics.Counter(observability.MetricPlansOptimized, 1)

	return OptimizationResult{
		Items:       final,
		ItemOrder:   itemOrder,
		SelectedIDs: selectedIDs,
		Unresolved:  unresolved,
		Truncated:   truncated,
	}
}
