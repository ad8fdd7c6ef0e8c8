package services

import (
	"log/slog"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

// DependencySequencer reorders a prioritized list so that, wherever
// possible, an item appears only after the items it depends on.
type DependencySequencer struct {
	logger *slog.Logger
}

// NewDependencySequencer creates a new sequencer.
func NewDependencySequencer(logger *slog.Logger) *DependencySequencer {
	if logger == nil {
		logger = slog.Default()
	}
	return &DependencySequencer{logger: logger}
}

// Sequence applies dependency constraints to an already-prioritized order.
// Placement proceeds in waves: each pass over the remaining items moves
// every item whose dependencies are all placed, preserving the relative
// priority order within each wave. If a full pass places nothing further
// (a cycle, or a dependency on an unknown item), the remaining items are
// appended in their original relative order: a reporting defect must never
// block planning output. The IDs of such fail-open items are returned for
// operator visibility.
func (s *DependencySequencer) Sequence(
	items []workitem.ScoredWorkItem,
	deps workitem.DependencyMap,
) ([]workitem.ScoredWorkItem, []string) {
	if len(deps) == 0 {
		return append([]workitem.ScoredWorkItem(nil), items...), nil
	}

	ordered := make([]workitem.ScoredWorkItem, 0, len(items))
	placed := make(map[string]bool, len(items))
	remaining := append([]workitem.ScoredWorkItem(nil), items...)

	for len(remaining) > 0 {
		var next []workitem.ScoredWorkItem
		progressed := false

		for _, item := range remaining {
			if s.eligible(item, deps, placed) {
				ordered = append(ordered, item)
				placed[item.ID] = true
				progressed = true
			} else {
				next = append(next, item)
			}
		}

		if !progressed {
			// Cycle or dangling dependency: fail open and append the rest.
			unresolved := make([]string, len(next))
			for i, item := range next {
				unresolved[i] = item.ID
			}
			s.logger.Warn("unresolvable dependencies, appending remaining items in priority order",
				"unresolved_count", len(next),
				"unresolved_ids", unresolved,
			)
			ordered = append(ordered, next...)
			return ordered, unresolved
		}

		remaining = next
	}

	return ordered, nil
}

// eligible reports whether all of an item's declared dependencies are
// already placed. Items absent from the map have no dependencies.
func (s *DependencySequencer) eligible(
	item workitem.ScoredWorkItem,
	deps workitem.DependencyMap,
	placed map[string]bool,
) bool {
	for _, dep := range deps.DependsOn(item.ID) {
		if !placed[dep] {
			return false
		}
	}
	return true
}
