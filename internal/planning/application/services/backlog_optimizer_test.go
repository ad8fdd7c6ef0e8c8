package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
	"github.com/felixgeelhaar/cadence/pkg/observability"
)

func TestBacklogOptimizer_Optimize(t *testing.T) {
	ctx := context.Background()
	engine := NewScoringEngine(value_objects.DefaultScoringWeights(), nil)

	t.Run("runs the full pipeline", func(t *testing.T) {
		items := engine.ScoreItems([]workitem.ScoredWorkItem{
			{ID: "a", Title: "Item A", BusinessValue: 10, TimeCriticality: 10, JobSize: 4},
			{ID: "b", Title: "Item B", BusinessValue: 20, JobSize: 2},
			{ID: "c", Title: "Item C", BusinessValue: 2, JobSize: 8},
		})

		optimizer := NewBacklogOptimizer(nil, nil)
		result := optimizer.Optimize(ctx, items, nil, 0)

		require.Len(t, result.Items, 3)
		assert.Equal(t, []string{"b", "a", "c"}, result.SelectedIDs)
		assert.Equal(t, result.SelectedIDs, result.ItemOrder)
		assert.Empty(t, result.Unresolved)
		assert.Zero(t, result.Truncated)
	})

	t.Run("dependencies reorder the prioritized list", func(t *testing.T) {
		// Equal scores in the same tier, so the sequenced order survives
		// the final tier regrouping.
		items := engine.ScoreItems([]workitem.ScoredWorkItem{
			{ID: "a", BusinessValue: 20, JobSize: 4},
			{ID: "b", BusinessValue: 10, TimeCriticality: 10, JobSize: 4},
		})
		deps := workitem.DependencyMap{"a": {"b"}}

		optimizer := NewBacklogOptimizer(nil, nil)
		result := optimizer.Optimize(ctx, items, deps, 0)

		require.Len(t, result.Items, 2)
		assert.Equal(t, "b", result.Items[0].ID)
		assert.Equal(t, "a", result.Items[1].ID)
	})

	t.Run("capacity truncates after sequencing", func(t *testing.T) {
		items := engine.ScoreItems([]workitem.ScoredWorkItem{
			{ID: "x", BusinessValue: 30, JobSize: 3},
			{ID: "y", BusinessValue: 20, JobSize: 5},
			{ID: "z", BusinessValue: 10, JobSize: 4},
		})

		metrics := observability.NewInMemoryMetrics()
		optimizer := NewBacklogOptimizer(nil, metrics)
		result := optimizer.Optimize(ctx, items, nil, 7)

		assert.Equal(t, []string{"x"}, result.SelectedIDs)
		assert.Equal(t, []string{"x", "y", "z"}, result.ItemOrder,
			"dropped items keep their place in the full order")
		assert.Equal(t, 2, result.Truncated)
		assert.Equal(t, int64(2), metrics.GetCounter(observability.MetricItemsTruncated))
		assert.Equal(t, int64(1), metrics.GetCounter(observability.MetricPlansOptimized))
	})

	t.Run("unresolved cycles surface in the result", func(t *testing.T) {
		items := engine.ScoreItems([]workitem.ScoredWorkItem{
			{ID: "a", BusinessValue: 10, JobSize: 2},
			{ID: "b", BusinessValue: 10, JobSize: 2},
		})
		deps := workitem.DependencyMap{
			"a": {"b"},
			"b": {"a"},
		}

		optimizer := NewBacklogOptimizer(nil, nil)
		result := optimizer.Optimize(ctx, items, deps, 0)

		require.Len(t, result.Items, 2)
		assert.Equal(t, []string{"a", "b"}, result.Unresolved)
	})

	t.Run("final order is grouped by tier", func(t *testing.T) {
		items := engine.ScoreItems([]workitem.ScoredWorkItem{
			{ID: "urgent", BusinessValue: 22, JobSize: 2},
			{ID: "low", BusinessValue: 2, JobSize: 4},
			{ID: "high", BusinessValue: 16, JobSize: 2},
		})

		optimizer := NewBacklogOptimizer(nil, nil)
		result := optimizer.Optimize(ctx, items, nil, 0)

		require.Len(t, result.Items, 3)
		assert.Equal(t, value_objects.TierUrgent, result.Items[0].Tier)
		assert.Equal(t, value_objects.TierHigh, result.Items[1].Tier)
		assert.Equal(t, value_objects.TierLow, result.Items[2].Tier)
	})
}
