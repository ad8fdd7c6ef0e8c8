package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

func TestTimingOptimizer_Retime(t *testing.T) {
	optimizer := NewTimingOptimizer()

	t.Run("groups by tier in fixed order", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{
			{ID: "low", Score: 1, Tier: value_objects.TierLow},
			{ID: "urgent", Score: 12, Tier: value_objects.TierUrgent},
			{ID: "medium", Score: 4, Tier: value_objects.TierMedium},
			{ID: "high", Score: 8, Tier: value_objects.TierHigh},
		}

		retimed := optimizer.Retime(items)

		assert.Equal(t, []string{"urgent", "high", "medium", "low"}, itemIDs(retimed))
	})

	t.Run("sorts by score descending within each tier", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{
			{ID: "h1", Score: 7, Tier: value_objects.TierHigh},
			{ID: "h2", Score: 9, Tier: value_objects.TierHigh},
			{ID: "u1", Score: 11, Tier: value_objects.TierUrgent},
			{ID: "u2", Score: 15, Tier: value_objects.TierUrgent},
		}

		retimed := optimizer.Retime(items)

		assert.Equal(t, []string{"u2", "u1", "h2", "h1"}, itemIDs(retimed))
	})

	t.Run("never interleaves tiers", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{
			{ID: "m1", Score: 3, Tier: value_objects.TierMedium},
			{ID: "u1", Score: 11, Tier: value_objects.TierUrgent},
			{ID: "m2", Score: 5, Tier: value_objects.TierMedium},
			{ID: "l1", Score: 0.5, Tier: value_objects.TierLow},
			{ID: "m3", Score: 4, Tier: value_objects.TierMedium},
		}

		retimed := optimizer.Retime(items)
		require.Len(t, retimed, 5)

		lastRank := -1
		for _, item := range retimed {
			assert.GreaterOrEqual(t, item.Tier.Rank(), lastRank)
			lastRank = item.Tier.Rank()
		}
	})

	t.Run("equal scores within a tier keep input order", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{
			{ID: "first", Score: 5, Tier: value_objects.TierMedium},
			{ID: "second", Score: 5, Tier: value_objects.TierMedium},
		}

		retimed := optimizer.Retime(items)

		assert.Equal(t, []string{"first", "second"}, itemIDs(retimed))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, optimizer.Retime(nil))
	})
}
