package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

func TestCapacitySelector_Select(t *testing.T) {
	selector := NewCapacitySelector(nil)

	t.Run("stops at the first item that would overflow", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{
			{ID: "x", JobSize: 3},
			{ID: "y", JobSize: 5},
			{ID: "z", JobSize: 4},
		}

		selected := selector.Select(items, 7)

		// z would fit in the remaining slack but is never pulled forward.
		assert.Equal(t, []string{"x"}, itemIDs(selected))
	})

	t.Run("selects everything when capacity covers the whole list", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{
			{ID: "a", JobSize: 2},
			{ID: "b", JobSize: 3},
		}

		selected := selector.Select(items, 5)

		assert.Equal(t, []string{"a", "b"}, itemIDs(selected))
	})

	t.Run("exact fit is selected", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{
			{ID: "a", JobSize: 4},
			{ID: "b", JobSize: 3},
		}

		selected := selector.Select(items, 7)

		assert.Equal(t, []string{"a", "b"}, itemIDs(selected))
	})

	t.Run("first item larger than capacity selects nothing", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{{ID: "a", JobSize: 10}}

		selected := selector.Select(items, 5)

		assert.Empty(t, selected)
	})

	t.Run("selection is always a prefix of the input order", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{
			{ID: "a", JobSize: 1},
			{ID: "b", JobSize: 2},
			{ID: "c", JobSize: 3},
			{ID: "d", JobSize: 4},
		}

		for capacity := 0.0; capacity <= 10; capacity++ {
			selected := selector.Select(items, capacity)
			assert.Equal(t, itemIDs(items[:len(selected)]), itemIDs(selected))
		}
	})
}
