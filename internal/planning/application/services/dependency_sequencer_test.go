package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

func itemIDs(items []workitem.ScoredWorkItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestDependencySequencer_Sequence(t *testing.T) {
	sequencer := NewDependencySequencer(nil)

	t.Run("empty dependency map keeps the input order", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}

		ordered, unresolved := sequencer.Sequence(items, nil)

		assert.Equal(t, []string{"a", "b", "c"}, itemIDs(ordered))
		assert.Empty(t, unresolved)
	})

	t.Run("dependent item moves after its dependency", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}
		deps := workitem.DependencyMap{"a": {"c"}}

		ordered, unresolved := sequencer.Sequence(items, deps)

		assert.Equal(t, []string{"b", "c", "a"}, itemIDs(ordered))
		assert.Empty(t, unresolved)
	})

	t.Run("chain of dependencies resolves in waves", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}
		deps := workitem.DependencyMap{
			"a": {"b"},
			"b": {"c"},
		}

		ordered, unresolved := sequencer.Sequence(items, deps)

		assert.Equal(t, []string{"c", "b", "a"}, itemIDs(ordered))
		assert.Empty(t, unresolved)
	})

	t.Run("priority order survives within each wave", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
		deps := workitem.DependencyMap{
			"a": {"d"},
			"b": {"d"},
		}

		ordered, unresolved := sequencer.Sequence(items, deps)

		assert.Equal(t, []string{"c", "d", "a", "b"}, itemIDs(ordered))
		assert.Empty(t, unresolved)
	})

	t.Run("cycle terminates with every item exactly once", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}
		deps := workitem.DependencyMap{
			"a": {"b"},
			"b": {"c"},
			"c": {"a"},
		}

		ordered, unresolved := sequencer.Sequence(items, deps)

		require.Len(t, ordered, 3)
		assert.Equal(t, []string{"a", "b", "c"}, itemIDs(ordered))
		assert.Equal(t, []string{"a", "b", "c"}, unresolved)
	})

	t.Run("dependency on an unknown item fails open", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{{ID: "a"}, {ID: "b"}}
		deps := workitem.DependencyMap{"b": {"ghost"}}

		ordered, unresolved := sequencer.Sequence(items, deps)

		assert.Equal(t, []string{"a", "b"}, itemIDs(ordered))
		assert.Equal(t, []string{"b"}, unresolved)
	})

	t.Run("partial cycle still places the resolvable prefix first", func(t *testing.T) {
		items := []workitem.ScoredWorkItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}
		deps := workitem.DependencyMap{
			"b": {"c"},
			"c": {"b"},
		}

		ordered, unresolved := sequencer.Sequence(items, deps)

		assert.Equal(t, []string{"a", "b", "c"}, itemIDs(ordered))
		assert.Equal(t, []string{"b", "c"}, unresolved)
	})
}
