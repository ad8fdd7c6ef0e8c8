package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	t.Run("lowercases and drops short words", func(t *testing.T) {
		keywords := extractKeywords("Fix the Login Validation Flow")

		assert.Len(t, keywords, 3)
		assert.Contains(t, keywords, "login")
		assert.Contains(t, keywords, "validation")
		assert.Contains(t, keywords, "flow")
	})

	t.Run("strips punctuation", func(t *testing.T) {
		keywords := extractKeywords("Retry-logic: cleanup, (phase two)")

		assert.Contains(t, keywords, "retry")
		assert.Contains(t, keywords, "logic")
		assert.Contains(t, keywords, "cleanup")
		assert.Contains(t, keywords, "phase")
		assert.NotContains(t, keywords, "two")
	})

	t.Run("empty title yields no keywords", func(t *testing.T) {
		assert.Empty(t, extractKeywords(""))
	})
}

func TestTitleSimilarity(t *testing.T) {
	t.Run("identical titles score one", func(t *testing.T) {
		assert.InDelta(t, 1.0, titleSimilarity("Improve login validation", "Improve login validation"), 1e-9)
	})

	t.Run("disjoint titles score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, titleSimilarity("Database migration", "Frontend styling"))
	})

	t.Run("partial overlap scores the jaccard index", func(t *testing.T) {
		// {improve, login, validation, flow} vs {enhance, login, validation, process}
		// shares 2 of 6 distinct keywords.
		sim := titleSimilarity("Improve login validation flow", "Enhance login validation process")
		assert.InDelta(t, 2.0/6.0, sim, 1e-9)
	})

	t.Run("titles with only short words score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, titleSimilarity("fix it now", "do it all"))
	})
}
