package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

func TestSynthesizeRecommendationsHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("scores raw items before applying the rules", func(t *testing.T) {
		handler := NewSynthesizeRecommendationsHandler(nil, nil, nil, nil)

		result, err := handler.Handle(ctx, SynthesizeRecommendationsCommand{
			Items: []workitem.ScoredWorkItem{
				// 30/2 = 15: quick win.
				{ID: "win", BusinessValue: 30, JobSize: 2},
				// 60/10 = 6: split candidate.
				{ID: "huge", BusinessValue: 60, JobSize: 10},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, result.ItemCount)
		require.Len(t, result.Recommendations, 2)
		assert.Equal(t, workitem.RecommendationPrioritize, result.Recommendations[0].Type)
		assert.Equal(t, []string{"win"}, result.Recommendations[0].ItemIDs)
		assert.Equal(t, workitem.RecommendationSplit, result.Recommendations[1].Type)
		assert.Equal(t, []string{"huge"}, result.Recommendations[1].ItemIDs)
	})

	t.Run("falls back to the stored backlog when no items are given", func(t *testing.T) {
		itemRepo := newMockItemRepo()
		require.NoError(t, itemRepo.Save(ctx, workitem.ScoredWorkItem{
			ID: "drag", Score: 1, JobSize: 9,
		}))

		handler := NewSynthesizeRecommendationsHandler(itemRepo, nil, nil, nil)

		result, err := handler.Handle(ctx, SynthesizeRecommendationsCommand{})
		require.NoError(t, err)

		assert.Equal(t, 1, result.ItemCount)
		require.Len(t, result.Recommendations, 1)
		assert.Equal(t, workitem.RecommendationDelay, result.Recommendations[0].Type)
	})

	t.Run("no repository and no items yields an empty result", func(t *testing.T) {
		handler := NewSynthesizeRecommendationsHandler(nil, nil, nil, nil)

		result, err := handler.Handle(ctx, SynthesizeRecommendationsCommand{})
		require.NoError(t, err)

		assert.Zero(t, result.ItemCount)
		assert.Empty(t, result.Recommendations)
	})
}
