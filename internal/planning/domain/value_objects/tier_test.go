package value_objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		input    string
		expected Tier
	}{
		{"urgent", TierUrgent},
		{"high", TierHigh},
		{"medium", TierMedium},
		{"low", TierLow},
		{"URGENT", TierUrgent},
		{"High", TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tier, err := ParseTier(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tier)
		})
	}

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := ParseTier("critical")
		assert.ErrorIs(t, err, ErrInvalidTier)
	})
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "urgent", TierUrgent.String())
	assert.Equal(t, "high", TierHigh.String())
	assert.Equal(t, "medium", TierMedium.String())
	assert.Equal(t, "low", TierLow.String())
	assert.Equal(t, "unknown", Tier(42).String())
}

func TestTier_Rank(t *testing.T) {
	// Urgent sequences first, low last
	assert.Less(t, TierUrgent.Rank(), TierHigh.Rank())
	assert.Less(t, TierHigh.Rank(), TierMedium.Rank())
	assert.Less(t, TierMedium.Rank(), TierLow.Rank())
}

func TestTiers(t *testing.T) {
	tiers := Tiers()
	require.Len(t, tiers, 4)
	assert.Equal(t, []Tier{TierUrgent, TierHigh, TierMedium, TierLow}, tiers)
}

func TestTierForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected Tier
	}{
		{"well above urgent threshold", 25, TierUrgent},
		{"just above urgent threshold", 10.01, TierUrgent},
		{"exactly at urgent threshold stays high", 10, TierHigh},
		{"high band", 7, TierHigh},
		{"medium band", 3, TierMedium},
		{"low band", 1.5, TierLow},
		{"zero score", 0, TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TierForScore(tt.score))
		})
	}
}

func TestScoringWeights_Validate(t *testing.T) {
	t.Run("default weights are valid", func(t *testing.T) {
		assert.NoError(t, DefaultScoringWeights().Validate())
	})

	t.Run("zero weights are valid", func(t *testing.T) {
		w := ScoringWeights{}
		assert.NoError(t, w.Validate())
	})

	t.Run("rejects negative weights", func(t *testing.T) {
		w := ScoringWeights{BusinessValue: -1}
		assert.ErrorIs(t, w.Validate(), ErrNegativeWeight)

		w = ScoringWeights{TimeCriticality: -0.5}
		assert.ErrorIs(t, w.Validate(), ErrNegativeWeight)

		w = ScoringWeights{RiskReduction: -2}
		assert.ErrorIs(t, w.Validate(), ErrNegativeWeight)
	})
}
