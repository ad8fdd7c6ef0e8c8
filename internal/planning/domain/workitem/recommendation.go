package workitem

import (
	"errors"
	"strings"
)

// RecommendationType classifies an improvement suggestion.
type RecommendationType string

const (
	RecommendationPrioritize RecommendationType = "prioritize"
	RecommendationSplit      RecommendationType = "split"
	RecommendationDelay      RecommendationType = "delay"
	RecommendationCombine    RecommendationType = "combine"
)

var (
	ErrInvalidRecommendationType = errors.New("invalid recommendation type")
)

// ParseRecommendationType creates a RecommendationType from a string.
func ParseRecommendationType(s string) (RecommendationType, error) {
	switch RecommendationType(strings.ToLower(s)) {
	case RecommendationPrioritize:
		return RecommendationPrioritize, nil
	case RecommendationSplit:
		return RecommendationSplit, nil
	case RecommendationDelay:
		return RecommendationDelay, nil
	case RecommendationCombine:
		return RecommendationCombine, nil
	default:
		return "", ErrInvalidRecommendationType
	}
}

// Recommendation is an improvement suggestion derived from the scored set.
// It is purely derived and carries no back-reference to the items.
type Recommendation struct {
	Type       RecommendationType `json:"type"`
	ItemIDs    []string           `json:"item_ids"`
	Rationale  string             `json:"rationale"`
	Impact     string             `json:"impact"`
	Confidence float64            `json:"confidence"`
}
