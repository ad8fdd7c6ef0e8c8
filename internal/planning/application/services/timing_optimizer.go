package services

import (
	"sort"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

// TimingOptimizer produces the final sequence by regrouping items into the
// four fixed priority tiers.
type TimingOptimizer struct{}

// NewTimingOptimizer creates a new optimizer.
func NewTimingOptimizer() *TimingOptimizer {
	return &TimingOptimizer{}
}

// Retime partitions items by recommended tier and sorts each tier by
// composite score, descending. Tiers concatenate in fixed
// urgent, high, medium, low order; within a tier the score order overrides
// whatever ordering the earlier pipeline stages produced.
func (o *TimingOptimizer) Retime(items []workitem.ScoredWorkItem) []workitem.ScoredWorkItem {
	buckets := make(map[value_objects.Tier][]workitem.ScoredWorkItem, 4)
	for _, item := range items {
		buckets[item.Tier] = append(buckets[item.Tier], item)
	}

	retimed := make([]workitem.ScoredWorkItem, 0, len(items))
	for _, tier := range value_objects.Tiers() {
		bucket := buckets[tier]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Score > bucket[j].Score
		})
		retimed = append(retimed, bucket...)
	}

	return retimed
}
