package services

import (
	"math"
	"sort"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

// Tolerance bands for the cascading comparison. A level only decides the
// order when the difference exceeds its band; otherwise the next level is
// consulted. The bands are part of the observable contract.
const (
	scoreTolerance         = 0.1
	businessValueTolerance = 5.0
	jobSizeTolerance       = 1.0
)

// Prioritizer produces the base execution order over scored items.
type Prioritizer struct{}

// NewPrioritizer creates a new prioritizer.
func NewPrioritizer() *Prioritizer {
	return &Prioritizer{}
}

// Prioritize returns the items in a stable total order, best first.
// The input slice is not modified.
func (p *Prioritizer) Prioritize(items []workitem.ScoredWorkItem) []workitem.ScoredWorkItem {
	ordered := make([]workitem.ScoredWorkItem, len(items))
	copy(ordered, items)

	sort.SliceStable(ordered, func(i, j int) bool {
		return compareItems(ordered[i], ordered[j])
	})

	return ordered
}

// compareItems reports whether a ranks strictly ahead of b. Near-equal
// values at each level are treated as ties so floating-point noise never
// reorders items.
func compareItems(a, b workitem.ScoredWorkItem) bool {
	// Composite score, descending.
	if diff := a.Score - b.Score; math.Abs(diff) > scoreTolerance {
		return diff > 0
	}

	// Business value, descending.
	if diff := a.BusinessValue - b.BusinessValue; math.Abs(diff) > businessValueTolerance {
		return diff > 0
	}

	// Job size, ascending: cheaper to deliver ranks higher.
	if diff := a.JobSize - b.JobSize; math.Abs(diff) > jobSizeTolerance {
		return diff < 0
	}

	// Time criticality, descending: the final, always-decisive tie-break.
	return a.TimeCriticality > b.TimeCriticality
}
