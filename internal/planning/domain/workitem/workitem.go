// Package workitem defines the work items flowing through the planning
// pipeline and their derived artifacts.
package workitem

import (
	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
)

// ScoredWorkItem is an immutable candidate work item with its value
// dimensions and derived composite score. Pipeline stages never edit item
// fields; every transformation produces a new ordering of the same values.
type ScoredWorkItem struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	BusinessValue   float64            `json:"business_value"`
	TimeCriticality float64            `json:"time_criticality"`
	RiskReduction   float64            `json:"risk_reduction"`
	JobSize         float64            `json:"job_size"`
	Score           float64            `json:"score"`
	Tier            value_objects.Tier `json:"tier"`
	EstimatedEffort float64            `json:"estimated_effort"`
}

// DependencyMap declares which items must be sequenced after which others.
// Keys are item IDs; values are the IDs the key item depends on. It is
// supplied per optimization call and never mutated by the engine. A map is
// not required to be acyclic; the sequencer tolerates cycles.
type DependencyMap map[string][]string

// DependsOn returns the declared dependencies for an item. Items with no
// entry have no dependencies and are immediately eligible for placement.
func (m DependencyMap) DependsOn(id string) []string {
	if m == nil {
		return nil
	}
	return m[id]
}
