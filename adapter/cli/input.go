package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

// workItemInput is the JSON shape of one backlog item. Score and tier are
// optional; when present and --scored is set they are taken as-is.
type workItemInput struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	BusinessValue   float64 `json:"business_value"`
	TimeCriticality float64 `json:"time_criticality"`
	RiskReduction   float64 `json:"risk_reduction"`
	JobSize         float64 `json:"job_size"`
	Score           float64 `json:"score,omitempty"`
	Tier            string  `json:"tier,omitempty"`
}

// loadWorkItems reads a JSON array of work items from a file.
func loadWorkItems(path string) ([]workitem.ScoredWorkItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	var inputs []workItemInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse items file: %w", err)
	}

	items := make([]workitem.ScoredWorkItem, 0, len(inputs))
	for i, in := range inputs {
		if in.ID == "" {
			return nil, fmt.Errorf("item %d has no id", i)
		}
		item := workitem.ScoredWorkItem{
			ID:              in.ID,
			Title:           in.Title,
			BusinessValue:   in.BusinessValue,
			TimeCriticality: in.TimeCriticality,
			RiskReduction:   in.RiskReduction,
			JobSize:         in.JobSize,
			Score:           in.Score,
			EstimatedEffort: in.JobSize,
		}
		if in.Tier != "" {
			tier, err := value_objects.ParseTier(in.Tier)
			if err != nil {
				return nil, fmt.Errorf("item %s: %w", in.ID, err)
			}
			item.Tier = tier
		} else {
			item.Tier = value_objects.TierForScore(in.Score)
		}
		items = append(items, item)
	}
	return items, nil
}

// loadDependencies reads a JSON object mapping item IDs to the IDs they
// depend on.
func loadDependencies(path string) (workitem.DependencyMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dependencies file: %w", err)
	}

	var deps workitem.DependencyMap
	if err := json.Unmarshal(data, &deps); err != nil {
		return nil, fmt.Errorf("failed to parse dependencies file: %w", err)
	}
	return deps, nil
}

// printJSON writes a value as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
