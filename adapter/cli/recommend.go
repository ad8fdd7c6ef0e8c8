package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/planning/application/commands"
	"github.com/felixgeelhaar/cadence/internal/planning/application/services"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
)

var (
	recommendItemsFile  string
	recommendScored     bool
	recommendJSONOutput bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest backlog improvements",
	Long: `Scans the scored backlog and suggests improvements: fast-track
quick wins, split oversized items, delay poor-value work, and combine
near-duplicate small items.

Reads items from --items when given, otherwise from the stored backlog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			items []workitem.ScoredWorkItem
			err   error
		)
		if recommendItemsFile != "" {
			items, err = loadWorkItems(recommendItemsFile)
			if err != nil {
				return err
			}
		}

		var result *commands.SynthesizeRecommendationsResult
		if app := GetApp(); app != nil && app.SynthesizeRecommendationsHandler != nil {
			result, err = app.SynthesizeRecommendationsHandler.Handle(cmd.Context(), commands.SynthesizeRecommendationsCommand{
				Items:             items,
				PrecomputedScores: recommendScored,
			})
			if err != nil {
				return err
			}
		} else {
			// No container, run the rules directly over the file input.
			if len(items) == 0 {
				return fmt.Errorf("no stored backlog available, provide --items")
			}
			if !recommendScored {
				items = scoringEngine().ScoreItems(items)
			}
			engine := services.NewRecommendationEngine(logger)
			result = &commands.SynthesizeRecommendationsResult{
				Recommendations: engine.Synthesize(items),
				ItemCount:       len(items),
			}
		}

		if recommendJSONOutput {
			return printJSON(result.Recommendations)
		}

		if len(result.Recommendations) == 0 {
			fmt.Printf("No recommendations for %d items.\n", result.ItemCount)
			return nil
		}

		for _, rec := range result.Recommendations {
			fmt.Printf("[%s] (confidence %.1f)\n", strings.ToUpper(string(rec.Type)), rec.Confidence)
			fmt.Printf("  Items:     %s\n", strings.Join(rec.ItemIDs, ", "))
			fmt.Printf("  Rationale: %s\n", rec.Rationale)
			fmt.Printf("  Impact:    %s\n\n", rec.Impact)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendItemsFile, "items", "", "JSON file with backlog items")
	recommendCmd.Flags().BoolVar(&recommendScored, "scored", false, "items already carry scores")
	recommendCmd.Flags().BoolVar(&recommendJSONOutput, "json", false, "output JSON")
	rootCmd.AddCommand(recommendCmd)
}
