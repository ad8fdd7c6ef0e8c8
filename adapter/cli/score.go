package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/planning/application/services"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
)

var (
	scoreItemsFile  string
	scoreJSONOutput bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute composite scores for a backlog without planning",
	Long: `Computes the weighted value-over-effort score and priority tier for
each item, printed best first. No plan is created or stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := loadWorkItems(scoreItemsFile)
		if err != nil {
			return err
		}

		engine := scoringEngine()
		scored := engine.ScoreItems(items)
		ordered := services.NewPrioritizer().Prioritize(scored)

		if scoreJSONOutput {
			return printJSON(ordered)
		}

		fmt.Printf("%-12s %-8s %-8s %-6s %-6s %-6s %-6s %s\n",
			"ID", "SCORE", "TIER", "BV", "TC", "RR", "SIZE", "TITLE")
		for _, item := range ordered {
			fmt.Printf("%-12s %-8.2f %-8s %-6.1f %-6.1f %-6.1f %-6.1f %s\n",
				item.ID, item.Score, item.Tier,
				item.BusinessValue, item.TimeCriticality, item.RiskReduction,
				item.JobSize, item.Title)
		}
		return nil
	},
}

// scoringEngine returns the app engine when available, otherwise one with
// default weights so scoring works without any configuration.
func scoringEngine() *services.ScoringEngine {
	if app := GetApp(); app != nil && app.ScoringEngine != nil {
		return app.ScoringEngine
	}
	return services.NewScoringEngine(value_objects.DefaultScoringWeights(), logger)
}

func init() {
	scoreCmd.Flags().StringVar(&scoreItemsFile, "items", "", "JSON file with backlog items (required)")
	scoreCmd.Flags().BoolVar(&scoreJSONOutput, "json", false, "output JSON")
	_ = scoreCmd.MarkFlagRequired("items")
	rootCmd.AddCommand(scoreCmd)
}
