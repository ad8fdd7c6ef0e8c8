package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/planning/application/queries"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
)

var (
	itemsTier       string
	itemsJSONOutput bool
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the stored backlog, best score first",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("backlog lookup requires an initialized application")
		}

		query := queries.ListWorkItemsQuery{}
		if itemsTier != "" {
			tier, err := value_objects.ParseTier(itemsTier)
			if err != nil {
				return err
			}
			query.Tier = &tier
		}

		items, err := app.ListWorkItemsHandler.Handle(cmd.Context(), query)
		if err != nil {
			return err
		}

		if itemsJSONOutput {
			return printJSON(items)
		}

		fmt.Printf("%-12s %-8s %-8s %-6s %s\n", "ID", "SCORE", "TIER", "SIZE", "TITLE")
		for _, item := range items {
			fmt.Printf("%-12s %-8.2f %-8s %-6.1f %s\n",
				item.ID, item.Score, item.Tier, item.JobSize, item.Title)
		}
		return nil
	},
}

func init() {
	itemsCmd.Flags().StringVar(&itemsTier, "tier", "", "filter by tier (urgent, high, medium, low)")
	itemsCmd.Flags().BoolVar(&itemsJSONOutput, "json", false, "output JSON")
	rootCmd.AddCommand(itemsCmd)
}
