package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/cadence/internal/planning/application/commands"
	"github.com/felixgeelhaar/cadence/internal/planning/application/queries"
)

var (
	planItemsFile  string
	planDepsFile   string
	planName       string
	planCapacity   float64
	planScored     bool
	planJSONOutput bool
	planListLimit  int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create and inspect optimized release plans",
}

var planOptimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run the optimization pipeline over a backlog",
	Long: `Scores the backlog, orders it by value density, applies dependency
and capacity constraints, and stores the resulting plan.

Examples:
  cadence plan optimize --items backlog.json --name sprint-12
  cadence plan optimize --items backlog.json --deps deps.json --capacity 20
  cadence plan optimize --items scored.json --scored`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("planning requires an initialized application")
		}

		items, err := loadWorkItems(planItemsFile)
		if err != nil {
			return err
		}

		cmdInput := commands.OptimizeBacklogCommand{
			PlanName:          planName,
			Items:             items,
			Capacity:          planCapacity,
			PrecomputedScores: planScored,
		}
		if planCapacity == 0 {
			cmdInput.Capacity = app.DefaultCapacity
		}
		if planDepsFile != "" {
			deps, err := loadDependencies(planDepsFile)
			if err != nil {
				return err
			}
			cmdInput.Dependencies = deps
		}

		result, err := app.OptimizeBacklogHandler.Handle(cmd.Context(), cmdInput)
		if err != nil {
			return fmt.Errorf("optimization failed: %w", err)
		}
		if app.PlanCache != nil {
			// The new plan supersedes whatever latest is cached.
			app.PlanCache.Invalidate(cmd.Context(), result.PlanID)
		}

		if planJSONOutput {
			return printJSON(result)
		}

		fmt.Printf("Plan %s optimized (%d items)\n\n", result.PlanID, len(result.Items))
		fmt.Printf("%-12s %-8s %-8s %-8s %s\n", "ID", "SCORE", "TIER", "SIZE", "TITLE")
		for _, item := range result.Items {
			fmt.Printf("%-12s %-8.2f %-8s %-8.1f %s\n",
				item.ID, item.Score, item.Tier, item.JobSize, item.Title)
		}
		if result.Truncated > 0 {
			fmt.Printf("\n%d items did not fit the capacity budget\n", result.Truncated)
		}
		if len(result.Unresolved) > 0 {
			fmt.Printf("\nUnresolvable dependencies, appended in priority order: %v\n", result.Unresolved)
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show [plan-id]",
	Short: "Show a stored plan (latest when no ID is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("plan lookup requires an initialized application")
		}

		query := queries.GetPlanQuery{}
		if len(args) == 1 {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid plan ID: %w", err)
			}
			query.PlanID = id
		}

		ctx := cmd.Context()
		if app.PlanCache != nil {
			var (
				view *queries.PlanView
				ok   bool
			)
			if query.PlanID == uuid.Nil {
				view, ok = app.PlanCache.GetLatest(ctx)
			} else {
				view, ok = app.PlanCache.Get(ctx, query.PlanID)
			}
			if ok {
				return renderPlan(view)
			}
		}

		view, err := app.GetPlanHandler.Handle(ctx, query)
		if err != nil {
			return err
		}
		if app.PlanCache != nil {
			if query.PlanID == uuid.Nil {
				app.PlanCache.PutLatest(ctx, view)
			} else {
				app.PlanCache.Put(ctx, view)
			}
		}
		return renderPlan(view)
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored plans, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("plan lookup requires an initialized application")
		}

		views, err := app.ListPlansHandler.Handle(cmd.Context(), queries.ListPlansQuery{Limit: planListLimit})
		if err != nil {
			return err
		}

		if planJSONOutput {
			return printJSON(views)
		}

		fmt.Printf("%-38s %-20s %-10s %-8s %s\n", "ID", "NAME", "CAPACITY", "ITEMS", "OPTIMIZED")
		for _, v := range views {
			fmt.Printf("%-38s %-20s %-10.1f %-8d %s\n",
				v.ID, v.Name, v.Capacity, len(v.ItemOrder), v.OptimizedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func renderPlan(view *queries.PlanView) error {
	if planJSONOutput {
		return printJSON(view)
	}

	fmt.Printf("Plan:      %s\n", view.Name)
	fmt.Printf("ID:        %s\n", view.ID)
	fmt.Printf("Capacity:  %.1f\n", view.Capacity)
	fmt.Printf("Optimized: %s\n\n", view.OptimizedAt.Format("2006-01-02 15:04:05"))

	selected := make(map[string]bool, len(view.SelectedIDs))
	for _, id := range view.SelectedIDs {
		selected[id] = true
	}

	fmt.Println("Execution order:")
	for i, id := range view.ItemOrder {
		marker := " "
		if selected[id] {
			marker = "*"
		}
		fmt.Printf("  %2d. [%s] %s\n", i+1, marker, id)
	}
	if len(view.Unresolved) > 0 {
		fmt.Printf("\nUnresolvable dependencies: %v\n", view.Unresolved)
	}
	return nil
}

func init() {
	planOptimizeCmd.Flags().StringVar(&planItemsFile, "items", "", "JSON file with backlog items (required)")
	planOptimizeCmd.Flags().StringVar(&planDepsFile, "deps", "", "JSON file with item dependencies")
	planOptimizeCmd.Flags().StringVar(&planName, "name", "backlog", "plan name")
	planOptimizeCmd.Flags().Float64Var(&planCapacity, "capacity", 0, "capacity budget in effort units (0 = unlimited)")
	planOptimizeCmd.Flags().BoolVar(&planScored, "scored", false, "items already carry scores and tiers")
	_ = planOptimizeCmd.MarkFlagRequired("items")

	planListCmd.Flags().IntVar(&planListLimit, "limit", 20, "maximum plans to list")

	planCmd.PersistentFlags().BoolVar(&planJSONOutput, "json", false, "output JSON")
	planCmd.AddCommand(planOptimizeCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planListCmd)
	rootCmd.AddCommand(planCmd)
}
