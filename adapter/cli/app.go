package cli

import (
	"github.com/felixgeelhaar/cadence/internal/planning/application/commands"
	"github.com/felixgeelhaar/cadence/internal/planning/application/queries"
	"github.com/felixgeelhaar/cadence/internal/planning/application/services"
	"github.com/felixgeelhaar/cadence/internal/planning/infrastructure/cache"
)

// App holds the CLI application dependencies.
type App struct {
	// Command handlers
	OptimizeBacklogHandler           *commands.OptimizeBacklogHandler
	SynthesizeRecommendationsHandler *commands.SynthesizeRecommendationsHandler

	// Query handlers
	GetPlanHandler       *queries.GetPlanHandler
	ListPlansHandler     *queries.ListPlansHandler
	ListWorkItemsHandler *queries.ListWorkItemsHandler

	// Services usable without persistence
	ScoringEngine *services.ScoringEngine

	// Optional plan cache
	PlanCache *cache.RedisPlanCache

	// Default capacity applied when the flag is omitted
	DefaultCapacity float64
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
