// Package app wires the application's dependencies together.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/cadence/internal/planning/application/commands"
	"github.com/felixgeelhaar/cadence/internal/planning/application/queries"
	"github.com/felixgeelhaar/cadence/internal/planning/application/services"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/plan"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/value_objects"
	"github.com/felixgeelhaar/cadence/internal/planning/domain/workitem"
	planningCache "github.com/felixgeelhaar/cadence/internal/planning/infrastructure/cache"
	planningPersistence "github.com/felixgeelhaar/cadence/internal/planning/infrastructure/persistence"
	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/cadence/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/cadence/pkg/config"
	"github.com/felixgeelhaar/cadence/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics observability.Metrics

	// Infrastructure
	DB        *sql.DB
	Pool      *pgxpool.Pool
	Redis     *redis.Client
	Publisher eventbus.Publisher
	PlanCache *planningCache.RedisPlanCache

	// Repositories
	ItemRepo workitem.Repository
	PlanRepo plan.Repository

	// Domain services
	ScoringEngine        *services.ScoringEngine
	BacklogOptimizer     *services.BacklogOptimizer
	RecommendationEngine *services.RecommendationEngine

	// Command handlers
	OptimizeBacklogHandler           *commands.OptimizeBacklogHandler
	SynthesizeRecommendationsHandler *commands.SynthesizeRecommendationsHandler

	// Query handlers
	GetPlanHandler       *queries.GetPlanHandler
	ListPlansHandler     *queries.ListPlansHandler
	ListWorkItemsHandler *queries.ListWorkItemsHandler
}

// NewContainer creates a fully wired container. PostgreSQL is used when a
// database URL is configured, otherwise the local SQLite file. Redis and
// RabbitMQ are optional and degrade to nothing when unconfigured.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewInMemoryMetrics(),
	}

	if err := c.initStorage(ctx, cfg); err != nil {
		return nil, err
	}
	c.initEventBus(cfg)
	c.initCache(cfg)
	c.initServices(cfg)
	c.initHandlers()

	logger.Info("container initialized",
		"database", c.databaseDriver(),
		"cache", c.Redis != nil,
		"events", cfg.EventsPublished,
	)

	return c, nil
}

func (c *Container) databaseDriver() database.Driver {
	if c.Pool != nil {
		return database.DriverPostgres
	}
	return database.DriverSQLite
}

func (c *Container) initStorage(ctx context.Context, cfg *config.Config) error {
	if cfg.DatabaseURL != "" {
		pool, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		c.Pool = pool
		c.ItemRepo = planningPersistence.NewPostgresWorkItemRepository(pool)
		c.PlanRepo = planningPersistence.NewPostgresPlanRepository(pool)
		return nil
	}

	db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	c.DB = db
	c.ItemRepo = planningPersistence.NewSQLiteWorkItemRepository(db)
	c.PlanRepo = planningPersistence.NewSQLitePlanRepository(db)
	return nil
}

func (c *Container) initEventBus(cfg *config.Config) {
	if !cfg.EventsPublished || cfg.RabbitMQURL == "" {
		c.Publisher = eventbus.NewNoopPublisher(c.Logger)
		return
	}

	publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, c.Logger)
	if err != nil {
		// Event delivery is best effort; planning works without a broker.
		c.Logger.Warn("RabbitMQ unavailable, events disabled", "error", err)
		c.Publisher = eventbus.NewNoopPublisher(c.Logger)
		return
	}
	c.Publisher = publisher
}

func (c *Container) initCache(cfg *config.Config) {
	if cfg.RedisURL == "" {
		return
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		c.Logger.Warn("invalid Redis URL, plan cache disabled", "error", err)
		return
	}

	c.Redis = redis.NewClient(opts)
	c.PlanCache = planningCache.NewRedisPlanCache(c.Redis, cfg.PlanCacheTTL, c.Logger, c.Metrics)
}

func (c *Container) initServices(cfg *config.Config) {
	weights := value_objects.ScoringWeights{
		BusinessValue:   cfg.BusinessValueWeight,
		TimeCriticality: cfg.TimeCriticalityWeight,
		RiskReduction:   cfg.RiskReductionWeight,
	}
	if err := weights.Validate(); err != nil {
		c.Logger.Warn("invalid scoring weights, using defaults", "error", err)
		weights = value_objects.DefaultScoringWeights()
	}

	c.ScoringEngine = services.NewScoringEngine(weights, c.Logger)
	c.BacklogOptimizer = services.NewBacklogOptimizer(c.Logger, c.Metrics)
	c.RecommendationEngine = services.NewRecommendationEngine(c.Logger)
}

func (c *Container) initHandlers() {
	c.OptimizeBacklogHandler = commands.NewOptimizeBacklogHandler(
		c.ItemRepo, c.PlanRepo, c.ScoringEngine, c.BacklogOptimizer, c.Publisher, c.Logger)
	c.SynthesizeRecommendationsHandler = commands.NewSynthesizeRecommendationsHandler(
		c.ItemRepo, c.ScoringEngine, c.RecommendationEngine, c.Logger)
	c.GetPlanHandler = queries.NewGetPlanHandler(c.PlanRepo)
	c.ListPlansHandler = queries.NewListPlansHandler(c.PlanRepo)
	c.ListWorkItemsHandler = queries.NewListWorkItemsHandler(c.ItemRepo)
}

// Close releases all held resources.
func (c *Container) Close() {
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			c.Logger.Warn("failed to close publisher", "error", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("failed to close Redis client", "error", err)
		}
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Warn("failed to close database", "error", err)
		}
	}
}

// NewDevelopmentContainer creates a container backed by an in-memory
// database, for tests and local experimentation.
func NewDevelopmentContainer(ctx context.Context, logger *slog.Logger) (*Container, error) {
	cfg := config.Default()
	cfg.SQLitePath = ":memory:"
	cfg.DatabaseURL = ""
	cfg.RedisURL = ""
	cfg.EventsPublished = false
	return NewContainer(ctx, cfg, logger)
}
