package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/syllabus-api/internal/api"
	"github.com/phrazzld/syllabus-api/internal/config"
	"github.com/phrazzld/syllabus-api/internal/export"
	"github.com/phrazzld/syllabus-api/internal/generation"
	"github.com/phrazzld/syllabus-api/internal/generation/static"
	"github.com/phrazzld/syllabus-api/internal/goal"
	"github.com/phrazzld/syllabus-api/internal/plan"
	"github.com/phrazzld/syllabus-api/internal/platform/gemini"
	"github.com/phrazzld/syllabus-api/internal/platform/github"
	"github.com/phrazzld/syllabus-api/internal/platform/notion"
	"github.com/phrazzld/syllabus-api/internal/platform/trello"
	"github.com/phrazzld/syllabus-api/internal/platform/youtube"
	"github.com/phrazzld/syllabus-api/internal/service"
	"github.com/phrazzld/syllabus-api/internal/task"
)

// application holds the shared application dependencies to simplify wiring
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	orchestrator *service.Orchestrator
	registry     *service.PlanRegistry
	exporter     *export.Exporter

	taskStore  *task.Store
	taskRunner *task.TaskRunner

	handler *api.CurriculumHandler
}

// newApplication creates an application instance with all dependencies
// initialized: generators per config, the pipeline, the task runner, and the
// API handler.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	videos, err := setupVideoCurator(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize video curator: %w", err)
	}

	quizzes, err := setupQuizGenerator(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize quiz generator: %w", err)
	}

	aggregator := service.NewWeeklyAggregator(
		videos,
		static.NewDocFinder(),
		static.NewProjectBuilder(),
		quizzes,
		time.Duration(cfg.Builder.GeneratorTimeoutSeconds)*time.Second,
		logger,
	)

	app.orchestrator = service.NewOrchestrator(
		goal.NewAnalyzer(logger),
		plan.NewPlanner(logger),
		aggregator,
		logger,
	)

	app.registry = service.NewPlanRegistry()
	app.exporter = export.NewExporter(logger)

	app.taskStore = task.NewStore()
	app.taskRunner = task.NewTaskRunner(app.taskStore, task.RunnerConfig{
		WorkerCount: cfg.Builder.BuildWorkers,
		QueueSize:   100,
	}, logger)
	if err := app.taskRunner.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start task runner: %w", err)
	}

	notionPusher, trelloPusher, githubPublisher, err := setupIntegrations(cfg, logger)
	if err != nil {
		return nil, err
	}

	app.handler = api.NewCurriculumHandler(
		app.orchestrator,
		app.taskRunner,
		app.taskStore,
		app.registry,
		app.exporter,
		notionPusher,
		trelloPusher,
		githubPublisher,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// setupVideoCurator selects the video source configured for the builder. The
// YouTube curator always carries the static catalog as its fallback.
func setupVideoCurator(cfg *config.Config, logger *slog.Logger) (generation.VideoCurator, error) {
	fallback := static.NewVideoCurator()
	if cfg.Builder.VideoSource != "youtube" {
		return fallback, nil
	}
	return youtube.NewCurator(cfg.Builder.YouTubeAPIKey, fallback, logger)
}

// setupQuizGenerator selects the quiz source configured for the builder.
func setupQuizGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (generation.QuizGenerator, error) {
	if cfg.Builder.QuizSource != "gemini" {
		return static.NewQuizGenerator(), nil
	}
	return gemini.NewQuizGenerator(ctx, logger, gemini.Config{
		APIKey:            cfg.Builder.GeminiAPIKey,
		ModelName:         cfg.Builder.GeminiModelName,
		MaxRetries:        3,
		RetryDelaySeconds: 2,
	})
}

// setupIntegrations builds the optional push clients. Each returns nil when
// its credentials are absent; the handler responds 503 for those routes.
func setupIntegrations(cfg *config.Config, logger *slog.Logger) (api.NotionPusher, api.TrelloPusher, api.GitHubPublisher, error) {
	var (
		notionPusher    api.NotionPusher
		trelloPusher    api.TrelloPusher
		githubPublisher api.GitHubPublisher
	)

	if cfg.Integrations.NotionEnabled() {
		client, err := notion.NewClient(cfg.Integrations.Notion.Token, cfg.Integrations.Notion.ParentID, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize Notion client: %w", err)
		}
		notionPusher = client
	}

	if cfg.Integrations.TrelloEnabled() {
		client, err := trello.NewClient(cfg.Integrations.Trello.APIKey, cfg.Integrations.Trello.Token, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize Trello client: %w", err)
		}
		trelloPusher = client
	}

	if cfg.Integrations.GitHubEnabled() {
		client, err := github.NewClient(cfg.Integrations.GitHub.Token, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize GitHub client: %w", err)
		}
		githubPublisher = client
	}

	return notionPusher, trelloPusher, githubPublisher, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.taskRunner != nil {
		app.taskRunner.Stop()
	}
	app.logger.Info("Application shutdown completed")
}
