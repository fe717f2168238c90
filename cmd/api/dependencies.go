package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant"
	"github.com/FACorreiaa/echo-assistant/internal/domain/assistant/handler"
	"github.com/FACorreiaa/echo-assistant/internal/domain/clients"
	"github.com/FACorreiaa/echo-assistant/internal/domain/finance"
	"github.com/FACorreiaa/echo-assistant/internal/domain/session"
	"github.com/FACorreiaa/echo-assistant/internal/domain/shortcuts"
	"github.com/FACorreiaa/echo-assistant/internal/domain/tutorials"
	"github.com/FACorreiaa/echo-assistant/pkg/ai"
	"github.com/FACorreiaa/echo-assistant/pkg/config"
	"github.com/FACorreiaa/echo-assistant/pkg/cron"
	"github.com/FACorreiaa/echo-assistant/pkg/db"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	DB     *db.DB
	Logger *slog.Logger

	// Repositories
	ClientsRepo   *clients.Repository
	ShortcutsRepo *shortcuts.Repository
	FinanceRepo   *finance.Repository

	// Services
	ClientsService   *clients.Service
	ShortcutsService *shortcuts.Service
	Tutorials        *tutorials.Index
	Sessions         *session.Manager
	Responder        ai.Responder
	AssistantService *assistant.Service
	Scheduler        *cron.Scheduler

	// Handlers
	AssistantHandler *handler.AssistantHandler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}

	if err := deps.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}

	if err := deps.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	if err := deps.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}

	logger.Info("all dependencies initialized successfully")

	return deps, nil
}

// initDatabase initializes the database connection and runs migrations
func (d *Dependencies) initDatabase() error {
	database, err := db.New(db.Config{
		DSN:             d.Config.Database.DSN(),
		MaxConns:        25,
		MinConns:        5,
		MaxConnLifetime: 5 * time.Minute,
	})
	if err != nil {
		return err
	}

	d.DB = database

	if err := d.DB.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	d.Logger.Info("database connected and migrations completed successfully")
	return nil
}

// initRepositories initializes all repository layer dependencies
func (d *Dependencies) initRepositories() error {
	d.ClientsRepo = clients.NewRepository(d.DB.Pool)
	d.ShortcutsRepo = shortcuts.NewRepository(d.DB.Pool)
	d.FinanceRepo = finance.NewRepository(d.DB.Pool)

	d.Logger.Info("repositories initialized")
	return nil
}

// initServices initializes all service layer dependencies
func (d *Dependencies) initServices() error {
	d.ClientsService = clients.NewService(d.ClientsRepo, d.Logger)
	d.ShortcutsService = shortcuts.NewService(d.ShortcutsRepo, d.Logger)

	index, err := tutorials.NewIndex(tutorials.DefaultDocuments())
	if err != nil {
		return fmt.Errorf("failed to build tutorial index: %w", err)
	}
	d.Tutorials = index

	defaultLanguage := assistant.Language(d.Config.Assistant.DefaultLanguage)
	sessionTTL := time.Duration(d.Config.Assistant.SessionTTLMinutes) * time.Minute
	d.Sessions = session.NewManager(defaultLanguage, sessionTTL)

	// Responder stays nil without an API key: fallback outcomes are then
	// returned to the shell without generated text.
	if d.Config.Gemini.APIKey != "" {
		d.Responder = ai.NewGeminiClient(d.Config.Gemini.APIKey, d.Config.Gemini.Model)
	}

	formatter := assistant.NewFormatter(map[assistant.Language]assistant.LocalePairing{
		assistant.LanguageSpanish: {Locale: d.Config.Assistant.SpanishLocale, Currency: d.Config.Assistant.SpanishCurrency},
		assistant.LanguageEnglish: {Locale: d.Config.Assistant.EnglishLocale, Currency: d.Config.Assistant.EnglishCurrency},
	})

	d.AssistantService = assistant.NewService(
		assistant.NewDispatcher(formatter),
		d.ClientsService,
		d.ShortcutsService,
		d.Tutorials,
		d.FinanceRepo,
		assistant.StaticPages{},
		d.Responder,
		d.Logger,
	)

	d.Scheduler = cron.NewScheduler(d.ClientsService, d.ShortcutsService, d.Sessions, d.Logger)

	d.Logger.Info("services initialized")
	return nil
}

// initHandlers initializes all handler dependencies
func (d *Dependencies) initHandlers() error {
	d.AssistantHandler = handler.NewAssistantHandler(d.AssistantService, d.Sessions, d.Logger)

	d.Logger.Info("handlers initialized")
	return nil
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	if d.Scheduler != nil {
		<-d.Scheduler.Stop().Done()
	}
	if d.DB != nil {
		d.DB.Close()
	}
	d.Logger.Info("cleanup completed")
}
