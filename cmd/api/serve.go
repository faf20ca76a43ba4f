package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/internal/adapter/handler"
	"github.com/johnquangdev/contact-qa/internal/adapter/repository"
	"github.com/johnquangdev/contact-qa/internal/domain/repositories"
	"github.com/johnquangdev/contact-qa/internal/infrastructure/cache"
	"github.com/johnquangdev/contact-qa/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/contact-qa/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/contact-qa/internal/infrastructure/storage"
	"github.com/johnquangdev/contact-qa/internal/usecase/annotation"
	"github.com/johnquangdev/contact-qa/internal/usecase/assessment"
	"github.com/johnquangdev/contact-qa/internal/usecase/contact"
	"github.com/johnquangdev/contact-qa/internal/usecase/draft"
	"github.com/johnquangdev/contact-qa/pkg/ai"
	"github.com/johnquangdev/contact-qa/pkg/config"
	"github.com/johnquangdev/contact-qa/pkg/jwt"
	pkgvalidator "github.com/johnquangdev/contact-qa/pkg/validator"
)

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	logger.Info("Connecting to database")
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			return errors.New("DB_AUTO_MIGRATE is enabled in production; run `contact-qa migrate up` instead")
		}
		if _, err := database.Migrate(db, migrate.Up, 0, logger); err != nil {
			return err
		}
	}

	// Session storage for drafts and review state
	sessions, closeSessions, err := newSessionStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	// Persistence gateway
	assessments := repository.NewAssessmentRepository(db)
	feedback := repository.NewFeedbackRepository(db)
	gateway := repository.NewGateway(
		repository.NewTransactor(db),
		assessments,
		feedback,
		repository.NewConversationRepository(db),
		repository.NewUploadRepository(db),
		logger.Named("gateway"),
	)

	// Assessment form
	drafts := draft.NewStore(sessions, logger.Named("drafts"))
	deps := assessment.Dependencies{
		Drafts:            drafts,
		Gateway:           gateway,
		AI:                ai.NewClient(cfg.AI, logger.Named("ai")),
		GenerationTimeout: cfg.AI.GenerationTimeout,
		MaxUploadBytes:    cfg.Storage.MaxUploadBytes,
		Logger:            logger.Named("assessment"),
	}
	if cfg.Storage.Enabled {
		logger.Info("Connecting to transcript storage", zap.String("endpoint", cfg.Storage.Endpoint))
		transcripts, err := storage.NewTranscriptStore(ctx, &cfg.Storage, logger.Named("storage"))
		if err != nil {
			return err
		}
		deps.Transcripts = transcripts
	}
	controllers := assessment.NewRegistry(deps, cfg.Review.IdleEviction)
	controllers.Start()
	defer controllers.Close()

	// Contacts and transcript review
	contacts := contact.NewContactService(gateway, assessments, feedback, logger.Named("contacts"))
	reviews := annotation.NewRegistry(contacts, sessions, annotation.RegistryConfig{
		Timeouts: annotation.DialogTimeouts{
			annotation.DialogTagEntry: cfg.Review.TagEntryTimeout,
			annotation.DialogLegend:   cfg.Review.LegendTimeout,
		},
		IdleEviction: cfg.Review.IdleEviction,
	}, logger.Named("review"))
	reviews.Start()
	defer reviews.Close()

	// HTTP
	e := newEcho(cfg)
	session := httpmw.NewSessionMiddleware(
		jwt.NewManager(cfg.Session.Secret, cfg.Session.TTL),
		cfg.Session,
		cfg.IsProduction(),
		logger.Named("session"),
	)
	handler.NewRouter(cfg, session.Session(),
		handler.NewFormHandler(drafts, controllers, logger.Named("http")),
		handler.NewReviewHandler(annotation.NewService(reviews), logger.Named("http")),
		handler.NewContactHandler(contacts, logger.Named("http")),
	).Setup(e)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server stopped gracefully")
	return nil
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, cfg.Session.HeaderName},
		ExposeHeaders:    []string{cfg.Session.HeaderName, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))
	return e
}

// newSessionStorage picks Redis when enabled and process memory otherwise
func newSessionStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.SessionStorage, func(), error) {
	if !cfg.Redis.Enabled {
		logger.Info("Using in-memory session storage")
		store := cache.NewMemoryStore(cfg.Session.TTL)
		return store, func() { _ = store.Close() }, nil
	}

	logger.Info("Connecting to Redis", zap.String("addr", cfg.GetRedisAddr()))
	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisStore(client, cfg.Session.TTL), func() { _ = client.Close() }, nil
}
