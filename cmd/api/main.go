package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/insighta-backoffice/internal/api/http"
	"github.com/spec-kit/insighta-backoffice/internal/api/http/handlers"
	"github.com/spec-kit/insighta-backoffice/internal/auth"
	"github.com/spec-kit/insighta-backoffice/internal/config"
	"github.com/spec-kit/insighta-backoffice/internal/domain"
	"github.com/spec-kit/insighta-backoffice/internal/events"
	"github.com/spec-kit/insighta-backoffice/internal/observability"
	"github.com/spec-kit/insighta-backoffice/internal/persistence"
	"github.com/spec-kit/insighta-backoffice/internal/repository"
	"github.com/spec-kit/insighta-backoffice/internal/service"
	"github.com/spec-kit/insighta-backoffice/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	ticketRepo := repository.NewTicketRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	sessions := auth.NewSessionStore(redis.Client)

	auditService := service.NewAuditService(auditRepo, logger)
	authService := service.NewAuthService(cfg.Auth, staffRepo, auditService, sessions)
	categoryService := service.NewCategoryService(categoryRepo, auditService, dispatcher)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:   ticketRepo,
		CategoryRepo: categoryRepo,
		StaffRepo:    staffRepo,
		Audit:        auditService,
		Transitions:  domain.DefaultTransitions(cfg.Tickets.AllowReopenClosed),
		Dispatcher:   dispatcher,
	})
	staffService := service.NewStaffService(cfg.Auth, staffRepo, auditService, dispatcher)
	if cfg.Auth.SeedAdminEmail != "" && cfg.Auth.SeedAdminPassword != "" {
		if err := staffService.EnsureAdminAccount(ctx, cfg.Auth.SeedAdminEmail, cfg.Auth.SeedAdminPassword); err != nil {
			logger.Fatal("failed to seed admin account", zap.Error(err))
		}
	}
	statsService := service.NewStatsService(statsRepo)
	nlpService := service.NewNLPService(cfg.NLP)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), sessions, staffRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Categories:     handlers.NewCategoriesHandler(categoryService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Staff:          handlers.NewStaffHandler(staffService),
		Stats:          handlers.NewStatsHandler(statsService),
		Audit:          handlers.NewAuditHandler(auditService),
		NLP:            handlers.NewNLPHandler(nlpService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
