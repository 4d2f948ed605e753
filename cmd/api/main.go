package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/support-service/internal/api/http"
	"github.com/spec-kit/support-service/internal/api/http/handlers"
	"github.com/spec-kit/support-service/internal/config"
	"github.com/spec-kit/support-service/internal/events"
	"github.com/spec-kit/support-service/internal/identifier"
	"github.com/spec-kit/support-service/internal/observability"
	"github.com/spec-kit/support-service/internal/persistence"
	"github.com/spec-kit/support-service/internal/repository"
	"github.com/spec-kit/support-service/internal/service"
	"github.com/spec-kit/support-service/internal/session"
	"github.com/spec-kit/support-service/internal/worker"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	accountRepo := repository.NewAccountRepository()
	ticketRepo := repository.NewTicketRepository()
	if cfg.Support.SeedFixtures {
		accountRepo.Seed(repository.DefaultAccounts())
		ticketRepo.Seed(repository.DefaultTickets())
		logger.Info("seeded fixtures",
			zap.Int("accounts", accountRepo.Count()),
			zap.Int("tickets", ticketRepo.Count()))
	}

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	supportService := service.NewSupportService(service.Dependencies{
		AccountRepo:      accountRepo,
		TicketRepo:       ticketRepo,
		IDs:              identifier.NewGenerator(),
		Dispatcher:       dispatcher,
		Logger:           logger,
		RefundWindowDays: cfg.Support.RefundWindowDays,
	})

	var sessionFactory session.ContextFactory
	if redis.Client != nil {
		ttl := cfg.Support.SessionTTL()
		sessionFactory = func(sessionID string) session.Context {
			return session.NewRedisContext(redis.Client, logger, sessionID, ttl)
		}
	}
	sessions := session.NewManager(sessionFactory)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis, accountRepo, ticketRepo)
	supportHandler := handlers.NewSupportHandler(supportService, sessions, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  healthHandler,
		Support: supportHandler,
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
