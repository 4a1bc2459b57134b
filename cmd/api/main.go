package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"standeal-backend/config"
	_ "standeal-backend/docs" // Important for Swagger
	"standeal-backend/internal/delivery/http/middleware"
	v1 "standeal-backend/internal/delivery/http/v1"
	"standeal-backend/internal/domain"
	"standeal-backend/internal/notify"
	"standeal-backend/internal/repository/postgres"
	"standeal-backend/internal/repository/sqlite"
	"standeal-backend/internal/usecase"
	"standeal-backend/pkg/database"
	"standeal-backend/pkg/email"
	"standeal-backend/pkg/httpserver"
	"standeal-backend/pkg/logger"
	"standeal-backend/pkg/redis"
	"standeal-backend/pkg/security"
	"standeal-backend/pkg/validation"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

type repositories struct {
	quotes   domain.QuoteRepository
	contacts domain.ContactRepository
	status   domain.StatusRepository
	ping     usecase.HealthCheckFunc
	close    func()
}

// @title           Standeal Transport Lead API
// @version         1.0
// @description     Lead intake for the Standeal.md transport landing page.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	if err := run(cfg); err != nil {
		logger.Log.Error("Lead API stopped", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Server exiting")
}

func run(cfg *config.Config) error {
	logger.Log.Info("Starting Standeal lead API", "port", cfg.Port, "storage", cfg.StorageDriver)

	production := gin.Mode() == gin.ReleaseMode
	environment := "development"
	if production {
		environment = "production"
	}
	secLog := security.InitSecurityLogger("standeal-api", environment)
	defer secLog.Sync()

	// 3. Setup Storage
	repos, err := openRepositories(cfg, production)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer repos.close()

	healthChecks := map[string]usecase.HealthCheckFunc{"database": repos.ping}

	// 4. Setup Redis (rate limiting + notification queue)
	mailer := email.NewMailer(cfg, logger.Log)
	var notifier domain.LeadNotifier
	var asyncNotifier *notify.AsyncNotifier

	redisCfg := redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redisCfg); err != nil {
			logger.Log.Warn("Redis unavailable - using in-memory rate limiting", "error", err)
		} else {
			defer redis.Close()
			healthChecks["redis"] = redis.HealthCheck
		}
	}

	if redis.Client() != nil {
		asynqOpts, err := redis.AsynqOptions(redisCfg)
		if err != nil {
			return fmt.Errorf("redis configuration: %w", err)
		}
		queue := asynq.NewClient(asynqOpts)
		defer queue.Close()
		notifier = notify.NewQueueNotifier(queue, cfg.ContactEmail, logger.Log)
		logger.Log.Info("Lead notifications are queued for the worker")
	} else {
		asyncNotifier = notify.NewAsyncNotifier(mailer, cfg.ContactEmail, logger.Log)
		notifier = asyncNotifier
		logger.Log.Info("Lead notifications are sent in-process")
	}

	// 5. Setup UseCases
	validate := validation.New()
	sanitizer := security.NewSanitizer()

	companyUC := usecase.NewCompanyUsecase(cfg.Company)
	quoteUC := usecase.NewQuoteUsecase(repos.quotes, notifier, validate, sanitizer, secLog, logger.Log)
	contactUC := usecase.NewContactUsecase(repos.contacts, notifier, validate, sanitizer, secLog, logger.Log)
	statusUC := usecase.NewStatusUsecase(repos.status, validate)
	healthUC := usecase.NewHealthUsecase(healthChecks)

	if cfg.AdminJWTSecret == "" {
		logger.Log.Warn("ADMIN_JWT_SECRET not set - lead list endpoints are disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rateLimiter := middleware.NewRateLimiter(redis.Client(), secLog)
	rateLimiter.StartCleanup(ctx, 5*time.Minute)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CompanyUC:      companyUC,
		QuoteUC:        quoteUC,
		ContactUC:      contactUC,
		StatusUC:       statusUC,
		HealthUC:       healthUC,
		RateLimiter:    rateLimiter,
		SecurityLogger: secLog,
		Logger:         logger.Log,
		Config:         cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := httpserver.Serve(ctx, srv, 5*time.Second)
	if serveErr == nil {
		logger.Log.Info("Shutting down server...")
	}
	stop()
	if asyncNotifier != nil {
		asyncNotifier.Wait()
	}
	return serveErr
}

func openRepositories(cfg *config.Config, production bool) (*repositories, error) {
	switch cfg.StorageDriver {
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath, production)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		return &repositories{
			quotes:   sqlite.NewQuoteRepository(db),
			contacts: sqlite.NewContactRepository(db),
			status:   sqlite.NewStatusRepository(db),
			ping:     sqlDB.PingContext,
			close:    func() { _ = sqlite.Close(db) },
		}, nil
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if cfg.DBAutoMigrate {
			if err := database.Migrate(ctx, cfg.DBUrl); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		return &repositories{
			quotes:   postgres.NewQuoteRepository(pool),
			contacts: postgres.NewContactRepository(pool),
			status:   postgres.NewStatusRepository(pool),
			ping:     pool.Ping,
			close:    pool.Close,
		}, nil
	default:
		return nil, errors.New("unknown STORAGE_DRIVER " + cfg.StorageDriver)
	}
}
