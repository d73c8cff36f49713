package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"kalakruti_api/internal/adapter/http/handlers"
	"kalakruti_api/internal/adapter/http/routes"
	"kalakruti_api/internal/adapter/persistence/repository"
	"kalakruti_api/internal/config"
	"kalakruti_api/internal/domain/pricing"
	"kalakruti_api/internal/infrastructure/cache"
	"kalakruti_api/internal/infrastructure/catalogdb"
	"kalakruti_api/internal/infrastructure/database"
	"kalakruti_api/internal/infrastructure/export"
	"kalakruti_api/internal/infrastructure/notify"
	"kalakruti_api/internal/usecase"
	"kalakruti_api/internal/usecase/interfaces"
	"kalakruti_api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}

func loadTables(cfg *config.Config) (*pricing.Tables, error) {
	if cfg.PricingTablesPath != "" {
		return pricing.LoadTablesFile(cfg.PricingTablesPath)
	}
	return pricing.DefaultTables()
}

func runServe(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tables, err := loadTables(cfg)
	if err != nil {
		log.Error("[app] pricing tables rejected", zap.Error(err))
		return err
	}
	engine := pricing.NewEngine(tables)

	ddb, err := database.NewDynamoDBClient(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.DynamoDBEnsureTables {
		if err := database.EnsureTables(ctx, ddb, log,
			database.EstimatesTableInput(cfg.EstimatesTable),
			database.ContactsTableInput(cfg.ContactsTable),
		); err != nil {
			return err
		}
	}

	catalogDB, err := catalogdb.Open(ctx, cfg.CatalogDBDriver, cfg.CatalogDBDSN, log)
	if err != nil {
		return err
	}
	defer catalogDB.Close()
	if err := catalogdb.Migrate(ctx, catalogDB, cfg.CatalogDBDriver); err != nil {
		return err
	}

	var notifier interfaces.ILeadNotifier
	if cfg.TelegramEnabled() {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, log)
		if err != nil {
			log.Warn("[app] telegram notifier disabled", zap.Error(err))
		} else {
			notifier = tg
		}
	}

	estimateUC := usecase.NewEstimateUseCase(
		engine,
		repository.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable),
		notifier,
		export.NewXLSXExporter(),
		log,
	)
	contactUC := usecase.NewContactUseCase(repository.NewContactDynamoRepository(ddb, cfg.ContactsTable), notifier, log)
	catalogUC := usecase.NewCatalogUseCase(repository.NewCatalogSQLRepository(catalogDB), log)

	deps := routes.Deps{
		Logger:         log,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Health:         handlers.NewHealthHandler(cfg.AppEnv),
		Estimate:       handlers.NewEstimateHandler(estimateUC, log),
		Contact:        handlers.NewContactHandler(contactUC, log),
		Catalog:        handlers.NewCatalogHandler(catalogUC, log),
	}
	if cfg.RedisAddr != "" {
		rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("[app] redis unreachable, rate limiter will fail open", zap.Error(err))
		}
		deps.Limiter = cache.NewRateLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)
	} else {
		log.Warn("[app] REDIS_ADDR not set, rate limiting disabled")
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("[app] listening", zap.Int("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("[app] failed to start the application", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("[app] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func runMigrate(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := catalogdb.Open(ctx, cfg.CatalogDBDriver, cfg.CatalogDBDSN, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := catalogdb.Migrate(ctx, db, cfg.CatalogDBDriver); err != nil {
		return err
	}
	log.Info("[app] catalog migrations applied", zap.String("driver", cfg.CatalogDBDriver))
	return nil
}

func runEnsureTables(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	ddb, err := database.NewDynamoDBClient(ctx, cfg)
	if err != nil {
		return err
	}
	return database.EnsureTables(ctx, ddb, log,
		database.EstimatesTableInput(cfg.EstimatesTable),
		database.ContactsTableInput(cfg.ContactsTable),
	)
}
