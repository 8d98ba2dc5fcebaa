// cmd/assistant-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"healthcost-assistant/internal/api"
	"healthcost-assistant/internal/common/config"
	"healthcost-assistant/internal/common/database"
	"healthcost-assistant/internal/common/logger"
	"healthcost-assistant/internal/extract"
	"healthcost-assistant/internal/handlers/cost"
	"healthcost-assistant/internal/handlers/health"
	"healthcost-assistant/internal/handlers/hospital"
	"healthcost-assistant/internal/intent"
	"healthcost-assistant/internal/services/costs"
	"healthcost-assistant/internal/services/healthinfo"
	"healthcost-assistant/internal/services/hospitals"
	"healthcost-assistant/internal/supervisor"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)
	zapLog.Info("Starting assistant server...",
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	// --- Init PostgreSQL (optional, sample data covers its absence) ---
	var pg *database.PostgresClient
	if cfg.Database.Postgres.Host != "" {
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Warn("postgres unavailable, using bundled hospital data", zap.Error(err))
			pg = nil
		} else {
			defer pg.Close()
			zapLog.Info("PostgreSQL connected successfully")
		}
	}

	// --- Init Redis (optional, disables the answer cache when absent) ---
	var redisClient *database.RedisClient
	if cfg.Database.Redis.Address != "" {
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Warn("redis unavailable, caching disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			zapLog.Info("Redis connected successfully")
		}
	}

	// --- Init Gemini ---
	if cfg.GenAI.APIKey == "" {
		zapLog.Fatal("GENAI_API_KEY is required")
	}
	generator, err := healthinfo.NewGeminiGenerator(ctx, cfg.GenAI)
	if err != nil {
		zapLog.Fatal("gemini client failed", zap.Error(err))
	}
	zapLog.Info("Gemini client initialized", zap.String("model", cfg.GenAI.Model))

	// --- Build the pipeline ---
	var cache healthinfo.Cache
	if redisClient != nil {
		cache = redisClient
	}
	infoService := healthinfo.NewService(
		generator,
		cache,
		time.Duration(cfg.Supervisor.CacheTTL)*time.Second,
		log,
	)

	var primaryStore hospitals.Store
	if pg != nil {
		primaryStore = hospitals.NewPostgresStore(pg, log)
	}
	directory := hospitals.NewDirectory(primaryStore, log)

	estimator := costs.New(log)

	adapterTimeout := config.GetDuration(cfg.Supervisor.AdapterTimeout)
	sup := supervisor.New(
		extract.NewDefault(log),
		intent.NewDefault(log),
		health.NewHandler(&health.Config{Timeout: adapterTimeout}, infoService, log),
		hospital.NewHandler(&hospital.Config{
			HospitalType: cfg.Supervisor.HospitalType,
			Limit:        cfg.Supervisor.HospitalLimit,
			Timeout:      adapterTimeout,
		}, directory, log),
		cost.NewHandler(&cost.Config{
			DefaultDisease: cfg.Supervisor.CostDefaultDisease,
			HospitalTier:   cfg.Supervisor.CostHospitalTier,
			HospitalDays:   cfg.Supervisor.CostHospitalDays,
			OPDVisits:      cfg.Supervisor.CostAnnualOPDVisits,
			Timeout:        adapterTimeout,
		}, estimator, log),
		log,
	)

	var checks []api.HealthCheck
	if pg != nil {
		checks = append(checks, api.HealthCheck{Name: "postgres", Pinger: pg})
	}
	if redisClient != nil {
		checks = append(checks, api.HealthCheck{Name: "redis", Pinger: redisClient})
	}
	server := api.NewServer(sup, infoService, log, checks...)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Routes(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// pprof on the default mux, local only
	go func() {
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			zapLog.Error("pprof server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Assistant server stopped gracefully")
}
