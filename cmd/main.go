package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MediCare/cache"
	"MediCare/config"
	"MediCare/database"
	"MediCare/logger"
	"MediCare/metrics"
	"MediCare/routes"
	"MediCare/services"
	"MediCare/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "medicare",
		Short:         "MediCare hospital records API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the seed data as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := database.NewStore()
			if err := database.Seed(ctx, store, utils.PasswordHasher(bcrypt.MinCost)); err != nil {
				return err
			}
			snapshot, err := store.Snapshot(ctx)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snapshot)
		},
	}
}

func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cfg *config.AppConfig) error {
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Tables are rebuilt from seed data on every start.
	store := database.NewStore()
	if err := database.Seed(ctx, store, utils.PasswordHasher(cfg.PasswordCost)); err != nil {
		return err
	}

	sessions, closeSessions, err := openSessionCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	deps := routes.Dependencies{
		Config:   cfg,
		Store:    store,
		Sessions: sessions,
		Metrics:  m,
	}
	if cfg.SMTPHost != "" {
		mailer, err := utils.NewMailer(cfg.SMTP())
		if err != nil {
			return err
		}
		deps.Notifier = mailer
		log.Info().Str("host", cfg.SMTPHost).Msg("Booking confirmations will be e-mailed")
	} else {
		deps.Notifier = services.LogNotifier{}
	}

	handler, err := routes.SetupRoutes(deps)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Info().Msg("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("Server exited gracefully")
	return nil
}

// openSessionCache connects to Redis when REDIS_URL is set and otherwise
// keeps sessions in memory.
func openSessionCache(ctx context.Context, cfg *config.AppConfig) (cache.Cache, func(), error) {
	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set; keeping sessions in memory")
		memory := cache.NewMemoryCache(time.Minute)
		return memory, func() { _ = memory.Close() }, nil
	}

	client, err := database.NewRedisClient(ctx, cfg.Redis())
	if err != nil {
		return nil, nil, err
	}
	redisCache, err := cache.NewRedisCache(client)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return redisCache, func() {
		database.LogPoolStats(client)
		if err := redisCache.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}, nil
}
