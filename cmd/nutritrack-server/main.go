package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nutritrack/nutritrack/internal/config"
	"github.com/nutritrack/nutritrack/internal/domain/insights"
	"github.com/nutritrack/nutritrack/internal/domain/nutricoach"
	"github.com/nutritrack/nutritrack/internal/domain/patient"
	"github.com/nutritrack/nutritrack/internal/domain/questionnaire"
	"github.com/nutritrack/nutritrack/internal/platform/auth"
	"github.com/nutritrack/nutritrack/internal/platform/db"
	"github.com/nutritrack/nutritrack/internal/platform/middleware"
	"github.com/nutritrack/nutritrack/internal/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nutritrack-server",
		Short: "NutriTrack API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the NutriTrack API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import the patient dataset if not already applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			ledger := seed.NewLedgerRepo(pool)
			patients := patient.NewRepo(pool)
			seeder := seed.NewSeeder(ledger, patients, cfg.SeedCSVPath, logger)

			if force {
				// Forcing re-runs the import under a fresh key, useful after
				// replacing the dataset file.
				return seeder.SeedIfNeeded(ctx, fmt.Sprintf("%s-%d", seed.SourceCSV, time.Now().Unix()))
			}
			return seeder.SeedIfNeeded(ctx, seed.SourceCSV)
		},
	}
	cmd.Flags().Bool("force", false, "Re-import even when already applied")
	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Migrations
	migrator := db.NewMigrator(pool, "./migrations")
	applied, err := migrator.Up(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}
	if applied > 0 {
		logger.Info().Int("count", applied).Msg("applied migrations")
	}

	// Repositories
	patientRepo := patient.NewRepo(pool)
	questionnaireRepo := questionnaire.NewRepo(pool)
	tipRepo := nutricoach.NewTipRepo(pool)
	ledgerRepo := seed.NewLedgerRepo(pool)

	// One-time dataset import
	seeder := seed.NewSeeder(ledgerRepo, patientRepo, cfg.SeedCSVPath, logger)
	if err := seeder.SeedIfNeeded(ctx, seed.SourceCSV); err != nil {
		logger.Fatal().Err(err).Msg("seeding failed")
	}

	// Session tokens
	signingKey := cfg.SigningKey()
	if len(signingKey) == 0 {
		// Development fallback. Sessions do not survive a restart.
		signingKey = make([]byte, 32)
		if _, err := rand.Read(signingKey); err != nil {
			logger.Fatal().Err(err).Msg("failed to generate signing key")
		}
		logger.Warn().Msg("SESSION_SIGNING_KEY not set, generated a random key")
	}
	tokens := auth.NewTokenIssuer(signingKey, time.Duration(cfg.SessionTTLMinutes)*time.Minute)

	// Services
	patientSvc := patient.NewService(patientRepo)
	questionnaireSvc := questionnaire.NewService(questionnaireRepo)
	insightsSvc := insights.NewService(patientRepo)
	coachSvc := nutricoach.NewService(
		tipRepo,
		patientRepo,
		questionnaireRepo,
		nutricoach.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel),
		nutricoach.NewFruityViceClient(cfg.FruityViceBaseURL),
	)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// API groups
	public := e.Group("/api/v1")
	protected := e.Group("/api/v1", auth.RequireSession(tokens))

	patient.NewHandler(patientSvc, tokens).RegisterRoutes(public, protected)
	questionnaire.NewHandler(questionnaireSvc).RegisterRoutes(protected)
	insights.NewHandler(insightsSvc).RegisterRoutes(protected)
	nutricoach.NewHandler(coachSvc).RegisterRoutes(protected)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
