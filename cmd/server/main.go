package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yukikurage/recipe-api/internal/config"
	"github.com/yukikurage/recipe-api/internal/database"
	"github.com/yukikurage/recipe-api/internal/handlers"
	"github.com/yukikurage/recipe-api/internal/logging"
	"github.com/yukikurage/recipe-api/internal/middleware"
	"github.com/yukikurage/recipe-api/internal/password"
	"github.com/yukikurage/recipe-api/internal/repository"
	"github.com/yukikurage/recipe-api/internal/services"
	"gorm.io/gorm"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running without a subcommand serves the API.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "server",
		Short:        "Recipe API server",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	cmd.PersistentFlags().String("port", "", "Port to listen on (overrides PORT)")
	cmd.PersistentFlags().String("db-driver", "", "Database driver: mysql, postgres or sqlite (overrides DB_DRIVER)")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			slog.Info("migrations applied", "driver", cfg.DBDriver)
			return closeDatabase(db)
		},
	})

	return cmd
}

// loadConfig reads the environment, applies flag overrides and installs the process logger.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()

	if port := flagValue(cmd, "port"); port != "" {
		cfg.Port = port
	}
	if driver := flagValue(cmd, "db-driver"); driver != "" {
		cfg.DBDriver = driver
	}

	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel))
	return cfg
}

// flagValue looks name up on cmd and its parents.
func flagValue(cmd *cobra.Command, name string) string {
	if f := cmd.Flag(name); f != nil {
		return f.Value.String()
	}
	return ""
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// closeQuietly closes db on paths that already have an error to report.
func closeQuietly(db *gorm.DB) {
	if err := closeDatabase(db); err != nil {
		slog.Warn("failed to close database", "error", err)
	}
}

func runServe(cmd *cobra.Command) error {
	cfg := loadConfig(cmd)
	gin.SetMode(cfg.GinMode)

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(db)

	store, err := middleware.NewSessionStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}

	// Recipe generation stays disabled without an API key
	var generator services.RecipeGenerator
	if cfg.OpenAIAPIKey != "" {
		generator = services.NewAIService(cfg.OpenAIAPIKey)
	}

	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	r := handlers.NewRouter(handlers.RouterDeps{
		AuthService:   services.NewAuthService(userRepo, hasher, slog.Default()),
		RecipeService: services.NewRecipeService(recipeRepo, userRepo, generator),
		SessionStore:  store,
	}, gin.Logger(), gin.Recovery())

	slog.Info("server starting", "port", cfg.Port, "driver", cfg.DBDriver, "session_store", cfg.SessionStore)
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
