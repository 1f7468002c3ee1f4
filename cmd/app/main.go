package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleanings/cmd"
	httpin "cleanings/internal/adapters/in/http"
	"cleanings/internal/adapters/out/postgres/migrations"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err = applyMigrations(configs, logger); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	gormDB, err := openDB(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs.HTTPPort, logger)
}

// applyMigrations runs pending schema migrations over a short-lived
// database/sql connection. Startup aborts if the database is unreachable.
func applyMigrations(configs cmd.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", configs.URL())
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		return err
	}

	applied, err := migrations.Apply(db)
	if err != nil {
		return err
	}

	logger.Info("migrations applied", "count", applied)
	return nil
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(configs.DBPoolMinConns)
	sqlDB.SetMaxOpenConns(configs.DBPoolMaxConns)

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateCleaningCommandHandler(),
		app.CreateUpdateCleaningCommandHandler(),
		app.CreateDeleteCleaningCommandHandler(),
		app.CreateGetAllCleaningsQueryHandler(),
		app.CreateGetCleaningByIDQueryHandler(),
		logger,
	)
	httpin.RegisterRoutes(e, server)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting web server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Error shutting down web server: %v", err)
	}
}
