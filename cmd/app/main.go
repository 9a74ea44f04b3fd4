package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"foodcourt/cmd"
	inhttp "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/adapters/out/postgres/menurepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/profilerepo"
	"foodcourt/internal/adapters/out/postgres/ratingrepo"
	"foodcourt/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := getConfigs()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := migrateDatabase(gormDB); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		logger.Error("failed to build composition root", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(
		app.CreateReconcileAssignmentsCommandHandler(),
		configs.AssignReconcileSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start scheduled jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := buildWebServer(&app, configs)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			logger.Error("web server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	app.Hub().Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("web server shutdown failed", "error", err)
	}
}

func getConfigs() (cmd.Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		return cmd.Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	restaurantLat, err := strconv.ParseFloat(os.Getenv("RESTAURANT_LATITUDE"), 64)
	if err != nil {
		return cmd.Config{}, fmt.Errorf("invalid RESTAURANT_LATITUDE: %w", err)
	}
	restaurantLng, err := strconv.ParseFloat(os.Getenv("RESTAURANT_LONGITUDE"), 64)
	if err != nil {
		return cmd.Config{}, fmt.Errorf("invalid RESTAURANT_LONGITUDE: %w", err)
	}

	return cmd.Config{
		HTTPPort:                os.Getenv("HTTP_PORT"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBPort:                  os.Getenv("DB_PORT"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               os.Getenv("DB_SSLMODE"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		RoutingBaseURL:          os.Getenv("ROUTING_BASE_URL"),
		AssignReconcileSchedule: os.Getenv("ASSIGN_RECONCILE_SCHEDULE"),
		RestaurantLatitude:      restaurantLat,
		RestaurantLongitude:     restaurantLng,
	}, nil
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&menurepo.MenuItemDTO{},
		&profilerepo.ProfileDTO{},
		&ratingrepo.RatingDTO{},
	)
}

func buildWebServer(app *cmd.CompositionRoot, configs cmd.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := inhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateClaimOrderCommandHandler(),
		app.CreateSubmitRatingCommandHandler(),
		app.CreateReviseRatingCommandHandler(),
		app.CreateSaveMenuItemCommandHandler(),
		app.CreateRemoveMenuItemCommandHandler(),
		app.CreateEnsureProfileCommandHandler(),
		app.CreateUpdateProfileCommandHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.Hub(),
	)
	server.RegisterRoutes(e, configs.JWTSecret)

	return e
}
