package main

// @title           Firebird Track - Receiver API
// @version         1.0
// @description     Local save-user-details endpoint. Stores submitted user attributes and publishes a saved event.
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
// @host      localhost:8090
// @BasePath  /
// @securityDefinitions.basic  BasicAuth

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/Alwanly/firebird-track/docs/receiver"
	"github.com/Alwanly/firebird-track/internal/config"
	"github.com/Alwanly/firebird-track/internal/server/receiver/handler"
	authentication "github.com/Alwanly/firebird-track/pkg/auth"
	"github.com/Alwanly/firebird-track/pkg/database"
	"github.com/Alwanly/firebird-track/pkg/deps"
	"github.com/Alwanly/firebird-track/pkg/logger"
	"github.com/Alwanly/firebird-track/pkg/middleware"
	"github.com/Alwanly/firebird-track/pkg/pubsub"
	swagger "github.com/gofiber/swagger"
)

func main() {
	log, err := logger.NewLoggerFromEnv("receiver")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting receiver service")

	cfg, err := config.LoadReceiverConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	log.Info("configuration loaded",
		logger.String("server_addr", cfg.ServerAddr),
		logger.String("database_path", cfg.DatabasePath),
		logger.Strings("allowed_project_ids", cfg.AllowedProjectIDs),
	)

	mid := middleware.NewAuthMiddleware(middleware.SetBasicAuth(&authentication.BasicAuthTConfig{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	}))

	db, err := database.NewSQLiteDB(cfg.DatabasePath)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	log.Info("database initialized", logger.String("path", cfg.DatabasePath))

	if err := database.RunMigrations(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}
	log.Info("database migrations applied successfully")

	app := fiber.New(fiber.Config{
		AppName:               "Firebird Receiver",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.CanonicalLoggerMiddleware(log))

	deps := deps.App{
		Fiber:      app,
		Database:   db,
		Logger:     log,
		Middleware: mid,
	}

	if cfg.Redis != nil {
		pub, err := pubsub.NewRedisPublisher(pubsub.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, log)
		if err != nil {
			log.WithError(err).Error("failed to initialize redis publisher, continuing without events",
				logger.String("mode", "store-only"))
		} else {
			deps.Pub = pub
			log.Info("redis publisher initialized",
				logger.String("host", cfg.Redis.Host),
				logger.Int("port", cfg.Redis.Port),
				logger.String("channel", cfg.EventChannel))
			defer pub.Close()
		}
	} else {
		log.Info("no Redis configuration provided; skipping event publishing")
	}

	handler.NewHandler(deps, cfg)

	app.Get("/swagger/*", swagger.HandlerDefault)

	ctx, cancel := context.WithCancel(context.Background())
	gErr, gCtx := errgroup.WithContext(ctx)

	gErr.Go(func() error {
		log.Info("receiver service is running", logger.String("address", cfg.ServerAddr))
		if err := app.Listen(cfg.ServerAddr); err != nil {
			cancel()
			return err
		}
		return nil
	})

	gErr.Go(func() error {
		<-gCtx.Done()

		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("failed to shutdown fiber app")
			return err
		}

		conn, err := db.DB()
		if err != nil {
			log.WithError(err).Error("failed to get database connection")
			return err
		}
		if err := conn.Close(); err != nil {
			log.WithError(err).Error("failed to close database")
			return err
		}

		return nil
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Info("shutdown signal received")
		cancel()
	}()

	if err := gErr.Wait(); err != nil {
		log.WithError(err).Fatal("receiver service encountered an error")
	}

	log.Info("receiver service stopped gracefully")
}
