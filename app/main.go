package main

import (
	"context"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"inventory-system/internal/routes"
	"inventory-system/migrations"
	"inventory-system/pkg/config"
	"inventory-system/pkg/database"
	"inventory-system/pkg/database/postgresql"
	apperrors "inventory-system/pkg/errors"
	applogger "inventory-system/pkg/logger"
	"inventory-system/pkg/metrics"
	appmw "inventory-system/pkg/middleware"
	"inventory-system/pkg/utils"
	"inventory-system/pkg/validation"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORS())
	e.Use(appmw.RequestLogger(logger))

	m := metrics.New()
	e.Use(m.Middleware())
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	if err := database.RunMigrations(cfg.Postgres.DSN, migrations.FS); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	dbConn, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("redis connection failed", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	routes.InitRouter(e, dbConn, redisClient, logger, cfg)

	logger.Info("server starting",
		zap.String("port", cfg.Server.Port),
		zap.String("environment", cfg.App.Env),
	)
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
