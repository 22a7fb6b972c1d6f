package app

import (
	"database/sql"
	"net/http"

	"hris-backoffice/internal/config"
	"hris-backoffice/internal/middleware"
	"hris-backoffice/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects postgres and redis and mounts every module on router.
// The returned cleanup closes both connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	// 1. Setup Infrastructure
	gormDB, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		_ = sqlDB.Close()
	}

	router.Use(middleware.RequestID())
	registerOperationalRoutes(router, sqlDB, redisClient)

	// 2. Register Modules & Routes
	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient, logger); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	if err := cfg.Database.RequireDatabase(); err != nil {
		return nil, nil, err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// registerOperationalRoutes mounts /healthz and /metrics outside /api/v1,
// without authentication.
func registerOperationalRoutes(router *gin.Engine, db *sql.DB, rdb *redis.Client) {
	router.GET("/healthz", func(c *gin.Context) {
		ctx := c.Request.Context()
		checks := gin.H{"database": "ok"}
		status := http.StatusOK

		if err := db.PingContext(ctx); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if rdb != nil {
			checks["redis"] = "ok"
			if err := rdb.Ping(ctx).Err(); err != nil {
				checks["redis"] = err.Error()
				status = http.StatusServiceUnavailable
			}
		}

		c.JSON(status, gin.H{"ok": status == http.StatusOK, "checks": checks})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
