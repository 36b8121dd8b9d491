package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/cmd"
	"github.com/mEdHaT33/Arkan/internal/config"
	"github.com/mEdHaT33/Arkan/internal/core/container"
	"github.com/mEdHaT33/Arkan/internal/core/logger"
	"github.com/mEdHaT33/Arkan/internal/core/routes"
	"github.com/mEdHaT33/Arkan/internal/middleware"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("configuration error", zap.Error(err))
	}

	appContainer := container.NewAppContainer(cfg, zapLogger)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowOrigins))
	router.Use(middleware.TimeoutMiddleware(cfg.RemoteTimeout + 5*time.Second))

	routes.RegisterUtilityRoutes(router)
	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterProtectedRoutes(router, appContainer)

	zapLogger.Info("starting console",
		zap.String("addr", cfg.AppHost),
		zap.String("backend", cfg.RemoteBaseURL),
	)

	if err := router.Run(cfg.AppHost); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
