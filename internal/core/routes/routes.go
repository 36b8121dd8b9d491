package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mEdHaT33/Arkan/internal/core/container"
	"github.com/mEdHaT33/Arkan/internal/middleware"
	"github.com/mEdHaT33/Arkan/pkg/security"
)

func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	public := router.Group("")
	container.SessionHandler.RegisterPublicRoutes(public)
}

func RegisterProtectedRoutes(router *gin.Engine, container *container.Container) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())

	container.SessionHandler.RegisterRoutes(protectedRoutes)
	container.OrdersHandler.RegisterRoutes(protectedRoutes)
	container.PartiesHandler.RegisterRoutes(protectedRoutes)
	container.FinanceHandler.RegisterRoutes(protectedRoutes)
	container.ReceiptsHandler.RegisterRoutes(protectedRoutes)
	container.WarehouseHandler.RegisterRoutes(protectedRoutes)
	container.ImportsHandler.RegisterRoutes(protectedRoutes)
	container.UsersHandler.RegisterRoutes(protectedRoutes)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckHandler())
}
