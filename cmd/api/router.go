package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ariomuse-backend/internal/shared/middleware"
	"ariomuse-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupCompositionRoutes(v1, c)
		setupGenerationRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Logout)
		auth.GET("/session", c.UserHandler.SessionInfo)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
		users.PATCH("/me", c.UserHandler.UpdateProfile)
	}
}

// ========================================
// COMPOSITION ROUTES
// ========================================
func setupCompositionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comps := v1.Group("/compositions")
	comps.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		comps.GET("", c.CompositionHandler.List)
		comps.POST("", c.CompositionHandler.Create)
		comps.GET("/:id", c.CompositionHandler.GetByID)
		comps.PUT("/:id", c.CompositionHandler.Update)
		comps.DELETE("/:id", c.CompositionHandler.Delete)
		comps.POST("/:id/versions", c.CompositionHandler.AppendVersion)
		comps.PATCH("/:id/favorite", c.CompositionHandler.SetFavorite)
	}
}

// ========================================
// GENERATION ROUTES
// ========================================
func setupGenerationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	gen := v1.Group("/generation")
	{
		gen.GET("/presets", c.GenerationHandler.Presets)
		gen.GET("/options", c.GenerationHandler.Options)

		authed := gen.Group("")
		authed.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			authed.POST("/compose", c.GenerationHandler.Compose)
			authed.GET("/idea", c.GenerationHandler.Idea)
		}
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		storeStatus := "ok"
		if err := c.Store.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			storeStatus = err.Error()
		}

		ctx.JSON(status, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
			"store": gin.H{
				"driver": c.Config.Store.Driver,
				"status": storeStatus,
			},
		})
	}
}
