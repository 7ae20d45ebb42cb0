// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"syncfloww/config"
	"syncfloww/internal/delivery/api/middleware"
	"syncfloww/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RootHandler       *handler.RootHandler
	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	ProjectHandler    *handler.ProjectHandler
	BrandHandler      *handler.BrandHandler
	SocialHandler     *handler.SocialHandler
	AIHandler         *handler.AIHandler
	AutomationHandler *handler.AutomationHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	rootHandler       *handler.RootHandler
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	projectHandler    *handler.ProjectHandler
	brandHandler      *handler.BrandHandler
	socialHandler     *handler.SocialHandler
	aiHandler         *handler.AIHandler
	automationHandler *handler.AutomationHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		rootHandler:       params.RootHandler,
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		projectHandler:    params.ProjectHandler,
		brandHandler:      params.BrandHandler,
		socialHandler:     params.SocialHandler,
		aiHandler:         params.AIHandler,
		automationHandler: params.AutomationHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.rootHandler.Root)
	e.GET("/health", r.rootHandler.HealthCheck)

	// Documentation
	e.GET("/swagger.yaml", r.rootHandler.SwaggerYAML)
	e.GET("/swagger.json", r.rootHandler.SwaggerJSON)
	e.GET("/swagger", r.rootHandler.SwaggerUI)
	e.GET("/redoc", r.rootHandler.ReDoc)

	api := e.Group("/api")

	// Auth routes, rate limited per client IP
	authGroup := api.Group("/users/auth")
	authGroup.Use(middleware.NewRateLimiter(r.config.HTTP.RateLimit))
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.POST("/google", r.authHandler.Google)
		authGroup.POST("/facebook", r.authHandler.Facebook)
		authGroup.POST("/apple", r.authHandler.Apple)
	}

	// Everything below requires a bearer token
	protected := api.Group("")
	protected.Use(r.authMiddleware.Authenticate)

	meGroup := protected.Group("/users/me")
	{
		meGroup.GET("", r.profileHandler.GetProfile)
		meGroup.PUT("", r.profileHandler.UpdateProfile)
		meGroup.PATCH("", r.profileHandler.UpdateProfile)
		meGroup.GET("/account", r.authHandler.Me)
	}

	projectsGroup := protected.Group("/projects")
	{
		projectsGroup.GET("", r.projectHandler.ListProjects)
		projectsGroup.POST("", r.projectHandler.CreateProject)
		projectsGroup.GET("/:id", r.projectHandler.GetProject)
		projectsGroup.PUT("/:id", r.projectHandler.UpdateProject)
		projectsGroup.PATCH("/:id", r.projectHandler.UpdateProject)
		projectsGroup.DELETE("/:id", r.projectHandler.DeleteProject)
	}

	brandsGroup := protected.Group("/brands")
	{
		brandsGroup.GET("", r.brandHandler.ListBrands)
		brandsGroup.POST("", r.brandHandler.CreateBrand)
		brandsGroup.GET("/:id", r.brandHandler.GetBrand)
		brandsGroup.PUT("/:id", r.brandHandler.UpdateBrand)
		brandsGroup.PATCH("/:id", r.brandHandler.UpdateBrand)
		brandsGroup.DELETE("/:id", r.brandHandler.DeleteBrand)
		brandsGroup.GET("/:id/social-accounts", r.brandHandler.ListBrandSocialAccounts)
	}

	socialGroup := protected.Group("/social")
	{
		socialGroup.GET("/accounts", r.socialHandler.ListAccounts)
		socialGroup.POST("/accounts", r.socialHandler.CreateAccount)
		socialGroup.GET("/accounts/:id", r.socialHandler.GetAccount)
		socialGroup.PATCH("/accounts/:id", r.socialHandler.UpdateAccount)
		socialGroup.GET("/accounts/:id/analytics", r.socialHandler.ListAnalytics)
		socialGroup.PUT("/accounts/:id/analytics/:date", r.socialHandler.UpsertAnalytics)
		socialGroup.POST("/connect/:platform", r.socialHandler.Connect)
		socialGroup.DELETE("/:id/disconnect", r.socialHandler.Disconnect)
	}

	aiGroup := protected.Group("/ai")
	{
		aiGroup.GET("/agents", r.aiHandler.ListAgents)
		aiGroup.GET("/agents/:id", r.aiHandler.GetAgent)
		aiGroup.POST("/agents/:task_type/execute", r.aiHandler.Execute)
		aiGroup.GET("/tasks", r.aiHandler.ListTasks)
		aiGroup.GET("/tasks/:id", r.aiHandler.GetTask)
		aiGroup.GET("/configurations", r.aiHandler.ListConfigurations)
		aiGroup.POST("/configurations", r.aiHandler.CreateConfiguration)
		aiGroup.GET("/configurations/:id", r.aiHandler.GetConfiguration)
		aiGroup.PUT("/configurations/:id", r.aiHandler.UpdateConfiguration)
		aiGroup.PATCH("/configurations/:id", r.aiHandler.UpdateConfiguration)
		aiGroup.DELETE("/configurations/:id", r.aiHandler.DeleteConfiguration)
	}

	automationsGroup := protected.Group("/automations")
	{
		automationsGroup.GET("", r.automationHandler.ListRules)
		automationsGroup.POST("", r.automationHandler.CreateRule)
		automationsGroup.GET("/:id", r.automationHandler.GetRule)
		automationsGroup.PUT("/:id", r.automationHandler.UpdateRule)
		automationsGroup.PATCH("/:id", r.automationHandler.UpdateRule)
		automationsGroup.DELETE("/:id", r.automationHandler.DeleteRule)
	}
}
