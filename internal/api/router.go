package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/app"
	iauth "github.com/daylist-io/daylist/internal/auth"
	"github.com/daylist-io/daylist/internal/handlers"
	"github.com/daylist-io/daylist/internal/middleware"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(db *gorm.DB, jwt *iauth.JWTService, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if jwt == nil {
		return nil, fmt.Errorf("jwt service must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())

	r.NoRoute(middleware.NotFoundHandler)

	// Health endpoint (public)
	r.GET("/health", handlers.Health())

	if cfg.Monitoring.Prometheus.Enabled {
		r.GET(cfg.Monitoring.Prometheus.Endpoint, gin.WrapH(promhttp.Handler()))
	}

	authHandler, err := handlers.NewAuthHandler(db, jwt)
	if err != nil {
		return nil, err
	}

	// Public auth routes
	registerAuthRoutes(r.Group("/api/v1/auth"), authHandler)

	// Protected routes
	api := r.Group("/api/v1")
	api.Use(middleware.Auth(jwt))

	api.GET("/auth/me", authHandler.Me)

	taskHandler, err := handlers.NewTaskHandler(db)
	if err != nil {
		return nil, err
	}
	registerTaskRoutes(api, taskHandler)

	projectHandler, err := handlers.NewProjectHandler(db)
	if err != nil {
		return nil, err
	}
	registerProjectRoutes(api, projectHandler)

	teamHandler, err := handlers.NewTeamHandler(db)
	if err != nil {
		return nil, err
	}
	registerTeamRoutes(api, teamHandler)

	calendarHandler, err := handlers.NewCalendarHandler(db)
	if err != nil {
		return nil, err
	}
	registerCalendarRoutes(api, calendarHandler)

	conversationHandler, err := handlers.NewConversationHandler(db)
	if err != nil {
		return nil, err
	}
	messageHandler, err := handlers.NewMessageHandler(db)
	if err != nil {
		return nil, err
	}
	registerChatRoutes(api, conversationHandler, messageHandler)

	return r, nil
}
