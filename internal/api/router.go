package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/timesheet-api/internal/config"
	"github.com/timesheet-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg))
	router.Use(identityMiddleware(cfg))

	// Handlers
	sessionHandler := NewSessionHandler(services, log)
	catalogHandler := NewCatalogHandler(services, log)
	activityHandler := NewActivityHandler(services, log)
	timesheetHandler := NewTimesheetHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		v1.GET("/session", sessionHandler.GetSession)
		v1.GET("/employees", catalogHandler.ListEmployees)
		v1.GET("/weeks", catalogHandler.ListWeeks)
		v1.GET("/projects", catalogHandler.GetProjects)

		// Internal activity management
		activities := v1.Group("/activities")
		{
			activities.GET("", activityHandler.ListActivities)

			managed := activities.Group("", requireActivityManagement())
			{
				managed.POST("", activityHandler.CreateActivity)
				managed.PATCH("/:id", activityHandler.UpdateActivity)
				managed.DELETE("/:id", activityHandler.DeleteActivity)
			}
		}

		// Timesheet endpoints
		timesheets := v1.Group("/timesheets")
		{
			timesheets.GET("/week", timesheetHandler.GetWeek)
			timesheets.GET("/history", timesheetHandler.GetHistory)
			timesheets.GET("/team", requireTeamView(), timesheetHandler.GetTeam)
			timesheets.POST("", timesheetHandler.SubmitWeek)
			timesheets.PUT("/:id", timesheetHandler.UpdateWeek)
			timesheets.DELETE("/:id", timesheetHandler.DeleteWeek)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "timesheet-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS for the browser client
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "X-Employee-ID", "X-Crm-Role", "X-Timesheet-Role"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        cfg.CORS.MaxAge,
	}
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	return cors.New(corsCfg)
}
