package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"portfolio-contact/internal/config"
)

// NewRouter sets up the HTTP router with middleware and routes
func NewRouter(cfg *config.Config, handlers *Handlers) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create router
	router := gin.New()

	// Add middleware. The recovery handler maps any uncaught fault to a
	// generic internal error so one bad request cannot take the process
	// down or leak internals.
	router.Use(recoveryMiddleware())
	router.Use(loggerMiddleware())

	if len(cfg.Server.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
		corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		router.Use(cors.New(corsCfg))
	}

	// Setup routes
	router.GET(cfg.Server.HealthPath, handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/contact", handlers.Contact)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found"})
	})

	return router
}

// recoveryMiddleware adds panic recovery with a JSON error body
func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("panic", recovered).Error("Recovered from panic in request handler")
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal_error"})
	})
}

// loggerMiddleware adds logging middleware
func loggerMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	})
}
