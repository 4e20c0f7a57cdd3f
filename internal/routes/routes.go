package routes

import (
	"net/http"

	"jobtracker_backend/internal/handlers"
	"jobtracker_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options selects the operational endpoints mounted next to the API.
type Options struct {
	// Metrics is the registry served on /metrics; nil disables the endpoint.
	Metrics *prometheus.Registry
	Swagger bool
}

// RegisterRoutes mounts /api/v1 and the operational endpoints.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, db *gorm.DB, opts Options) {
	api := ginRouter.Group("/api/v1")
	appHandlers.RegisterRoutes(api)

	ginRouter.GET("/health", healthHandler(db))

	if opts.Metrics != nil {
		ginRouter.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Metrics, promhttp.HandlerOpts{})))
		logger.Info("Metrics route /metrics registered")
	}
	if opts.Swagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			logger.CtxWithError(c.Request.Context(), "Health check failed", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}
