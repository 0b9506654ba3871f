package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fallswatch/journal-backend-go/internal/handler"
	"github.com/fallswatch/journal-backend-go/internal/middleware"
)

// Handlers collects the handlers wired into the router.
type Handlers struct {
	Waterfalls *handler.WaterfallHandler
	Details    *handler.DetailHandler
	Visits     *handler.VisitHandler
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Waterfall Journal API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		waterfalls := api.Group("/waterfalls")
		{
			waterfalls.GET("", h.Waterfalls.ListWaterfalls)
			waterfalls.GET("/:id", h.Waterfalls.GetWaterfall)

			waterfalls.GET("/:id/visit", h.Visits.GetVisit)
			waterfalls.PUT("/:id/visit", h.Visits.SaveVisit)
			waterfalls.DELETE("/:id/visit", h.Visits.DeleteVisit)
		}

		// The detail screen derives its record from navigation
		// parameters, not a catalog re-fetch.
		api.GET("/detail", h.Details.GetDetail)
	}

	return r
}
