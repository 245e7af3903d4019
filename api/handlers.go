// Package api exposes the search engine over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmacedo/memsearch/internal/metrics"
	"github.com/rmacedo/memsearch/services"
)

// API holds dependencies for API handlers, primarily the search engine manager.
type API struct {
	engine  services.IndexManager
	metrics *metrics.Metrics
}

// NewAPI creates a new API handler structure. A nil metrics value disables
// instrumentation.
func NewAPI(engine services.IndexManager, m *metrics.Metrics) *API {
	return &API{
		engine:  engine,
		metrics: m,
	}
}

// SetupRoutes defines all the API routes for the search engine.
func SetupRoutes(router *gin.Engine, engine services.IndexManager, m *metrics.Metrics) {
	apiHandler := NewAPI(engine, m)

	if m != nil {
		router.Use(MetricsMiddleware(m))
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Index management routes
	indexRoutes := router.Group("/indexes")
	{
		indexRoutes.POST("", apiHandler.CreateIndexHandler)              // Create a new index
		indexRoutes.GET("", apiHandler.ListIndexesHandler)               // List all indexes
		indexRoutes.GET("/:indexName", apiHandler.GetIndexHandler)       // Get index settings and stats
		indexRoutes.DELETE("/:indexName", apiHandler.DeleteIndexHandler) // Delete an index

		// Document management routes per index
		docRoutes := indexRoutes.Group("/:indexName/documents")
		{
			docRoutes.PUT("", apiHandler.AddDocumentsHandler)                  // Add/Update documents
			docRoutes.DELETE("", apiHandler.DeleteAllDocumentsHandler)         // Delete all documents
			docRoutes.GET("/:documentId", apiHandler.GetDocumentHandler)       // Get specific document
			docRoutes.DELETE("/:documentId", apiHandler.DeleteDocumentHandler) // Delete specific document
		}

		// Search routes per index
		indexRoutes.POST("/:indexName/_search", apiHandler.SearchHandler)
		indexRoutes.POST("/:indexName/_msearch", apiHandler.MultiSearchHandler)
	}
}

// HealthCheckHandler reports liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"indexes": len(api.engine.ListIndexes()),
	})
}
