package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmacedo/memsearch/config"
	"github.com/rmacedo/memsearch/internal/engine"
	internalErrors "github.com/rmacedo/memsearch/internal/errors"
)

// CreateIndexHandler handles the request to create a new index.
// Request Body: config.IndexSettings
func (api *API) CreateIndexHandler(c *gin.Context) {
	var settings config.IndexSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if err := api.engine.CreateIndex(settings); err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrIndexAlreadyExists):
			SendIndexExistsError(c, settings.Name)
		case errors.Is(err, internalErrors.ErrInvalidInput):
			SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		default:
			SendInternalError(c, "create index", err)
		}
		return
	}

	if api.metrics != nil {
		api.metrics.ActiveIndexes.Set(float64(len(api.engine.ListIndexes())))
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Index '" + settings.Name + "' created successfully"})
}

// ListIndexesHandler returns the names of all indexes.
func (api *API) ListIndexesHandler(c *gin.Context) {
	names := api.engine.ListIndexes()
	c.JSON(http.StatusOK, gin.H{"indexes": names, "total": len(names)})
}

// GetIndexHandler returns the settings and stats for a specific index.
func (api *API) GetIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	settings, err := api.engine.GetIndexSettings(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return
		}
		SendInternalError(c, "get index", err)
		return
	}

	response := gin.H{"settings": settings}

	// Stats come straight from the concrete instance when available.
	if accessor, err := api.engine.GetIndex(indexName); err == nil {
		if instance, ok := accessor.(*engine.IndexInstance); ok {
			response["stats"] = gin.H{
				"document_count": instance.InvertedIndex.DocCount(),
				"term_count":     instance.InvertedIndex.TermCount(),
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

// DeleteIndexHandler removes an index.
func (api *API) DeleteIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.DeleteIndex(indexName); err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return
		}
		SendInternalError(c, "delete index", err)
		return
	}

	if api.metrics != nil {
		api.metrics.ActiveIndexes.Set(float64(len(api.engine.ListIndexes())))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Index '" + indexName + "' deleted successfully"})
}
