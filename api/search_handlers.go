package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/rmacedo/memsearch/internal/errors"
	"github.com/rmacedo/memsearch/services"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query    string `json:"query"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// MultiSearchRequest represents the JSON request for multi-search
type MultiSearchRequest struct {
	Queries  []NamedSearchRequest `json:"queries" binding:"required"`
	Page     int                  `json:"page,omitempty"`
	PageSize int                  `json:"page_size,omitempty"`
}

// NamedSearchRequest represents a single named search query in the request
type NamedSearchRequest struct {
	Name  string `json:"name" binding:"required"`
	Query string `json:"query"`
}

// SearchHandler handles search requests to an index.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()
	indexName := c.Param("indexName")

	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return
		}
		SendInternalError(c, "get index", err)
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	results, err := indexAccessor.Search(services.SearchQuery{
		QueryString: req.Query,
		Page:        req.Page,
		PageSize:    req.PageSize,
	})
	if err != nil {
		api.sendQueryError(c, indexName, err)
		return
	}

	if api.metrics != nil {
		api.metrics.SearchQueriesTotal.WithLabelValues("ok").Inc()
		api.metrics.SearchLatency.WithLabelValues(indexName).Observe(time.Since(startTime).Seconds())
		api.metrics.SearchResultsCount.Observe(float64(results.Total))
	}
	c.JSON(http.StatusOK, results)
}

// MultiSearchHandler executes multiple named queries against one index.
// Request Body: MultiSearchRequest
func (api *API) MultiSearchHandler(c *gin.Context) {
	startTime := time.Now()
	indexName := c.Param("indexName")

	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return
		}
		SendInternalError(c, "get index", err)
		return
	}

	var req MultiSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	queries := make([]services.NamedSearchQuery, len(req.Queries))
	for i, nq := range req.Queries {
		queries[i] = services.NamedSearchQuery{Name: nq.Name, Query: nq.Query}
	}

	results, err := indexAccessor.MultiSearch(services.MultiSearchQuery{
		Queries:  queries,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		api.sendQueryError(c, indexName, err)
		return
	}

	if api.metrics != nil {
		api.metrics.SearchQueriesTotal.WithLabelValues("ok").Add(float64(len(queries)))
		api.metrics.SearchLatency.WithLabelValues(indexName).Observe(time.Since(startTime).Seconds())
	}
	c.JSON(http.StatusOK, results)
}

// sendQueryError maps query evaluation failures to HTTP responses: malformed
// queries are client errors carrying the byte offset, negation the index
// cannot satisfy is reported as unprocessable, and everything else is a
// server-side search failure.
func (api *API) sendQueryError(c *gin.Context, indexName string, err error) {
	var syntaxErr *internalErrors.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		if api.metrics != nil {
			api.metrics.SearchQueriesTotal.WithLabelValues("syntax_error").Inc()
		}
		SendError(c, http.StatusBadRequest, ErrorCodeQuerySyntax, syntaxErr.Error(),
			ErrorDetail{Field: "query", Message: fmt.Sprintf("offset %d: %s", syntaxErr.Offset, syntaxErr.Message)})
	case errors.Is(err, internalErrors.ErrUnsupportedNegation):
		if api.metrics != nil {
			api.metrics.SearchQueriesTotal.WithLabelValues("unsupported_negation").Inc()
		}
		SendError(c, http.StatusUnprocessableEntity, ErrorCodeUnsupportedNegation, err.Error())
	default:
		if api.metrics != nil {
			api.metrics.SearchQueriesTotal.WithLabelValues("error").Inc()
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed,
			"Search failed on index '"+indexName+"': "+err.Error())
	}
}
