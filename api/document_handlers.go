package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rmacedo/memsearch/internal/engine"
	internalErrors "github.com/rmacedo/memsearch/internal/errors"
	"github.com/rmacedo/memsearch/model"
)

// AddDocumentsHandler handles adding/updating documents in an index.
// The body may be a single document object or an array of documents.
func (api *API) AddDocumentsHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendIndexNotFoundError(c, indexName)
		return
	}

	var rawData interface{}
	if err := c.ShouldBindJSON(&rawData); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	var docs []model.Document
	switch data := rawData.(type) {
	case []interface{}:
		docs = make([]model.Document, len(data))
		for i, item := range data {
			docMap, isMap := item.(map[string]interface{})
			if !isMap {
				SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
					fmt.Sprintf("Document at index %d is not a valid object", i))
				return
			}
			docs[i] = docMap
		}
	case map[string]interface{}:
		docs = []model.Document{data}
	default:
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
			"Invalid request body. Expecting a document object or an array of documents")
		return
	}

	if result := ValidateDocuments(docs); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	// Normalize documentIDs so the indexing service sees clean strings.
	for i := range docs {
		if id, ok := docs[i]["documentID"].(string); ok {
			docs[i]["documentID"] = strings.TrimSpace(id)
		}
	}

	if err := indexAccessor.AddDocuments(docs); err != nil {
		SendIndexingError(c, "add documents", err)
		return
	}

	if api.metrics != nil {
		api.metrics.DocsIndexedTotal.Add(float64(len(docs)))
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%d document(s) added/updated in index '%s'", len(docs), indexName)})
}

// DeleteAllDocumentsHandler handles the request to delete all documents from an index.
func (api *API) DeleteAllDocumentsHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendIndexNotFoundError(c, indexName)
		return
	}

	if err := indexAccessor.DeleteAllDocuments(); err != nil {
		SendInternalError(c, "delete all documents", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All documents deleted from index '" + indexName + "'"})
}

// GetDocumentHandler retrieves a specific document by its external ID.
func (api *API) GetDocumentHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	documentID := c.Param("documentId")

	if result := ValidateDocumentID(documentID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	accessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendIndexNotFoundError(c, indexName)
		return
	}

	instance, ok := accessor.(*engine.IndexInstance)
	if !ok {
		SendInternalError(c, "get document", fmt.Errorf("index '%s' does not expose document lookup", indexName))
		return
	}

	doc, found := instance.DocumentStore.GetByExternalID(documentID)
	if !found {
		SendDocumentNotFoundError(c, documentID, indexName)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDocumentHandler deletes a specific document by its external ID.
func (api *API) DeleteDocumentHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	documentID := c.Param("documentId")

	if result := ValidateDocumentID(documentID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendIndexNotFoundError(c, indexName)
		return
	}

	if err := indexAccessor.DeleteDocument(documentID); err != nil {
		if errors.Is(err, internalErrors.ErrDocumentNotFound) {
			SendDocumentNotFoundError(c, documentID, indexName)
			return
		}
		SendInternalError(c, "delete document", err)
		return
	}

	if api.metrics != nil {
		api.metrics.DocsDeletedTotal.Inc()
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document '" + documentID + "' deleted from index '" + indexName + "'"})
}
