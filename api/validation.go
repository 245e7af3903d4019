// Package api provides validation utilities for API request handling.
package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rmacedo/memsearch/model"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateIndexName validates an index name parameter
func ValidateIndexName(indexName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if indexName == "" {
		result.AddError("indexName", "Index name is required")
		return result
	}

	if strings.TrimSpace(indexName) != indexName {
		result.AddError("indexName", "Index name cannot have leading or trailing whitespace")
		return result
	}

	return result
}

// ValidateDocumentID validates a document ID
func ValidateDocumentID(documentID string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if documentID == "" {
		result.AddError("documentID", "Document ID is required")
		return result
	}

	if strings.TrimSpace(documentID) != documentID {
		result.AddError("documentID", "Document ID cannot have leading or trailing whitespace")
		return result
	}

	return result
}

// ValidateDocuments validates a slice of documents for addition
func ValidateDocuments(docs []model.Document) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(docs) == 0 {
		result.AddError("documents", "No documents provided")
		return result
	}

	for i, doc := range docs {
		docIDVal, exists := doc["documentID"]
		if !exists {
			result.AddError(fmt.Sprintf("documents[%d].documentID", i), "Document must have a 'documentID' field")
			continue
		}

		docIDStr, ok := docIDVal.(string)
		if !ok {
			result.AddError(fmt.Sprintf("documents[%d].documentID", i), "Document ID must be a string")
			continue
		}

		if strings.TrimSpace(docIDStr) == "" {
			result.AddError(fmt.Sprintf("documents[%d].documentID", i), "Document ID cannot be empty or whitespace-only")
			continue
		}
	}

	return result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}
	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}
