package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	ErrorCodeIndexNotFound       ErrorCode = "INDEX_NOT_FOUND"
	ErrorCodeDocumentNotFound    ErrorCode = "DOCUMENT_NOT_FOUND"
	ErrorCodeIndexExists         ErrorCode = "INDEX_ALREADY_EXISTS"
	ErrorCodeInvalidJSON         ErrorCode = "INVALID_JSON"
	ErrorCodeQuerySyntax         ErrorCode = "QUERY_SYNTAX_ERROR"
	ErrorCodeUnsupportedNegation ErrorCode = "UNSUPPORTED_NEGATION"

	// Server Error Codes (5xx)
	ErrorCodeInternalError  ErrorCode = "INTERNAL_ERROR"
	ErrorCodeIndexingFailed ErrorCode = "INDEXING_FAILED"
	ErrorCodeSearchFailed   ErrorCode = "SEARCH_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	c.JSON(statusCode, &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	})
}

// SendIndexNotFoundError sends a standardized index not found error
func SendIndexNotFoundError(c *gin.Context, indexName string) {
	SendError(c, http.StatusNotFound, ErrorCodeIndexNotFound,
		"Index '"+indexName+"' not found")
}

// SendDocumentNotFoundError sends a standardized document not found error
func SendDocumentNotFoundError(c *gin.Context, documentID, indexName string) {
	SendError(c, http.StatusNotFound, ErrorCodeDocumentNotFound,
		"Document '"+documentID+"' not found in index '"+indexName+"'")
}

// SendIndexExistsError sends a standardized index already exists error
func SendIndexExistsError(c *gin.Context, indexName string) {
	SendError(c, http.StatusConflict, ErrorCodeIndexExists,
		"Index '"+indexName+"' already exists")
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendIndexingError sends a standardized indexing error
func SendIndexingError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeIndexingFailed,
		"Indexing operation failed ("+operation+"): "+err.Error())
}
