package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrIndexNotFound is returned when an index is not found
	ErrIndexNotFound = errors.New("index not found")

	// ErrIndexAlreadyExists is returned when trying to create an index that already exists
	ErrIndexAlreadyExists = errors.New("index already exists")

	// ErrDocumentNotFound is returned when a document is not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrSyntax is returned when a query string cannot be parsed
	ErrSyntax = errors.New("query syntax error")

	// ErrUnsupportedNegation is returned when a negated query part is
	// evaluated in a context where the full document set is not obtainable
	ErrUnsupportedNegation = errors.New("unsupported negation")

	// ErrAllDocsDisallowed is returned when the full document set is
	// requested from an index that does not permit it
	ErrAllDocsDisallowed = errors.New("all-documents iteration not allowed")
)

// SyntaxError reports a malformed query string together with the byte
// offset of the offending character.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// NewSyntaxError creates a new SyntaxError
func NewSyntaxError(offset int, message string) *SyntaxError {
	return &SyntaxError{Offset: offset, Message: message}
}

// UnsupportedNegationError reports a negated query part that cannot be
// evaluated because the index disallows producing the full document set.
type UnsupportedNegationError struct {
	Expr string
}

func (e *UnsupportedNegationError) Error() string {
	return fmt.Sprintf("cannot evaluate negated expression '%s': index does not allow iterating all documents", e.Expr)
}

func (e *UnsupportedNegationError) Is(target error) bool {
	return target == ErrUnsupportedNegation
}

// NewUnsupportedNegationError creates a new UnsupportedNegationError
func NewUnsupportedNegationError(expr string) *UnsupportedNegationError {
	return &UnsupportedNegationError{Expr: expr}
}

// IndexNotFoundError represents an index not found error with context
type IndexNotFoundError struct {
	IndexName string
}

func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("index named '%s' not found", e.IndexName)
}

func (e *IndexNotFoundError) Is(target error) bool {
	return target == ErrIndexNotFound
}

// NewIndexNotFoundError creates a new IndexNotFoundError
func NewIndexNotFoundError(indexName string) *IndexNotFoundError {
	return &IndexNotFoundError{IndexName: indexName}
}

// IndexAlreadyExistsError represents an index already exists error with context
type IndexAlreadyExistsError struct {
	IndexName string
}

func (e *IndexAlreadyExistsError) Error() string {
	return fmt.Sprintf("index named '%s' already exists", e.IndexName)
}

func (e *IndexAlreadyExistsError) Is(target error) bool {
	return target == ErrIndexAlreadyExists
}

// NewIndexAlreadyExistsError creates a new IndexAlreadyExistsError
func NewIndexAlreadyExistsError(indexName string) *IndexAlreadyExistsError {
	return &IndexAlreadyExistsError{IndexName: indexName}
}

// DocumentNotFoundError represents a document not found error with context
type DocumentNotFoundError struct {
	DocumentID string
	IndexName  string
}

func (e *DocumentNotFoundError) Error() string {
	if e.IndexName != "" {
		return fmt.Sprintf("document with ID '%s' not found in index '%s'", e.DocumentID, e.IndexName)
	}
	return fmt.Sprintf("document with ID '%s' not found", e.DocumentID)
}

func (e *DocumentNotFoundError) Is(target error) bool {
	return target == ErrDocumentNotFound
}

// NewDocumentNotFoundError creates a new DocumentNotFoundError
func NewDocumentNotFoundError(documentID string, indexName ...string) *DocumentNotFoundError {
	err := &DocumentNotFoundError{DocumentID: documentID}
	if len(indexName) > 0 {
		err.IndexName = indexName[0]
	}
	return err
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
