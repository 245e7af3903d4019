package errors

import (
	"errors"
	"testing"
)

func TestIndexNotFoundError(t *testing.T) {
	indexName := "test-index"
	err := NewIndexNotFoundError(indexName)

	// Test error message
	expectedMsg := "index named 'test-index' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test Is() method
	if !errors.Is(err, ErrIndexNotFound) {
		t.Error("Expected error to match ErrIndexNotFound sentinel")
	}

	// Test that it doesn't match other sentinels
	if errors.Is(err, ErrDocumentNotFound) {
		t.Error("Error should not match ErrDocumentNotFound")
	}
}

func TestIndexAlreadyExistsError(t *testing.T) {
	err := NewIndexAlreadyExistsError("existing-index")

	expectedMsg := "index named 'existing-index' already exists"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrIndexAlreadyExists) {
		t.Error("Expected error to match ErrIndexAlreadyExists sentinel")
	}
}

func TestDocumentNotFoundError(t *testing.T) {
	// Test without index name
	docID := "doc123"
	err := NewDocumentNotFoundError(docID)

	expectedMsg := "document with ID 'doc123' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test with index name
	err2 := NewDocumentNotFoundError(docID, "test-index")

	expectedMsg2 := "document with ID 'doc123' not found in index 'test-index'"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	if !errors.Is(err, ErrDocumentNotFound) {
		t.Error("Expected error to match ErrDocumentNotFound sentinel")
	}
	if !errors.Is(err2, ErrDocumentNotFound) {
		t.Error("Expected error with index to match ErrDocumentNotFound sentinel")
	}
}

func TestSyntaxError(t *testing.T) {
	err := NewSyntaxError(7, "expected literal")

	expectedMsg := "syntax error at offset 7: expected literal"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrSyntax) {
		t.Error("Expected error to match ErrSyntax sentinel")
	}
	if errors.Is(err, ErrUnsupportedNegation) {
		t.Error("Error should not match ErrUnsupportedNegation")
	}

	// The offset must survive errors.As so callers can point at the input.
	var syntaxErr *SyntaxError
	if !errors.As(error(err), &syntaxErr) {
		t.Fatal("Expected errors.As to recover *SyntaxError")
	}
	if syntaxErr.Offset != 7 {
		t.Errorf("Expected offset 7, got %d", syntaxErr.Offset)
	}
}

func TestUnsupportedNegationError(t *testing.T) {
	err := NewUnsupportedNegationError("-foo")

	expectedMsg := "cannot evaluate negated expression '-foo': index does not allow iterating all documents"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrUnsupportedNegation) {
		t.Error("Expected error to match ErrUnsupportedNegation sentinel")
	}
	if errors.Is(err, ErrSyntax) {
		t.Error("Error should not match ErrSyntax")
	}
}

func TestValidationError(t *testing.T) {
	// Test with field
	err := NewValidationError("name", "cannot be empty")

	expectedMsg := "validation error for field 'name': cannot be empty"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test without field
	err2 := NewValidationError("", "general problem")

	expectedMsg2 := "validation error: general problem"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
}
