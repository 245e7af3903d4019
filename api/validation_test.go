package api

import (
	"testing"

	"github.com/rmacedo/memsearch/model"
)

func TestValidateIndexName(t *testing.T) {
	tests := []struct {
		name      string
		indexName string
		wantValid bool
	}{
		{"valid name", "movies", true},
		{"empty name", "", false},
		{"leading whitespace", " movies", false},
		{"trailing whitespace", "movies ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateIndexName(tt.indexName)
			if result.HasErrors() == tt.wantValid {
				t.Errorf("ValidateIndexName(%q).HasErrors() = %v, want %v", tt.indexName, result.HasErrors(), !tt.wantValid)
			}
		})
	}
}

func TestValidateDocumentID(t *testing.T) {
	tests := []struct {
		name      string
		docID     string
		wantValid bool
	}{
		{"valid id", "doc-123", true},
		{"empty id", "", false},
		{"whitespace around id", " doc ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateDocumentID(tt.docID)
			if result.HasErrors() == tt.wantValid {
				t.Errorf("ValidateDocumentID(%q).HasErrors() = %v, want %v", tt.docID, result.HasErrors(), !tt.wantValid)
			}
		})
	}
}

func TestValidateDocuments(t *testing.T) {
	tests := []struct {
		name      string
		docs      []model.Document
		wantValid bool
	}{
		{"valid documents", []model.Document{{"documentID": "a"}, {"documentID": "b"}}, true},
		{"no documents", nil, false},
		{"missing documentID", []model.Document{{"title": "x"}}, false},
		{"non-string documentID", []model.Document{{"documentID": 7}}, false},
		{"whitespace-only documentID", []model.Document{{"documentID": "  "}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateDocuments(tt.docs)
			if result.HasErrors() == tt.wantValid {
				t.Errorf("ValidateDocuments(%v).HasErrors() = %v, want %v", tt.docs, result.HasErrors(), !tt.wantValid)
			}
		})
	}
}
