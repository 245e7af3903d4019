package services

import (
	"github.com/rmacedo/memsearch/config"
	"github.com/rmacedo/memsearch/model"
)

// HitResult represents a single document in the search results.
type HitResult struct {
	ID       string         `json:"id"`
	Document model.Document `json:"document"`
}

type SearchResult struct {
	Hits     []HitResult `json:"hits"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Took     int64       `json:"took"`     // milliseconds
	QueryId  string      `json:"query_id"` // unique UUID for this search query
}

type SearchQuery struct {
	QueryString string `json:"query"`
	Page        int    `json:"page,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// MultiSearchQuery represents a request to execute multiple named queries
// against the same index in one call.
type MultiSearchQuery struct {
	Queries  []NamedSearchQuery `json:"queries"`
	Page     int                `json:"page,omitempty"`
	PageSize int                `json:"page_size,omitempty"`
}

// NamedSearchQuery represents a single named query within a multi-search request.
type NamedSearchQuery struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// MultiSearchResult represents the response from a multi-search operation.
type MultiSearchResult struct {
	Results          map[string]SearchResult `json:"results"`
	TotalQueries     int                     `json:"total_queries"`
	ProcessingTimeMs float64                 `json:"processing_time_ms"`
}

// Indexer defines operations for adding data to an index
type Indexer interface {
	AddDocuments(docs []model.Document) error
	DeleteAllDocuments() error
	DeleteDocument(docID string) error
}

// Searcher defines operations for querying an index
type Searcher interface {
	Search(query SearchQuery) (SearchResult, error)
}

// MultiSearcher defines operations for performing multiple queries in a single request
type MultiSearcher interface {
	MultiSearch(query MultiSearchQuery) (*MultiSearchResult, error)
}

// IndexManager manages the lifecycle of indices
type IndexManager interface {
	CreateIndex(settings config.IndexSettings) error
	GetIndex(name string) (IndexAccessor, error) // IndexAccessor combines Indexer and Searcher
	GetIndexSettings(name string) (config.IndexSettings, error)
	DeleteIndex(name string) error
	ListIndexes() []string
}

type IndexAccessor interface {
	Indexer
	Searcher
	MultiSearcher
	Settings() config.IndexSettings
}
