package engine

import (
	"fmt"

	"github.com/rmacedo/memsearch/config"
	"github.com/rmacedo/memsearch/index"
	"github.com/rmacedo/memsearch/internal/indexing"
	"github.com/rmacedo/memsearch/internal/search"
	"github.com/rmacedo/memsearch/model"
	"github.com/rmacedo/memsearch/services"
	"github.com/rmacedo/memsearch/store"
)

// IndexInstance holds all components and services for a single search index.
// It implements the services.IndexAccessor interface.
type IndexInstance struct {
	settings      *config.IndexSettings
	InvertedIndex *index.InvertedIndex
	DocumentStore *store.DocumentStore
	indexer       *indexing.Service
	searcher      *search.Service
}

// NewIndexInstance creates and initializes a new IndexInstance.
func NewIndexInstance(settings config.IndexSettings) (*IndexInstance, error) {
	if settings.Name == "" {
		return nil, fmt.Errorf("index name cannot be empty in settings")
	}

	docStore := store.NewDocumentStore()
	invIndex := index.NewInvertedIndex(&settings)

	indexerService, err := indexing.NewService(invIndex, docStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer service: %w", err)
	}

	searchService, err := search.NewService(invIndex, docStore, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	return &IndexInstance{
		settings:      &settings,
		InvertedIndex: invIndex,
		DocumentStore: docStore,
		indexer:       indexerService,
		searcher:      searchService,
	}, nil
}

// AddDocuments delegates to the underlying Indexer service.
func (i *IndexInstance) AddDocuments(docs []model.Document) error {
	return i.indexer.AddDocuments(docs)
}

// DeleteAllDocuments delegates to the underlying Indexer service.
func (i *IndexInstance) DeleteAllDocuments() error {
	return i.indexer.DeleteAllDocuments()
}

// DeleteDocument delegates to the underlying Indexer service.
func (i *IndexInstance) DeleteDocument(docID string) error {
	return i.indexer.DeleteDocument(docID)
}

// Search delegates to the underlying Searcher service.
func (i *IndexInstance) Search(query services.SearchQuery) (services.SearchResult, error) {
	return i.searcher.Search(query)
}

// MultiSearch delegates to the underlying Searcher service.
func (i *IndexInstance) MultiSearch(query services.MultiSearchQuery) (*services.MultiSearchResult, error) {
	return i.searcher.MultiSearch(query)
}

// Settings returns a copy of the configuration settings for this index.
func (i *IndexInstance) Settings() config.IndexSettings {
	return *i.settings
}
