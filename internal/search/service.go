package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmacedo/memsearch/config"
	"github.com/rmacedo/memsearch/index"
	"github.com/rmacedo/memsearch/internal/postings"
	"github.com/rmacedo/memsearch/internal/query"
	"github.com/rmacedo/memsearch/services"
	"github.com/rmacedo/memsearch/store"
)

// Service implements the search logic for a single index.
// It fulfills the services.Searcher interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	settings      *config.IndexSettings
}

// NewService creates a new search Service.
func NewService(invIndex *index.InvertedIndex, docStore *store.DocumentStore, settings *config.IndexSettings) (*Service, error) {
	if invIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if docStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}
	return &Service{
		invertedIndex: invIndex,
		documentStore: docStore,
		settings:      settings,
	}, nil
}

const defaultPageSize = 10

// Search parses the boolean query string, rewrites it to negation normal
// form, executes it against the inverted index, and returns one page of
// matching documents in ascending internal-ID order.
func (s *Service) Search(q services.SearchQuery) (services.SearchResult, error) {
	startTime := time.Now()
	queryID := uuid.New().String()

	node, err := query.Parse(q.QueryString)
	if err != nil {
		return services.SearchResult{}, err
	}
	node = query.Rewrite(node)

	it, err := query.Execute(node, s.invertedIndex)
	if err != nil {
		return services.SearchResult{}, err
	}
	matches := postings.Drain(it)

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matches) {
		start = len(matches)
	}
	if end > len(matches) {
		end = len(matches)
	}

	hits := make([]services.HitResult, 0, end-start)
	for _, internalID := range matches[start:end] {
		doc, ok := s.documentStore.Get(internalID)
		if !ok {
			// Matched an ID the store no longer holds; skip rather than
			// surface a phantom hit.
			continue
		}
		id, _ := doc.GetDocumentID()
		hits = append(hits, services.HitResult{ID: id, Document: doc})
	}

	return services.SearchResult{
		Hits:     hits,
		Total:    len(matches),
		Page:     page,
		PageSize: pageSize,
		Took:     time.Since(startTime).Milliseconds(),
		QueryId:  queryID,
	}, nil
}
