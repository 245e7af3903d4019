// Package testutil provides helpers for engine-level tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmacedo/memsearch/config"
	"github.com/rmacedo/memsearch/internal/engine"
	"github.com/rmacedo/memsearch/model"
	"github.com/rmacedo/memsearch/services"
)

// NewEngine creates an empty engine for a test.
func NewEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.NewEngine(nil)
}

// CreateIndex creates an index and fails the test on error.
func CreateIndex(t *testing.T, eng *engine.Engine, settings config.IndexSettings) {
	t.Helper()
	require.NoError(t, eng.CreateIndex(settings), "failed to create index %q", settings.Name)
}

// AddDocuments indexes documents into the named index, failing the test on error.
func AddDocuments(t *testing.T, eng *engine.Engine, indexName string, docs ...model.Document) {
	t.Helper()
	accessor, err := eng.GetIndex(indexName)
	require.NoError(t, err, "failed to get index %q", indexName)
	require.NoError(t, accessor.AddDocuments(docs), "failed to add documents to %q", indexName)
}

// Search runs a query against the named index and fails the test on error.
func Search(t *testing.T, eng *engine.Engine, indexName, query string) services.SearchResult {
	t.Helper()
	accessor, err := eng.GetIndex(indexName)
	require.NoError(t, err, "failed to get index %q", indexName)
	result, err := accessor.Search(services.SearchQuery{QueryString: query})
	require.NoError(t, err, "search %q failed on index %q", query, indexName)
	return result
}

// HitIDs extracts the external document IDs of a result's hits in order.
func HitIDs(result services.SearchResult) []string {
	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}
	return ids
}
