// Package index holds the in-memory inverted index: one sorted posting
// list per term plus a bitmap of all live documents.
package index

import (
	"sync"

	"github.com/RoaringBitmap/roaring"

	"github.com/rmacedo/memsearch/config"
	"github.com/rmacedo/memsearch/internal/errors"
	"github.com/rmacedo/memsearch/internal/postings"
)

// InvertedIndex maps a term (token) to the ascending, duplicate-free list
// of internal document IDs containing it. It implements the query
// executor's Provider contract.
//
// The mutex guards index mutation against searches. Iterators handed out by
// Postings and All are snapshots only in the sense that posting lists are
// replaced, never mutated in place, on writes; a search that overlaps a
// write still sees a consistent list.
type InvertedIndex struct {
	Mu       sync.RWMutex
	Terms    map[string][]postings.DocID
	Docs     *roaring.Bitmap       // All live internal document IDs
	Settings *config.IndexSettings // Reference to settings for this index
}

// NewInvertedIndex creates an empty index bound to the given settings.
func NewInvertedIndex(settings *config.IndexSettings) *InvertedIndex {
	return &InvertedIndex{
		Terms:    make(map[string][]postings.DocID),
		Docs:     roaring.NewBitmap(),
		Settings: settings,
	}
}

// AllowAll reports whether queries may iterate the full document set.
func (ii *InvertedIndex) AllowAll() bool {
	return ii.Settings.AllowAll
}

// All returns an iterator over every live document in ascending order. It
// fails when the index settings disallow full-set iteration.
func (ii *InvertedIndex) All() (postings.Iterator, error) {
	if !ii.AllowAll() {
		return nil, errors.ErrAllDocsDisallowed
	}

	ii.Mu.RLock()
	// Clone so the cursor keeps a stable view even if documents are added
	// while the query drains.
	snapshot := ii.Docs.Clone()
	ii.Mu.RUnlock()

	cursor := snapshot.Iterator()
	return postings.NewSeq(func() (postings.DocID, bool) {
		if !cursor.HasNext() {
			return 0, false
		}
		return cursor.Next(), true
	}), nil
}

// Postings returns the posting iterator for a term. Unknown terms yield an
// immediately exhausted iterator. Each call returns an independently
// positioned iterator.
func (ii *InvertedIndex) Postings(term string) postings.Iterator {
	ii.Mu.RLock()
	list := ii.Terms[term]
	ii.Mu.RUnlock()

	if len(list) == 0 {
		return postings.Empty()
	}
	return postings.NewList(list)
}

// TermCount returns the number of distinct indexed terms.
func (ii *InvertedIndex) TermCount() int {
	ii.Mu.RLock()
	defer ii.Mu.RUnlock()
	return len(ii.Terms)
}

// DocCount returns the number of live documents.
func (ii *InvertedIndex) DocCount() uint64 {
	ii.Mu.RLock()
	defer ii.Mu.RUnlock()
	return ii.Docs.GetCardinality()
}
