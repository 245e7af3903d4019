package store

import (
	"sync"

	"github.com/rmacedo/memsearch/model"
)

// DocumentStore maps user-provided document IDs to compact internal uint32
// IDs and keeps the full documents for result hydration.
type DocumentStore struct {
	Mu                     sync.RWMutex
	Docs                   map[uint32]model.Document // Internal ID to full document
	ExternalIDtoInternalID map[string]uint32         // User-provided ID to internal uint32 ID
	NextID                 uint32
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		Docs:                   make(map[uint32]model.Document),
		ExternalIDtoInternalID: make(map[string]uint32),
		NextID:                 0,
	}
}

// Get returns the document for an internal ID.
func (ds *DocumentStore) Get(internalID uint32) (model.Document, bool) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	doc, ok := ds.Docs[internalID]
	return doc, ok
}

// GetByExternalID returns the document for a user-provided ID.
func (ds *DocumentStore) GetByExternalID(externalID string) (model.Document, bool) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	internalID, ok := ds.ExternalIDtoInternalID[externalID]
	if !ok {
		return nil, false
	}
	doc, ok := ds.Docs[internalID]
	return doc, ok
}

// Count returns the number of stored documents.
func (ds *DocumentStore) Count() int {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	return len(ds.Docs)
}
