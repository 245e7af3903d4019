package indexing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rmacedo/memsearch/index"
	"github.com/rmacedo/memsearch/internal/errors"
	"github.com/rmacedo/memsearch/internal/postings"
	"github.com/rmacedo/memsearch/internal/tokenizer"
	"github.com/rmacedo/memsearch/model"
	"github.com/rmacedo/memsearch/store"
)

// Service implements the indexing logic for a single index.
// It fulfills the services.Indexer interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	// settings are accessible via invertedIndex.Settings
}

// NewService creates a new indexing Service.
// It assumes that invertedIndex and documentStore are properly initialized,
// and that invertedIndex.Settings is not nil.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if invertedIndex.Settings == nil {
		return nil, fmt.Errorf("inverted index settings cannot be nil")
	}
	// Initialize maps if nil to prevent panics later
	if invertedIndex.Terms == nil {
		invertedIndex.Terms = make(map[string][]postings.DocID)
	}
	if documentStore.Docs == nil {
		documentStore.Docs = make(map[uint32]model.Document)
	}
	if documentStore.ExternalIDtoInternalID == nil {
		documentStore.ExternalIDtoInternalID = make(map[string]uint32)
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
	}, nil
}

// AddDocuments adds a batch of documents to the index.
// This satisfies the services.Indexer interface.
func (s *Service) AddDocuments(docs []model.Document) error {
	// Process documents in micro-batches to minimize lock contention and
	// allow search operations to interleave
	const microBatchSize = 10

	for i := 0; i < len(docs); i += microBatchSize {
		end := i + microBatchSize
		if end > len(docs) {
			end = len(docs)
		}

		if err := s.addDocumentMicroBatch(docs[i:end]); err != nil {
			return fmt.Errorf("failed to add document micro-batch starting at index %d: %w", i, err)
		}

		// Yield between micro-batches so pending searches can acquire the
		// read lock during large indexing operations
		if i+microBatchSize < len(docs) {
			time.Sleep(1 * time.Millisecond)
		}
	}
	return nil
}

// addDocumentMicroBatch processes a very small batch of documents with minimal lock time.
func (s *Service) addDocumentMicroBatch(docs []model.Document) error {
	s.documentStore.Mu.Lock()
	s.invertedIndex.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	for _, doc := range docs {
		if err := s.addSingleDocumentUnsafe(doc); err != nil {
			return err
		}
	}
	return nil
}

// addSingleDocumentUnsafe handles the processing and indexing of a single document.
// It assumes that the caller already holds locks on documentStore and invertedIndex.
func (s *Service) addSingleDocumentUnsafe(doc model.Document) error {
	docIDStr, ok := doc.GetDocumentID()
	if !ok || strings.TrimSpace(docIDStr) == "" {
		return fmt.Errorf("document documentID must be provided as a non-empty string under key 'documentID'")
	}
	docIDStr = strings.TrimSpace(docIDStr)

	settings := s.invertedIndex.Settings

	// 1. Get/Assign internal ID. On update, remove the old version's terms
	// first so stale tokens do not keep matching.
	internalID, exists := s.documentStore.ExternalIDtoInternalID[docIDStr]
	if exists {
		if oldDoc, ok := s.documentStore.Docs[internalID]; ok {
			s.removeDocumentTermsUnsafe(internalID, oldDoc)
		}
	} else {
		internalID = s.documentStore.NextID
		s.documentStore.ExternalIDtoInternalID[docIDStr] = internalID
		s.documentStore.NextID++
	}

	s.documentStore.Docs[internalID] = doc
	s.invertedIndex.Docs.Add(internalID)

	// 2. Index each searchable field of the new/updated document.
	for _, fieldName := range settings.SearchableFields {
		text := fieldText(doc, fieldName)
		if strings.TrimSpace(text) == "" {
			continue
		}

		for _, term := range tokenizer.TokenizeField(fieldName, text) {
			s.insertPostingUnsafe(term, internalID)
		}
	}
	return nil
}

// insertPostingUnsafe inserts internalID into the posting list for term,
// keeping the list ascending and duplicate-free. The list is replaced
// rather than mutated in place so iterators handed out to in-flight
// searches keep a consistent view.
func (s *Service) insertPostingUnsafe(term string, internalID postings.DocID) {
	list := s.invertedIndex.Terms[term]
	pos := sort.Search(len(list), func(i int) bool { return list[i] >= internalID })
	if pos < len(list) && list[pos] == internalID {
		return
	}

	updated := make([]postings.DocID, 0, len(list)+1)
	updated = append(updated, list[:pos]...)
	updated = append(updated, internalID)
	updated = append(updated, list[pos:]...)
	s.invertedIndex.Terms[term] = updated
}

// removePostingUnsafe removes internalID from the posting list for term,
// deleting the term entirely when its list becomes empty. Like insertion,
// the list is replaced rather than mutated in place.
func (s *Service) removePostingUnsafe(term string, internalID postings.DocID) {
	list := s.invertedIndex.Terms[term]
	pos := sort.Search(len(list), func(i int) bool { return list[i] >= internalID })
	if pos == len(list) || list[pos] != internalID {
		return
	}

	if len(list) == 1 {
		delete(s.invertedIndex.Terms, term)
		return
	}
	updated := make([]postings.DocID, 0, len(list)-1)
	updated = append(updated, list[:pos]...)
	updated = append(updated, list[pos+1:]...)
	s.invertedIndex.Terms[term] = updated
}

// removeDocumentTermsUnsafe removes every term the given document
// contributed to the inverted index. It assumes the caller holds both locks.
func (s *Service) removeDocumentTermsUnsafe(internalID postings.DocID, doc model.Document) {
	settings := s.invertedIndex.Settings
	for _, fieldName := range settings.SearchableFields {
		text := fieldText(doc, fieldName)
		if strings.TrimSpace(text) == "" {
			continue
		}

		for _, term := range tokenizer.TokenizeField(fieldName, text) {
			s.removePostingUnsafe(term, internalID)
		}
	}
}

// fieldText extracts the indexable text of a document field. JSON arrays
// are joined with spaces; unhandled types yield no text.
func fieldText(doc model.Document, fieldName string) string {
	fieldVal, ok := doc[fieldName]
	if !ok {
		return ""
	}

	switch v := fieldVal.(type) {
	case string:
		return v
	case []interface{}: // JSON arrays are often unmarshalled to []interface{}
		var parts []string
		for _, item := range v {
			if strItem, ok := item.(string); ok {
				parts = append(parts, strItem)
			}
		}
		return strings.Join(parts, " ")
	case []string:
		return strings.Join(v, " ")
	default:
		return ""
	}
}

// DeleteAllDocuments removes all documents from the index, clearing both
// the document store and inverted index.
// This satisfies the services.Indexer interface.
func (s *Service) DeleteAllDocuments() error {
	s.documentStore.Mu.Lock()
	s.invertedIndex.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	s.documentStore.Docs = make(map[uint32]model.Document)
	s.documentStore.ExternalIDtoInternalID = make(map[string]uint32)
	s.documentStore.NextID = 0

	s.invertedIndex.Terms = make(map[string][]postings.DocID)
	s.invertedIndex.Docs.Clear()

	return nil
}

// DeleteDocument removes a specific document from the index by its external ID.
// This satisfies the services.Indexer interface.
func (s *Service) DeleteDocument(docID string) error {
	s.documentStore.Mu.Lock()
	s.invertedIndex.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	internalID, exists := s.documentStore.ExternalIDtoInternalID[docID]
	if !exists {
		return errors.NewDocumentNotFoundError(docID)
	}

	doc, docExists := s.documentStore.Docs[internalID]
	if !docExists {
		// Mapping and store disagree; clean up the mapping and report
		delete(s.documentStore.ExternalIDtoInternalID, docID)
		return fmt.Errorf("document with ID '%s' found in mapping but not in store (inconsistent state)", docID)
	}

	s.removeDocumentTermsUnsafe(internalID, doc)

	delete(s.documentStore.Docs, internalID)
	delete(s.documentStore.ExternalIDtoInternalID, docID)
	s.invertedIndex.Docs.Remove(internalID)

	return nil
}
