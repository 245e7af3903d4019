package postings

import "sort"

// ListIterator walks a materialized posting list. The backing slice must be
// sorted ascending and duplicate-free; the iterator never mutates it.
type ListIterator struct {
	docs []DocID
	pos  int
}

// NewList creates an iterator over a pre-sorted, duplicate-free slice of
// document IDs. The iterator keeps a reference to the slice, so callers must
// not modify it while the iterator is live.
func NewList(docs []DocID) *ListIterator {
	return &ListIterator{docs: docs, pos: -1}
}

func (it *ListIterator) NextDoc() DocID {
	if it.pos >= len(it.docs) {
		return EOL
	}
	it.pos++
	return it.Doc()
}

func (it *ListIterator) Advance(target DocID) DocID {
	if it.pos >= len(it.docs) {
		return EOL
	}
	if it.pos >= 0 && it.docs[it.pos] >= target {
		// Already at or past target: NextDoc semantics.
		return it.NextDoc()
	}
	from := it.pos + 1
	it.pos = from + sort.Search(len(it.docs)-from, func(i int) bool {
		return it.docs[from+i] >= target
	})
	return it.Doc()
}

func (it *ListIterator) Doc() DocID {
	if it.pos < 0 || it.pos >= len(it.docs) {
		return EOL
	}
	return it.docs[it.pos]
}
