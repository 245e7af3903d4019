package postings

// SeqIterator adapts a pull-based generator of ascending document IDs. It is
// used to expose lazily produced sequences (for example a roaring bitmap
// cursor) under the Iterator contract. The generator must yield strictly
// increasing IDs and report false once exhausted.
type SeqIterator struct {
	next func() (DocID, bool)
	cur  DocID
	done bool
}

// NewSeq creates an iterator over the given generator function.
func NewSeq(next func() (DocID, bool)) *SeqIterator {
	return &SeqIterator{next: next, cur: EOL}
}

func (it *SeqIterator) NextDoc() DocID {
	if it.done {
		return EOL
	}
	doc, ok := it.next()
	if !ok {
		it.done = true
		it.cur = EOL
		return EOL
	}
	it.cur = doc
	return doc
}

func (it *SeqIterator) Advance(target DocID) DocID {
	// The generator cannot skip, so Advance is a linear walk. It always
	// moves at least one step, matching the NextDoc degeneration policy.
	doc := it.NextDoc()
	for doc != EOL && doc < target {
		doc = it.NextDoc()
	}
	return doc
}

func (it *SeqIterator) Doc() DocID {
	return it.cur
}
