package postings

type emptyIterator struct{}

// Empty returns an iterator that is exhausted from the start.
func Empty() Iterator {
	return emptyIterator{}
}

func (emptyIterator) NextDoc() DocID      { return EOL }
func (emptyIterator) Advance(DocID) DocID { return EOL }
func (emptyIterator) Doc() DocID          { return EOL }
