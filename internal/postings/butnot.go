package postings

// ButNot produces the candidates' documents minus the exclusions'
// documents. Exclusions are skipped ahead with Advance rather than scanned
// linearly, and never rewound between candidates.
type ButNot struct {
	candidates Iterator
	exclusions Iterator
	excl       DocID
	exclPrimed bool
	cur        DocID
}

// NewButNot creates a set-difference iterator. It takes ownership of both
// sub-iterators. A nil candidates iterator means an empty result; a nil
// exclusions iterator passes the candidates through unchanged.
func NewButNot(candidates, exclusions Iterator) *ButNot {
	if candidates == nil {
		candidates = Empty()
	}
	return &ButNot{candidates: candidates, exclusions: exclusions, cur: EOL}
}

func (b *ButNot) NextDoc() DocID {
	return b.filter(b.candidates.NextDoc())
}

func (b *ButNot) Advance(target DocID) DocID {
	return b.filter(b.candidates.Advance(target))
}

func (b *ButNot) Doc() DocID {
	return b.cur
}

// filter skips candidates matched by the exclusions iterator. The last
// exclusion document is cached so the exclusions iterator is only advanced
// when it is behind the candidate; advancing it unconditionally would step
// it past exclusions that still apply to later candidates.
func (b *ButNot) filter(doc DocID) DocID {
	if b.exclusions != nil {
		for doc != EOL {
			if !b.exclPrimed || b.excl < doc {
				b.excl = b.exclusions.Advance(doc)
				b.exclPrimed = true
			}
			if b.excl != doc {
				break
			}
			doc = b.candidates.NextDoc()
		}
	}
	b.cur = doc
	return doc
}
