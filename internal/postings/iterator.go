// Package postings provides cursor-style iterators over sorted,
// duplicate-free posting lists, plus the merge combinators (intersection,
// union, difference) the query executor is built from.
package postings

import "math"

// DocID is an internal document identifier. Real documents are always
// strictly smaller than EOL.
type DocID = uint32

// EOL is the end-of-list sentinel, larger than any real document ID.
const EOL DocID = math.MaxUint32

// Iterator is a forward-only cursor over an ascending, duplicate-free
// sequence of document IDs.
//
// A freshly constructed iterator is positioned before its first element;
// the first call to NextDoc or Advance produces the first element. Once an
// iterator has returned EOL it keeps returning EOL. Iterators are
// single-pass and must not be shared between consumers.
type Iterator interface {
	// NextDoc moves to the next document and returns it, or EOL when the
	// iterator is exhausted.
	NextDoc() DocID

	// Advance moves forward to the first document >= target and returns it,
	// or EOL when no such document exists. A target at or below the current
	// document degenerates to NextDoc: the iterator still moves exactly one
	// step forward, never backward.
	Advance(target DocID) DocID

	// Doc returns the document the iterator is positioned on. It returns
	// EOL both before the first call to NextDoc/Advance and after
	// exhaustion.
	Doc() DocID
}

// Drain consumes the iterator and returns all remaining documents.
func Drain(it Iterator) []DocID {
	var docs []DocID
	for doc := it.NextDoc(); doc != EOL; doc = it.NextDoc() {
		docs = append(docs, doc)
	}
	return docs
}
