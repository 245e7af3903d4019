package postings

import "fmt"

// Conjunction produces the documents present in every sub-iterator using
// leapfrog intersection: the most-behind sub-iterator is repeatedly advanced
// to the current maximum, so the cost tracks the smallest list rather than
// the product of list lengths.
type Conjunction struct {
	subs   []Iterator
	cur    DocID
	primed bool
	done   bool
}

// NewConjunction creates an AND iterator over the given sub-iterators. It
// takes ownership of them. At least one sub-iterator is required.
func NewConjunction(subs []Iterator) (*Conjunction, error) {
	if len(subs) == 0 {
		return nil, fmt.Errorf("conjunction requires at least one sub-iterator")
	}
	return &Conjunction{subs: subs, cur: EOL}, nil
}

func (c *Conjunction) NextDoc() DocID {
	if c.done {
		return EOL
	}
	if !c.primed {
		if !c.prime() {
			return EOL
		}
		return c.converge()
	}
	// All sub-iterators agree on the current document; step the one holding
	// the largest value and re-converge.
	max := 0
	for i, sub := range c.subs {
		if sub.Doc() > c.subs[max].Doc() {
			max = i
		}
	}
	if c.subs[max].NextDoc() == EOL {
		return c.exhaust()
	}
	return c.converge()
}

func (c *Conjunction) Advance(target DocID) DocID {
	if c.done {
		return EOL
	}
	if c.primed && target <= c.cur {
		return c.NextDoc()
	}
	if !c.primed && !c.prime() {
		return EOL
	}
	for _, sub := range c.subs {
		if sub.Doc() < target {
			if sub.Advance(target) == EOL {
				return c.exhaust()
			}
		}
	}
	return c.converge()
}

func (c *Conjunction) Doc() DocID {
	return c.cur
}

// prime positions every sub-iterator on its first document. If any is
// immediately exhausted the intersection is empty forever.
func (c *Conjunction) prime() bool {
	c.primed = true
	for _, sub := range c.subs {
		if sub.NextDoc() == EOL {
			c.exhaust()
			return false
		}
	}
	return true
}

// converge leapfrogs the sub-iterators until they all sit on the same
// document, which becomes the next result.
func (c *Conjunction) converge() DocID {
	for {
		min, max := 0, DocID(0)
		for i, sub := range c.subs {
			doc := sub.Doc()
			if doc == EOL {
				return c.exhaust()
			}
			if doc > max {
				max = doc
			}
			if doc < c.subs[min].Doc() {
				min = i
			}
		}
		if c.subs[min].Doc() == max {
			c.cur = max
			return max
		}
		if c.subs[min].Advance(max) == EOL {
			return c.exhaust()
		}
	}
}

func (c *Conjunction) exhaust() DocID {
	c.done = true
	c.cur = EOL
	return EOL
}
