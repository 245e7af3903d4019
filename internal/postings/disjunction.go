package postings

// Disjunction produces the strictly ascending, duplicate-free union of its
// sub-iterators. The live sub-iterators are kept in an array-backed binary
// min-heap (1-indexed, heap[0] unused) keyed by their current document;
// every sub-iterator sitting on the emitted document is consumed before the
// next value surfaces, which makes deduplication implicit.
type Disjunction struct {
	heap   []Iterator
	cur    DocID
	primed bool
}

// NewDisjunction creates an OR iterator over the given sub-iterators,
// taking ownership of them. Zero sub-iterators yields an empty union.
func NewDisjunction(subs []Iterator) *Disjunction {
	d := &Disjunction{
		heap: make([]Iterator, 1, len(subs)+1),
		cur:  EOL,
	}
	d.heap[0] = nil
	// Delay priming until the first call so construction leaves every
	// sub-iterator untouched, like the other combinators.
	d.heap = append(d.heap, subs...)
	return d
}

func (d *Disjunction) NextDoc() DocID {
	if !d.primed {
		d.prime()
		return d.emit()
	}
	if d.size() == 0 {
		return EOL
	}
	// Consume every sub-iterator still sitting on the current document.
	for d.size() > 0 && d.heap[1].Doc() <= d.cur {
		d.stepRoot(func(it Iterator) DocID { return it.NextDoc() })
	}
	return d.emit()
}

func (d *Disjunction) Advance(target DocID) DocID {
	if !d.primed {
		d.prime()
	} else if target <= d.cur {
		return d.NextDoc()
	}
	for d.size() > 0 && d.heap[1].Doc() < target {
		d.stepRoot(func(it Iterator) DocID { return it.Advance(target) })
	}
	return d.emit()
}

func (d *Disjunction) Doc() DocID {
	return d.cur
}

func (d *Disjunction) size() int {
	return len(d.heap) - 1
}

// prime advances every sub-iterator onto its first document, discards the
// immediately exhausted ones, and establishes the heap property.
func (d *Disjunction) prime() {
	d.primed = true
	live := d.heap[:1]
	for _, sub := range d.heap[1:] {
		if sub.NextDoc() != EOL {
			live = append(live, sub)
		}
	}
	d.heap = live
	for i := d.size() / 2; i >= 1; i-- {
		d.siftDown(i)
	}
}

// stepRoot advances the root sub-iterator with the given step function and
// restores the heap property, dropping the root if it exhausted.
func (d *Disjunction) stepRoot(step func(Iterator) DocID) {
	if step(d.heap[1]) == EOL {
		last := d.size()
		d.heap[1] = d.heap[last]
		d.heap = d.heap[:last]
	}
	if d.size() > 0 {
		d.siftDown(1)
	}
}

func (d *Disjunction) emit() DocID {
	if d.size() == 0 {
		d.cur = EOL
		return EOL
	}
	d.cur = d.heap[1].Doc()
	return d.cur
}

func (d *Disjunction) siftDown(i int) {
	n := d.size()
	for {
		smallest := i
		if l := 2 * i; l <= n && d.heap[l].Doc() < d.heap[smallest].Doc() {
			smallest = l
		}
		if r := 2*i + 1; r <= n && d.heap[r].Doc() < d.heap[smallest].Doc() {
			smallest = r
		}
		if smallest == i {
			return
		}
		d.heap[i], d.heap[smallest] = d.heap[smallest], d.heap[i]
		i = smallest
	}
}
