package postings

import (
	"reflect"
	"testing"
)

func TestNewConjunction_RequiresSubIterators(t *testing.T) {
	if _, err := NewConjunction(nil); err == nil {
		t.Error("Expected error for empty sub-iterator list")
	}
	if _, err := NewConjunction([]Iterator{}); err == nil {
		t.Error("Expected error for empty sub-iterator list")
	}
}

func TestConjunction_Intersection(t *testing.T) {
	a := []DocID{1, 2, 3, 4, 5, 6, 7}
	b := []DocID{1, 3, 5, 7, 9}
	c := []DocID{3, 4, 5}
	want := []DocID{3, 5}

	// The result must not depend on construction order.
	orders := [][][]DocID{
		{a, b, c},
		{c, a, b},
		{b, c, a},
	}
	for i, lists := range orders {
		subs := make([]Iterator, len(lists))
		for j, list := range lists {
			subs[j] = NewList(list)
		}
		conj, err := NewConjunction(subs)
		if err != nil {
			t.Fatalf("Order %d: NewConjunction failed: %v", i, err)
		}
		if got := Drain(conj); !reflect.DeepEqual(got, want) {
			t.Errorf("Order %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestConjunction_SingleSubIterator(t *testing.T) {
	conj, err := NewConjunction([]Iterator{NewList([]DocID{4, 8, 15})})
	if err != nil {
		t.Fatalf("NewConjunction failed: %v", err)
	}
	want := []DocID{4, 8, 15}
	if got := Drain(conj); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestConjunction_EmptySubIteratorMeansEmptyResult(t *testing.T) {
	conj, err := NewConjunction([]Iterator{
		NewList([]DocID{1, 2, 3}),
		Empty(),
	})
	if err != nil {
		t.Fatalf("NewConjunction failed: %v", err)
	}
	if doc := conj.NextDoc(); doc != EOL {
		t.Errorf("Expected EOL, got %d", doc)
	}
}

func TestConjunction_DisjointLists(t *testing.T) {
	conj, err := NewConjunction([]Iterator{
		NewList([]DocID{1, 3, 5}),
		NewList([]DocID{2, 4, 6}),
	})
	if err != nil {
		t.Fatalf("NewConjunction failed: %v", err)
	}
	if got := Drain(conj); got != nil {
		t.Errorf("Expected no documents, got %v", got)
	}
}

func TestConjunction_Advance(t *testing.T) {
	conj, err := NewConjunction([]Iterator{
		NewList([]DocID{1, 2, 3, 4, 5, 6, 7, 8}),
		NewList([]DocID{2, 4, 6, 8}),
	})
	if err != nil {
		t.Fatalf("NewConjunction failed: %v", err)
	}

	if doc := conj.Advance(5); doc != 6 {
		t.Errorf("Advance(5): expected 6, got %d", doc)
	}
	// Target below current degenerates to NextDoc.
	if doc := conj.Advance(1); doc != 8 {
		t.Errorf("Advance(1) while at 6: expected 8, got %d", doc)
	}
	if doc := conj.Advance(9); doc != EOL {
		t.Errorf("Advance(9): expected EOL, got %d", doc)
	}
}
