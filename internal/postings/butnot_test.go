package postings

import (
	"reflect"
	"testing"
)

func TestButNot_Difference(t *testing.T) {
	bn := NewButNot(
		NewList([]DocID{1, 2, 3, 4, 5, 6, 7}),
		NewList([]DocID{1, 3, 5, 7, 9}),
	)
	want := []DocID{2, 4, 6}
	if got := Drain(bn); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestButNot_NilCandidatesMeansEmpty(t *testing.T) {
	bn := NewButNot(nil, NewList([]DocID{1, 2}))
	if doc := bn.NextDoc(); doc != EOL {
		t.Errorf("Expected EOL, got %d", doc)
	}
}

func TestButNot_NilExclusionsPassesThrough(t *testing.T) {
	bn := NewButNot(NewList([]DocID{3, 6, 9}), nil)
	want := []DocID{3, 6, 9}
	if got := Drain(bn); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestButNot_ExclusionsCoverEverything(t *testing.T) {
	bn := NewButNot(
		NewList([]DocID{2, 4, 6}),
		NewList([]DocID{1, 2, 3, 4, 5, 6, 7}),
	)
	if got := Drain(bn); got != nil {
		t.Errorf("Expected no documents, got %v", got)
	}
}

// A single exclusion ahead of several candidates must stay usable for each
// of them without being advanced past.
func TestButNot_ExclusionReusedAcrossCandidates(t *testing.T) {
	bn := NewButNot(
		NewList([]DocID{1, 2, 3, 10}),
		NewList([]DocID{10}),
	)
	want := []DocID{1, 2, 3}
	if got := Drain(bn); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestButNot_Advance(t *testing.T) {
	bn := NewButNot(
		NewList([]DocID{1, 2, 3, 4, 5, 6, 7, 8}),
		NewList([]DocID{4, 6}),
	)
	if doc := bn.Advance(4); doc != 5 {
		t.Errorf("Advance(4): expected 5, got %d", doc)
	}
	if doc := bn.NextDoc(); doc != 7 {
		t.Errorf("NextDoc: expected 7, got %d", doc)
	}
}
