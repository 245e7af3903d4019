package query

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/rmacedo/memsearch/internal/errors"
	"github.com/rmacedo/memsearch/internal/postings"
)

// fakeProvider serves canned posting lists for executor tests.
type fakeProvider struct {
	allowAll bool
	all      []postings.DocID
	lists    map[string][]postings.DocID
}

func (f *fakeProvider) AllowAll() bool { return f.allowAll }

func (f *fakeProvider) All() (postings.Iterator, error) {
	if !f.allowAll {
		return nil, errors.ErrAllDocsDisallowed
	}
	return postings.NewList(f.all), nil
}

func (f *fakeProvider) Postings(term string) postings.Iterator {
	list, ok := f.lists[term]
	if !ok {
		return postings.Empty()
	}
	return postings.NewList(list)
}

func newTestProvider(allowAll bool) *fakeProvider {
	return &fakeProvider{
		allowAll: allowAll,
		all:      []postings.DocID{1, 2, 3, 4, 5, 6, 7},
		lists: map[string][]postings.DocID{
			"foo":  {1, 2, 3, 4},
			"bar":  {2, 3, 4, 5},
			"baz":  {3, 4, 5, 6},
			"quux": {4, 5, 6, 7},
		},
	}
}

func evaluate(t *testing.T, provider Provider, input string) []postings.DocID {
	t.Helper()
	it, err := Execute(Rewrite(mustParse(t, input)), provider)
	if err != nil {
		t.Fatalf("Execute(%q) failed: %v", input, err)
	}
	return postings.Drain(it)
}

func TestExecute_EndToEnd(t *testing.T) {
	tests := []struct {
		query string
		want  []postings.DocID
	}{
		{query: "foo", want: []postings.DocID{1, 2, 3, 4}},
		{query: "foo.bar", want: []postings.DocID{2, 3, 4}},
		{query: "foo.bar.-quux", want: []postings.DocID{2, 3}},
		{query: "-foo.-bar.-baz", want: []postings.DocID{7}},
		{query: "foo,quux", want: []postings.DocID{1, 2, 3, 4, 5, 6, 7}},
		{query: "foo.bar,baz.quux", want: []postings.DocID{2, 3, 4, 5, 6}},
		{query: "-(foo,bar,baz,quux)", want: nil},
		{query: "-quux", want: []postings.DocID{1, 2, 3}},
		{query: "", want: nil},
	}

	provider := newTestProvider(true)
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := evaluate(t, provider, tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Query %q: expected %v, got %v", tt.query, tt.want, got)
			}
		})
	}
}

func TestExecute_UnknownTermIsEmptyNotError(t *testing.T) {
	provider := newTestProvider(true)
	if got := evaluate(t, provider, "nosuchterm"); got != nil {
		t.Errorf("Expected no documents, got %v", got)
	}
	// An unknown term as a conjunct annihilates the intersection.
	if got := evaluate(t, provider, "foo.nosuchterm"); got != nil {
		t.Errorf("Expected no documents, got %v", got)
	}
}

func TestExecute_NegationNeedsAllDocs(t *testing.T) {
	provider := newTestProvider(false)

	queries := []string{
		"-foo",      // bare negated literal
		"-foo.-bar", // all-negative conjunction
		"-foo,-bar", // negated literals under OR
		"baz,-foo",  // one negated OR child is enough to fail
	}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			_, err := Execute(Rewrite(mustParse(t, q)), provider)
			if err == nil {
				t.Fatalf("Query %q: expected unsupported-negation error", q)
			}
			if !stderrors.Is(err, errors.ErrUnsupportedNegation) {
				t.Errorf("Query %q: expected ErrUnsupportedNegation, got %v", q, err)
			}
		})
	}

	// The same queries succeed when the full document set is available.
	allowed := newTestProvider(true)
	if got := evaluate(t, allowed, "-foo"); !reflect.DeepEqual(got, []postings.DocID{5, 6, 7}) {
		t.Errorf("Expected [5 6 7], got %v", got)
	}
}

func TestExecute_NegationInsideConjunctionWithoutAllDocs(t *testing.T) {
	// Negation attached to a conjunction with positive conjuncts never
	// needs the full document set.
	provider := newTestProvider(false)
	got := evaluate(t, provider, "foo.bar.-quux")
	want := []postings.DocID{2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExecute_Singletons(t *testing.T) {
	provider := newTestProvider(true)

	it, err := Execute(NoDocs, provider)
	if err != nil {
		t.Fatalf("Execute(NoDocs) failed: %v", err)
	}
	if got := postings.Drain(it); got != nil {
		t.Errorf("Expected no documents, got %v", got)
	}

	it, err = Execute(AllDocs, provider)
	if err != nil {
		t.Fatalf("Execute(AllDocs) failed: %v", err)
	}
	if got := postings.Drain(it); !reflect.DeepEqual(got, provider.all) {
		t.Errorf("Expected %v, got %v", provider.all, got)
	}

	// AllDocs is unobtainable when the provider disallows it.
	if _, err := Execute(AllDocs, newTestProvider(false)); err == nil {
		t.Error("Expected error executing AllDocs with AllowAll=false")
	}
}

func TestExecute_RepeatedExecutionIsDeterministic(t *testing.T) {
	provider := newTestProvider(true)
	node := Rewrite(mustParse(t, "foo.bar,-baz"))

	first, err := Execute(node, provider)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	second, err := Execute(node, provider)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	a, b := postings.Drain(first), postings.Drain(second)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Repeated executions differ: %v vs %v", a, b)
	}
}
