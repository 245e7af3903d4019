package query

import (
	"fmt"

	"github.com/rmacedo/memsearch/internal/errors"
	"github.com/rmacedo/memsearch/internal/postings"
)

// Provider is the read contract the executor needs from an index: per-term
// posting iterators and, when allowed, the full document set. Each call
// must return an independently positioned iterator.
type Provider interface {
	// AllowAll reports whether All may be called.
	AllowAll() bool

	// All returns an iterator over every known document in ascending,
	// duplicate-free order. It fails when AllowAll is false.
	All() (postings.Iterator, error)

	// Postings returns the term's posting iterator. An unknown term yields
	// an immediately exhausted iterator, not an error.
	Postings(term string) postings.Iterator
}

// Execute realizes the query as a posting iterator over the provider. The
// node is expected to have gone through Rewrite; negation that survives in
// a position where the full document set would be needed fails with an
// *errors.UnsupportedNegationError when the provider disallows it.
func Execute(node Node, provider Provider) (postings.Iterator, error) {
	return execute(node, provider, false)
}

// execute evaluates one node. ignoreNegation suppresses the node's own
// negation flag (not its descendants'): the AND executor uses it for
// excluded children whose negation is realized by the surrounding
// difference instead.
func execute(node Node, provider Provider, ignoreNegation bool) (postings.Iterator, error) {
	switch n := node.(type) {
	case noDocsNode:
		return postings.Empty(), nil
	case allDocsNode:
		return provider.All()
	case *Literal:
		it := provider.Postings(n.Term)
		if n.Neg && !ignoreNegation {
			// A negated literal standing on its own must subtract from the
			// full document set.
			all, err := allDocsFor(provider, n)
			if err != nil {
				return nil, err
			}
			return postings.NewButNot(all, it), nil
		}
		return it, nil
	case *Group:
		if n.Neg && !ignoreNegation {
			// Rewrite eliminates group-level negation, so this only fires
			// on trees executed without rewriting.
			all, err := allDocsFor(provider, n)
			if err != nil {
				return nil, err
			}
			inner, err := execute(n, provider, true)
			if err != nil {
				return nil, err
			}
			return postings.NewButNot(all, inner), nil
		}
		if n.Junctor == And {
			return executeAnd(n, provider)
		}
		return executeOr(n, provider)
	}
	return nil, fmt.Errorf("unknown query node type %T", node)
}

func executeAnd(g *Group, provider Provider) (postings.Iterator, error) {
	var required, excluded []Node
	for _, child := range g.Children {
		if child.Negated() {
			excluded = append(excluded, child)
		} else {
			required = append(required, child)
		}
	}

	var candidates postings.Iterator
	if len(required) == 0 {
		// All children negated: only the full document set can anchor the
		// difference.
		all, err := allDocsFor(provider, g)
		if err != nil {
			return nil, err
		}
		candidates = all
	} else {
		subs := make([]postings.Iterator, len(required))
		for i, child := range required {
			it, err := execute(child, provider, false)
			if err != nil {
				return nil, err
			}
			subs[i] = it
		}
		conjunction, err := postings.NewConjunction(subs)
		if err != nil {
			return nil, err
		}
		candidates = conjunction
	}

	if len(excluded) == 0 {
		return candidates, nil
	}
	// Excluded children are executed with their own negation suppressed;
	// the surrounding difference applies it exactly once.
	subs := make([]postings.Iterator, len(excluded))
	for i, child := range excluded {
		it, err := execute(child, provider, true)
		if err != nil {
			return nil, err
		}
		subs[i] = it
	}
	return postings.NewButNot(candidates, postings.NewDisjunction(subs)), nil
}

func executeOr(g *Group, provider Provider) (postings.Iterator, error) {
	subs := make([]postings.Iterator, len(g.Children))
	for i, child := range g.Children {
		// A child still negated here executes through the standalone
		// negation path above, which needs the full document set.
		it, err := execute(child, provider, false)
		if err != nil {
			return nil, err
		}
		subs[i] = it
	}
	return postings.NewDisjunction(subs), nil
}

func allDocsFor(provider Provider, node Node) (postings.Iterator, error) {
	if !provider.AllowAll() {
		return nil, errors.NewUnsupportedNegationError(node.String())
	}
	return provider.All()
}
