// Package query implements the boolean query language: an AST produced by
// Parse, a negation-pushdown rewrite pass, and execution of rewritten trees
// against an index provider as a posting iterator.
package query

import (
	"fmt"
	"strings"
)

// Junctor selects how a Group combines its children.
type Junctor int

const (
	And Junctor = iota
	Or
)

// Node is a query AST node. Nodes are immutable once constructed: Negate
// returns a new node, and the rewrite pass builds fresh trees.
type Node interface {
	// Negated reports whether the node carries a negation flag.
	Negated() bool

	// Negate returns the logical complement of the node.
	Negate() Node

	// String renders the node back into query syntax.
	String() string
}

type noDocsNode struct{}
type allDocsNode struct{}

// NoDocs is the query matching no documents; negating it yields AllDocs.
// Both singletons are immutable and carry no negation flag of their own.
var NoDocs Node = noDocsNode{}

// AllDocs is the query matching every document; negating it yields NoDocs.
var AllDocs Node = allDocsNode{}

func (noDocsNode) Negated() bool  { return false }
func (noDocsNode) Negate() Node   { return AllDocs }
func (noDocsNode) String() string { return "" }

func (allDocsNode) Negated() bool  { return false }
func (allDocsNode) Negate() Node   { return NoDocs }
func (allDocsNode) String() string { return "*" }

// Literal matches the posting list of a single term, optionally negated.
type Literal struct {
	Term string
	Neg  bool
}

func (l *Literal) Negated() bool { return l.Neg }

func (l *Literal) Negate() Node {
	return &Literal{Term: l.Term, Neg: !l.Neg}
}

func (l *Literal) String() string {
	if l.Neg {
		return "-" + l.Term
	}
	return l.Term
}

// Group combines at least one child node with a single junctor (AND or OR),
// optionally negated as a whole. Child order is insertion order.
type Group struct {
	Junctor  Junctor
	Children []Node
	Neg      bool
}

// NewGroup creates a compound node. Constructing a group without children is
// a programmer error and is rejected.
func NewGroup(junctor Junctor, children []Node, negated bool) (*Group, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("group requires at least one child")
	}
	return &Group{Junctor: junctor, Children: children, Neg: negated}, nil
}

func (g *Group) Negated() bool { return g.Neg }

func (g *Group) Negate() Node {
	return &Group{Junctor: g.Junctor, Children: g.Children, Neg: !g.Neg}
}

func (g *Group) String() string {
	sep := ","
	if g.Junctor == And {
		sep = "."
	}
	parts := make([]string, len(g.Children))
	for i, child := range g.Children {
		rendered := child.String()
		if childGroup, ok := child.(*Group); ok && !childGroup.Neg {
			// Negated groups render their own parentheses.
			rendered = "(" + rendered + ")"
		}
		parts[i] = rendered
	}
	joined := strings.Join(parts, sep)
	if g.Neg {
		return "-(" + joined + ")"
	}
	return joined
}
