package query

// Rewrite normalizes a query tree: negation is pushed down to the literals
// (De Morgan), associative chains are flattened, and algebraic identities
// and annihilators are eliminated. The result carries no negation flag on
// any group, and no group has fewer than two children. Rewriting never
// mutates its input, and rewriting an already-rewritten tree returns an
// equal tree.
func Rewrite(node Node) Node {
	return rewrite(node, false)
}

func rewrite(node Node, negate bool) Node {
	switch n := node.(type) {
	case noDocsNode:
		if negate {
			return AllDocs
		}
		return NoDocs
	case allDocsNode:
		if negate {
			return NoDocs
		}
		return AllDocs
	case *Literal:
		return &Literal{Term: n.Term, Neg: n.Neg != negate}
	case *Group:
		return rewriteGroup(n, negate)
	}
	return node
}

func rewriteGroup(g *Group, negate bool) Node {
	// The group's own flag combines with the propagated negation by XOR;
	// when the combined negation holds, De Morgan flips the junctor and the
	// negation is pushed into every child.
	negate = g.Neg != negate
	junctor := g.Junctor
	if negate {
		if junctor == And {
			junctor = Or
		} else {
			junctor = And
		}
	}

	children := make([]Node, 0, len(g.Children))
	for _, child := range g.Children {
		rewritten := rewrite(child, negate)

		// Flatten same-junctor sub-groups; rewritten groups are never
		// negated, so the junctor alone decides.
		if sub, ok := rewritten.(*Group); ok && sub.Junctor == junctor {
			children = append(children, sub.Children...)
			continue
		}

		// AllDocs annihilates OR and is the identity of AND; NoDocs is the
		// mirror image.
		if rewritten == AllDocs {
			if junctor == Or {
				return AllDocs
			}
			continue
		}
		if rewritten == NoDocs {
			if junctor == And {
				return NoDocs
			}
			continue
		}

		children = append(children, rewritten)
	}

	switch len(children) {
	case 0:
		// Every child was the junctor's identity.
		if junctor == And {
			return AllDocs
		}
		return NoDocs
	case 1:
		return children[0]
	}
	return &Group{Junctor: junctor, Children: children}
}
