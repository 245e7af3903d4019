package query

import (
	"fmt"

	"github.com/rmacedo/memsearch/internal/errors"
)

// Parse turns a textual boolean expression into a query AST.
//
// Grammar, loosest to tightest binding: ',' (OR), '.' (AND), unary '-'
// (NOT), parentheses. Literals match [A-Za-z][A-Za-z0-9:]*; whitespace
// between tokens is insignificant. An empty or all-whitespace input parses
// to NoDocs. Malformed input yields a *errors.SyntaxError carrying the
// offset of the offending character.
func Parse(input string) (Node, error) {
	p := &parser{input: input}
	p.skipWhitespace()
	if p.atEnd() {
		return NoDocs, nil
	}
	node, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if !p.atEnd() {
		return nil, errors.NewSyntaxError(p.pos, fmt.Sprintf("unexpected character %q after expression", p.input[p.pos]))
	}
	return node, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseDisjunction() (Node, error) {
	first, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	children := []Node{first}
	for p.consume(',') {
		child, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return NewGroup(Or, children, false)
}

func (p *parser) parseConjunction() (Node, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	children := []Node{first}
	for p.consume('.') {
		child, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return NewGroup(And, children, false)
}

func (p *parser) parseFactor() (Node, error) {
	negated := p.consume('-')

	p.skipWhitespace()
	if p.atEnd() {
		return nil, errors.NewSyntaxError(p.pos, "unexpected end of query, expected literal or '('")
	}

	var node Node
	if p.consume('(') {
		inner, err := p.parseDisjunction()
		if err != nil {
			return nil, err
		}
		if !p.consume(')') {
			return nil, errors.NewSyntaxError(p.pos, "unmatched '(': expected ')'")
		}
		node = inner
	} else {
		literal, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		node = literal
	}

	if negated {
		node = node.Negate()
	}
	return node, nil
}

func (p *parser) parseLiteral() (Node, error) {
	if !isLetter(p.input[p.pos]) {
		return nil, errors.NewSyntaxError(p.pos, fmt.Sprintf("expected literal, got %q", p.input[p.pos]))
	}
	start := p.pos
	for !p.atEnd() && isLiteralChar(p.input[p.pos]) {
		p.pos++
	}
	return &Literal{Term: p.input[start:p.pos]}, nil
}

// consume skips whitespace and, if the next character matches, eats it.
func (p *parser) consume(c byte) bool {
	p.skipWhitespace()
	if p.atEnd() || p.input[p.pos] != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) skipWhitespace() {
	for !p.atEnd() && isWhitespace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isLiteralChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == ':'
}
