package query

import (
	stderrors "errors"
	"testing"

	"github.com/rmacedo/memsearch/internal/errors"
)

func mustParse(t *testing.T, input string) Node {
	t.Helper()
	node, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return node
}

func TestParse_EmptyInputMeansNoDocs(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		node := mustParse(t, input)
		if node != NoDocs {
			t.Errorf("Parse(%q): expected NoDocs, got %v", input, node)
		}
	}
}

func TestParse_SingleLiteral(t *testing.T) {
	node := mustParse(t, "foo")
	literal, ok := node.(*Literal)
	if !ok {
		t.Fatalf("Expected *Literal, got %T", node)
	}
	if literal.Term != "foo" || literal.Neg {
		t.Errorf("Expected non-negated literal 'foo', got %+v", literal)
	}
}

func TestParse_QualifiedLiteral(t *testing.T) {
	node := mustParse(t, "title:fox2")
	literal, ok := node.(*Literal)
	if !ok {
		t.Fatalf("Expected *Literal, got %T", node)
	}
	if literal.Term != "title:fox2" {
		t.Errorf("Expected term 'title:fox2', got %q", literal.Term)
	}
}

func TestParse_NegatedLiteralRendering(t *testing.T) {
	node := mustParse(t, "foo.-bar")
	group, ok := node.(*Group)
	if !ok {
		t.Fatalf("Expected *Group, got %T", node)
	}
	if group.Junctor != And || len(group.Children) != 2 {
		t.Fatalf("Expected an AND of two children, got %+v", group)
	}
	if got := node.String(); got != "foo.-bar" {
		t.Errorf("Expected rendering 'foo.-bar', got %q", got)
	}
}

func TestParse_AndBindsTighterThanOr(t *testing.T) {
	node := mustParse(t, " foo , bar . baz ")
	group, ok := node.(*Group)
	if !ok {
		t.Fatalf("Expected *Group, got %T", node)
	}
	if group.Junctor != Or || len(group.Children) != 2 {
		t.Fatalf("Expected an OR of two children, got %+v", group)
	}
	inner, ok := group.Children[1].(*Group)
	if !ok || inner.Junctor != And {
		t.Fatalf("Expected second OR child to be an AND group, got %v", group.Children[1])
	}
	if got := node.String(); got != "foo,(bar.baz)" {
		t.Errorf("Expected rendering 'foo,(bar.baz)', got %q", got)
	}
}

func TestParse_NegatedGroup(t *testing.T) {
	node := mustParse(t, "-(a,b).c")
	group, ok := node.(*Group)
	if !ok || group.Junctor != And {
		t.Fatalf("Expected an AND group, got %v", node)
	}
	negated, ok := group.Children[0].(*Group)
	if !ok {
		t.Fatalf("Expected first child to be a group, got %T", group.Children[0])
	}
	if !negated.Negated() || negated.Junctor != Or {
		t.Errorf("Expected a negated OR group, got %+v", negated)
	}
}

func TestParse_ParenthesesOverridePrecedence(t *testing.T) {
	node := mustParse(t, "(foo,bar).baz")
	group, ok := node.(*Group)
	if !ok || group.Junctor != And {
		t.Fatalf("Expected an AND group, got %v", node)
	}
	if inner, ok := group.Children[0].(*Group); !ok || inner.Junctor != Or {
		t.Errorf("Expected first AND child to be an OR group, got %v", group.Children[0])
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset int
	}{
		{name: "trailing garbage", input: "foo )", wantOffset: 4},
		{name: "unmatched parenthesis", input: "(foo.bar", wantOffset: 8},
		{name: "missing literal after operator", input: "foo.", wantOffset: 4},
		{name: "missing literal after negation", input: "foo.-", wantOffset: 5},
		{name: "literal starting with digit", input: "foo,1bar", wantOffset: 4},
		{name: "dangling or", input: "a,b,", wantOffset: 4},
		{name: "empty parentheses", input: "()", wantOffset: 1},
		{name: "bare operator", input: ".", wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q): expected syntax error", tt.input)
			}
			if !stderrors.Is(err, errors.ErrSyntax) {
				t.Fatalf("Parse(%q): expected ErrSyntax, got %v", tt.input, err)
			}
			var syntaxErr *errors.SyntaxError
			if !stderrors.As(err, &syntaxErr) {
				t.Fatalf("Parse(%q): expected *SyntaxError, got %T", tt.input, err)
			}
			if syntaxErr.Offset != tt.wantOffset {
				t.Errorf("Parse(%q): expected offset %d, got %d (%v)", tt.input, tt.wantOffset, syntaxErr.Offset, err)
			}
		})
	}
}

func TestParse_RoundTrips(t *testing.T) {
	inputs := []string{
		"foo",
		"-foo",
		"foo.bar",
		"foo,bar",
		"foo.-bar",
		"foo,(bar.baz)",
		"-(foo,bar)",
		"a.b.c.d",
	}
	for _, input := range inputs {
		node := mustParse(t, input)
		if got := node.String(); got != input {
			t.Errorf("Parse(%q).String(): expected %q, got %q", input, input, got)
		}
		// Re-parsing the rendering must be stable.
		again := mustParse(t, node.String())
		if again.String() != node.String() {
			t.Errorf("Re-parse of %q changed rendering: %q", node.String(), again.String())
		}
	}
}
