package parser_test

import (
	"testing"

	"tally/internal/ast"
	"tally/internal/diag"
	"tally/internal/lexer"
	"tally/internal/parser"
	"tally/internal/source"
	"tally/internal/token"
)

func tokenizeInput(t *testing.T, input string) []token.Token {
	t.Helper()

	bag := diag.NewBag(8)
	lx := lexer.New(source.NewInput(input), lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF || tok.Kind == token.Invalid {
			break
		}
	}
	if bag.HasErrors() {
		t.Fatalf("lexing %q failed: %v", input, bag.Items())
	}
	return tokens
}

func parseInput(t *testing.T, input string, opts parser.Options) (ast.ExprID, *ast.Exprs, *diag.Bag, bool) {
	t.Helper()

	bag := diag.NewBag(8)
	opts.Reporter = diag.BagReporter{Bag: bag}
	exprs := ast.NewExprs(0)
	root, ok := parser.Parse(tokenizeInput(t, input), exprs, opts)
	return root, exprs, bag, ok
}

func mustParse(t *testing.T, input string) (ast.ExprID, *ast.Exprs) {
	t.Helper()

	root, exprs, bag, ok := parseInput(t, input, parser.Options{})
	if !ok {
		t.Fatalf("parsing %q failed: %v", input, bag.Items())
	}
	return root, exprs
}

func firstCode(t *testing.T, bag *diag.Bag) diag.Code {
	t.Helper()

	d, ok := bag.First()
	if !ok {
		t.Fatal("expected an error diagnostic")
	}
	return d.Code
}

func TestParseLiteral(t *testing.T) {
	root, exprs := mustParse(t, "42")

	lit, ok := exprs.Literal(root)
	if !ok {
		t.Fatalf("root is not a literal: %s", exprs.Get(root).Kind)
	}
	if lit.Value != 42 {
		t.Errorf("value: got %v, want 42", lit.Value)
	}
}

func TestParseDecimal(t *testing.T) {
	root, exprs := mustParse(t, "3.14")

	lit, ok := exprs.Literal(root)
	if !ok {
		t.Fatal("root is not a literal")
	}
	if lit.Value != 3.14 {
		t.Errorf("value: got %v, want 3.14", lit.Value)
	}
}

func TestPrecedence(t *testing.T) {
	// 2 + 3 * 4 must parse as 2 + (3 * 4): Add at the root, Mul on the right.
	root, exprs := mustParse(t, "2 + 3 * 4")

	bin, ok := exprs.Binary(root)
	if !ok || bin.Op != ast.OpAdd {
		t.Fatalf("root: want Add, got %v", exprs.Get(root).Kind)
	}
	right, ok := exprs.Binary(bin.Right)
	if !ok || right.Op != ast.OpMul {
		t.Fatalf("right child: want Mul")
	}
}

func TestParensOverridePrecedence(t *testing.T) {
	// (2 + 3) * 4: Mul at the root, Add on the left.
	root, exprs := mustParse(t, "(2 + 3) * 4")

	bin, ok := exprs.Binary(root)
	if !ok || bin.Op != ast.OpMul {
		t.Fatalf("root: want Mul")
	}
	left, ok := exprs.Binary(bin.Left)
	if !ok || left.Op != ast.OpAdd {
		t.Fatalf("left child: want Add")
	}
}

func TestLeftAssociativity(t *testing.T) {
	// 10 - 2 - 3 must parse as (10 - 2) - 3.
	root, exprs := mustParse(t, "10 - 2 - 3")

	outer, ok := exprs.Binary(root)
	if !ok || outer.Op != ast.OpSub {
		t.Fatalf("root: want Sub")
	}
	inner, ok := exprs.Binary(outer.Left)
	if !ok || inner.Op != ast.OpSub {
		t.Fatalf("left child: want Sub, trees folded right-associatively")
	}
	rightLit, ok := exprs.Literal(outer.Right)
	if !ok || rightLit.Value != 3 {
		t.Errorf("rightmost operand: want 3")
	}
}

func TestUnaryNesting(t *testing.T) {
	// --3 is two nested negations.
	root, exprs := mustParse(t, "--3")

	outer, ok := exprs.Unary(root)
	if !ok {
		t.Fatalf("root: want Unary, got %s", exprs.Get(root).Kind)
	}
	inner, ok := exprs.Unary(outer.Operand)
	if !ok {
		t.Fatal("operand: want nested Unary")
	}
	if _, ok := exprs.Literal(inner.Operand); !ok {
		t.Fatal("innermost: want Literal")
	}
}

func TestUnaryBindsTighterThanBinary(t *testing.T) {
	// -2 + 3 is (-2) + 3, not -(2 + 3).
	root, exprs := mustParse(t, "-2 + 3")

	bin, ok := exprs.Binary(root)
	if !ok || bin.Op != ast.OpAdd {
		t.Fatalf("root: want Add")
	}
	if _, ok := exprs.Unary(bin.Left); !ok {
		t.Error("left: want Unary")
	}
}

func TestChildrenPrecedeParents(t *testing.T) {
	root, exprs := mustParse(t, "(1 + 2) * -3")

	var walk func(id ast.ExprID)
	walk = func(id ast.ExprID) {
		expr := exprs.Get(id)
		switch expr.Kind {
		case ast.ExprUnary:
			un, _ := exprs.Unary(id)
			if un.Operand >= id {
				t.Errorf("node %d has child %d allocated after it", id, un.Operand)
			}
			walk(un.Operand)
		case ast.ExprBinary:
			bin, _ := exprs.Binary(id)
			if bin.Left >= id || bin.Right >= id {
				t.Errorf("node %d has children %d,%d allocated after it", id, bin.Left, bin.Right)
			}
			walk(bin.Left)
			walk(bin.Right)
		}
	}
	walk(root)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode diag.Code
	}{
		{"empty", "", diag.SynEmptyExpression},
		{"whitespace only", "   ", diag.SynEmptyExpression},
		{"missing close paren", "(1 + 2", diag.SynUnbalancedParen},
		{"stray close paren", "1 + 2)", diag.SynUnbalancedParen},
		{"close paren as factor", ")", diag.SynUnbalancedParen},
		{"open paren only", "(", diag.SynUnbalancedParen},
		{"operator as factor", "* 3", diag.SynUnexpectedToken},
		{"dangling operator", "1 +", diag.SynUnexpectedToken},
		{"unary plus unsupported", "+1", diag.SynUnexpectedToken},
		{"trailing number", "3 4", diag.SynUnexpectedToken},
		{"missing operator", "(1)(2)", diag.SynUnexpectedToken},
		{"factor missing inside parens", "(1 + )", diag.SynUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _, bag, ok := parseInput(t, tt.input, parser.Options{})
			if ok {
				t.Fatalf("parsing %q unexpectedly succeeded", tt.input)
			}
			if root != ast.NoExprID {
				t.Error("failed parse returned a root")
			}
			if got := firstCode(t, bag); got != tt.wantCode {
				t.Errorf("code: got %s, want %s", got.ID(), tt.wantCode.ID())
			}
		})
	}
}

func TestErrorPositions(t *testing.T) {
	_, _, bag, _ := parseInput(t, "1 + 2)", parser.Options{})

	d, _ := bag.First()
	if d.Primary.Start != 5 {
		t.Errorf("position: got %d, want 5", d.Primary.Start)
	}
}

func TestNestingDepthLimit(t *testing.T) {
	deep := ""
	for i := 0; i < 20; i++ {
		deep += "("
	}
	deep += "1"
	for i := 0; i < 20; i++ {
		deep += ")"
	}

	// Within the limit it parses fine.
	root, _, bag, ok := parseInput(t, deep, parser.Options{MaxDepth: 32})
	if !ok {
		t.Fatalf("deep expression rejected below the limit: %v", bag.Items())
	}
	if root == ast.NoExprID {
		t.Fatal("no root")
	}

	// Beyond the limit it reports SynNestingTooDeep instead of recursing on.
	_, _, bag, ok = parseInput(t, deep, parser.Options{MaxDepth: 8})
	if ok {
		t.Fatal("deep expression accepted above the limit")
	}
	if got := firstCode(t, bag); got != diag.SynNestingTooDeep {
		t.Errorf("code: got %s, want %s", got.ID(), diag.SynNestingTooDeep.ID())
	}
}
