package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tally/internal/ast"
	"tally/internal/source"
)

// FormatExprPretty writes the expression tree as an indented listing:
//
//	Binary * at 0-11
//	  Binary + at 1-6
//	    Literal 2 at 1-2
//	    Literal 3 at 5-6
//	  Literal 4 at 10-11
func FormatExprPretty(w io.Writer, exprs *ast.Exprs, root ast.ExprID) error {
	if root == ast.NoExprID {
		return nil
	}
	writeExprPretty(w, exprs, root, 0)
	return nil
}

func writeExprPretty(w io.Writer, exprs *ast.Exprs, id ast.ExprID, depth int) {
	indent := strings.Repeat("  ", depth)
	expr := exprs.Get(id)

	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := exprs.Literal(id)
		fmt.Fprintf(w, "%sLiteral %s at %s\n", indent, formatFloat(lit.Value), expr.Span)
	case ast.ExprUnary:
		un, _ := exprs.Unary(id)
		fmt.Fprintf(w, "%sUnary - at %s\n", indent, expr.Span)
		writeExprPretty(w, exprs, un.Operand, depth+1)
	case ast.ExprBinary:
		bin, _ := exprs.Binary(id)
		fmt.Fprintf(w, "%sBinary %s at %s\n", indent, bin.Op, expr.Span)
		writeExprPretty(w, exprs, bin.Left, depth+1)
		writeExprPretty(w, exprs, bin.Right, depth+1)
	}
}

// ExprJSON is one node of the JSON tree dump.
type ExprJSON struct {
	Kind    string      `json:"kind"`
	Span    source.Span `json:"span"`
	Value   *float64    `json:"value,omitempty"`
	Op      string      `json:"op,omitempty"`
	Operand *ExprJSON   `json:"operand,omitempty"`
	Left    *ExprJSON   `json:"left,omitempty"`
	Right   *ExprJSON   `json:"right,omitempty"`
}

// FormatExprJSON writes the expression tree as nested JSON.
func FormatExprJSON(w io.Writer, exprs *ast.Exprs, root ast.ExprID) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if root == ast.NoExprID {
		return enc.Encode(nil)
	}
	return enc.Encode(exprToJSON(exprs, root))
}

func exprToJSON(exprs *ast.Exprs, id ast.ExprID) *ExprJSON {
	expr := exprs.Get(id)
	node := &ExprJSON{
		Kind: expr.Kind.String(),
		Span: expr.Span,
	}
	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := exprs.Literal(id)
		node.Value = &lit.Value
	case ast.ExprUnary:
		un, _ := exprs.Unary(id)
		node.Operand = exprToJSON(exprs, un.Operand)
	case ast.ExprBinary:
		bin, _ := exprs.Binary(id)
		node.Op = bin.Op.String()
		node.Left = exprToJSON(exprs, bin.Left)
		node.Right = exprToJSON(exprs, bin.Right)
	}
	return node
}

// RenderExpr re-renders the tree as a fully parenthesised expression string.
// Used by the CLI's verbose mode to echo what was actually parsed.
func RenderExpr(exprs *ast.Exprs, id ast.ExprID) string {
	if id == ast.NoExprID {
		return ""
	}
	var sb strings.Builder
	renderExpr(&sb, exprs, id)
	return sb.String()
}

func renderExpr(sb *strings.Builder, exprs *ast.Exprs, id ast.ExprID) {
	expr := exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := exprs.Literal(id)
		sb.WriteString(formatFloat(lit.Value))
	case ast.ExprUnary:
		un, _ := exprs.Unary(id)
		sb.WriteString("-")
		renderExpr(sb, exprs, un.Operand)
	case ast.ExprBinary:
		bin, _ := exprs.Binary(id)
		sb.WriteString("(")
		renderExpr(sb, exprs, bin.Left)
		sb.WriteString(" ")
		sb.WriteString(bin.Op.String())
		sb.WriteString(" ")
		renderExpr(sb, exprs, bin.Right)
		sb.WriteString(")")
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
