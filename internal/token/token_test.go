package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Invalid, "Invalid"},
		{EOF, "EOF"},
		{Number, "Number"},
		{Plus, "Plus"},
		{Minus, "Minus"},
		{Star, "Star"},
		{Slash, "Slash"},
		{LParen, "LParen"},
		{RParen, "RParen"},
		{Kind(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !(Token{Kind: Number}).IsLiteral() {
		t.Error("Number is not a literal")
	}
	for _, k := range []Kind{Plus, Minus, Star, Slash} {
		if !(Token{Kind: k}).IsOperator() {
			t.Errorf("%s is not an operator", k)
		}
	}
	if (Token{Kind: Number}).IsOperator() {
		t.Error("Number classified as operator")
	}
	if !(Token{Kind: LParen}).IsParen() || !(Token{Kind: RParen}).IsParen() {
		t.Error("parens not classified as parens")
	}
	if (Token{Kind: EOF}).IsParen() {
		t.Error("EOF classified as paren")
	}
}
