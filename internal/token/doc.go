// Package token defines the token kinds produced by the lexer and consumed
// by the parser. Tokens are immutable values; the stream for any input ends
// with exactly one EOF token.
package token
