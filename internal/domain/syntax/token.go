// Package syntax turns Rust source text into a lossless syntax tree whose
// leaves are byte spans into the original buffer.
package syntax

import (
	m "github.com/mouse-blink/crowbar/internal/model"
)

// TokenKind represents the lexical class of a token.
type TokenKind int

const (
	TokenWhitespace TokenKind = iota
	TokenLineComment
	TokenBlockComment
	TokenIdent
	TokenLifetime
	TokenInt
	TokenFloat
	TokenString     // "..."
	TokenRawString  // r"..." or r#"..."#
	TokenByteString // b"...", br"...", c"..."
	TokenChar       // 'a'
	TokenByte       // b'a'
	TokenPunct
	TokenOpen  // ( [ {
	TokenClose // ) ] }
)

var tokenNames = map[TokenKind]string{
	TokenWhitespace:   "whitespace",
	TokenLineComment:  "line comment",
	TokenBlockComment: "block comment",
	TokenIdent:        "identifier",
	TokenLifetime:     "lifetime",
	TokenInt:          "integer literal",
	TokenFloat:        "float literal",
	TokenString:       "string literal",
	TokenRawString:    "raw string literal",
	TokenByteString:   "byte string literal",
	TokenChar:         "char literal",
	TokenByte:         "byte literal",
	TokenPunct:        "punctuation",
	TokenOpen:         "opening delimiter",
	TokenClose:        "closing delimiter",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}

	return "unknown"
}

// IsTrivia reports whether tokens of this kind carry no meaning.
func (k TokenKind) IsTrivia() bool {
	return k == TokenWhitespace || k == TokenLineComment || k == TokenBlockComment
}

// IsLiteral reports whether the kind is a literal the value model can decode.
func (k TokenKind) IsLiteral() bool {
	return k == TokenInt || k == TokenFloat || k == TokenString || k == TokenRawString
}

// Token is a lexical token located by its span.
type Token struct {
	Kind TokenKind
	Span m.Span
}

// Text returns the bytes of src covered by the token.
func (t Token) Text(src []byte) string {
	return string(src[t.Span.Start:t.Span.End])
}
