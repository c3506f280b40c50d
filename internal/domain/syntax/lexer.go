package syntax

import (
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/crowbar/internal/model"
)

// Operators are matched longest first.
var operators = []string{
	"<<=", ">>=", "...", "..=",
	"::", "->", "=>", "==", "!=", "<=", ">=", "&&", "||",
	"+=", "-=", "*=", "/=", "%=", "^=", "&=", "|=", "<<", ">>", "..",
}

const singlePunct = "+-*/%^!&|=<>@.,;:#$?~"

// lexer scans source bytes into tokens, trivia included.
type lexer struct {
	src    []byte
	start  int // start offset of the current token
	cur    int // current offset
	tokens []Token
}

// Lex splits src into tokens. Concatenating the tokens' spans reproduces src.
func Lex(src []byte) ([]Token, error) {
	lx := &lexer{src: src}
	if err := lx.run(); err != nil {
		return nil, err
	}

	return lx.tokens, nil
}

func (lx *lexer) run() error {
	for lx.cur < len(lx.src) {
		lx.start = lx.cur

		kind, err := lx.next()
		if err != nil {
			return err
		}

		lx.tokens = append(lx.tokens, Token{Kind: kind, Span: m.Span{Start: lx.start, End: lx.cur}})
	}

	return nil
}

func (lx *lexer) peek(ahead int) byte {
	if lx.cur+ahead >= len(lx.src) {
		return 0
	}

	return lx.src[lx.cur+ahead]
}

func (lx *lexer) rune() (rune, int) {
	return utf8.DecodeRune(lx.src[lx.cur:])
}

func (lx *lexer) errorf(offset int, cat Category, format string, args ...any) error {
	return newParseError(lx.src, offset, cat, format, args...)
}

//nolint:cyclop // one branch per token class
func (lx *lexer) next() (TokenKind, error) {
	c := lx.peek(0)

	switch {
	case c == '/' && lx.peek(1) == '/':
		lx.skipLine()

		return TokenLineComment, nil
	case c == '/' && lx.peek(1) == '*':
		return TokenBlockComment, lx.blockComment()
	case c == '"':
		return TokenString, lx.quoted(lx.cur)
	case c == '\'':
		return lx.quote()
	case c == 'r' && (lx.peek(1) == '"' || (lx.peek(1) == '#' && lx.rawAhead(1))):
		lx.cur++

		return TokenRawString, lx.raw()
	case (c == 'b' || c == 'c') && lx.peek(1) == '"':
		lx.cur++

		return TokenByteString, lx.quoted(lx.cur)
	case (c == 'b' || c == 'c') && lx.peek(1) == 'r' && (lx.peek(2) == '"' || (lx.peek(2) == '#' && lx.rawAhead(2))):
		lx.cur += 2

		return TokenByteString, lx.raw()
	case c == 'b' && lx.peek(1) == '\'':
		lx.cur++

		return TokenByte, lx.charLiteral()
	case c == 'r' && lx.peek(1) == '#' && isIdentStart(lx.runeAt(lx.cur+2)):
		lx.cur += 2
		lx.ident()

		return TokenIdent, nil
	case c >= '0' && c <= '9':
		return lx.number(), nil
	case c == '(' || c == '[' || c == '{':
		lx.cur++

		return TokenOpen, nil
	case c == ')' || c == ']' || c == '}':
		lx.cur++

		return TokenClose, nil
	}

	r, _ := lx.rune()

	switch {
	case unicode.IsSpace(r):
		for lx.cur < len(lx.src) {
			sp, size := lx.rune()
			if !unicode.IsSpace(sp) {
				break
			}

			lx.cur += size
		}

		return TokenWhitespace, nil
	case isIdentStart(r):
		lx.ident()

		return TokenIdent, nil
	}

	for _, op := range operators {
		if lx.hasPrefix(op) {
			lx.cur += len(op)

			return TokenPunct, nil
		}
	}

	if r < utf8.RuneSelf && containsByte(singlePunct, byte(r)) {
		lx.cur++

		return TokenPunct, nil
	}

	return 0, lx.errorf(lx.cur, CategoryUnexpected, "unexpected character %q", r)
}

func (lx *lexer) hasPrefix(s string) bool {
	if lx.cur+len(s) > len(lx.src) {
		return false
	}

	return string(lx.src[lx.cur:lx.cur+len(s)]) == s
}

func (lx *lexer) runeAt(offset int) rune {
	if offset >= len(lx.src) {
		return utf8.RuneError
	}

	r, _ := utf8.DecodeRune(lx.src[offset:])

	return r
}

// rawAhead reports whether hashes starting at cur+ahead are followed by '"'.
func (lx *lexer) rawAhead(ahead int) bool {
	i := lx.cur + ahead
	for i < len(lx.src) && lx.src[i] == '#' {
		i++
	}

	return i < len(lx.src) && lx.src[i] == '"'
}

func (lx *lexer) skipLine() {
	for lx.cur < len(lx.src) && lx.src[lx.cur] != '\n' {
		lx.cur++
	}
}

// blockComment consumes a possibly nested /* */ comment.
func (lx *lexer) blockComment() error {
	open := lx.cur
	depth := 0

	for lx.cur < len(lx.src) {
		switch {
		case lx.hasPrefix("/*"):
			depth++
			lx.cur += 2
		case lx.hasPrefix("*/"):
			depth--
			lx.cur += 2

			if depth == 0 {
				return nil
			}
		default:
			lx.cur++
		}
	}

	return lx.errorf(open, CategoryUnterminated, "unterminated block comment")
}

// quoted consumes a "..." literal whose opening quote is at cur.
func (lx *lexer) quoted(open int) error {
	lx.cur++

	for lx.cur < len(lx.src) {
		switch lx.src[lx.cur] {
		case '\\':
			lx.cur += 2
		case '"':
			lx.cur++
			lx.suffix()

			return nil
		default:
			lx.cur++
		}
	}

	lx.cur = len(lx.src)

	return lx.errorf(open, CategoryUnterminated, "unterminated string literal")
}

// raw consumes #*"..."#* with cur on the first '#' or '"'.
func (lx *lexer) raw() error {
	hashes := 0
	for lx.peek(0) == '#' {
		hashes++
		lx.cur++
	}

	open := lx.cur
	lx.cur++

	for lx.cur < len(lx.src) {
		if lx.src[lx.cur] != '"' {
			lx.cur++

			continue
		}

		lx.cur++

		n := 0
		for n < hashes && lx.peek(0) == '#' {
			n++
			lx.cur++
		}

		if n == hashes {
			lx.suffix()

			return nil
		}
	}

	return lx.errorf(open, CategoryUnterminated, "unterminated raw string literal")
}

// quote handles a leading '\'' which starts either a char literal or a
// lifetime/label.
func (lx *lexer) quote() (TokenKind, error) {
	if lx.peek(1) == '\\' {
		return TokenChar, lx.charLiteral()
	}

	r, size := utf8.DecodeRune(lx.src[lx.cur+1:])
	if lx.cur+1+size < len(lx.src) && lx.src[lx.cur+1+size] == '\'' {
		return TokenChar, lx.charLiteral()
	}

	if isIdentStart(r) {
		lx.cur++
		lx.ident()

		return TokenLifetime, nil
	}

	return 0, lx.errorf(lx.cur, CategoryUnterminated, "unterminated character literal")
}

// charLiteral consumes '...' with cur on the opening quote.
func (lx *lexer) charLiteral() error {
	open := lx.cur
	lx.cur++

	for lx.cur < len(lx.src) {
		switch lx.src[lx.cur] {
		case '\\':
			lx.cur += 2
		case '\'':
			lx.cur++
			lx.suffix()

			return nil
		case '\n':
			return lx.errorf(open, CategoryUnterminated, "unterminated character literal")
		default:
			lx.cur++
		}
	}

	return lx.errorf(open, CategoryUnterminated, "unterminated character literal")
}

func (lx *lexer) ident() {
	for lx.cur < len(lx.src) {
		r, size := lx.rune()
		if !isIdentContinue(r) {
			return
		}

		lx.cur += size
	}
}

// suffix consumes an identifier glued to the end of a literal, e.g. 10u8.
func (lx *lexer) suffix() {
	if lx.cur < len(lx.src) && isIdentStart(lx.runeAt(lx.cur)) {
		lx.ident()
	}
}

func (lx *lexer) number() TokenKind {
	if lx.peek(0) == '0' && (lx.peek(1) == 'x' || lx.peek(1) == 'o' || lx.peek(1) == 'b') {
		lx.cur += 2

		for lx.cur < len(lx.src) && (isHexDigit(lx.src[lx.cur]) || lx.src[lx.cur] == '_') {
			lx.cur++
		}

		lx.suffix()

		return TokenInt
	}

	kind := TokenInt

	lx.digits()

	// 1.0 and 1. are floats; 1..2, 1.max() and 1.0.0 are not.
	if lx.peek(0) == '.' && lx.peek(1) != '.' && !isIdentStart(lx.runeAt(lx.cur+1)) {
		kind = TokenFloat
		lx.cur++

		if isDigit(lx.peek(0)) {
			lx.digits()
		}
	}

	if e := lx.peek(0); e == 'e' || e == 'E' {
		i := 1
		if s := lx.peek(1); s == '+' || s == '-' {
			i++
		}

		for lx.peek(i) == '_' {
			i++
		}

		if isDigit(lx.peek(i)) {
			kind = TokenFloat
			lx.cur += i
			lx.digits()
		}
	}

	start := lx.cur
	lx.suffix()

	if s := string(lx.src[start:lx.cur]); s == "f32" || s == "f64" {
		kind = TokenFloat
	}

	return kind
}

func (lx *lexer) digits() {
	for lx.cur < len(lx.src) && (isDigit(lx.src[lx.cur]) || lx.src[lx.cur] == '_') {
		lx.cur++
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}

	return false
}
