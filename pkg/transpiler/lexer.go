package transpiler

import "unicode"

// multiCharSymbols is the operator/punctuator table, longest entries first
// so greedy matching picks ">>=" over ">>" over ">".
var multiCharSymbols = []string{
	">>=", "<<=",
	"==", "!=", "<=", ">=", "->", "++", "--", "&&", "||",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"<<", ">>", "::", "=>",
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src []rune
	pos int // index of the next rune to consume
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

// scanComment collects a // or /* */ comment verbatim, delimiters included.
// An unterminated block comment runs to end of input.
func (l *Lexer) scanComment() Token {
	start := l.pos
	l.advance() // /
	if l.advance() == '/' {
		for l.pos < len(l.src) && l.peek() != '\n' {
			l.advance()
		}
		return Token{COMMENT, string(l.src[start:l.pos])}
	}
	for l.pos < len(l.src) {
		if l.peek() == '*' && l.peek2() == '/' {
			l.advance()
			l.advance()
			break
		}
		l.advance()
	}
	return Token{COMMENT, string(l.src[start:l.pos])}
}

// scanQuoted collects a string or char literal including both delimiting
// quotes. A backslash escapes exactly the following character. An
// unterminated literal runs to end of input.
func (l *Lexer) scanQuoted(quote rune) Token {
	start := l.pos
	l.advance() // opening quote
	for l.pos < len(l.src) {
		r := l.advance()
		if r == '\\' {
			l.advance()
			continue
		}
		if r == quote {
			break
		}
	}
	kind := STRING_LIT
	if quote == '\'' {
		kind = CHAR_LIT
	}
	return Token{kind, string(l.src[start:l.pos])}
}

// scanNumber collects a decimal integer with optional fraction and exponent,
// or a 0x/0X hex run, greedy longest match. The first character may be a
// '.' when a digit follows it.
func (l *Lexer) scanNumber() Token {
	start := l.pos
	if l.peek() == '0' && (l.peek2() == 'x' || l.peek2() == 'X') {
		l.advance()
		l.advance()
		for l.pos < len(l.src) && isHexDigit(l.peek()) {
			l.advance()
		}
		return Token{NUMBER, string(l.src[start:l.pos])}
	}
	for l.pos < len(l.src) && unicode.IsDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' {
		l.advance()
		for l.pos < len(l.src) && unicode.IsDigit(l.peek()) {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for l.pos < len(l.src) && unicode.IsDigit(l.peek()) {
			l.advance()
		}
	}
	return Token{NUMBER, string(l.src[start:l.pos])}
}

// scanIdent collects an identifier [A-Za-z_][A-Za-z0-9_]*.
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.advance()
	}
	return Token{IDENTIFIER, string(l.src[start:l.pos])}
}

// next returns the next token. There is no error path: a byte that matches
// nothing becomes a single-character SYMBOL for later passes to ignore.
func (l *Lexer) next() Token {
	for l.pos < len(l.src) {
		ch := l.peek()
		if ch == '\n' {
			l.advance()
			return Token{Kind: NEWLINE}
		}
		if unicode.IsSpace(ch) {
			l.advance()
			continue
		}
		if ch == '/' && (l.peek2() == '/' || l.peek2() == '*') {
			return l.scanComment()
		}
		if ch == '"' || ch == '\'' {
			return l.scanQuoted(ch)
		}
		if unicode.IsDigit(ch) || (ch == '.' && unicode.IsDigit(l.peek2())) {
			return l.scanNumber()
		}
		if unicode.IsLetter(ch) || ch == '_' {
			return l.scanIdent()
		}
		for _, op := range multiCharSymbols {
			if l.hasPrefix(op) {
				l.pos += len(op)
				return Token{SYMBOL, op}
			}
		}
		return Token{SYMBOL, string(l.advance())}
	}
	return Token{Kind: EOF}
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (l *Lexer) hasPrefix(op string) bool {
	if l.pos+len(op) > len(l.src) {
		return false
	}
	return string(l.src[l.pos:l.pos+len(op)]) == op
}

// Lex tokenises src and returns all tokens, terminated by a single EOF
// token. Malformed input never fails the lexer; it merely produces symbol
// tokens that no structural pass will recognize.
func Lex(src string) []Token {
	l := newLexer(src)
	var tokens []Token
	for {
		tok := l.next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}
