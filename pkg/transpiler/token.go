package transpiler

import "fmt"

// TokenKind identifies the category of a lexed token.
type TokenKind int

const (
	IDENTIFIER TokenKind = iota // [A-Za-z_][A-Za-z0-9_]*
	NUMBER                      // decimal, fraction, exponent, or 0x hex run
	STRING_LIT                  // string literal, quotes included
	CHAR_LIT                    // character literal, quotes included
	SYMBOL                      // operator or punctuator, multi-char if needed
	COMMENT                     // //... or /* ... */, kept verbatim
	NEWLINE                     // preserved so output keeps its line structure
	EOF                         // sentinel: end of input
)

var kindNames = [...]string{
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING_LIT: "STRING_LIT",
	CHAR_LIT:   "CHAR_LIT",
	SYMBOL:     "SYMBOL",
	COMMENT:    "COMMENT",
	NEWLINE:    "NEWLINE",
	EOF:        "EOF",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical unit produced by Lex. Text holds the exact
// source text that was matched; it is empty for NEWLINE and EOF.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case NEWLINE, EOF:
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// isSym reports whether t is the symbol s.
func isSym(t Token, s string) bool {
	return t.Kind == SYMBOL && t.Text == s
}
