package transpiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []Token{{Kind: EOF}},
		},
		{
			name:  "Identifiers",
			input: "int main variableName _under_score x2",
			expected: []Token{
				{IDENTIFIER, "int"},
				{IDENTIFIER, "main"},
				{IDENTIFIER, "variableName"},
				{IDENTIFIER, "_under_score"},
				{IDENTIFIER, "x2"},
				{Kind: EOF},
			},
		},
		{
			name:  "Numbers",
			input: "123 0 3.14 1e10 2.5e-3 0x1A 0Xff .5",
			expected: []Token{
				{NUMBER, "123"},
				{NUMBER, "0"},
				{NUMBER, "3.14"},
				{NUMBER, "1e10"},
				{NUMBER, "2.5e-3"},
				{NUMBER, "0x1A"},
				{NUMBER, "0Xff"},
				{NUMBER, ".5"},
				{Kind: EOF},
			},
		},
		{
			name:  "Newlines preserved",
			input: "a\nb\n",
			expected: []Token{
				{IDENTIFIER, "a"},
				{Kind: NEWLINE},
				{IDENTIFIER, "b"},
				{Kind: NEWLINE},
				{Kind: EOF},
			},
		},
		{
			name:  "Line comment",
			input: "x // trailing note\ny",
			expected: []Token{
				{IDENTIFIER, "x"},
				{COMMENT, "// trailing note"},
				{Kind: NEWLINE},
				{IDENTIFIER, "y"},
				{Kind: EOF},
			},
		},
		{
			name:  "Block comment spans lines",
			input: "/* a\nb */ x",
			expected: []Token{
				{COMMENT, "/* a\nb */"},
				{IDENTIFIER, "x"},
				{Kind: EOF},
			},
		},
		{
			name:  "String and char literals keep quotes and escapes",
			input: `"hi \"there\"" 'a' '\n'`,
			expected: []Token{
				{STRING_LIT, `"hi \"there\""`},
				{CHAR_LIT, "'a'"},
				{CHAR_LIT, `'\n'`},
				{Kind: EOF},
			},
		},
		{
			name:  "Multi-char symbols longest first",
			input: ">>= <<= == != <= >= -> ++ -- && || += :: =>",
			expected: []Token{
				{SYMBOL, ">>="},
				{SYMBOL, "<<="},
				{SYMBOL, "=="},
				{SYMBOL, "!="},
				{SYMBOL, "<="},
				{SYMBOL, ">="},
				{SYMBOL, "->"},
				{SYMBOL, "++"},
				{SYMBOL, "--"},
				{SYMBOL, "&&"},
				{SYMBOL, "||"},
				{SYMBOL, "+="},
				{SYMBOL, "::"},
				{SYMBOL, "=>"},
				{Kind: EOF},
			},
		},
		{
			name:  "Greedy symbol runs",
			input: "a+++b",
			expected: []Token{
				{IDENTIFIER, "a"},
				{SYMBOL, "++"},
				{SYMBOL, "+"},
				{IDENTIFIER, "b"},
				{Kind: EOF},
			},
		},
		{
			name:  "Unrecognized bytes become single-char symbols",
			input: "@ $ `",
			expected: []Token{
				{SYMBOL, "@"},
				{SYMBOL, "$"},
				{SYMBOL, "`"},
				{Kind: EOF},
			},
		},
		{
			name:  "Import directive shape",
			input: "#import <lib.z>",
			expected: []Token{
				{SYMBOL, "#"},
				{IDENTIFIER, "import"},
				{SYMBOL, "<"},
				{IDENTIFIER, "lib"},
				{SYMBOL, "."},
				{IDENTIFIER, "z"},
				{SYMBOL, ">"},
				{Kind: EOF},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lex(tt.input))
		})
	}
}

func TestLexNeverFails(t *testing.T) {
	// Unterminated literals and comments run to end of input instead of
	// erroring.
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Unterminated string",
			input:    `"abc`,
			expected: []Token{{STRING_LIT, `"abc`}, {Kind: EOF}},
		},
		{
			name:     "Unterminated block comment",
			input:    "/* abc",
			expected: []Token{{COMMENT, "/* abc"}, {Kind: EOF}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lex(tt.input))
		})
	}
}
