package transpiler

import "strings"

// Detokenize renders a token sequence back to text. NEWLINE tokens become
// literal line breaks and the trailing EOF is dropped. Between every
// adjacent pair needsSpace decides whether a single space is inserted.
//
// Generated snippets are re-lexed and printed through this same function,
// so the spacing policy must stay deterministic: any drift could fuse two
// adjacent tokens into one on the next lex.
func Detokenize(tokens []Token) string {
	var sb strings.Builder
	havePrev := false
	var prev Token
	for _, tok := range tokens {
		if tok.Kind == EOF {
			continue
		}
		if havePrev && needsSpace(prev, tok) {
			sb.WriteByte(' ')
		}
		if tok.Kind == NEWLINE {
			sb.WriteByte('\n')
		} else {
			sb.WriteString(tok.Text)
		}
		prev = tok
		havePrev = true
	}
	return sb.String()
}

// needsSpace is the adjacency spacing table. The checks run in order;
// earlier rules win.
func needsSpace(prev, cur Token) bool {
	if prev.Kind == NEWLINE || cur.Kind == NEWLINE || prev.Kind == COMMENT {
		return false
	}

	if prev.Kind == SYMBOL && cur.Kind == SYMBOL {
		switch {
		case prev.Text == "(", cur.Text == ")", prev.Text == "[", cur.Text == "]":
			return false
		case prev.Text == ".", cur.Text == ".":
			return false
		case prev.Text == "->", cur.Text == "->":
			return false
		case prev.Text == "<", cur.Text == ">":
			return false
		case prev.Text == ";", cur.Text == ";", prev.Text == ",", cur.Text == ",":
			return false
		}
		return true
	}

	if prev.Kind == IDENTIFIER && cur.Kind == SYMBOL {
		switch cur.Text {
		case "(", "[", ".", "->", ";", ",", ">":
			return false
		}
		return true
	}

	// Prefix-like symbols bind tightly to a following identifier or number.
	if prev.Kind == SYMBOL && (cur.Kind == IDENTIFIER || cur.Kind == NUMBER) {
		switch prev.Text {
		case "(", "[", ".", "->", "!", "~", "*", "&", "+", "-", "<":
			return false
		}
		return true
	}

	if prev.Kind == NUMBER && cur.Kind == SYMBOL {
		switch cur.Text {
		case "(", "[", ".", "->", ";", ",", ">", ")", "]":
			return false
		}
		return true
	}

	// Identifier/number adjacency and string/char literals always get a
	// space so neighbouring tokens cannot merge.
	return true
}
