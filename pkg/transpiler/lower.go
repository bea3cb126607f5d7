package transpiler

// binaryOperators are the symbols rewritten to two-argument operator calls
// when the left operand is a known typed variable.
var binaryOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"+=": true, "-=": true, "*=": true, "/=": true,
}

// collectVariables builds the flat variable→type table for one compilation
// unit by scanning the whole stream once. The table is deliberately
// unscoped: a name typed anywhere counts as typed everywhere it appears,
// and the first declaration of a name wins over later ones.
func collectVariables(tokens []Token) map[string]string {
	table := make(map[string]string)
	for _, v := range parseVariables(tokens) {
		if _, seen := table[v.Name]; !seen {
			table[v.Name] = v.Type
		}
	}
	return table
}

// captureParenArgs copies tokens until the parenthesis that opened just
// before i is balanced. The closing parenthesis is consumed but excluded;
// the returned index is just past it.
func captureParenArgs(tokens []Token, i int) ([]Token, int) {
	var args []Token
	depth := 1
	for i < len(tokens) && depth > 0 {
		switch {
		case isSym(tokens[i], "("):
			depth++
		case isSym(tokens[i], ")"):
			depth--
		}
		if depth > 0 {
			args = append(args, tokens[i])
		}
		i++
	}
	return args, i
}

// Lower rewrites object-style syntax into flat C calls in one greedy
// left-to-right pass over the whole stream:
//
//	ns::ident            -> ns_ident
//	var OP rhs           -> Class_operator_<name>(var, rhs)   (rhs is one token)
//	var++ / var--        -> Class_operator_increment/decrement(var)
//	++var / --var        -> same, prefix form
//	var.method(args...)  -> Class_method(var, args...)
//
// The variable's declared type resolves through reg to its full name and
// falls back to the type text itself for unregistered types. Tokens a rule
// consumes are never revisited; everything else is copied through.
func Lower(tokens []Token, reg Registry) []Token {
	vars := collectVariables(tokens)
	out := make([]Token, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		// Namespace flattening applies to any qualified reference, not
		// just class names.
		if tok.Kind == IDENTIFIER && i+2 < len(tokens) &&
			isSym(tokens[i+1], "::") && tokens[i+2].Kind == IDENTIFIER {
			out = append(out, Token{IDENTIFIER, tok.Text + "_" + tokens[i+2].Text})
			i += 2
			continue
		}

		if tok.Kind == IDENTIFIER {
			if typ, ok := vars[tok.Text]; ok {
				full := reg.Resolve(typ)

				if i+2 < len(tokens) && tokens[i+1].Kind == SYMBOL && binaryOperators[tokens[i+1].Text] {
					out = append(out,
						Token{IDENTIFIER, full + "_operator_" + operatorSuffix(tokens[i+1].Text)},
						Token{SYMBOL, "("},
						tok,
						Token{SYMBOL, ","},
						tokens[i+2],
						Token{SYMBOL, ")"})
					i += 2
					continue
				}

				if i+1 < len(tokens) && (isSym(tokens[i+1], "++") || isSym(tokens[i+1], "--")) {
					out = append(out,
						Token{IDENTIFIER, full + "_operator_" + operatorSuffix(tokens[i+1].Text)},
						Token{SYMBOL, "("},
						tok,
						Token{SYMBOL, ")"})
					i++
					continue
				}

				if i+3 < len(tokens) && isSym(tokens[i+1], ".") &&
					tokens[i+2].Kind == IDENTIFIER && isSym(tokens[i+3], "(") {
					args, next := captureParenArgs(tokens, i+4)
					out = append(out,
						Token{IDENTIFIER, full + "_" + tokens[i+2].Text},
						Token{SYMBOL, "("},
						tok)
					if len(args) > 0 {
						out = append(out, Token{SYMBOL, ","})
						out = append(out, args...)
					}
					out = append(out, Token{SYMBOL, ")"})
					i = next - 1
					continue
				}
			}
		}

		if (isSym(tok, "++") || isSym(tok, "--")) &&
			i+1 < len(tokens) && tokens[i+1].Kind == IDENTIFIER {
			if typ, ok := vars[tokens[i+1].Text]; ok {
				full := reg.Resolve(typ)
				out = append(out,
					Token{IDENTIFIER, full + "_operator_" + operatorSuffix(tok.Text)},
					Token{SYMBOL, "("},
					tokens[i+1],
					Token{SYMBOL, ")"})
				i++
				continue
			}
		}

		out = append(out, tok)
	}
	return out
}
