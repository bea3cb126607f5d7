package transpiler

// relex turns generated C text back into tokens, dropping the trailing EOF
// so the snippet can be spliced mid-stream.
func relex(src string) []Token {
	tokens := Lex(src)
	return tokens[:len(tokens)-1]
}

// findNamespaceEnd returns the index one past the brace that closes a
// namespace block whose body starts at i.
func findNamespaceEnd(tokens []Token, i int) int {
	depth := 1
	for i < len(tokens) && depth > 0 {
		switch {
		case isSym(tokens[i], "{"):
			depth++
		case isSym(tokens[i], "}"):
			depth--
		}
		i++
	}
	return i
}

func findClass(classes []Class, name string) *Class {
	for i := range classes {
		if classes[i].Name == name {
			return &classes[i]
		}
	}
	return nil
}

// ReplaceClasses substitutes the generated C text, re-lexed, for every
// `class Name { ... }` span whose name matches one of the Class entities
// built for this file. Namespace wrapper blocks are dropped and their
// contents processed recursively; every generated symbol already carries
// the namespace prefix, so the wrapper has nothing left to say.
func ReplaceClasses(tokens []Token, classes []Class) []Token {
	var out []Token
	for i := 0; i < len(tokens); i++ {
		if _, next, ok := matchNamespace(tokens, i); ok {
			end := findNamespaceEnd(tokens, next)
			if end > next {
				// exclude the closing brace from the recursive slice
				out = append(out, ReplaceClasses(tokens[next:end-1], classes)...)
			}
			i = end - 1
			continue
		}

		tok := tokens[i]
		if tok.Kind == IDENTIFIER && tok.Text == "class" &&
			i+1 < len(tokens) && tokens[i+1].Kind == IDENTIFIER {
			if cls := findClass(classes, tokens[i+1].Text); cls != nil {
				j := i + 2
				if j < len(tokens) && isSym(tokens[j], "{") {
					_, j = captureBraceBody(tokens, j)
				}
				out = append(out, relex(cls.GenerateC())...)
				i = j - 1
				continue
			}
		}

		out = append(out, tok)
	}
	return out
}
