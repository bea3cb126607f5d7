package transpiler

// Registry maps a short class name to its namespace-qualified full name.
// One registry is shared, by reference, across the entire recursive import
// chain of a single top-level compile: classes registered while compiling
// an import are visible to the importer and to later sibling imports. The
// mapping is single-level; a later declaration of the same short name
// overwrites the earlier one.
type Registry map[string]string

// Resolve returns the full name registered for a short class name, or the
// name unchanged when it was never registered (primitives, external types).
func (r Registry) Resolve(name string) string {
	if full, ok := r[name]; ok {
		return full
	}
	return name
}

// fullName prefixes name with the namespace when one is active.
func fullName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "_" + name
}

// matchNamespace matches `namespace Name {` at i and returns the name and
// the index just past the opening brace.
func matchNamespace(tokens []Token, i int) (string, int, bool) {
	if i+2 < len(tokens) &&
		tokens[i].Kind == IDENTIFIER && tokens[i].Text == "namespace" &&
		tokens[i+1].Kind == IDENTIFIER &&
		isSym(tokens[i+2], "{") {
		return tokens[i+1].Text, i + 3, true
	}
	return "", 0, false
}

// seedRegistry scans tokens before import resolution and registers every
// class declared in this file, so references across the import graph see
// this file's classes even while its imports are still being compiled.
//
// Namespace tracking is a single active name, no nesting stack: entering
// `namespace Name {` sets it and the brace that returns depth to the entry
// level clears it. Declaring a namespace inside another simply replaces the
// active name.
func seedRegistry(tokens []Token, reg Registry) {
	ns := ""
	nsDepth := 0
	depth := 0
	for i := 0; i < len(tokens); i++ {
		if name, next, ok := matchNamespace(tokens, i); ok {
			ns = name
			nsDepth = depth
			depth++ // the namespace's opening brace
			i = next - 1
			continue
		}
		tok := tokens[i]
		switch {
		case isSym(tok, "{"):
			depth++
		case isSym(tok, "}"):
			depth--
			if ns != "" && depth == nsDepth {
				ns = ""
			}
		case tok.Kind == IDENTIFIER && tok.Text == "class":
			if i+1 < len(tokens) && tokens[i+1].Kind == IDENTIFIER {
				name := tokens[i+1].Text
				reg[name] = fullName(ns, name)
			}
		}
	}
}
