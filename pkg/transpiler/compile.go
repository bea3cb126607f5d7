// Package transpiler lowers an extended, class-based dialect of C (classes
// with fields, methods and operator overloads, single-level namespaces, and
// a #import file directive) into plain C text.
//
// The pipeline is a fixed sequence of whole-stream token passes: lex, seed
// the cross-file class registry, resolve imports recursively while sharing
// that registry, extract Class entities, lower call sites, substitute
// generated C for the class blocks, detokenize. It counts braces and
// parentheses instead of parsing C: anything it does not recognize passes
// through unchanged, and the only error in the whole pipeline is an import
// file that cannot be read.
package transpiler

// Compile translates one source file, plus everything reachable through
// its #import directives, into a single string of C text.
func Compile(src string) (string, error) {
	return compileWithRegistry(src, make(Registry))
}

// compileWithRegistry is the recursive compile entry. reg is shared across
// the entire import chain of one top-level Compile call; names registered
// while compiling an import are visible to the importer and to any imports
// processed after it, in file order.
func compileWithRegistry(src string, reg Registry) (string, error) {
	tokens := Lex(src)

	// Register this file's own classes before touching imports, so the
	// rest of the import graph can already resolve them.
	seedRegistry(tokens, reg)

	tokens, err := resolveImports(tokens, reg)
	if err != nil {
		return "", err
	}

	classes := ExtractClasses(tokens)
	tokens = Lower(tokens, reg)
	tokens = ReplaceClasses(tokens, classes)

	return Detokenize(tokens), nil
}
