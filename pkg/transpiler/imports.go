package transpiler

import (
	"fmt"
	"os"
)

// resolveImports replaces every `# import < path >` directive with the
// compiled C text of the target file, re-lexed and spliced over the whole
// directive span. The payload is the literal concatenation of identifier
// and symbol tokens up to ">"; any other token fails the match silently and
// the directive's tokens flow through untouched.
//
// Each target is read relative to the working directory and compiled
// recursively with the caller's registry, so classes defined transitively
// resolve here and in later imports of this file. There is no caching and
// no cycle detection: a file imported twice compiles twice, and a
// self-importing file does not terminate. An unreadable target is the one
// fatal error of the whole pipeline.
func resolveImports(tokens []Token, reg Registry) ([]Token, error) {
	for i := 0; i < len(tokens); i++ {
		if !isSym(tokens[i], "#") {
			continue
		}
		if i+2 >= len(tokens) ||
			tokens[i+1].Kind != IDENTIFIER || tokens[i+1].Text != "import" ||
			!isSym(tokens[i+2], "<") {
			continue
		}

		path := ""
		end := i + 3
		closed := false
		for end < len(tokens) {
			tok := tokens[end]
			if isSym(tok, ">") {
				closed = true
				break
			}
			if tok.Kind != IDENTIFIER && tok.Kind != SYMBOL {
				break
			}
			path += tok.Text
			end++
		}
		if !closed {
			continue
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read imported file %s: %w", path, err)
		}
		compiled, err := compileWithRegistry(string(src), reg)
		if err != nil {
			return nil, err
		}

		spliced := relex(compiled)
		rest := tokens[end+1:]
		tokens = append(append(append([]Token{}, tokens[:i]...), spliced...), rest...)
		i-- // rescan from the splice point
	}
	return tokens, nil
}
