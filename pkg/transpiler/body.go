package transpiler

// captureBraceBody collects the tokens of a brace-balanced body. i must
// point at the opening brace. The closing brace is consumed but excluded
// from the captured slice; the returned index is just past it.
func captureBraceBody(tokens []Token, i int) ([]Token, int) {
	var body []Token
	depth := 1
	i++
	for i < len(tokens) && depth > 0 {
		switch {
		case isSym(tokens[i], "{"):
			depth++
		case isSym(tokens[i], "}"):
			depth--
		}
		if depth > 0 {
			body = append(body, tokens[i])
		}
		i++
	}
	return body, i
}

// parseParams reads consecutive `type name` pairs separated by commas
// until the closing parenthesis. A token that fits no pair is skipped, one
// token at a time; parameter parsing never fails. Returns the params and
// the index just past ")".
func parseParams(tokens []Token, i int) ([]string, int) {
	var params []string
	for i < len(tokens) {
		if isSym(tokens[i], ")") {
			i++
			break
		}
		if isSym(tokens[i], ",") {
			i++
			continue
		}
		if tokens[i].Kind == IDENTIFIER && i+1 < len(tokens) && tokens[i+1].Kind == IDENTIFIER {
			params = append(params, tokens[i].Text+" "+tokens[i+1].Text)
			i += 2
			continue
		}
		i++
	}
	return params, i
}

// skipToBrace advances to the next "{". The second result is false when the
// slice ends first.
func skipToBrace(tokens []Token, i int) (int, bool) {
	for i < len(tokens) {
		if isSym(tokens[i], "{") {
			return i, true
		}
		i++
	}
	return i, false
}

// parseOperatorAt matches `ReturnType operator <symbol> ( params ) { body }`
// at position i of a class body. On success it returns the overload and the
// index just past the body's closing brace.
func parseOperatorAt(body []Token, i int, className, namespace string) (OperatorOverload, int, bool) {
	if i+4 >= len(body) {
		return OperatorOverload{}, 0, false
	}
	if body[i].Kind != IDENTIFIER ||
		body[i+1].Kind != IDENTIFIER || body[i+1].Text != "operator" ||
		body[i+2].Kind != SYMBOL ||
		!isSym(body[i+3], "(") {
		return OperatorOverload{}, 0, false
	}
	params, p := parseParams(body, i+4)
	p, ok := skipToBrace(body, p)
	if !ok {
		return OperatorOverload{}, 0, false
	}
	bodyToks, next := captureBraceBody(body, p)
	return OperatorOverload{
		ClassName:  className,
		Namespace:  namespace,
		Operator:   body[i+2].Text,
		ReturnType: body[i].Text,
		Params:     params,
		Body:       bodyToks,
	}, next, true
}

// parseMembers scans a class body for operator overloads and plain methods.
// The overload pattern is tried first at every position, so a method that
// is literally named "operator" is never misread as a plain function.
func parseMembers(body []Token, className, namespace string) ([]Function, []OperatorOverload) {
	var funcs []Function
	var ops []OperatorOverload
	i := 0
	for i < len(body) {
		if op, next, ok := parseOperatorAt(body, i, className, namespace); ok {
			ops = append(ops, op)
			i = next
			continue
		}
		if i+2 < len(body) &&
			body[i].Kind == IDENTIFIER && body[i+1].Kind == IDENTIFIER &&
			isSym(body[i+2], "(") {
			params, p := parseParams(body, i+3)
			brace, ok := skipToBrace(body, p)
			if !ok {
				// declaration without a body, nothing further to extract
				break
			}
			bodyToks, next := captureBraceBody(body, brace)
			funcs = append(funcs, Function{
				ClassName:  className,
				Namespace:  namespace,
				Name:       body[i+1].Text,
				ReturnType: body[i].Text,
				Params:     params,
				Body:       bodyToks,
			})
			i = next
			continue
		}
		i++
	}
	return funcs, ops
}

// parseVariables collects `Type name ;` and `Type name = ... ;` pairs from
// a token slice, dropping any initializer tokens. The scan does not
// understand blocks: a declaration inside a method body is collected like
// any other, and struct generation inherits that flatness.
func parseVariables(tokens []Token) []Variable {
	var vars []Variable
	i := 0
	for i+2 < len(tokens) {
		if tokens[i].Kind == IDENTIFIER && tokens[i+1].Kind == IDENTIFIER && tokens[i+2].Kind == SYMBOL {
			switch tokens[i+2].Text {
			case ";":
				vars = append(vars, Variable{Name: tokens[i+1].Text, Type: tokens[i].Text})
				i += 3
				continue
			case "=":
				vars = append(vars, Variable{Name: tokens[i+1].Text, Type: tokens[i].Text})
				j := i + 3
				for j < len(tokens) && !isSym(tokens[j], ";") {
					j++
				}
				i = j + 1
				continue
			}
		}
		i++
	}
	return vars
}

// ExtractClasses runs the structural scan over an import-expanded token
// stream and builds a Class entity for every `class Name { ... }` declared
// in it. Classes that arrived through an import were already lowered to
// plain C by their own compile and no longer match the pattern.
func ExtractClasses(tokens []Token) []Class {
	var classes []Class
	ns := ""
	nsDepth := 0
	depth := 0
	for i := 0; i < len(tokens); i++ {
		if name, next, ok := matchNamespace(tokens, i); ok {
			ns = name
			nsDepth = depth
			depth++
			i = next - 1
			continue
		}
		tok := tokens[i]
		if isSym(tok, "{") {
			depth++
			continue
		}
		if isSym(tok, "}") {
			depth--
			if ns != "" && depth == nsDepth {
				ns = ""
			}
			continue
		}
		if tok.Kind == IDENTIFIER && tok.Text == "class" &&
			i+1 < len(tokens) && tokens[i+1].Kind == IDENTIFIER {
			name := tokens[i+1].Text
			if i+2 < len(tokens) && isSym(tokens[i+2], "{") {
				body, next := captureBraceBody(tokens, i+2)
				funcs, ops := parseMembers(body, name, ns)
				classes = append(classes, Class{
					Name:      name,
					Namespace: ns,
					Variables: parseVariables(body),
					Functions: funcs,
					Operators: ops,
				})
				i = next - 1
				continue
			}
			// `class Name` with no body still registers an empty class
			classes = append(classes, Class{Name: name, Namespace: ns})
			i++
		}
	}
	return classes
}
