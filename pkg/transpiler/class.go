package transpiler

import (
	"fmt"
	"strings"
)

// Variable is a declared (type, name) pair. Initializer expressions are
// discarded at extraction time and never reach the generated struct.
type Variable struct {
	Name string
	Type string
}

// Function is a method captured from a class body. Body is an opaque token
// slice: it is never reinterpreted, only copied into the generated output.
type Function struct {
	ClassName  string
	Namespace  string
	Name       string
	ReturnType string
	Params     []string // "type name" strings, in declaration order
	Body       []Token
}

// OperatorOverload is like Function but keyed by an operator symbol that
// maps through operatorSuffixes to the generated function name.
type OperatorOverload struct {
	ClassName  string
	Namespace  string
	Operator   string
	ReturnType string
	Params     []string
	Body       []Token
}

// Class is the structured form of one `class Name { ... }` block. Entities
// are built once per file by ExtractClasses and never mutated; regeneration
// replaces them entirely.
type Class struct {
	Name      string
	Namespace string
	Variables []Variable
	Functions []Function
	Operators []OperatorOverload
}

// operatorSuffixes maps an overloadable operator symbol to the suffix used
// in the generated C function name.
var operatorSuffixes = map[string]string{
	"+":  "add",
	"-":  "sub",
	"*":  "mul",
	"/":  "div",
	"==": "eq",
	"!=": "neq",
	"<":  "lt",
	">":  "gt",
	"<=": "le",
	">=": "ge",
	"+=": "add_assign",
	"-=": "sub_assign",
	"*=": "mul_assign",
	"/=": "div_assign",
	"++": "increment",
	"--": "decrement",
	"[]": "index",
}

func operatorSuffix(op string) string {
	if s, ok := operatorSuffixes[op]; ok {
		return s
	}
	return "unknown_op"
}

// FullName returns the namespace-qualified name used for every generated C
// symbol belonging to this class.
func (c *Class) FullName() string {
	return fullName(c.Namespace, c.Name)
}

// GenerateC renders the struct typedef and every method and operator as
// plain C text. The emitter re-lexes the result before splicing it back
// into the token stream, so spacing here only needs to keep tokens apart.
func (c *Class) GenerateC() string {
	var sb strings.Builder
	sb.WriteString("typedef struct { ")
	for _, v := range c.Variables {
		sb.WriteString(v.Type)
		sb.WriteByte(' ')
		sb.WriteString(v.Name)
		sb.WriteByte(';')
	}
	sb.WriteString(" } ")
	sb.WriteString(c.FullName())
	sb.WriteString(";\n")
	for i := range c.Functions {
		sb.WriteString(c.Functions[i].GenerateC())
	}
	for i := range c.Operators {
		sb.WriteString(c.Operators[i].GenerateC())
	}
	return sb.String()
}

// GenerateC renders the method as a flat C function taking the receiver as
// its leading `self` parameter.
func (f *Function) GenerateC() string {
	full := fullName(f.Namespace, f.ClassName)
	params := ""
	if len(f.Params) > 0 {
		params = "," + strings.Join(f.Params, ", ")
	}
	return fmt.Sprintf("%s %s_%s(%s self%s){%s}",
		f.ReturnType, full, f.Name, full, params, joinBody(f.Body))
}

// GenerateC renders the overload as a flat C function. The parameter list
// always reads `self, params`, even when there are no params.
func (o *OperatorOverload) GenerateC() string {
	full := fullName(o.Namespace, o.ClassName)
	return fmt.Sprintf("%s %s_operator_%s(%s self, %s){%s}",
		o.ReturnType, full, operatorSuffix(o.Operator), full,
		strings.Join(o.Params, ", "), joinBody(o.Body))
}

// joinBody renders captured body tokens separated by single spaces. The
// result is re-lexed before final output, so exact spacing does not matter
// beyond keeping tokens apart.
func joinBody(body []Token) string {
	parts := make([]string, len(body))
	for i, t := range body {
		switch t.Kind {
		case NEWLINE:
			parts[i] = "\n"
		case EOF:
			parts[i] = ""
		default:
			parts[i] = t.Text
		}
	}
	return strings.Join(parts, " ")
}
