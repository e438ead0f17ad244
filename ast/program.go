// Package ast defines the Molang abstract syntax tree: the Program root,
// the Statement and Expression tagged unions, and the small value types
// (variable members, operators) that hang off them.
//
// Every node type is a plain struct; Statement and Expression are
// interfaces implemented by pointers to those structs, so a visitor that
// wants to replace a child simply assigns a new value into the parent's
// field or into a []Statement/[]Expression slice slot — no take/put
// dance is needed the way Rust's borrow checker forces one.
package ast

import "github.com/akashmaji946/molang/span"

// ProgramBodyKind tags which variant of ProgramBody is populated.
type ProgramBodyKind uint8

const (
	// BodyEmpty means the source produced no statements at all.
	BodyEmpty ProgramBodyKind = iota
	// BodySimple means the program is exactly one expression with no
	// top-level ';', '=', or '{'.
	BodySimple
	// BodyComplex means the program is a statement sequence.
	BodyComplex
)

// ProgramBody is the Simple(Expression) | Complex([]Statement) | Empty
// union from the data model. Exactly one of Expr / Statements is
// meaningful, selected by Kind.
type ProgramBody struct {
	Kind       ProgramBodyKind
	Expr       Expression
	Statements []Statement
}

// NewSimpleBody constructs a Simple program body.
func NewSimpleBody(expr Expression) ProgramBody {
	return ProgramBody{Kind: BodySimple, Expr: expr}
}

// NewComplexBody constructs a Complex program body.
func NewComplexBody(statements []Statement) ProgramBody {
	return ProgramBody{Kind: BodyComplex, Statements: statements}
}

// NewEmptyBody constructs an Empty program body.
func NewEmptyBody() ProgramBody {
	return ProgramBody{Kind: BodyEmpty}
}

// IsSimple reports whether b is the Simple variant.
func (b ProgramBody) IsSimple() bool { return b.Kind == BodySimple }

// IsComplex reports whether b is the Complex variant.
func (b ProgramBody) IsComplex() bool { return b.Kind == BodyComplex }

// IsEmpty reports whether b is the Empty variant.
func (b ProgramBody) IsEmpty() bool { return b.Kind == BodyEmpty }

// Program is the AST root: the full source text plus the parsed body.
type Program struct {
	SpanVal span.Span
	Source  string
	Body    ProgramBody
}

// Span returns the Program's source span.
func (p *Program) Span() span.Span { return p.SpanVal }
