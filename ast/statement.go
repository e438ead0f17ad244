package ast

import "github.com/akashmaji946/molang/span"

// Statement is the tagged union of top-level and block-level statements.
// Concrete variants are pointer types so that a traversal holding a
// []Statement slot can replace an entry in place (list[i] = newStatement)
// without any additional indirection.
type Statement interface {
	isStatement()
	Span() span.Span
}

// Block is a non-empty (enforced by the semantic checker, not the
// parser) list of statements delimited by '{' '}', used by LoopStatement
// and ForEachStatement bodies.
type Block struct {
	SpanVal    span.Span
	Statements []Statement
}

// Span returns the Block's source span.
func (b *Block) Span() span.Span { return b.SpanVal }

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	SpanVal span.Span
	Expr    Expression
}

func (*ExpressionStatement) isStatement()      {}
func (s *ExpressionStatement) Span() span.Span { return s.SpanVal }

// AssignmentStatement is `left op right;`.
type AssignmentStatement struct {
	SpanVal span.Span
	Left    *VariableExpression
	Op      AssignOp
	Right   Expression
}

func (*AssignmentStatement) isStatement()      {}
func (s *AssignmentStatement) Span() span.Span { return s.SpanVal }

// LoopStatement is `loop(count, block)`.
type LoopStatement struct {
	SpanVal span.Span
	Count   Expression
	Block   *Block
}

func (*LoopStatement) isStatement()      {}
func (s *LoopStatement) Span() span.Span { return s.SpanVal }

// ForEachStatement is `for_each(variable, array, block)`.
type ForEachStatement struct {
	SpanVal  span.Span
	Variable *VariableExpression
	Array    Expression
	Block    *Block
}

func (*ForEachStatement) isStatement()      {}
func (s *ForEachStatement) Span() span.Span { return s.SpanVal }

// ReturnStatement is `return argument;`.
type ReturnStatement struct {
	SpanVal  span.Span
	Argument Expression
}

func (*ReturnStatement) isStatement()      {}
func (s *ReturnStatement) Span() span.Span { return s.SpanVal }

// BreakStatement is `break;`.
type BreakStatement struct {
	SpanVal span.Span
}

func (*BreakStatement) isStatement()      {}
func (s *BreakStatement) Span() span.Span { return s.SpanVal }

// ContinueStatement is `continue;`.
type ContinueStatement struct {
	SpanVal span.Span
}

func (*ContinueStatement) isStatement()      {}
func (s *ContinueStatement) Span() span.Span { return s.SpanVal }

// EmptyStatement is a bare `;` with no content. The code generator skips
// printing it and the trailing semicolon that would otherwise follow it.
type EmptyStatement struct {
	SpanVal span.Span
}

func (*EmptyStatement) isStatement()      {}
func (s *EmptyStatement) Span() span.Span { return s.SpanVal }
