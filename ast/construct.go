package ast

import "github.com/akashmaji946/molang/span"

// This file collects constructor functions for nodes synthesized by the
// transformer rather than produced by the parser. Every node built here
// carries span.SPAN, the zero-value span that marks a node as having no
// corresponding source text.

// NewNumericLiteralValue builds a synthetic NumericLiteral whose Raw text
// is the canonical decimal rendering of value.
func NewNumericLiteralValue(value float64) *NumericLiteral {
	return &NumericLiteral{SpanVal: span.SPAN, Value: value, Raw: formatNumber(value)}
}

// NewSyntheticVariable builds a synthetic v.<name> VariableExpression
// with lifetime Variable, used for transformer-introduced temporaries
// such as __0_result.
func NewSyntheticVariable(name string) *VariableExpression {
	return NewVariableExpression(span.SPAN, Variable, NewPropertyMember(name))
}

// NewBinary builds a synthetic BinaryExpression.
func NewBinary(left Expression, op BinaryOperator, right Expression) *BinaryExpression {
	return &BinaryExpression{SpanVal: span.SPAN, Left: left, Op: op, Right: right}
}

// NewCall builds a synthetic CallExpression with parentheses and the
// given arguments (possibly empty, never nil-vs-absent — HasParens is
// always true for synthesized calls).
func NewCall(kind CallKind, callee string, args ...Expression) *CallExpression {
	return &CallExpression{SpanVal: span.SPAN, Kind: kind, Callee: callee, HasParens: true, Arguments: args}
}

// NewMathCall is shorthand for NewCall(Math, callee, args...).
func NewMathCall(callee string, args ...Expression) *CallExpression {
	return NewCall(Math, callee, args...)
}

// NewAssignment builds a synthetic AssignmentStatement with op Assign.
func NewAssignment(left *VariableExpression, right Expression) *AssignmentStatement {
	return &AssignmentStatement{SpanVal: span.SPAN, Left: left, Op: Assign, Right: right}
}

// NewExpressionStatement wraps expr as a synthetic statement.
func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{SpanVal: span.SPAN, Expr: expr}
}

// NewReturn builds a synthetic ReturnStatement.
func NewReturn(argument Expression) *ReturnStatement {
	return &ReturnStatement{SpanVal: span.SPAN, Argument: argument}
}

// NewBlock builds a synthetic Block from statements.
func NewBlock(statements []Statement) *Block {
	return &Block{SpanVal: span.SPAN, Statements: statements}
}

// NewBlockExpression builds a synthetic BlockExpression from statements.
func NewBlockExpression(statements []Statement) *BlockExpression {
	return &BlockExpression{SpanVal: span.SPAN, Statements: statements}
}

// NewLoop builds a synthetic LoopStatement.
func NewLoop(count Expression, block *Block) *LoopStatement {
	return &LoopStatement{SpanVal: span.SPAN, Count: count, Block: block}
}

// NewConditionalStatement wraps a synthetic ConditionalExpression (test ?
// consequent) as an expression-statement, the shape the transformer uses
// to lower ||= and &&=.
func NewConditionalStatement(test, consequent Expression) *ExpressionStatement {
	return NewExpressionStatement(&ConditionalExpression{SpanVal: span.SPAN, Test: test, Consequent: consequent})
}

// NewUnary builds a synthetic UnaryExpression.
func NewUnary(op UnaryOperator, argument Expression) *UnaryExpression {
	return &UnaryExpression{SpanVal: span.SPAN, Op: op, Argument: argument}
}

// NewCoalesce builds `left ?? right`, used to guard a possibly-unset
// top-level variable read during compound-assignment lowering.
func NewCoalesce(left, right Expression) *BinaryExpression {
	return NewBinary(left, Coalesce, right)
}

// formatNumber renders a float64 the way Molang numeric literals are
// written: the shortest decimal representation that round-trips.
func formatNumber(value float64) string {
	return trimTrailingZeros(value)
}
