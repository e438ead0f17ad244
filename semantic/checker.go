// Package semantic implements the Molang semantic checker: a read-only
// traversal that collects contextual diagnostics the parser cannot catch
// on its own (loop-only statements, string operator restrictions,
// read-only lifetimes).
package semantic

import (
	"github.com/akashmaji946/molang/ast"
	"github.com/akashmaji946/molang/diag"
	"github.com/akashmaji946/molang/traverse"
)

// Checker walks a Program via the traverse protocol, accumulating
// diagnostics. It never mutates the tree and never aborts early.
type Checker struct {
	traverse.Base
	loopDepth int
	errors    []diag.Diagnostic
}

// NewChecker creates an empty Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check walks program and returns every diagnostic found, ordered by
// source position (the traversal is pre-order left-to-right, so
// diagnostics are naturally emitted in order).
func Check(program *ast.Program) []diag.Diagnostic {
	c := NewChecker()
	traverse.WalkProgram(c, program)
	return c.errors
}

func (c *Checker) report(d diag.Diagnostic) {
	c.errors = append(c.errors, d)
}

// EnterLoopStatement increments loopDepth so nested break/continue are
// recognized as valid, and reports EmptyBlock for a zero-statement body.
func (c *Checker) EnterLoopStatement(s *ast.LoopStatement) {
	c.loopDepth++
	if len(s.Block.Statements) == 0 {
		c.report(diag.EmptyBlock(s.Block.Span()))
	}
}

// ExitLoopStatement decrements loopDepth symmetrically with
// EnterLoopStatement.
func (c *Checker) ExitLoopStatement(s *ast.LoopStatement) {
	c.loopDepth--
}

// EnterForEachStatement increments loopDepth and reports EmptyBlock for a
// zero-statement body. The iteration variable's lifetime is checked by
// the parser, not here.
func (c *Checker) EnterForEachStatement(s *ast.ForEachStatement) {
	c.loopDepth++
	if len(s.Block.Statements) == 0 {
		c.report(diag.EmptyBlock(s.Block.Span()))
	}
}

// ExitForEachStatement decrements loopDepth symmetrically with
// EnterForEachStatement.
func (c *Checker) ExitForEachStatement(s *ast.ForEachStatement) {
	c.loopDepth--
}

// EnterBreakStatement reports BreakContinueOutsideLoop when loopDepth is
// zero.
func (c *Checker) EnterBreakStatement(s *ast.BreakStatement) {
	if c.loopDepth == 0 {
		c.report(diag.BreakContinueOutsideLoop(s.Span()))
	}
}

// EnterContinueStatement reports BreakContinueOutsideLoop when loopDepth
// is zero.
func (c *Checker) EnterContinueStatement(s *ast.ContinueStatement) {
	if c.loopDepth == 0 {
		c.report(diag.BreakContinueOutsideLoop(s.Span()))
	}
}

// EnterAssignmentStatement reports ContextReadOnly when the left-hand
// side's lifetime is Context. This hook only handles the read-only check
// (Assignment's left side is never walked as a generic expression); a
// disallowed string operator on the right-hand side is reported by
// EnterBinaryExpression when the walk reaches it.
func (c *Checker) EnterAssignmentStatement(s *ast.AssignmentStatement) {
	if s.Left.Lifetime == ast.Context {
		c.report(diag.ContextReadOnly(s.Span()))
	}
}

// EnterUpdateExpression reports ContextReadOnly when an Update targets a
// `context.*` variable.
func (c *Checker) EnterUpdateExpression(e *ast.UpdateExpression) {
	if e.Variable.Lifetime == ast.Context {
		c.report(diag.ContextReadOnly(e.Span()))
	}
}

// EnterBlockExpression reports EmptyBlock for a zero-statement block.
func (c *Checker) EnterBlockExpression(e *ast.BlockExpression) {
	if len(e.Statements) == 0 {
		c.report(diag.EmptyBlock(e.Span()))
	}
}

// EnterBinaryExpression reports IllegalStringOp when either operand is a
// StringLiteral and the operator is anything but == or !=.
func (c *Checker) EnterBinaryExpression(e *ast.BinaryExpression) {
	if e.Op == ast.Eq || e.Op == ast.NotEq {
		return
	}
	if isStringLiteral(e.Left) || isStringLiteral(e.Right) {
		c.report(diag.IllegalStringOp(e.Span()))
	}
}

func isStringLiteral(e ast.Expression) bool {
	_, ok := e.(*ast.StringLiteral)
	return ok
}
