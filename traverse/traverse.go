// Package traverse defines the mutable enter/exit visitor protocol shared
// by the semantic checker and the transformer. A Visitor gets one
// Enter/Exit pair per node kind, plus the two aggregate EnterStatements/
// ExitStatements hooks that fire around every statement list (program
// body, block, multi-statement parenthesized expression).
//
// Walking is pre-order on Enter, post-order on Exit, left to right. Nodes
// are passed as pointers to the interface-typed field or slice slot that
// holds them, so a visitor may replace a node in place by assigning
// through that pointer — there is no borrow checker to fight, so this is
// simply `*slot = newNode` where Rust needs a take/put primitive.
package traverse

import "github.com/akashmaji946/molang/ast"

// Visitor is implemented by every traversal consumer. Embed Base to get
// no-op defaults and override only the hooks you need, mirroring the
// teacher's NodeVisitor interface generalized from single-dispatch Accept
// to a mutable enter/exit pair per node kind.
type Visitor interface {
	EnterProgram(p *ast.Program)
	ExitProgram(p *ast.Program)

	EnterStatements(stmts *[]ast.Statement)
	ExitStatements(stmts *[]ast.Statement)

	EnterStatement(s *ast.Statement)
	ExitStatement(s *ast.Statement)

	EnterAssignmentStatement(s *ast.AssignmentStatement)
	ExitAssignmentStatement(s *ast.AssignmentStatement)
	EnterLoopStatement(s *ast.LoopStatement)
	ExitLoopStatement(s *ast.LoopStatement)
	EnterForEachStatement(s *ast.ForEachStatement)
	ExitForEachStatement(s *ast.ForEachStatement)
	EnterReturnStatement(s *ast.ReturnStatement)
	ExitReturnStatement(s *ast.ReturnStatement)
	EnterBreakStatement(s *ast.BreakStatement)
	ExitBreakStatement(s *ast.BreakStatement)
	EnterContinueStatement(s *ast.ContinueStatement)
	ExitContinueStatement(s *ast.ContinueStatement)
	EnterEmptyStatement(s *ast.EmptyStatement)
	ExitEmptyStatement(s *ast.EmptyStatement)

	EnterExpression(e *ast.Expression)
	ExitExpression(e *ast.Expression)

	EnterNumericLiteral(e *ast.NumericLiteral)
	ExitNumericLiteral(e *ast.NumericLiteral)
	EnterBooleanLiteral(e *ast.BooleanLiteral)
	ExitBooleanLiteral(e *ast.BooleanLiteral)
	EnterStringLiteral(e *ast.StringLiteral)
	ExitStringLiteral(e *ast.StringLiteral)
	EnterVariableExpression(e *ast.VariableExpression)
	ExitVariableExpression(e *ast.VariableExpression)
	EnterParenthesizedExpression(e *ast.ParenthesizedExpression)
	ExitParenthesizedExpression(e *ast.ParenthesizedExpression)
	EnterBlockExpression(e *ast.BlockExpression)
	ExitBlockExpression(e *ast.BlockExpression)
	EnterBinaryExpression(e *ast.BinaryExpression)
	ExitBinaryExpression(e *ast.BinaryExpression)
	EnterUnaryExpression(e *ast.UnaryExpression)
	ExitUnaryExpression(e *ast.UnaryExpression)
	EnterUpdateExpression(e *ast.UpdateExpression)
	ExitUpdateExpression(e *ast.UpdateExpression)
	EnterTernaryExpression(e *ast.TernaryExpression)
	ExitTernaryExpression(e *ast.TernaryExpression)
	EnterConditionalExpression(e *ast.ConditionalExpression)
	ExitConditionalExpression(e *ast.ConditionalExpression)
	EnterResourceExpression(e *ast.ResourceExpression)
	ExitResourceExpression(e *ast.ResourceExpression)
	EnterArrayAccessExpression(e *ast.ArrayAccessExpression)
	ExitArrayAccessExpression(e *ast.ArrayAccessExpression)
	EnterArrowAccessExpression(e *ast.ArrowAccessExpression)
	ExitArrowAccessExpression(e *ast.ArrowAccessExpression)
	EnterCallExpression(e *ast.CallExpression)
	ExitCallExpression(e *ast.CallExpression)
	EnterThisExpression(e *ast.ThisExpression)
	ExitThisExpression(e *ast.ThisExpression)
}

// Base implements Visitor with no-op methods. Embed it by value in a
// concrete visitor struct and redefine only the hooks that matter.
type Base struct{}

func (Base) EnterProgram(*ast.Program) {}
func (Base) ExitProgram(*ast.Program)  {}

func (Base) EnterStatements(*[]ast.Statement) {}
func (Base) ExitStatements(*[]ast.Statement)  {}

func (Base) EnterStatement(*ast.Statement) {}
func (Base) ExitStatement(*ast.Statement)  {}

func (Base) EnterAssignmentStatement(*ast.AssignmentStatement) {}
func (Base) ExitAssignmentStatement(*ast.AssignmentStatement)  {}
func (Base) EnterLoopStatement(*ast.LoopStatement)             {}
func (Base) ExitLoopStatement(*ast.LoopStatement)              {}
func (Base) EnterForEachStatement(*ast.ForEachStatement)       {}
func (Base) ExitForEachStatement(*ast.ForEachStatement)        {}
func (Base) EnterReturnStatement(*ast.ReturnStatement)         {}
func (Base) ExitReturnStatement(*ast.ReturnStatement)          {}
func (Base) EnterBreakStatement(*ast.BreakStatement)           {}
func (Base) ExitBreakStatement(*ast.BreakStatement)            {}
func (Base) EnterContinueStatement(*ast.ContinueStatement)     {}
func (Base) ExitContinueStatement(*ast.ContinueStatement)      {}
func (Base) EnterEmptyStatement(*ast.EmptyStatement)           {}
func (Base) ExitEmptyStatement(*ast.EmptyStatement)            {}

func (Base) EnterExpression(*ast.Expression) {}
func (Base) ExitExpression(*ast.Expression)  {}

func (Base) EnterNumericLiteral(*ast.NumericLiteral)                     {}
func (Base) ExitNumericLiteral(*ast.NumericLiteral)                      {}
func (Base) EnterBooleanLiteral(*ast.BooleanLiteral)                     {}
func (Base) ExitBooleanLiteral(*ast.BooleanLiteral)                      {}
func (Base) EnterStringLiteral(*ast.StringLiteral)                       {}
func (Base) ExitStringLiteral(*ast.StringLiteral)                        {}
func (Base) EnterVariableExpression(*ast.VariableExpression)             {}
func (Base) ExitVariableExpression(*ast.VariableExpression)              {}
func (Base) EnterParenthesizedExpression(*ast.ParenthesizedExpression)   {}
func (Base) ExitParenthesizedExpression(*ast.ParenthesizedExpression)    {}
func (Base) EnterBlockExpression(*ast.BlockExpression)                   {}
func (Base) ExitBlockExpression(*ast.BlockExpression)                    {}
func (Base) EnterBinaryExpression(*ast.BinaryExpression)                 {}
func (Base) ExitBinaryExpression(*ast.BinaryExpression)                  {}
func (Base) EnterUnaryExpression(*ast.UnaryExpression)                   {}
func (Base) ExitUnaryExpression(*ast.UnaryExpression)                    {}
func (Base) EnterUpdateExpression(*ast.UpdateExpression)                 {}
func (Base) ExitUpdateExpression(*ast.UpdateExpression)                  {}
func (Base) EnterTernaryExpression(*ast.TernaryExpression)               {}
func (Base) ExitTernaryExpression(*ast.TernaryExpression)                {}
func (Base) EnterConditionalExpression(*ast.ConditionalExpression)       {}
func (Base) ExitConditionalExpression(*ast.ConditionalExpression)        {}
func (Base) EnterResourceExpression(*ast.ResourceExpression)             {}
func (Base) ExitResourceExpression(*ast.ResourceExpression)              {}
func (Base) EnterArrayAccessExpression(*ast.ArrayAccessExpression)       {}
func (Base) ExitArrayAccessExpression(*ast.ArrayAccessExpression)        {}
func (Base) EnterArrowAccessExpression(*ast.ArrowAccessExpression)       {}
func (Base) ExitArrowAccessExpression(*ast.ArrowAccessExpression)        {}
func (Base) EnterCallExpression(*ast.CallExpression)                     {}
func (Base) ExitCallExpression(*ast.CallExpression)                      {}
func (Base) EnterThisExpression(*ast.ThisExpression)                     {}
func (Base) ExitThisExpression(*ast.ThisExpression)                      {}
