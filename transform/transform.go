// Package transform implements the Molang lowering transformer: it
// rewrites "extended" constructs (compound assignment, update,
// exponentiation/modulo, shifts, bitwise ops) into the minimal subset
// codegen and downstream runtimes understand. Transform runs in two
// passes over the traverse protocol, mirroring the original Rust
// implementation's MolangTransformer/ProgramBodyTransformer split: the
// first pass decides whether a Simple program must be promoted to
// Complex before any statement-synthesizing rewrite can run, the second
// does the actual lowering.
package transform

import (
	"github.com/akashmaji946/molang/ast"
	"github.com/akashmaji946/molang/traverse"
)

// Transform lowers program in place. After Transform returns, the tree
// contains no Update nodes, no compound AssignOp, and no Binary operator
// in ast.BinaryOperator.IsCustom()'s set.
func Transform(program *ast.Program) {
	pbt := &programBodyTransformer{}
	traverse.WalkProgram(pbt, program)

	tr := &transformer{
		needsComplex: pbt.needsComplex,
		promoted:     pbt.needsComplex && pbt.isSimple,
	}
	traverse.WalkProgram(tr, program)
}

// programBodyTransformer is pass 1: it decides whether a Simple program
// body must be promoted to Complex, which happens iff the tree contains
// an Update expression or a bitwise Binary expression -- both lower into
// synthesized statements that a bare expression body has nowhere to
// hold.
type programBodyTransformer struct {
	traverse.Base
	isSimple     bool
	needsComplex bool
}

func (p *programBodyTransformer) EnterProgram(prog *ast.Program) {
	p.isSimple = prog.Body.IsSimple()
}

func (p *programBodyTransformer) ExitProgram(prog *ast.Program) {
	if p.needsComplex && p.isSimple {
		prog.Body = ast.NewComplexBody([]ast.Statement{ast.NewExpressionStatement(prog.Body.Expr)})
	}
}

func (p *programBodyTransformer) EnterBinaryExpression(e *ast.BinaryExpression) {
	if !p.isSimple {
		return
	}
	switch e.Op {
	case ast.BitOr, ast.BitAnd, ast.BitXor:
		p.needsComplex = true
	}
}

func (p *programBodyTransformer) EnterUpdateExpression(*ast.UpdateExpression) {
	if p.isSimple {
		p.needsComplex = true
	}
}

// scope tracks, for one statement list currently being walked, how many
// statements have been entered so far, the total number of synthesized
// statements already queued (so later indices account for the exact
// shift earlier splices will cause, even when a splice contributes more
// than one statement), and the (index, statements) groups synthesized
// for splicing back in on exit.
type scope struct {
	statementCount int
	syntheticCount int
	newStatements  []indexedStatement
}

type indexedStatement struct {
	index int
	stmts []ast.Statement
}

// transformer is pass 2: compound-assignment, update, and binary
// lowering, plus dead-expression-statement elimination and the trailing
// return promotion decided by pass 1.
type transformer struct {
	traverse.Base
	scopes []*scope

	// needsComplex and promoted are carried over from pass 1's result
	// and held constant for the whole of pass 2.
	needsComplex bool
	promoted     bool
}

func (t *transformer) pushScope() {
	t.scopes = append(t.scopes, &scope{})
}

func (t *transformer) popScope() *scope {
	n := len(t.scopes) - 1
	s := t.scopes[n]
	t.scopes = t.scopes[:n]
	return s
}

func (t *transformer) top() *scope {
	return t.scopes[len(t.scopes)-1]
}

func (t *transformer) ExitProgram(prog *ast.Program) {
	if !t.promoted || !prog.Body.IsComplex() {
		return
	}
	stmts := prog.Body.Statements
	if len(stmts) == 0 {
		return
	}
	last := stmts[len(stmts)-1]
	es, ok := last.(*ast.ExpressionStatement)
	if !ok {
		return
	}
	stmts[len(stmts)-1] = ast.NewReturn(es.Expr)
}

func (t *transformer) EnterStatements(*[]ast.Statement) {
	t.pushScope()
}

// ExitStatements splices this scope's synthesized siblings back into
// stmts at their precomputed indices, in push order (each index was
// computed relative to the list as it stood after earlier splices, so
// applying them in order needs no further adjustment), then runs
// dead-expression elimination when no promotion occurred this transform.
func (t *transformer) ExitStatements(stmts *[]ast.Statement) {
	s := t.popScope()
	for _, is := range s.newStatements {
		insertStatements(stmts, is.index, is.stmts)
	}
	t.optimizeStatements(stmts)
}

func (t *transformer) optimizeStatements(stmts *[]ast.Statement) {
	if t.needsComplex {
		return
	}
	for i, st := range *stmts {
		es, ok := st.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		if _, ok := es.Expr.(*ast.VariableExpression); ok {
			(*stmts)[i] = &ast.EmptyStatement{}
		}
	}
}

func (t *transformer) EnterStatement(s *ast.Statement) {
	t.top().statementCount++
	t.transformAssignmentStatement(s)
}

func (t *transformer) EnterExpression(e *ast.Expression) {
	t.transformUpdateExpression(e)
	t.transformBinaryExpression(e)
}

// transformUpdateExpression lowers `variable++`/`variable--` appearing
// in expression position: it synthesizes a sibling assignment statement
// at the current index and replaces the expression itself with a bare
// read of the variable.
func (t *transformer) transformUpdateExpression(e *ast.Expression) {
	ue, ok := (*e).(*ast.UpdateExpression)
	if !ok {
		return
	}
	s := t.top()
	stmt := ast.NewAssignment(ue.Variable,
		ast.NewBinary(ue.Variable, ue.Op.AsBinaryOperator(), ast.NewNumericLiteralValue(1)))
	index := s.syntheticCount + s.statementCount - 1
	s.newStatements = append(s.newStatements, indexedStatement{index, []ast.Statement{stmt}})
	s.syntheticCount++
	*e = ue.Variable
}

// transformBinaryExpression lowers a custom BinaryOperator. %, **, <<,
// >> rewrite in place to an equivalent expression; |, &, ^ synthesize a
// bit-by-bit loop statement and replace the expression with a read of
// its result variable.
func (t *transformer) transformBinaryExpression(e *ast.Expression) {
	be, ok := (*e).(*ast.BinaryExpression)
	if !ok || !be.Op.IsCustom() {
		return
	}
	switch be.Op {
	case ast.Mod:
		*e = mathMod(be.Left, be.Right)
	case ast.Pow:
		*e = mathPow(be.Left, be.Right)
	case ast.Shl:
		*e = shiftLeft(be.Left, be.Right)
	case ast.Shr:
		*e = shiftRight(be.Left, be.Right)
	case ast.BitOr, ast.BitAnd, ast.BitXor:
		// The operands move into synthesized statements that the walk
		// never visits, so lower them first.
		traverse.WalkExpression(t, &be.Left)
		traverse.WalkExpression(t, &be.Right)
		s := t.top()
		index := s.syntheticCount + s.statementCount - 1
		stmts, result := synthesizeBitwise(be.Left, be.Right, be.Op, index)
		s.newStatements = append(s.newStatements, indexedStatement{index, stmts})
		s.syntheticCount += len(stmts)
		*e = result
	}
}

// transformAssignmentStatement lowers a compound AssignmentStatement.
// Arithmetic/remainder/exponential/shift operators rewrite Right in
// place; ||=/&&= rewrite the whole statement to a conditional guard;
// bitwise operators synthesize a loop statement exactly like their
// binary-expression counterpart.
func (t *transformer) transformAssignmentStatement(s *ast.Statement) {
	as, ok := (*s).(*ast.AssignmentStatement)
	if !ok || !as.Op.IsCustom() {
		return
	}

	var lhs ast.Expression = as.Left
	if !as.Left.IsStruct() {
		lhs = ast.NewCoalesce(as.Left, ast.NewNumericLiteralValue(0))
	}

	op := as.Op
	as.Op = ast.Assign

	switch op {
	case ast.AddAssign, ast.SubAssign, ast.MulAssign, ast.DivAssign:
		as.Right = ast.NewBinary(lhs, op.AsBinaryOperator(), as.Right)
	case ast.PowAssign:
		as.Right = mathPow(lhs, as.Right)
	case ast.ModAssign:
		as.Right = mathMod(lhs, as.Right)
	case ast.ShlAssign:
		as.Right = shiftLeft(lhs, as.Right)
	case ast.ShrAssign:
		as.Right = shiftRight(lhs, as.Right)
	case ast.OrAssign:
		*s = ast.NewConditionalStatement(
			ast.NewUnary(ast.Not, as.Left),
			ast.NewBlockExpression([]ast.Statement{as}))
	case ast.AndAssign:
		*s = ast.NewConditionalStatement(
			as.Left,
			ast.NewBlockExpression([]ast.Statement{as}))
	case ast.BitOrAssign, ast.BitAndAssign, ast.BitXorAssign:
		traverse.WalkExpression(t, &as.Right)
		scope := t.top()
		index := scope.syntheticCount + scope.statementCount - 1
		stmts, result := synthesizeBitwise(lhs, as.Right, op.AsBinaryOperator(), index)
		scope.newStatements = append(scope.newStatements, indexedStatement{index, stmts})
		scope.syntheticCount += len(stmts)
		as.Right = result
	}
}

// insertStatements splices stmts into *list starting at index, shifting
// later elements right, preserving the order of stmts. Indices are
// always computed to already land at the correct final position (see
// EnterExpression/EnterStatement above, and syntheticCount's role in
// keeping later indices correct when an earlier splice contributed more
// than one statement), so callers never need to adjust for earlier
// insertions into this call.
func insertStatements(list *[]ast.Statement, index int, stmts []ast.Statement) {
	if len(stmts) == 0 {
		return
	}
	s := *list
	if index < 0 {
		index = 0
	}
	if index > len(s) {
		index = len(s)
	}
	grown := make([]ast.Statement, len(s)+len(stmts))
	copy(grown, s[:index])
	copy(grown[index:], stmts)
	copy(grown[index+len(stmts):], s[index:])
	*list = grown
}
