package traverse

import "github.com/akashmaji946/molang/ast"

// WalkProgram walks a whole program: its body's statement list (Complex)
// or its single expression (Simple), firing EnterProgram/ExitProgram
// around the recursion.
func WalkProgram(v Visitor, p *ast.Program) {
	v.EnterProgram(p)
	switch p.Body.Kind {
	case ast.BodySimple:
		WalkExpression(v, &p.Body.Expr)
	case ast.BodyComplex:
		WalkStatements(v, &p.Body.Statements)
	}
	v.ExitProgram(p)
}

// WalkStatements walks a statement list, firing the aggregate
// EnterStatements/ExitStatements hooks around a per-element WalkStatement
// pass. The slice is passed by pointer so a visitor may splice entries in
// ExitStatements (the transformer's synthesized-sibling insertion) after
// every element has already been walked.
func WalkStatements(v Visitor, stmts *[]ast.Statement) {
	v.EnterStatements(stmts)
	for i := range *stmts {
		WalkStatement(v, &(*stmts)[i])
	}
	v.ExitStatements(stmts)
}

// WalkStatement dispatches to the concrete statement variant held in
// *s, firing the generic EnterStatement/ExitStatement hooks around the
// variant-specific ones.
func WalkStatement(v Visitor, s *ast.Statement) {
	v.EnterStatement(s)
	switch st := (*s).(type) {
	case *ast.ExpressionStatement:
		WalkExpression(v, &st.Expr)
	case *ast.AssignmentStatement:
		v.EnterAssignmentStatement(st)
		WalkExpression(v, &st.Right)
		v.ExitAssignmentStatement(st)
	case *ast.LoopStatement:
		v.EnterLoopStatement(st)
		WalkExpression(v, &st.Count)
		WalkStatements(v, &st.Block.Statements)
		v.ExitLoopStatement(st)
	case *ast.ForEachStatement:
		v.EnterForEachStatement(st)
		WalkExpression(v, &st.Array)
		WalkStatements(v, &st.Block.Statements)
		v.ExitForEachStatement(st)
	case *ast.ReturnStatement:
		v.EnterReturnStatement(st)
		if st.Argument != nil {
			WalkExpression(v, &st.Argument)
		}
		v.ExitReturnStatement(st)
	case *ast.BreakStatement:
		v.EnterBreakStatement(st)
		v.ExitBreakStatement(st)
	case *ast.ContinueStatement:
		v.EnterContinueStatement(st)
		v.ExitContinueStatement(st)
	case *ast.EmptyStatement:
		v.EnterEmptyStatement(st)
		v.ExitEmptyStatement(st)
	}
	v.ExitStatement(s)
}

// WalkExpression dispatches to the concrete expression variant held in
// *e, firing the generic EnterExpression/ExitExpression hooks around the
// variant-specific ones. This is the hook the transformer uses to run
// update lowering before binary lowering on every expression node,
// regardless of variant.
func WalkExpression(v Visitor, e *ast.Expression) {
	v.EnterExpression(e)
	switch ex := (*e).(type) {
	case *ast.NumericLiteral:
		v.EnterNumericLiteral(ex)
		v.ExitNumericLiteral(ex)
	case *ast.BooleanLiteral:
		v.EnterBooleanLiteral(ex)
		v.ExitBooleanLiteral(ex)
	case *ast.StringLiteral:
		v.EnterStringLiteral(ex)
		v.ExitStringLiteral(ex)
	case *ast.VariableExpression:
		v.EnterVariableExpression(ex)
		v.ExitVariableExpression(ex)
	case *ast.ParenthesizedExpression:
		v.EnterParenthesizedExpression(ex)
		switch ex.Body.Kind {
		case ast.ParenthesizedSingle:
			WalkExpression(v, &ex.Body.Single)
		case ast.ParenthesizedMultiple:
			WalkStatements(v, &ex.Body.Statements)
		}
		v.ExitParenthesizedExpression(ex)
	case *ast.BlockExpression:
		v.EnterBlockExpression(ex)
		WalkStatements(v, &ex.Statements)
		v.ExitBlockExpression(ex)
	case *ast.BinaryExpression:
		v.EnterBinaryExpression(ex)
		WalkExpression(v, &ex.Left)
		WalkExpression(v, &ex.Right)
		v.ExitBinaryExpression(ex)
	case *ast.UnaryExpression:
		v.EnterUnaryExpression(ex)
		WalkExpression(v, &ex.Argument)
		v.ExitUnaryExpression(ex)
	case *ast.UpdateExpression:
		v.EnterUpdateExpression(ex)
		v.ExitUpdateExpression(ex)
	case *ast.TernaryExpression:
		v.EnterTernaryExpression(ex)
		WalkExpression(v, &ex.Test)
		WalkExpression(v, &ex.Consequent)
		WalkExpression(v, &ex.Alternate)
		v.ExitTernaryExpression(ex)
	case *ast.ConditionalExpression:
		v.EnterConditionalExpression(ex)
		WalkExpression(v, &ex.Test)
		WalkExpression(v, &ex.Consequent)
		v.ExitConditionalExpression(ex)
	case *ast.ResourceExpression:
		v.EnterResourceExpression(ex)
		v.ExitResourceExpression(ex)
	case *ast.ArrayAccessExpression:
		v.EnterArrayAccessExpression(ex)
		WalkExpression(v, &ex.Index)
		v.ExitArrayAccessExpression(ex)
	case *ast.ArrowAccessExpression:
		v.EnterArrowAccessExpression(ex)
		WalkExpression(v, &ex.Left)
		WalkExpression(v, &ex.Right)
		v.ExitArrowAccessExpression(ex)
	case *ast.CallExpression:
		v.EnterCallExpression(ex)
		for i := range ex.Arguments {
			WalkExpression(v, &ex.Arguments[i])
		}
		v.ExitCallExpression(ex)
	case *ast.ThisExpression:
		v.EnterThisExpression(ex)
		v.ExitThisExpression(ex)
	}
	v.ExitExpression(e)
}
