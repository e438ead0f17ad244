package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/molang/ast"
)

func TestParse_SimpleBodyForBareExpression(t *testing.T) {
	prog, errs := Parse("true")
	require.Empty(t, errs)
	require.True(t, prog.Body.IsSimple())
	lit, ok := prog.Body.Expr.(*ast.BooleanLiteral)
	require.True(t, ok)
	assert.True(t, lit.Value)
}

func TestParse_TrailingSemicolonForcesComplex(t *testing.T) {
	prog, errs := Parse("true;")
	require.Empty(t, errs)
	require.True(t, prog.Body.IsComplex())
	require.Len(t, prog.Body.Statements, 1)
}

func TestParse_EmptySourceIsEmptyBody(t *testing.T) {
	prog, errs := Parse("")
	require.Empty(t, errs)
	assert.True(t, prog.Body.IsEmpty())
}

func TestParse_MultipleStatementsAreComplex(t *testing.T) {
	prog, errs := Parse("false; true;")
	require.Empty(t, errs)
	require.True(t, prog.Body.IsComplex())
	require.Len(t, prog.Body.Statements, 2)
	first, ok := prog.Body.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	assert.False(t, first.Expr.(*ast.BooleanLiteral).Value)
	second, ok := prog.Body.Statements[1].(*ast.ExpressionStatement)
	require.True(t, ok)
	assert.True(t, second.Expr.(*ast.BooleanLiteral).Value)
}

func TestParse_VariableMemberChain(t *testing.T) {
	prog, errs := Parse("v.a.b.c")
	require.Empty(t, errs)
	v, ok := prog.Body.Expr.(*ast.VariableExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Variable, v.Lifetime)
	assert.Equal(t, "c", v.Member.LeafProperty())
	obj, ok := v.Member.(*ast.ObjectMember)
	require.True(t, ok)
	assert.Equal(t, "b", obj.Object.LeafProperty())
	inner, ok := obj.Object.(*ast.ObjectMember)
	require.True(t, ok)
	assert.Equal(t, "a", inner.Object.LeafProperty())
}

func TestParse_LongVariableMemberChainWithReservedWordsAsProperties(t *testing.T) {
	prog, errs := Parse("v.v.temp.t.context.c.query.q.math.a.b.c")
	require.Empty(t, errs)
	v, ok := prog.Body.Expr.(*ast.VariableExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Variable, v.Lifetime)
	assert.Equal(t, "c", v.Member.LeafProperty())
}

func TestParse_AssignmentStatement(t *testing.T) {
	prog, errs := Parse("v.x = 5;")
	require.Empty(t, errs)
	require.Len(t, prog.Body.Statements, 1)
	asg, ok := prog.Body.Statements[0].(*ast.AssignmentStatement)
	require.True(t, ok)
	assert.Equal(t, ast.Assign, asg.Op)
	assert.Equal(t, "x", asg.Left.Member.LeafProperty())
	num, ok := asg.Right.(*ast.NumericLiteral)
	require.True(t, ok)
	assert.Equal(t, 5.0, num.Value)
}

func TestParse_CompoundAssignmentOperators(t *testing.T) {
	prog, errs := Parse("v.x **= v.y;")
	require.Empty(t, errs)
	asg := prog.Body.Statements[0].(*ast.AssignmentStatement)
	assert.Equal(t, ast.PowAssign, asg.Op)
}

func TestParse_BinaryPrecedenceS2(t *testing.T) {
	src := "1 == (((2 != 3) < 4 <= 5 > 6) >= -7 + 8 - 9 * 10 / 11 || 12) && !(13 ?? 14)"
	prog, errs := Parse(src)
	require.Empty(t, errs)
	require.True(t, prog.Body.IsSimple())
	top, ok := prog.Body.Expr.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.And, top.Op)
	assert.IsType(t, &ast.NumericLiteral{}, top.Left.(*ast.BinaryExpression).Left)
	assert.Equal(t, ast.Eq, top.Left.(*ast.BinaryExpression).Op)
}

func TestParse_TernaryAndConditional(t *testing.T) {
	prog, errs := Parse("v.x ? 1 : 2")
	require.Empty(t, errs)
	tern, ok := prog.Body.Expr.(*ast.TernaryExpression)
	require.True(t, ok)
	assert.Equal(t, 1.0, tern.Consequent.(*ast.NumericLiteral).Value)
	assert.Equal(t, 2.0, tern.Alternate.(*ast.NumericLiteral).Value)

	prog2, errs2 := Parse("v.x ? 1")
	require.Empty(t, errs2)
	cond, ok := prog2.Body.Expr.(*ast.ConditionalExpression)
	require.True(t, ok)
	assert.Equal(t, 1.0, cond.Consequent.(*ast.NumericLiteral).Value)
}

func TestParse_CallExpressionWithAndWithoutParens(t *testing.T) {
	prog, errs := Parse("math.sin(1, 2)")
	require.Empty(t, errs)
	call, ok := prog.Body.Expr.(*ast.CallExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Math, call.Kind)
	assert.Equal(t, "sin", call.Callee)
	assert.True(t, call.HasParens)
	require.Len(t, call.Arguments, 2)

	prog2, errs2 := Parse("query.is_on_ground")
	require.Empty(t, errs2)
	call2, ok := prog2.Body.Expr.(*ast.CallExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Query, call2.Kind)
	assert.False(t, call2.HasParens)
	assert.Nil(t, call2.Arguments)
}

func TestParse_ResourceExpression(t *testing.T) {
	for _, tc := range []struct {
		src     string
		section ast.ResourceSection
	}{
		{"geometry.foo", ast.Geometry},
		{"material.bar", ast.Material},
		{"texture.baz", ast.Texture},
	} {
		prog, errs := Parse(tc.src)
		require.Empty(t, errs, tc.src)
		res, ok := prog.Body.Expr.(*ast.ResourceExpression)
		require.True(t, ok, tc.src)
		assert.Equal(t, tc.section, res.Section)
	}
}

func TestParse_ArrayAccessExpression(t *testing.T) {
	prog, errs := Parse("array.items[v.i]")
	require.Empty(t, errs)
	acc, ok := prog.Body.Expr.(*ast.ArrayAccessExpression)
	require.True(t, ok)
	assert.Equal(t, "items", acc.Name)
	_, ok = acc.Index.(*ast.VariableExpression)
	assert.True(t, ok)
}

func TestParse_ArrowAccessBreaksTheLoop(t *testing.T) {
	prog, errs := Parse("v.entity->v.x")
	require.Empty(t, errs)
	arrow, ok := prog.Body.Expr.(*ast.ArrowAccessExpression)
	require.True(t, ok)
	_, ok = arrow.Left.(*ast.VariableExpression)
	assert.True(t, ok)
	_, ok = arrow.Right.(*ast.VariableExpression)
	assert.True(t, ok)
}

func TestParse_UpdateExpressionPostfix(t *testing.T) {
	prog, errs := Parse("v.x++")
	require.Empty(t, errs)
	upd, ok := prog.Body.Expr.(*ast.UpdateExpression)
	require.True(t, ok)
	assert.Equal(t, ast.Increment, upd.Op)
}

func TestParse_IllegalUpdateTargetReportsDiagnostic(t *testing.T) {
	_, errs := Parse("5++")
	require.NotEmpty(t, errs)
}

func TestParse_LoopStatement(t *testing.T) {
	prog, errs := Parse("loop(1, {break;});")
	require.Empty(t, errs)
	loop, ok := prog.Body.Statements[0].(*ast.LoopStatement)
	require.True(t, ok)
	assert.Equal(t, 1.0, loop.Count.(*ast.NumericLiteral).Value)
	require.Len(t, loop.Block.Statements, 1)
	_, ok = loop.Block.Statements[0].(*ast.BreakStatement)
	assert.True(t, ok)
}

func TestParse_LoopUsedAsExpressionIsAnError(t *testing.T) {
	_, errs := Parse("1 + loop(1, {break;})")
	require.NotEmpty(t, errs)
}

func TestParse_ForEachStatement(t *testing.T) {
	prog, errs := Parse("for_each(v.i, v.items, {v.sum = v.sum + v.i;});")
	require.Empty(t, errs)
	fe, ok := prog.Body.Statements[0].(*ast.ForEachStatement)
	require.True(t, ok)
	assert.Equal(t, ast.Variable, fe.Variable.Lifetime)
	require.Len(t, fe.Block.Statements, 1)
}

func TestParse_ForEachWithContextFirstArgIsAnError(t *testing.T) {
	_, errs := Parse("for_each(context.i, v.items, {v.x = 1;});")
	require.Len(t, errs, 1)
}

func TestParse_ForEachWithNonVariableFirstArgIsAnError(t *testing.T) {
	_, errs := Parse("for_each(5, v.items, {v.x = 1;});")
	require.NotEmpty(t, errs)
}

func TestParse_ReturnStatement(t *testing.T) {
	prog, errs := Parse("return v.x;")
	require.Empty(t, errs)
	ret, ok := prog.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.NotNil(t, ret.Argument)
}

func TestParse_ParenthesizedEmptyIsAnError(t *testing.T) {
	_, errs := Parse("()")
	require.NotEmpty(t, errs)
}

func TestParse_ParenthesizedSingle(t *testing.T) {
	prog, errs := Parse("(1)")
	require.Empty(t, errs)
	paren, ok := prog.Body.Expr.(*ast.ParenthesizedExpression)
	require.True(t, ok)
	assert.Equal(t, ast.ParenthesizedSingle, paren.Body.Kind)
}

func TestParse_ParenthesizedMultiple(t *testing.T) {
	prog, errs := Parse("(v.x = 1;);")
	require.Empty(t, errs)
	require.True(t, prog.Body.IsComplex())
	es, ok := prog.Body.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	paren, ok := es.Expr.(*ast.ParenthesizedExpression)
	require.True(t, ok)
	assert.Equal(t, ast.ParenthesizedMultiple, paren.Body.Kind)
	require.Len(t, paren.Body.Statements, 1)
}

func TestParse_BlockExpression(t *testing.T) {
	prog, errs := Parse("{v.x = 1; v.y = 2;};")
	require.Empty(t, errs)
	require.True(t, prog.Body.IsComplex())
	require.Len(t, prog.Body.Statements, 1)
	es, ok := prog.Body.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	blk, ok := es.Expr.(*ast.BlockExpression)
	require.True(t, ok)
	require.Len(t, blk.Statements, 2)
}

func TestParse_UnterminatedStringReportsDiagnostic(t *testing.T) {
	_, errs := Parse("'abc")
	require.Len(t, errs, 1)
}

func TestParse_NumberTrailingFSuffixDoesNotAffectValue(t *testing.T) {
	prog, errs := Parse("1.5f")
	require.Empty(t, errs)
	num, ok := prog.Body.Expr.(*ast.NumericLiteral)
	require.True(t, ok)
	assert.Equal(t, 1.5, num.Value)
}

func TestParse_UnexpectedTokenRecoversAndContinues(t *testing.T) {
	_, errs := Parse("v.x = ; v.y = 1;")
	require.NotEmpty(t, errs)
}

func TestParse_MissingSemicolonInComplexProgramIsReported(t *testing.T) {
	_, errs := Parse("v.x = 1; v.y = 2")
	require.NotEmpty(t, errs)
}
