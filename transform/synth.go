package transform

import (
	"fmt"

	"github.com/akashmaji946/molang/ast"
)

// This file collects the expression/statement builders the lowering
// passes above splice into the tree: the four math.* call wrappers for
// %, **, <<, >>, and the bit-by-bit loop synthesized for |, &, ^.

func mathMod(left, right ast.Expression) ast.Expression {
	return ast.NewMathCall("mod", left, right)
}

func mathPow(left, right ast.Expression) ast.Expression {
	return ast.NewMathCall("pow", left, right)
}

func mathFloor(x ast.Expression) ast.Expression {
	return ast.NewMathCall("floor", x)
}

func mathMin(left, right ast.Expression) ast.Expression {
	return ast.NewMathCall("min", left, right)
}

// shiftLeft lowers `l << r` to `l * math.pow(2, r)`.
func shiftLeft(left, right ast.Expression) ast.Expression {
	return ast.NewBinary(left, ast.Mul, mathPow(ast.NewNumericLiteralValue(2), right))
}

// shiftRight lowers `l >> r` to `math.floor(l / math.pow(2, r))`.
func shiftRight(left, right ast.Expression) ast.Expression {
	return mathFloor(ast.NewBinary(left, ast.Div, mathPow(ast.NewNumericLiteralValue(2), right)))
}

// synthesizeBitwise builds the 24-iteration bit-by-bit loop that
// computes `left op right` for op in {|, &, ^}, namespaced under a
// unique `__<index>_*` set of synthetic variables. It returns the
// synthesized statements -- flat siblings to be spliced into the
// enclosing statement list in order, not wrapped in a nested block -- and
// the expression that should replace the original binary/compound-
// assignment expression: a read of the `__<index>_result` variable.
func synthesizeBitwise(left, right ast.Expression, op ast.BinaryOperator, index int) ([]ast.Statement, ast.Expression) {
	resultVar := syntheticVar(index, "result")
	bitVar := syntheticVar(index, "bit")
	leftBitVar := syntheticVar(index, "left_bit")
	rightBitVar := syntheticVar(index, "right_bit")

	extractBit := func(input ast.Expression) ast.Expression {
		return mathMod(
			mathFloor(ast.NewBinary(input, ast.Div, mathPow(ast.NewNumericLiteralValue(2), bitVar))),
			ast.NewNumericLiteralValue(2))
	}

	var opBitVar *ast.VariableExpression
	var opExpr ast.Expression
	switch op {
	case ast.BitOr:
		opBitVar = syntheticVar(index, "or_bit")
		opExpr = mathMin(ast.NewNumericLiteralValue(1), ast.NewBinary(leftBitVar, ast.Add, rightBitVar))
	case ast.BitAnd:
		opBitVar = syntheticVar(index, "and_bit")
		opExpr = ast.NewBinary(leftBitVar, ast.Mul, rightBitVar)
	case ast.BitXor:
		opBitVar = syntheticVar(index, "xor_bit")
		opExpr = mathMod(ast.NewBinary(leftBitVar, ast.Add, rightBitVar), ast.NewNumericLiteralValue(2))
	default:
		panic("transform: synthesizeBitwise called with a non-bitwise operator")
	}

	loopStatements := []ast.Statement{
		ast.NewAssignment(leftBitVar, extractBit(left)),
		ast.NewAssignment(rightBitVar, extractBit(right)),
		ast.NewAssignment(opBitVar, opExpr),
		ast.NewAssignment(resultVar, ast.NewBinary(resultVar, ast.Add,
			ast.NewBinary(opBitVar, ast.Mul, mathPow(ast.NewNumericLiteralValue(2), bitVar)))),
		ast.NewAssignment(bitVar, ast.NewBinary(bitVar, ast.Add, ast.NewNumericLiteralValue(1))),
	}
	blockStatements := []ast.Statement{
		ast.NewAssignment(resultVar, ast.NewNumericLiteralValue(0)),
		ast.NewAssignment(bitVar, ast.NewNumericLiteralValue(0)),
		ast.NewLoop(ast.NewNumericLiteralValue(24), ast.NewBlock(loopStatements)),
	}

	return blockStatements, resultVar
}

func syntheticVar(index int, suffix string) *ast.VariableExpression {
	return ast.NewSyntheticVariable(fmt.Sprintf("__%d_%s", index, suffix))
}
