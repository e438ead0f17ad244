package parser

import (
	"github.com/akashmaji946/molang/ast"
	"github.com/akashmaji946/molang/token"
)

// tokenToBinaryOp maps an infix operator token to its ast.BinaryOperator.
// Callers must have already checked token.Kind.IsBinaryOperator().
func tokenToBinaryOp(k token.Kind) ast.BinaryOperator {
	switch k {
	case token.EqEq:
		return ast.Eq
	case token.BangEq:
		return ast.NotEq
	case token.Lt:
		return ast.Lt
	case token.LtEq:
		return ast.LtEq
	case token.Gt:
		return ast.Gt
	case token.GtEq:
		return ast.GtEq
	case token.Plus:
		return ast.Add
	case token.Minus:
		return ast.Sub
	case token.Star:
		return ast.Mul
	case token.Slash:
		return ast.Div
	case token.Percent:
		return ast.Mod
	case token.StarStar:
		return ast.Pow
	case token.Shl:
		return ast.Shl
	case token.Shr:
		return ast.Shr
	case token.Pipe:
		return ast.BitOr
	case token.Amp:
		return ast.BitAnd
	case token.Caret:
		return ast.BitXor
	case token.PipePipe:
		return ast.Or
	case token.AmpAmp:
		return ast.And
	case token.QuestionQuestion:
		return ast.Coalesce
	default:
		return ast.Eq
	}
}

// tokenToAssignOp maps an assignment operator token to its ast.AssignOp.
// Callers must have already checked token.Kind.IsAssignmentOperator().
func tokenToAssignOp(k token.Kind) ast.AssignOp {
	switch k {
	case token.Eq:
		return ast.Assign
	case token.PlusEq:
		return ast.AddAssign
	case token.MinusEq:
		return ast.SubAssign
	case token.StarEq:
		return ast.MulAssign
	case token.SlashEq:
		return ast.DivAssign
	case token.StarStarEq:
		return ast.PowAssign
	case token.PercentEq:
		return ast.ModAssign
	case token.PipePipeEq:
		return ast.OrAssign
	case token.AmpAmpEq:
		return ast.AndAssign
	case token.ShlEq:
		return ast.ShlAssign
	case token.ShrEq:
		return ast.ShrAssign
	case token.PipeEq:
		return ast.BitOrAssign
	case token.AmpEq:
		return ast.BitAndAssign
	case token.CaretEq:
		return ast.BitXorAssign
	default:
		return ast.Assign
	}
}

// lifetimeKindToLifetime maps a lifetime keyword token to its
// ast.VariableLifetime. Callers must have already checked
// token.Kind.IsVariableLifetime().
func lifetimeKindToLifetime(k token.Kind) ast.VariableLifetime {
	switch k {
	case token.KwTemporary:
		return ast.Temporary
	case token.KwContext:
		return ast.Context
	default:
		return ast.Variable
	}
}
