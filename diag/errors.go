package diag

import (
	"fmt"

	"github.com/akashmaji946/molang/span"
)

// This file collects one constructor per error.Kind in the taxonomy
// (spec.md §7). Message text mirrors the original Rust implementation's
// errors module wherever this spec was distilled from it, so diagnostics
// read the same regardless of which toolchain produced them.

// UnterminatedString reports a `'...` string that ran to EOF.
func UnterminatedString(sp span.Span) Diagnostic {
	return newError(LexicalError, sp, "Unterminated string", "unterminated string")
}

// InvalidNumber reports a numeric literal that failed to parse.
func InvalidNumber(sp span.Span) Diagnostic {
	return newError(InvalidNumber, sp, "Invalid number", "invalid number")
}

// UnexpectedToken reports a token that cannot start a primary expression.
func UnexpectedToken(sp span.Span, found string) Diagnostic {
	return newError(UnexpectedToken, sp, "Unexpected token",
		fmt.Sprintf("unexpected `%s`", found))
}

// ExpectedToken reports a structurally required token that was missing.
func ExpectedToken(sp span.Span, expected, found string) Diagnostic {
	return newError(ExpectedToken, sp,
		fmt.Sprintf("Expected `%s` but found `%s`", expected, found),
		fmt.Sprintf("expected `%s` here", expected))
}

// MissingSemicolon reports a complex program missing a required ';'
// after a top-level statement.
func MissingSemicolon(sp span.Span) Diagnostic {
	return newError(MissingSemicolon, sp,
		"Semicolons are required for complex Molang expressions (contain `=` or `;`)",
		"expected `;` here").
		WithHelp("Try inserting a semicolon here")
}

// MissingSemicolonInBlock reports a missing ';' between statements
// inside a `{}` block or a multi-statement parenthesized expression.
func MissingSemicolonInBlock(sp span.Span) Diagnostic {
	return newError(MissingSemicolon, sp,
		"Expressions inside `{}` must be delimited by `;`",
		"expected `;` here").
		WithHelp("Try inserting a semicolon here")
}

// LoopInExpression reports `loop(...)` used where an expression, not a
// statement, was expected.
func LoopInExpression(sp span.Span) Diagnostic {
	return newError(LoopInExpression, sp,
		"`loop` is only valid as a statement", "loop used as an expression")
}

// IllegalUpdate reports `++`/`--` applied to a non-variable operand.
func IllegalUpdate(sp span.Span) Diagnostic {
	return newError(IllegalUpdate, sp,
		"Update operators can only be applied to variables", "illegal update target")
}

// ForEachFirstArg reports a for_each whose first argument is not a
// variable.* or temp.* expression.
func ForEachFirstArg(sp span.Span) Diagnostic {
	return newError(ForEachFirstArg, sp,
		"`for_each` first argument must be either a `variable.` or a `temp.`",
		"expected a `variable.` or `temp.` expression here")
}

// EmptyParens reports `()` with no content.
func EmptyParens(sp span.Span) Diagnostic {
	return newError(EmptyParens, sp,
		"Empty parenthesized expression", "expected an expression here")
}

// EmptyBlock reports a `{}` block with zero statements.
func EmptyBlock(sp span.Span) Diagnostic {
	return newError(EmptyBlock, sp,
		"Block expressions must contain at least one expression", "this block is empty")
}

// IllegalStringOp reports a binary operator other than == or != applied
// where an operand is a string literal.
func IllegalStringOp(sp span.Span) Diagnostic {
	return newError(IllegalStringOp, sp,
		"Strings only support `==` and `!=` operators", "illegal operator on a string operand")
}

// ContextReadOnly reports an Assignment or Update targeting a
// `context.*` variable.
func ContextReadOnly(sp span.Span) Diagnostic {
	return newError(ContextReadOnly, sp,
		"`context.` variables are read-only", "cannot assign to a `context.` variable").
		WithHelp("Try assigning to `variable.` or `temp.` instead")
}

// BreakContinueOutsideLoop reports `break`/`continue` appearing outside
// a loop or for_each body.
func BreakContinueOutsideLoop(sp span.Span) Diagnostic {
	return newError(BreakContinueOutsideLoop, sp,
		"`break`/`continue` is only supported inside `loop` and `for_each` expressions",
		"not inside a loop")
}
