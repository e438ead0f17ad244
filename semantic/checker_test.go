package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/molang/diag"
	"github.com/akashmaji946/molang/parser"
)

func check(t *testing.T, src string) []diag.Diagnostic {
	t.Helper()
	prog, parseErrs := parser.Parse(src)
	require.Empty(t, parseErrs)
	return Check(prog)
}

func TestCheck_CleanProgramHasNoDiagnostics(t *testing.T) {
	diags := check(t, "loop(10, {v.x = 1;});")
	assert.Empty(t, diags)
}

func TestCheck_BareBreakOutsideLoopIsError(t *testing.T) {
	diags := check(t, "break;")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.BreakContinueOutsideLoop, diags[0].Kind)
	assert.Equal(t, diag.Error, diags[0].Severity)
}

func TestCheck_BareContinueOutsideLoopIsError(t *testing.T) {
	diags := check(t, "continue;")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.BreakContinueOutsideLoop, diags[0].Kind)
}

func TestCheck_BreakInsideLoopIsFine(t *testing.T) {
	diags := check(t, "loop(10, {break;});")
	assert.Empty(t, diags)
}

func TestCheck_ContinueInsideForEachIsFine(t *testing.T) {
	diags := check(t, "for_each(v.i, v.items, { continue; });")
	assert.Empty(t, diags)
}

func TestCheck_BreakAfterLoopExitsIsError(t *testing.T) {
	diags := check(t, "loop(10, {v.x = 1;}); break;")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.BreakContinueOutsideLoop, diags[0].Kind)
}

func TestCheck_EmptyLoopBodyIsError(t *testing.T) {
	diags := check(t, "loop(10, {});")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.EmptyBlock, diags[0].Kind)
}

func TestCheck_EmptyForEachBodyIsError(t *testing.T) {
	diags := check(t, "for_each(v.i, v.items, {});")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.EmptyBlock, diags[0].Kind)
}

func TestCheck_EmptyBlockExpressionIsError(t *testing.T) {
	diags := check(t, "v.x = {};")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.EmptyBlock, diags[0].Kind)
}

func TestCheck_AssignToContextIsError(t *testing.T) {
	diags := check(t, "c.x = 1;")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.ContextReadOnly, diags[0].Kind)
}

func TestCheck_UpdateContextIsError(t *testing.T) {
	diags := check(t, "c.x++;")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.ContextReadOnly, diags[0].Kind)
}

func TestCheck_AssignToVariableIsFine(t *testing.T) {
	diags := check(t, "v.x = 1;")
	assert.Empty(t, diags)
}

func TestCheck_StringEqualityIsFine(t *testing.T) {
	diags := check(t, "v.x = 'a' == 'b';")
	assert.Empty(t, diags)
}

func TestCheck_StringInequalityIsFine(t *testing.T) {
	diags := check(t, "v.x = 'a' != 'b';")
	assert.Empty(t, diags)
}

func TestCheck_StringArithmeticIsError(t *testing.T) {
	diags := check(t, "v.x = 'a' + 'b';")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.IllegalStringOp, diags[0].Kind)
}

func TestCheck_StringComparisonIsError(t *testing.T) {
	diags := check(t, "v.x = 'a' < 'b';")
	require.Len(t, diags, 1)
	assert.Equal(t, diag.IllegalStringOp, diags[0].Kind)
}

func TestCheck_DiagnosticsOrderedBySourcePosition(t *testing.T) {
	diags := check(t, "break; continue;")
	require.Len(t, diags, 2)
	assert.Equal(t, diag.BreakContinueOutsideLoop, diags[0].Kind)
	assert.Equal(t, diag.BreakContinueOutsideLoop, diags[1].Kind)
	assert.Less(t, diags[0].Labels[0].Span.Start, diags[1].Labels[0].Span.Start)
}
