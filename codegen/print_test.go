package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/molang/parser"
)

func TestBuild_MinifyCollapsesWhitespaceBetweenStatements(t *testing.T) {
	prog, errs := parser.Parse("false; true;")
	require.Empty(t, errs)
	assert.Equal(t, "false;true;", Build(prog, true))
}

func TestBuild_PrettyKeepsOneStatementPerLine(t *testing.T) {
	prog, errs := parser.Parse("false; true;")
	require.Empty(t, errs)
	assert.Equal(t, "false;\ntrue;\n", Build(prog, false))
}

func TestBuild_MinifyPreservesBinaryPrecedenceParens(t *testing.T) {
	src := "1 == (((2 != 3) < 4 <= 5 > 6) >= -7 + 8 - 9 * 10 / 11 || 12) && !(13 ?? 14)"
	prog, errs := parser.Parse(src)
	require.Empty(t, errs)
	want := "1==(((2!=3)<4<=5>6)>=-7+8-9*10/11||12)&&!(13??14)"
	assert.Equal(t, want, Build(prog, true))
}

func TestBuild_ShortFormLifetimesAndNamespacesUnderMinify(t *testing.T) {
	prog, errs := parser.Parse("t.x = v.y; return c.z;")
	require.Empty(t, errs)
	assert.Equal(t, "t.x=v.y;return c.z;", Build(prog, true))
}

func TestBuild_LongFormLifetimesAndNamespacesWhenPretty(t *testing.T) {
	prog, errs := parser.Parse("t.x = v.y;")
	require.Empty(t, errs)
	assert.Equal(t, "temp.x = variable.y;\n", Build(prog, false))
}

func TestBuild_QueryShortFormIsQButMathHasNoShortForm(t *testing.T) {
	prog, errs := parser.Parse("query.is_on_ground; math.sin(1);")
	require.Empty(t, errs)
	assert.Equal(t, "q.is_on_ground;math.sin(1);", Build(prog, true))
}

func TestBuild_ForEachUsesIndentedScopeWhileLoopUsesPlainParens(t *testing.T) {
	prog, errs := parser.Parse("for_each(v.i, v.items, {v.x = v.i;}); loop(3, {break;});")
	require.Empty(t, errs)
	got := Build(prog, false)
	assert.Contains(t, got, "for_each(\nvariable.i, variable.items, {\n        variable.x = variable.i;\n    });\n")
	assert.Contains(t, got, "loop(3, {\n    break;\n});\n")
}

func TestBuild_StringLiteralIsSingleQuoted(t *testing.T) {
	prog, errs := parser.Parse("'hello'")
	require.Empty(t, errs)
	assert.Equal(t, "'hello'", Build(prog, true))
}

func TestBuild_ArrayAccessAndArrowAccess(t *testing.T) {
	prog, errs := parser.Parse("array.items[v.i]; v.entity->v.x;")
	require.Empty(t, errs)
	assert.Equal(t, "array.items[v.i];v.entity->v.x;", Build(prog, true))
}

func TestBuild_ResourceExpression(t *testing.T) {
	prog, errs := parser.Parse("geometry.foo; material.bar; texture.baz;")
	require.Empty(t, errs)
	assert.Equal(t, "geometry.foo;material.bar;texture.baz;", Build(prog, true))
}
