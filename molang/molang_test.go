package molang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_FullPipelineLowersAndRenders(t *testing.T) {
	result := Compile("v.x **= v.y;", Options{})
	require.Empty(t, result.Diagnostics)
	assert.Equal(t, "variable.x = math.pow(variable.x ?? 0, variable.y);\n", result.Output)
}

func TestCompile_ParseErrorBlocksTransformAndGenerate(t *testing.T) {
	result := Compile("v.x = ;", Options{})
	require.NotEmpty(t, result.Diagnostics)
	assert.Empty(t, result.Output)
}

func TestCompile_SemanticErrorBlocksTransformAndGenerate(t *testing.T) {
	result := Compile("break;", Options{})
	require.NotEmpty(t, result.Diagnostics)
	assert.Empty(t, result.Output)
}

func TestCompile_MinifyOption(t *testing.T) {
	result := Compile("false; true;", Options{Minify: true})
	require.Empty(t, result.Diagnostics)
	assert.Equal(t, "false;true;", result.Output)
}
