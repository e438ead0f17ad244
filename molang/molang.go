// Package molang is the front door to the toolchain: it re-exports the
// five pipeline stages -- lexing (internal to parser), parsing, semantic
// checking, lowering transformation, and code generation -- as a handful
// of top-level functions, and wires all four into one Compile call. It
// plays the same role the teacher's main package does in tying its own
// parser and evaluator together, minus the evaluation step spec.md
// scopes out.
package molang

import (
	"github.com/akashmaji946/molang/ast"
	"github.com/akashmaji946/molang/codegen"
	"github.com/akashmaji946/molang/diag"
	"github.com/akashmaji946/molang/parser"
	"github.com/akashmaji946/molang/semantic"
	"github.com/akashmaji946/molang/transform"
)

// Options controls how Compile renders its output. It is an alias for
// codegen.Options so callers need not import the codegen package for
// the common case.
type Options = codegen.Options

// Parse lexes and parses source, returning the resulting program and any
// syntax diagnostics. The returned program is usable even when errs is
// non-empty: the parser recovers past unexpected tokens so later
// statements still parse.
func Parse(source string) (*ast.Program, []diag.Diagnostic) {
	return parser.Parse(source)
}

// Check runs the semantic checker over an already-parsed program and
// returns any diagnostics it finds (illegal context writes, break/continue
// outside a loop, empty loop bodies, string comparison misuse). It does
// not mutate program.
func Check(program *ast.Program) []diag.Diagnostic {
	return semantic.Check(program)
}

// Transform lowers program in place: compound assignment, update
// expressions, and the extended binary operators (%, **, <<, >>, |, &, ^)
// are rewritten into the minimal subset Generate understands.
func Transform(program *ast.Program) {
	transform.Transform(program)
}

// Generate renders program to source text per options.
func Generate(program *ast.Program, options Options) string {
	return codegen.Generate(program, options)
}

// Result is what Compile returns: the final program (parsed and, when no
// blocking diagnostics were found, transformed), the rendered output, and
// every diagnostic collected along the way.
type Result struct {
	Program     *ast.Program
	Output      string
	Diagnostics []diag.Diagnostic
}

// Compile runs the full pipeline: parse, check, and -- only if neither
// stage reported an Error-severity diagnostic -- transform and generate.
// Warnings never block transformation; a parse or check Error does, since
// transforming a malformed or semantically invalid tree has no well-defined
// behavior. Result.Output is empty when compilation was blocked.
func Compile(source string, options Options) Result {
	program, parseErrs := parser.Parse(source)
	diags := append([]diag.Diagnostic{}, parseErrs...)
	diags = append(diags, semantic.Check(program)...)

	if hasError(diags) {
		return Result{Program: program, Diagnostics: diags}
	}

	transform.Transform(program)
	return Result{
		Program:     program,
		Output:      codegen.Generate(program, options),
		Diagnostics: diags,
	}
}

func hasError(diags []diag.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == diag.Error {
			return true
		}
	}
	return false
}
