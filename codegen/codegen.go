// Package codegen prints a Molang AST back to source text, in either a
// formatted (indented, one statement per line) or minified (whitespace-
// stripped, short-form lifetimes/namespaces) rendering. It is grounded
// on the teacher's main/print_visitor.go (a visitor accumulating into a
// growable string buffer, an Indent counter, an indent() helper) and
// generalized to the minify-aware printer in
// original_source/src/codegen.rs.
package codegen

import "strings"

// Options controls how Generate renders a Program.
type Options struct {
	// Minify strips whitespace/newlines/indentation and uses short-form
	// lifetimes ("v"/"t"/"c") and call kinds ("q"; math has no short
	// form). The zero value is Minify: false (pretty-printed).
	Minify bool
}

// Codegen is a single-use printer: Generate (and Build, which wraps it)
// constructs a fresh one with New for every program it prints.
type Codegen struct {
	options    Options
	buf        strings.Builder
	isComplex  bool
	indentSize int
}

// New creates a Codegen with the given Options.
func New(options Options) *Codegen {
	return &Codegen{options: options}
}

func (c *Codegen) indent() {
	c.indentSize++
}

func (c *Codegen) dedent() {
	c.indentSize--
}

func (c *Codegen) printIndent() {
	if !c.options.Minify && c.isComplex {
		for i := 0; i < c.indentSize; i++ {
			c.buf.WriteString("    ")
		}
	}
}

func (c *Codegen) printStr(s string) {
	c.buf.WriteString(s)
}

func (c *Codegen) printByte(b byte) {
	c.buf.WriteByte(b)
}

func (c *Codegen) printNewline() {
	if !c.options.Minify {
		c.buf.WriteByte('\n')
	}
}

func (c *Codegen) printSpace() {
	if !c.options.Minify {
		c.buf.WriteByte(' ')
	}
}

func (c *Codegen) printDot() { c.buf.WriteByte('.') }

func (c *Codegen) printComma() { c.buf.WriteByte(',') }

func (c *Codegen) printColon() { c.buf.WriteByte(':') }

func (c *Codegen) printSemi() { c.buf.WriteByte(';') }

// printWrapped prints open, runs f, then prints close, with no
// surrounding whitespace (used for call argument lists and the Single
// parenthesized form).
func (c *Codegen) printWrapped(open, close byte, f func()) {
	c.printByte(open)
	f()
	c.printByte(close)
}

// printScope prints open, a newline, indents, runs f, dedents, and
// prints a final indent before close (used for blocks, the Multiple
// parenthesized form, and for_each's argument list).
func (c *Codegen) printScope(open, close byte, f func()) {
	c.printWrapped(open, close, func() {
		c.printNewline()
		c.indent()
		f()
		c.dedent()
		c.printIndent()
	})
}
