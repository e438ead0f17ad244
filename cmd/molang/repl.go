package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/molang/molang"
)

var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
)

// Repl holds the display configuration for an interactive session; the
// compile pipeline itself is stateless, so no evaluator/environment is
// threaded through between lines the way the teacher's interpreter REPL
// carries one.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	minify bool
}

// NewRepl creates a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type an expression and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit, '.minify' to toggle minified output.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the read-compile-print loop until '.exit' or EOF.
func (r *Repl) Start(_ io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if line == ".minify" {
			r.minify = !r.minify
			cyanColor.Fprintf(writer, "minify: %v\n", r.minify)
			continue
		}

		rl.SaveHistory(line)
		compileAndPrint(writer, line, r.minify)
	}
}

// compileAndPrint runs the full pipeline over source and writes either
// the rendered output (in yellow, matching the teacher's REPL result
// color) or every diagnostic (in red). It reports whether compilation
// produced output.
func compileAndPrint(writer io.Writer, source string, minify bool) bool {
	result := molang.Compile(source, molang.Options{Minify: minify})
	if len(result.Diagnostics) == 0 {
		yellowColor.Fprintf(writer, "%s\n", result.Output)
		return true
	}
	for _, d := range result.Diagnostics {
		redColor.Fprintf(writer, "%s\n", renderDiagnostic(source, d))
	}
	return false
}
