// Command molang is a small interactive driver for the toolchain: given
// no arguments it starts a REPL, given a file path it compiles that file
// once and prints the result. It is not a full CLI -- spec.md leaves
// tooling like a batch compiler or language server to an external
// collaborator -- just enough of a harness to drive the pipeline by
// hand, in the spirit of the teacher's own main package.
package main

import (
	"os"

	"github.com/fatih/color"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

const (
	version = "v0.1.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	prompt  = "molang >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
   __  __       _
  |  \/  | ___ | | __ _ _ __   __ _
  | |\/| |/ _ \| |/ _' | '_ \ / _' |
  | |  | | (_) | | (_| | | | | (_| |
  |_|  |_|\___/|_|\__,_|_| |_|\__, |
                               |___/
`

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		default:
			runFile(arg)
			return
		}
	}

	repler := NewRepl(banner, version, author, line, license, prompt)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Molang - An Expression Language Compiler")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  molang                    Start interactive REPL mode")
	yellowColor.Println("  molang <path-to-file>     Compile and print a .molang file")
	yellowColor.Println("  molang --help             Display this help message")
	yellowColor.Println("  molang --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
	yellowColor.Println("  .minify                   Toggle minified output")
}

func showVersion() {
	cyanColor.Println("Molang - An Expression Language Compiler")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
	cyanColor.Printf("Author : %s\n", author)
}

// runFile compiles a single file and prints either its formatted output
// or its diagnostics.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}
	if !compileAndPrint(os.Stdout, string(source), false) {
		os.Exit(1)
	}
}
