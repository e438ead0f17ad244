package main

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/molang/diag"
)

// renderDiagnostic formats a Diagnostic against its source for terminal
// display: severity and message on the first line, then one indented
// line per label pointing at the byte range it covers, then help text
// if any. It owns no color of its own -- the caller wraps the whole
// thing in redColor, matching how the teacher's REPL colors its error
// output at the call site rather than inside the error type.
func renderDiagnostic(source string, d diag.Diagnostic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.Severity, d.Message)
	for _, label := range d.Labels {
		fmt.Fprintf(&b, "\n  --> %s: %s", label.Span, label.Message)
		if label.Span.Len() > 0 && int(label.Span.End) <= len(source) {
			fmt.Fprintf(&b, " (%q)", label.Span.Slice(source))
		}
	}
	if d.Help != "" {
		fmt.Fprintf(&b, "\n  help: %s", d.Help)
	}
	return b.String()
}
