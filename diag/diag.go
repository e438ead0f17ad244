// Package diag is the diagnostic data model shared by the parser and the
// semantic checker: a plain value type with no attachment to rendering,
// matching the teacher's preference for returning bare values from its
// parsing helpers rather than pulling in an error-framework dependency.
package diag

import "github.com/akashmaji946/molang/span"

// Severity distinguishes a hard error from an advisory warning. Nothing
// in this toolchain currently emits Warning, but the data model carries
// it per the spec's Diagnostic definition.
type Severity uint8

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Kind identifies which rule raised a Diagnostic, independent of its
// rendered message text.
type Kind uint8

const (
	LexicalError Kind = iota
	UnexpectedToken
	ExpectedToken
	InvalidNumber
	MissingSemicolon
	LoopInExpression
	IllegalUpdate
	ForEachFirstArg
	EmptyParens
	EmptyBlock
	IllegalStringOp
	ContextReadOnly
	BreakContinueOutsideLoop
)

// SpanLabel attaches an explanatory message to a specific source range.
type SpanLabel struct {
	Span    span.Span
	Message string
}

// Diagnostic is the value type returned by the parser and the semantic
// checker. It owns no source text; a rendering collaborator combines it
// with the original source to produce human-facing output.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Help     string
	Labels   []SpanLabel
}

// PrimarySpan returns the span of the first label, or span.SPAN if the
// Diagnostic carries no labels. Used to order diagnostics by source
// position.
func (d Diagnostic) PrimarySpan() span.Span {
	if len(d.Labels) == 0 {
		return span.SPAN
	}
	return d.Labels[0].Span
}

// newError builds an Error-severity Diagnostic with a single label
// covering sp.
func newError(kind Kind, sp span.Span, message, label string) Diagnostic {
	return Diagnostic{
		Kind:     kind,
		Severity: Error,
		Message:  message,
		Labels:   []SpanLabel{{Span: sp, Message: label}},
	}
}

// WithHelp returns a copy of d with Help set.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// WithLabel returns a copy of d with an additional label appended.
func (d Diagnostic) WithLabel(sp span.Span, message string) Diagnostic {
	d.Labels = append(append([]SpanLabel{}, d.Labels...), SpanLabel{Span: sp, Message: message})
	return d
}
