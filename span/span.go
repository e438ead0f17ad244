// Package span provides the byte-offset source location type shared by
// every stage of the Molang toolchain.
package span

import "fmt"

// Span is a half-open byte range [Start, End) into a source buffer.
type Span struct {
	Start uint32
	End   uint32
}

// New creates a Span. It does not validate Start <= End; callers that need
// that invariant checked should do so at the boundary (see the parser's
// span helpers).
func New(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// SPAN is the zero-value span used to mark nodes synthesized by the
// transformer rather than parsed from source text.
var SPAN = Span{}

// Len returns the number of bytes the span covers.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Slice returns the substring of src covered by s.
func (s Span) Slice(src string) string {
	return src[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
