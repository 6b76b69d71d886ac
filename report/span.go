package report

// TextSpan represents a range or "span" of source text.  It is used to mark
// erroneous or otherwise significant source text in a SubC program.  Text
// spans are inclusive on the start and exclusive on the end column: the
// starting position is the first character in the span and the ending column
// is one past the last character.  Line and column numbers are zero-indexed.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// Line returns the one-indexed line number the span starts on.  This is the
// line reported to the user for diagnostics.
func (span *TextSpan) Line() int {
	if span == nil {
		return 0
	}

	return span.StartLine + 1
}
