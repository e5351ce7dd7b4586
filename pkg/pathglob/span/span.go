package span

// Span marks a byte range in the input line that produced a value. It is
// carried through resolution so errors can point back at the exact piece of
// input that caused them.
type Span struct {
	Start int
	End   int
}

func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// Unknown is the zero span, used when no source location is available.
var Unknown = Span{}

// Spanned is user-supplied text tagged with where it came from.
type Spanned struct {
	Text string
	Span Span
}

func NewSpanned(text string, sp Span) Spanned {
	return Spanned{Text: text, Span: sp}
}
