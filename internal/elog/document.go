package elog

// BlockKind distinguishes the two section kinds of a parsed document.
type BlockKind int

const (
	BlockHeader BlockKind = iota
	BlockBody
)

// Span is a run of text, optionally hyperlinked. A span with an empty URL
// is plain text.
type Span struct {
	Text string
	URL  string
}

// Line is one physical body line split into plain and linked spans.
type Line []Span

// Block is one section of a parsed elog. Header blocks carry the stage
// text and no lines; body blocks carry lines and the severity context that
// colors them.
type Block struct {
	Kind     BlockKind
	Severity Severity
	Stage    string
	Lines    []Line
}

// Document is the parsed form of one elog, in input order. Writers emit
// one delimited section per block, so open and close delimiters always
// balance.
type Document []Block

// Plain reconstructs the unstyled text of a line.
func (l Line) Plain() string {
	var out string
	for _, span := range l {
		out += span.Text
	}
	return out
}

// Severity returns the highest severity among the document's header
// blocks, or DefaultSeverity when it has none. For documents built by
// Parse this agrees with Classify on the source text.
func (d Document) Severity() Severity {
	highest := DefaultSeverity
	found := false
	for _, block := range d {
		if block.Kind != BlockHeader {
			continue
		}
		if !found || block.Severity > highest {
			highest = block.Severity
			found = true
		}
	}
	return highest
}
