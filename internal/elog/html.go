package elog

import (
	"fmt"
	"html"
	"strings"
)

// HTML writes the document as a styled fragment: an <h3> per header, a
// colored <p> per body block, <br /> line breaks, and <a href> links.
// Every opened element is closed, whatever the input.
func (d Document) HTML() string {
	var b strings.Builder
	for _, block := range d {
		switch block.Kind {
		case BlockHeader:
			fmt.Fprintf(&b, "<h3 style=\"color: %s\">%s: %s</h3>\n",
				block.Severity.Color(), block.Severity, html.EscapeString(block.Stage))
		case BlockBody:
			fmt.Fprintf(&b, "<p style=\"color: %s\">\n", block.Severity.Color())
			for _, line := range block.Lines {
				writeHTMLLine(&b, line)
			}
			b.WriteString("</p>\n")
		}
	}
	return b.String()
}

func writeHTMLLine(b *strings.Builder, line Line) {
	for _, span := range line {
		if span.URL != "" {
			fmt.Fprintf(b, "<a href=\"%s\">%s</a>",
				html.EscapeString(span.URL), html.EscapeString(span.Text))
			continue
		}
		b.WriteString(html.EscapeString(span.Text))
	}
	b.WriteString(" <br />\n")
}
