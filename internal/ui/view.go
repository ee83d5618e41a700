package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Synss/elogviewer/internal/elog"
	"github.com/Synss/elogviewer/internal/records"
)

// RenderTitle formats the category/package heading shown above a
// document.
func RenderTitle(rec records.Record, styles Styles) string {
	return styles.Title.Render(rec.Atom()) + "\n\n"
}

// RenderDocument writes a parsed elog as styled terminal text. Header
// blocks render bold in their severity color; body blocks render in the
// severity color of their section, one physical line per input line with
// hyperlinked spans wrapped in OSC 8 escapes.
func RenderDocument(doc elog.Document, styles Styles) string {
	var b strings.Builder
	for _, block := range doc {
		switch block.Kind {
		case elog.BlockHeader:
			header := fmt.Sprintf("%s: %s", block.Severity, block.Stage)
			b.WriteString(styles.SeverityHeader(block.Severity).Render(header))
			b.WriteString("\n")
		case elog.BlockBody:
			style := styles.SeverityText(block.Severity)
			for _, line := range block.Lines {
				b.WriteString(renderLine(line, style))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderLine(line elog.Line, style lipgloss.Style) string {
	var b strings.Builder
	for _, span := range line {
		text := style.Render(span.Text)
		if span.URL != "" {
			text = termenv.Hyperlink(span.URL, text)
		}
		b.WriteString(text)
	}
	return b.String()
}
