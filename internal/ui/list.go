package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Synss/elogviewer/internal/records"
)

const (
	severityWidth = 8
	dateWidth     = 19
)

// RenderList writes one line per record in the order given, with a column
// header and a count footer. Severity names render in their severity
// color; styling is applied after padding so columns line up.
func RenderList(recs []records.Record, styles Styles) string {
	var b strings.Builder

	atomWidth := len("Package")
	for _, rec := range recs {
		if w := len(rec.Atom()); w > atomWidth {
			atomWidth = w
		}
	}

	b.WriteString(styles.Muted.Render(fmt.Sprintf("%-*s %-*s %-*s %s",
		severityWidth, "Class", atomWidth, "Package", dateWidth, "Date", "File")))
	b.WriteString("\n")

	for _, rec := range recs {
		severity := styles.SeverityText(rec.Severity).
			Render(fmt.Sprintf("%-*s", severityWidth, rec.Severity))
		atom := styles.Text.Render(fmt.Sprintf("%-*s", atomWidth, rec.Atom()))
		date := styles.Text.Render(fmt.Sprintf("%-*s", dateWidth, rec.SortTime()))
		file := styles.Muted.Render(filepath.Base(rec.Filename))
		fmt.Fprintf(&b, "%s %s %s %s\n", severity, atom, date, file)
	}

	label := "elogs"
	if len(recs) == 1 {
		label = "elog"
	}
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%d %s", len(recs), label)))
	b.WriteString("\n")
	return b.String()
}
