package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/Synss/elogviewer/internal/elog"
	"github.com/Synss/elogviewer/internal/records"
)

// Styling depends on the terminal the tests run under, so assertions
// target content, not escape sequences.

func TestRenderDocumentContent(t *testing.T) {
	doc := elog.Parse([]string{
		"WARN: postinst",
		"check your config",
		"see https://wiki.gentoo.org/wiki/Udev",
	})
	out := RenderDocument(doc, GetTheme("Portage").Styles())

	for _, want := range []string{
		"Warning: postinst",
		"check your config",
		"https://wiki.gentoo.org/wiki/Udev",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderDocument() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDocumentHyperlinksSpans(t *testing.T) {
	doc := elog.Parse([]string{"report at bug #42"})
	out := RenderDocument(doc, GetTheme("Portage").Styles())

	// OSC 8 hyperlink escape carrying the bug tracker URL.
	if !strings.Contains(out, "https://bugs.gentoo.org/42") {
		t.Errorf("RenderDocument() missing bug link:\n%q", out)
	}
	if !strings.Contains(out, "]8;;") {
		t.Errorf("RenderDocument() missing OSC 8 hyperlink escape:\n%q", out)
	}
}

func TestRenderDocumentOneLinePerInputLine(t *testing.T) {
	doc := elog.Parse([]string{"INFO: setup", "one", "two", "three"})
	out := RenderDocument(doc, GetTheme("Portage").Styles())
	// Header line, three body lines, one block separator.
	if got := strings.Count(out, "\n"); got != 5 {
		t.Errorf("RenderDocument() has %d newlines, want 5:\n%q", got, out)
	}
}

func TestRenderTitle(t *testing.T) {
	rec := records.Record{Category: "app-misc", Package: "screen"}
	out := RenderTitle(rec, GetTheme("Portage").Styles())
	if !strings.Contains(out, "app-misc/screen") {
		t.Errorf("RenderTitle() = %q, want it to contain the atom", out)
	}
}

func TestRenderList(t *testing.T) {
	recs := []records.Record{
		{
			Filename: "/elog/app-misc:screen:20240105-221530.log",
			Category: "app-misc",
			Package:  "screen",
			Date:     time.Date(2024, 1, 5, 22, 15, 30, 0, time.Local),
			Severity: elog.SeverityWarning,
		},
		{
			Filename: "/elog/dev-lang:python:20240101-000000.log.gz",
			Category: "dev-lang",
			Package:  "python",
			Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
			Severity: elog.SeverityInfo,
		},
	}
	out := RenderList(recs, GetTheme("Portage").Styles())

	for _, want := range []string{
		"app-misc/screen",
		"dev-lang/python",
		"Warning",
		"Info",
		"2024-01-05 22:15:30",
		"app-misc:screen:20240105-221530.log",
		"2 elogs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderList() missing %q:\n%s", want, out)
		}
	}
}

func TestRenderListSingular(t *testing.T) {
	recs := []records.Record{{
		Filename: "/elog/app-misc:screen:20240105-221530.log",
		Category: "app-misc",
		Package:  "screen",
		Date:     time.Date(2024, 1, 5, 22, 15, 30, 0, time.Local),
	}}
	out := RenderList(recs, GetTheme("Portage").Styles())
	if !strings.Contains(out, "1 elog") || strings.Contains(out, "elogs") {
		t.Errorf("RenderList() = %q, want singular count", out)
	}
}

func TestRenderListEmpty(t *testing.T) {
	out := RenderList(nil, GetTheme("Portage").Styles())
	if !strings.Contains(out, "0 elogs") {
		t.Errorf("RenderList() = %q, want zero count", out)
	}
}
