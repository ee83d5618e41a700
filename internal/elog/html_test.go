package elog

import (
	"strings"
	"testing"
)

func TestRenderHTMLDocumentShape(t *testing.T) {
	out := RenderHTML([]string{
		"WARN: postinst",
		"check your config",
		"see bug #42",
	})

	wants := []string{
		`<h3 style="color: #E56717">Warning: postinst</h3>`,
		`<p style="color: #E56717">`,
		"check your config <br />",
		`<a href="https://bugs.gentoo.org/42">bug #42</a>`,
		"</p>",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("RenderHTML() output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestRenderHTMLEscapesMarkup(t *testing.T) {
	out := RenderHTML([]string{"INFO: setup", `run <make> with "care" & patience`})
	if strings.Contains(out, "<make>") {
		t.Errorf("RenderHTML() did not escape body markup:\n%s", out)
	}
	for _, want := range []string{"&lt;make&gt;", "&amp; patience"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderHTML() output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHTMLSelfLinkedURL(t *testing.T) {
	out := RenderHTML([]string{"visit http://example.com/x today"})
	want := `<a href="http://example.com/x">http://example.com/x</a>`
	if !strings.Contains(out, want) {
		t.Errorf("RenderHTML() output missing %q:\n%s", want, out)
	}
}

func TestRenderHTMLBalancedOnUnterminatedInput(t *testing.T) {
	// A trailing header with no body must still close cleanly.
	out := RenderHTML([]string{"some body", "ERROR: compile"})
	if strings.Count(out, "<p") != strings.Count(out, "</p>") {
		t.Errorf("unbalanced paragraphs:\n%s", out)
	}
	if strings.Count(out, "<h3") != strings.Count(out, "</h3>") {
		t.Errorf("unbalanced headers:\n%s", out)
	}
}

func TestRenderHTMLEmptyInput(t *testing.T) {
	if out := RenderHTML(nil); out != "" {
		t.Errorf("RenderHTML(nil) = %q, want empty", out)
	}
}
