package elog

import (
	"regexp"
	"strings"
)

const (
	bugTrackerURL   = "https://bugs.gentoo.org/"
	packageIndexURL = "http://packages.gentoo.org/package/"
)

var (
	ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

	urlPattern = regexp.MustCompile(`(?:https?|ftp)://\S+`)
	bugPattern = regexp.MustCompile(`(?i)\bbug\s+#([0-9]+)`)
	// Package atoms: hyphenated category, package name, optional version
	// suffix that must end alphanumeric so sentence punctuation stays out.
	atomPattern    = regexp.MustCompile(`\b[a-z0-9]+(?:-[a-z0-9]+)+/[a-zA-Z0-9_+-]+(?:\.[0-9](?:[0-9a-zA-Z._-]*[0-9a-zA-Z])?)?`)
	versionPattern = regexp.MustCompile(`-[0-9].*$`)
)

// StripANSI removes ANSI SGR escape sequences. Stripping is idempotent.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// linkify splits a sanitized body line into spans, hyperlinking bare URLs,
// "bug #NNNN" references, and package atoms, in that order. Earlier
// substitutions win: a URL that happens to contain an atom-shaped path
// stays a single self-link.
func linkify(line string) Line {
	spans := Line{{Text: line}}
	spans = applyPattern(spans, urlPattern, func(match string) string {
		return match
	})
	spans = applyPattern(spans, bugPattern, bugURL)
	spans = applyPattern(spans, atomPattern, atomURL)
	return spans
}

// applyPattern rewrites the plain spans of a line, hyperlinking every
// match of re to the target it derives. Already-linked spans pass through
// untouched.
func applyPattern(spans Line, re *regexp.Regexp, target func(match string) string) Line {
	out := make(Line, 0, len(spans))
	for _, span := range spans {
		if span.URL != "" {
			out = append(out, span)
			continue
		}
		last := 0
		for _, loc := range re.FindAllStringIndex(span.Text, -1) {
			if loc[0] > last {
				out = append(out, Span{Text: span.Text[last:loc[0]]})
			}
			match := span.Text[loc[0]:loc[1]]
			out = append(out, Span{Text: match, URL: target(match)})
			last = loc[1]
		}
		if last < len(span.Text) {
			out = append(out, Span{Text: span.Text[last:]})
		}
	}
	return out
}

func bugURL(match string) string {
	id := bugPattern.FindStringSubmatch(match)[1]
	return bugTrackerURL + id
}

// atomURL keys the package index by category/name, dropping the version:
// dev-lang/python-3.11 links to .../package/dev-lang/python.
func atomURL(match string) string {
	category, name, _ := strings.Cut(match, "/")
	name = versionPattern.ReplaceAllString(name, "")
	return packageIndexURL + category + "/" + name
}
