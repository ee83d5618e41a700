package elog

import "regexp"

// Markers only count when anchored at the start of a line, so body text
// quoting "ERROR:" mid-sentence does not raise the classification.
var classifyPattern = regexp.MustCompile(`(?m)^(ERROR|WARN|LOG|INFO|QA):`)

// Classify returns the highest severity whose marker appears at a section
// header position in body. Bodies without any marker classify as
// DefaultSeverity. Classify never fails and holds no state; the same text
// always yields the same severity.
func Classify(body string) Severity {
	highest := DefaultSeverity
	found := false
	for _, match := range classifyPattern.FindAllStringSubmatch(body, -1) {
		sev, ok := ParseMarker(match[1])
		if !ok {
			continue
		}
		if !found || sev > highest {
			highest = sev
			found = true
		}
	}
	return highest
}
