package elog

import (
	"regexp"
	"strings"
)

// Header lines are a marker anchored at line start, one colon, and a stage
// with no further colon. The stage restriction keeps failure messages such
// as "ERROR: dev-python/foo-1.0::repo failed (prepare phase):" in the body.
var headerPattern = regexp.MustCompile(`^(ERROR|WARN|LOG|INFO|QA):([^:]*)$`)

type scanState int

const (
	stateIdle scanState = iota
	stateInHeader
	stateInBody
)

// scanContext is the transient state of one parse pass: the current
// section kind and the severity context coloring subsequent body text.
type scanContext struct {
	state  scanState
	active Severity
	doc    Document
}

func (c *scanContext) enterHeader(sev Severity, stage string) {
	c.doc = append(c.doc, Block{Kind: BlockHeader, Severity: sev, Stage: stage})
	c.active = sev
	c.state = stateInHeader
}

func (c *scanContext) appendBody(line Line) {
	if c.state != stateInBody {
		c.doc = append(c.doc, Block{Kind: BlockBody, Severity: c.active})
		c.state = stateInBody
	}
	last := &c.doc[len(c.doc)-1]
	last.Lines = append(last.Lines, line)
}

// Parse scans raw elog lines and groups them into a Document. Blank lines
// are skipped and never switch sections. Every non-blank line lands in
// exactly one block: headers open a new header block, anything else joins
// the current body block, opening one if needed. Parse never fails;
// arbitrary text yields a document with a single Info body block.
func Parse(lines []string) Document {
	ctx := scanContext{active: DefaultSeverity}
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			sev, _ := ParseMarker(m[1])
			ctx.enterHeader(sev, strings.TrimSpace(m[2]))
			continue
		}
		ctx.appendBody(linkify(StripANSI(line)))
	}
	return ctx.doc
}

// RenderHTML is the one-call form of Parse followed by Document.HTML.
func RenderHTML(lines []string) string {
	return Parse(lines).HTML()
}
