// Package ui renders parsed elogs and record listings as styled terminal
// text. It is a pure formatting layer: callers pass parsed documents and
// records in, styled strings come out, and hyperlinks use OSC 8 escapes
// that capable terminals make clickable.
package ui
