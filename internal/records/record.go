// Package records builds the viewer's model of an elog directory: one
// Record per file, identified by the filename and classified by content.
package records

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Synss/elogviewer/internal/elog"
)

const timestampLayout = "20060102-150405"

// Record identifies one elog entry. Category, package, and date come from
// the filename; Severity comes from scanning the contents. Read and
// Important are display flags owned by whoever holds the record, never by
// the parsing core.
type Record struct {
	Filename string
	Category string
	Package  string
	Date     time.Time
	Severity elog.Severity

	Read      bool
	Important bool
}

// FromFilename parses category, package, and timestamp out of an elog
// path. Both Portage layouts are accepted:
//
//	category:package:20060102-150405.log[.gz|.bz2]
//	category/package:20060102-150405.log[.gz|.bz2]
//
// The severity field is left at its zero value; Scan fills it in.
func FromFilename(path string) (Record, error) {
	base := filepath.Base(path)
	parts := strings.Split(base, ":")

	var category, pkg, rest string
	switch len(parts) {
	case 3:
		category, pkg, rest = parts[0], parts[1], parts[2]
	case 2:
		category = filepath.Base(filepath.Dir(path))
		pkg, rest = parts[0], parts[1]
	default:
		return Record{}, fmt.Errorf("%s: not an elog filename", base)
	}

	stamp, _, _ := strings.Cut(rest, ".")
	date, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
	if err != nil {
		return Record{}, fmt.Errorf("%s: parse timestamp: %w", base, err)
	}

	return Record{
		Filename: path,
		Category: category,
		Package:  pkg,
		Date:     date,
	}, nil
}

// Atom returns the category/package form used for display.
func (r Record) Atom() string {
	return r.Category + "/" + r.Package
}

// SortTime returns the ISO form of the date, suitable as a lexical sort
// key.
func (r Record) SortTime() string {
	return r.Date.Format("2006-01-02 15:04:05")
}
