// Package elogio reads elog files from disk: discovery by glob,
// per-extension decompression, and tolerant text decoding. The parsing
// core never touches the filesystem; this package feeds it.
package elogio

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Read returns the decoded lines of the elog at path. It never fails:
// unsupported extensions and unreadable files yield a synthetic
// error-classed document naming the problem, and invalid byte sequences
// decode to the Unicode replacement character.
func Read(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		return placeholder("file does not open",
			"The selected elog could not be opened.")
	}
	defer file.Close()

	var reader io.Reader
	switch filepath.Ext(path) {
	case ".log":
		reader = file
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			return placeholder("file does not open",
				"The selected elog could not be opened.")
		}
		defer gz.Close()
		reader = gz
	case ".bz2":
		reader = bzip2.NewReader(file)
	default:
		return placeholder("unsupported format",
			"The selected elog is in an unsupported format.")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return placeholder("file does not open",
			"The selected elog could not be opened.")
	}
	return splitLines(decode(data))
}

// placeholder builds the substitute document for files the viewer cannot
// show. The leading line is a well-formed ERROR header so the document
// classifies and renders as an error.
func placeholder(stage, detail string) []string {
	return []string{"ERROR: " + stage, detail}
}

// decode converts raw bytes to text, replacing invalid UTF-8 sequences
// instead of failing.
func decode(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
