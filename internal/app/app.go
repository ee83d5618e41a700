// Package app wires configuration, scanning, and rendering into the
// elogviewer command.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Synss/elogviewer/internal/config"
	"github.com/Synss/elogviewer/internal/elog"
	"github.com/Synss/elogviewer/internal/elogio"
	"github.com/Synss/elogviewer/internal/records"
	"github.com/Synss/elogviewer/internal/ui"
)

// Options configure one elogviewer run.
type Options struct {
	ConfigPath string
	ElogPath   string // overrides the configured elog directory
	Show       string // render this single elog instead of listing
	HTML       bool   // emit HTML instead of terminal text (with Show)
	Theme      string // overrides the configured theme

	Out io.Writer // defaults to os.Stdout
}

// Run executes one scan-and-render pass and writes the result to
// opts.Out.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	elogDir := cfg.ElogDir
	if opts.ElogPath != "" {
		elogDir = opts.ElogPath
	}
	themeName := cfg.Theme
	if opts.Theme != "" {
		themeName = opts.Theme
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	styles := ui.GetTheme(themeName).Styles()

	if opts.Show != "" {
		return show(out, opts.Show, opts.HTML, styles)
	}
	return list(ctx, out, elogDir, styles)
}

// show renders one elog document. Unreadable or unsupported files render
// as error-classed placeholder documents rather than failing.
func show(out io.Writer, path string, asHTML bool, styles ui.Styles) error {
	lines := elogio.Read(path)
	doc := elog.Parse(lines)

	if asHTML {
		_, err := io.WriteString(out, doc.HTML())
		return err
	}

	if rec, err := records.FromFilename(path); err == nil {
		if _, err := io.WriteString(out, ui.RenderTitle(rec, styles)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, ui.RenderDocument(doc, styles))
	return err
}

func list(ctx context.Context, out io.Writer, elogDir string, styles ui.Styles) error {
	recs, err := records.Scan(ctx, elogDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", elogDir, err)
	}
	_, err = io.WriteString(out, ui.RenderList(recs, styles))
	return err
}
