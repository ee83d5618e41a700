package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Synss/elogviewer/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	elogPath := flag.String("p", "", "path to the elog directory (optional)")
	show := flag.String("show", "", "render a single elog file and exit")
	asHTML := flag.Bool("html", false, "with -show, emit HTML instead of terminal text")
	theme := flag.String("theme", "", "color theme name (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		ElogPath:   *elogPath,
		Show:       *show,
		HTML:       *asHTML,
		Theme:      *theme,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "elogviewer: %v\n", err)
		return 1
	}
	return 0
}
