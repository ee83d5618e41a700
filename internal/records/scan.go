package records

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Synss/elogviewer/internal/elog"
	"github.com/Synss/elogviewer/internal/elogio"
)

// scanWorkers bounds concurrent file reads during a scan.
const scanWorkers = 8

// Scan discovers every elog under dir and returns one classified record
// per file, newest first. Files whose names do not parse as elogs are
// skipped. Classification runs in parallel; the core holds no shared
// state, so records only need joining at the end.
func Scan(ctx context.Context, dir string) ([]Record, error) {
	files, err := elogio.Discover(dir)
	if err != nil {
		return nil, fmt.Errorf("discover elogs: %w", err)
	}

	found := make([]*Record, len(files))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(scanWorkers)
	for i, path := range files {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := FromFilename(path)
			if err != nil {
				return nil
			}
			rec.Severity = elog.Classify(strings.Join(elogio.Read(path), "\n"))
			found[i] = &rec
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	recs := make([]Record, 0, len(found))
	for _, rec := range found {
		if rec != nil {
			recs = append(recs, *rec)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Date.After(recs[j].Date)
	})
	return recs, nil
}
