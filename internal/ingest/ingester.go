package ingest

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/j-veylop/macwrap/internal/logger"
	"github.com/j-veylop/macwrap/internal/recap"
)

// Options configures where the ingester looks for data.
type Options struct {
	SourcePath    string
	HistoryFiles  []string
	MdfindTimeout time.Duration
	PmsetTimeout  time.Duration
}

// Ingester gathers the recap input for a year from the host.
type Ingester struct {
	runner Runner
	opts   Options
}

// New creates an Ingester. A nil runner executes commands on the host.
func New(opts Options, runner Runner) *Ingester {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Ingester{
		runner: runner,
		opts:   opts,
	}
}

// Collect reads the primary usage source and the auxiliary counters for year.
// It never fails: an unavailable source is reported through Input.Error and
// auxiliary failures leave their counters at zero.
func (i *Ingester) Collect(ctx context.Context, year int) recap.Input {
	in := recap.Input{Year: year}

	start := time.Now()
	intervals, err := ScreenTime(ctx, i.opts.SourcePath, year)
	if err != nil {
		logger.Error("Failed to read screen time", "path", i.opts.SourcePath, "error", err)
		in.Error = err.Error()
		return in
	}
	in.Intervals = intervals
	logger.Info("Read usage intervals", "count", len(intervals), "year", year, "elapsed", time.Since(start))

	aux, err := i.collectAux(ctx, year)
	if err != nil {
		logger.Warn("Auxiliary stats incomplete", "year", year, "error", err)
	}
	in.Aux = aux
	return in
}

// collectAux runs the auxiliary collectors concurrently. Each one writes a
// distinct field of the result. A failing collector leaves its field at zero
// without stopping the others; the first failure is returned.
func (i *Ingester) collectAux(ctx context.Context, year int) (recap.Aux, error) {
	var aux recap.Aux
	var g errgroup.Group

	g.Go(func() error {
		aux.CommandCount = CountCommands(i.opts.HistoryFiles)
		return nil
	})

	g.Go(func() error {
		summary, err := FileCreation(ctx, i.runner, year, i.opts.MdfindTimeout)
		if err != nil {
			return fmt.Errorf("file creation: %w", err)
		}
		aux.FileCreation = summary
		return nil
	})

	g.Go(func() error {
		summary, err := PowerEvents(ctx, i.runner, year, i.opts.PmsetTimeout)
		if err != nil {
			return fmt.Errorf("power events: %w", err)
		}
		aux.PowerEvents = summary
		return nil
	})

	return aux, g.Wait()
}
