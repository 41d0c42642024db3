package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ferdo-djingga/client-data-cleaner/internal/cleaner"
	"github.com/ferdo-djingga/client-data-cleaner/internal/config"
	"github.com/ferdo-djingga/client-data-cleaner/internal/datasource"
	"github.com/ferdo-djingga/client-data-cleaner/internal/datasource/file"
	"github.com/ferdo-djingga/client-data-cleaner/internal/datasource/httpds"
	"github.com/ferdo-djingga/client-data-cleaner/internal/metrics"
	"github.com/ferdo-djingga/client-data-cleaner/internal/parser/csv"
	"github.com/ferdo-djingga/client-data-cleaner/internal/report"
	"github.com/ferdo-djingga/client-data-cleaner/internal/storage"
	"github.com/ferdo-djingga/client-data-cleaner/pkg/records"
)

// run expands the job's input spec into concrete sources and cleans
// each one as an independent pipeline, up to concurrency at a time.
func run(ctx context.Context, job config.Job, concurrency int, logger *zap.Logger) error {
	inputs, err := expandInputs(job.Input)
	if err != nil {
		return err
	}
	logger.Info("starting cleaning run",
		zap.String("job", job.Name),
		zap.Int("inputs", len(inputs)),
	)

	multi := len(inputs) > 1
	g, ctx := errgroup.WithContext(ctx)
	if concurrency < 1 {
		concurrency = 1
	}
	g.SetLimit(concurrency)

	for _, spec := range inputs {
		g.Go(func() error {
			outPath, repPath := derivePaths(job, spec, multi)
			return cleanOne(ctx, job, spec, outPath, repPath, logger)
		})
	}
	return g.Wait()
}

// expandInputs resolves the input spec: URLs pass through verbatim,
// local entries go through glob expansion.
func expandInputs(spec string) ([]string, error) {
	var inputs []string
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if httpds.IsURL(part) {
			inputs = append(inputs, part)
			continue
		}
		paths, err := file.Expand(part)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, paths...)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("input spec %q matched no files", spec)
	}
	return inputs, nil
}

// derivePaths returns the output and report paths for one input. With a
// single input the configured paths are used as-is; with several, each
// input gets a name derived from its own stem so files do not collide.
func derivePaths(job config.Job, spec string, multi bool) (string, string) {
	if !multi {
		return job.Output, job.Report
	}
	stem := inputStem(spec)
	out := filepath.Join(filepath.Dir(job.Output), stem+"_clean.csv")
	rep := filepath.Join(filepath.Dir(job.Report), stem+"_report.html")
	return out, rep
}

func inputStem(spec string) string {
	base := filepath.Base(spec)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func cleanOne(ctx context.Context, job config.Job, spec, outPath, repPath string, logger *zap.Logger) (retErr error) {
	logger = logger.With(zap.String("input", spec))
	start := time.Now()
	defer func() {
		metrics.RecordRun(job.Name, retErr, time.Since(start))
	}()

	var src datasource.Source
	if httpds.IsURL(spec) {
		src = httpds.NewRemote(spec, httpds.Config{})
	} else {
		src = file.NewLocal(spec)
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return fmt.Errorf("open %s: %w", spec, err)
	}
	defer rc.Close()

	parser := csv.NewParser(csv.Options{
		Comma:    job.DelimiterRune(),
		NAValues: job.NAValues,
		Logger:   logger,
	})
	in, skipped, err := parser.Parse(rc)
	if err != nil {
		return fmt.Errorf("parse %s: %w", spec, err)
	}
	if skipped > 0 {
		logger.Warn("skipped malformed rows", zap.Int("rows", skipped))
	}

	res := cleaner.Clean(in, cleaner.Config{
		Aliases:      job.Aliases,
		Reachability: job.Reachability,
	})

	metrics.RecordRows(job.Name, "input", res.Stats.RowsInput)
	metrics.RecordRows(job.Name, "output", res.Stats.RowsOutput)
	metrics.RecordRows(job.Name, "dropped_unreachable", res.Stats.RowsDroppedUnreachable)
	metrics.RecordRows(job.Name, "invalid_email", res.Stats.InvalidEmailCount)
	metrics.RecordRows(job.Name, "invalid_date", res.Stats.InvalidDateCount)

	if err := writeCSV(outPath, res.Table); err != nil {
		return err
	}
	if err := writeReport(repPath, res); err != nil {
		return err
	}
	if job.Storage.Kind != "" {
		if err := loadStorage(ctx, job.Storage, res, logger); err != nil {
			return err
		}
	}

	logger.Info("cleaning complete",
		zap.Int("rows_input", res.Stats.RowsInput),
		zap.Int("rows_output", res.Stats.RowsOutput),
		zap.Int("rows_dropped_unreachable", res.Stats.RowsDroppedUnreachable),
		zap.Int("invalid_email_count", res.Stats.InvalidEmailCount),
		zap.Int("invalid_date_count", res.Stats.InvalidDateCount),
		zap.Float64("duration_seconds", res.Stats.DurationSeconds),
		zap.String("output", outPath),
		zap.String("report", repPath),
	)
	return nil
}

func writeCSV(path string, t records.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := csv.Write(f, t); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeReport(path string, res cleaner.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := report.Write(f, res); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func loadStorage(ctx context.Context, sc config.Storage, res cleaner.Result, logger *zap.Logger) error {
	repo, err := storage.New(ctx, storage.Config{
		Kind:            sc.Kind,
		DSN:             sc.DSN,
		Table:           sc.Table,
		AutoCreateTable: sc.AutoCreateTable,
	})
	if err != nil {
		return fmt.Errorf("open %s storage: %w", sc.Kind, err)
	}
	defer repo.Close()

	if sc.AutoCreateTable {
		if err := repo.EnsureTable(ctx, res.Table.Columns); err != nil {
			return fmt.Errorf("ensure table %s: %w", sc.Table, err)
		}
	}
	n, err := storage.LoadTable(ctx, repo, res.Table, logger)
	if err != nil {
		return fmt.Errorf("load table %s: %w", sc.Table, err)
	}
	logger.Info("loaded cleaned roster", zap.String("kind", sc.Kind), zap.Int64("rows", n))
	return nil
}
