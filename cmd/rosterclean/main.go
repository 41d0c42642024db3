// Command rosterclean ingests a raw client roster CSV, runs the
// cleaning pipeline, and writes the cleaned roster plus an HTML
// validation report. Multiple inputs (comma-separated paths, globs, or
// URLs) are cleaned concurrently, one independent pipeline per file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ferdo-djingga/client-data-cleaner/internal/config"
	"github.com/ferdo-djingga/client-data-cleaner/internal/metrics"
	"github.com/ferdo-djingga/client-data-cleaner/internal/metrics/prompush"

	// register all storage backends with the factory.
	_ "github.com/ferdo-djingga/client-data-cleaner/internal/storage/all"
)

func main() {
	var (
		cfgPath           string
		inputFlg          string
		outputFlg         string
		reportFlg         string
		metricsBackendFlg string
		pushGatewayURLFlg string
		concurrency       int
		validate          bool
	)

	flag.StringVar(&cfgPath, "config", "", "job config JSON path (optional)")
	flag.StringVar(&inputFlg, "input", "", "input roster CSV: path, glob, URL, or comma-separated list")
	flag.StringVar(&outputFlg, "output", "", "cleaned roster CSV path")
	flag.StringVar(&reportFlg, "report", "", "validation report HTML path")
	flag.StringVar(&metricsBackendFlg, "metrics-backend", "", "metrics backend (pushgateway, none)")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	flag.IntVar(&concurrency, "concurrency", 4, "max input files cleaned in parallel")
	flag.BoolVar(&validate, "validate", false, "validate the configuration and exit")
	verbose := flag.Bool("v", false, "enable verbose logs")
	flag.Parse()

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	logger := newLogger(*verbose)
	defer logger.Sync()

	job := config.Job{}
	if cfgPath != "" {
		var err error
		job, err = config.Load(cfgPath)
		if err != nil {
			fatalf("load config: %v", err)
		}
	}
	if inputFlg != "" {
		job.Input = inputFlg
	}
	if outputFlg != "" {
		job.Output = outputFlg
	}
	if reportFlg != "" {
		job.Report = reportFlg
	}
	if metricsBackendFlg != "" {
		job.Metrics.Backend = metricsBackendFlg
	}
	if pushGatewayURLFlg != "" {
		job.Metrics.PushgatewayURL = pushGatewayURLFlg
	}
	job.ApplyDefaults()

	issues := config.Validate(job)
	hasError := false
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		if iss.Severity == config.SeverityError {
			hasError = true
		}
	}
	if hasError {
		fatalf("configuration is invalid")
	}
	if validate {
		logger.Info("configuration is valid")
		return
	}

	setupMetrics(job, logger)
	defer func() {
		if err := metrics.Flush(); err != nil {
			logger.Warn("metrics flush failed", zap.Error(err))
		}
	}()

	if err := run(context.Background(), job, concurrency, logger); err != nil {
		logger.Fatal("cleaning failed", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fatalf("init logger: %v", err)
	}
	return logger
}

// setupMetrics resolves the backend flag → env → config, defaulting to
// disabled, and installs it globally.
func setupMetrics(job config.Job, logger *zap.Logger) {
	backendName := job.Metrics.Backend
	if backendName == "" {
		backendName = os.Getenv("METRICS_BACKEND")
	}
	switch backendName {
	case "pushgateway":
		gwURL := job.Metrics.PushgatewayURL
		if gwURL == "" {
			gwURL = os.Getenv("PUSHGATEWAY_URL")
		}
		if gwURL == "" {
			gwURL = "http://localhost:9091"
		}
		b, err := prompush.NewBackend(job.Name, gwURL)
		if err != nil {
			logger.Warn("metrics init failed; using nop", zap.Error(err))
			return
		}
		logger.Info("metrics enabled", zap.String("backend", backendName), zap.String("url", gwURL))
		metrics.SetBackend(b)
	case "", "none":
		// nop backend remains
	default:
		logger.Warn("unknown metrics backend; metrics disabled", zap.String("backend", backendName))
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
