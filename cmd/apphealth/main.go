package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/apphealth/internal/config"
	"github.com/hamed0406/apphealth/internal/logging"
	"github.com/hamed0406/apphealth/internal/probe"
	"github.com/hamed0406/apphealth/internal/runner"
	"github.com/hamed0406/apphealth/internal/sink"
	"github.com/hamed0406/apphealth/internal/targets"
)

const (
	exitOK    = 0
	exitUsage = 1 // no URLs, or the health log failed
	exitSetup = 2 // bad flags, missing URLs file, logger setup
)

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "apphealth:", err)
		return exitSetup
	}

	logger, err := logging.NewLogger(cfg.DiagDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "apphealth: diagnostics:", err)
		return exitSetup
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	urls, err := targets.Collect(cfg.URLsFile, cfg.URLs)
	switch {
	case errors.Is(err, targets.ErrFileNotFound):
		fmt.Fprintf(stderr, "URLs file not found: %s\n", cfg.URLsFile)
		return exitSetup
	case errors.Is(err, targets.ErrNoTargets):
		fmt.Fprintln(stderr, "No URLs supplied. Use positional URLs or --urls-file.")
		return exitUsage
	case err != nil:
		fmt.Fprintln(stderr, "apphealth:", err)
		return exitSetup
	}

	s, err := sink.Open(cfg.LogPath, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "apphealth:", err)
		return exitUsage
	}

	logger.Info("run_start",
		zap.Int("urls", len(urls)),
		zap.String("log", cfg.LogPath),
		zap.Duration("timeout", cfg.Timeout),
		zap.Int("retries", cfg.Retries),
	)

	r := runner.New(logger, probe.New(logger, cfg.Timeout, cfg.Retries), s, nil)
	err = r.Run(context.Background(), urls)
	err = multierr.Append(err, s.Close())
	if err != nil {
		fmt.Fprintln(stderr, "apphealth:", err)
		return exitUsage
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
