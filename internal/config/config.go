package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"
)

var ErrInvalid = errors.New("invalid option")

type Config struct {
	URLs     []string      // positional URLs, in argument order
	URLsFile string        // optional file of URLs, one per line
	LogPath  string        // health log, opened in append mode
	Timeout  time.Duration // per-attempt network timeout
	Retries  int           // additional attempts after the first failure
	DiagDir  string        // diagnostic log directory; empty means stderr
	LogLevel string        // diagnostic log level
}

// Parse reads command-line arguments (without the program name). Flags may
// appear anywhere among the positional URLs. It returns pflag.ErrHelp when
// --help is given; usage is written to out.
func Parse(args []string, out io.Writer) (Config, error) {
	fs := pflag.NewFlagSet("apphealth", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SetInterspersed(true)

	var cfg Config
	var timeoutSec int
	fs.StringVar(&cfg.URLsFile, "urls-file", "", "file with URLs, one per line")
	fs.StringVar(&cfg.LogPath, "log", "logs/app_health.log", "log file")
	fs.IntVar(&timeoutSec, "timeout", 5, "per-attempt timeout in seconds")
	fs.IntVar(&cfg.Retries, "retries", 2, "additional attempts after a failed request")
	fs.StringVar(&cfg.DiagDir, "diag-dir", "", "directory for the diagnostic log (default stderr)")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "diagnostic log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintln(out, "usage: apphealth [flags] [url ...]")
		fmt.Fprintln(out, "\nHTTP app health checker")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if timeoutSec <= 0 {
		return Config{}, fmt.Errorf("%w: --timeout must be positive, got %d", ErrInvalid, timeoutSec)
	}
	if cfg.Retries < 0 {
		return Config{}, fmt.Errorf("%w: --retries must not be negative, got %d", ErrInvalid, cfg.Retries)
	}
	if cfg.LogPath == "" {
		return Config{}, fmt.Errorf("%w: --log must not be empty", ErrInvalid)
	}
	cfg.Timeout = time.Duration(timeoutSec) * time.Second
	cfg.URLs = fs.Args()
	return cfg, nil
}
