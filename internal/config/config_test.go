package config

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.LogPath != "logs/app_health.log" || cfg.Timeout != 5*time.Second || cfg.Retries != 2 {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.URLsFile != "" || len(cfg.URLs) != 0 || cfg.DiagDir != "" || cfg.LogLevel != "warn" {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
}

func TestParse_FlagsAndInterspersedURLs(t *testing.T) {
	args := []string{
		"https://a", "--timeout", "9", "https://b",
		"--retries=0", "--urls-file", "urls.txt", "--log", "/tmp/h.log",
		"--log-level", "debug", "https://c",
	}
	cfg, err := Parse(args, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Join(cfg.URLs, ",") != "https://a,https://b,https://c" {
		t.Fatalf("urls wrong: %q", cfg.URLs)
	}
	if cfg.Timeout != 9*time.Second || cfg.Retries != 0 {
		t.Fatalf("timeout/retries wrong: %+v", cfg)
	}
	if cfg.URLsFile != "urls.txt" || cfg.LogPath != "/tmp/h.log" || cfg.LogLevel != "debug" {
		t.Fatalf("paths wrong: %+v", cfg)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"--timeout", "0"},
		{"--retries", "-1"},
		{"--log", ""},
	} {
		if _, err := Parse(args, io.Discard); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%v: want ErrInvalid, got %v", args, err)
		}
	}
}

func TestParse_BadFlag(t *testing.T) {
	if _, err := Parse([]string{"--timeout", "abc"}, io.Discard); err == nil {
		t.Fatalf("want parse error for non-integer timeout")
	}
	if _, err := Parse([]string{"--bogus"}, io.Discard); err == nil {
		t.Fatalf("want parse error for unknown flag")
	}
}

func TestParse_Help(t *testing.T) {
	var sb strings.Builder
	_, err := Parse([]string{"--help"}, &sb)
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if !strings.Contains(sb.String(), "--urls-file") {
		t.Fatalf("usage should list flags, got %q", sb.String())
	}
}
