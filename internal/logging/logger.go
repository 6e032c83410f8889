package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the diagnostic logger. With logDir set it writes JSON to
// logDir/apphealth.log; otherwise to stderr.
func NewLogger(logDir, level string) (*zap.Logger, error) {
	return newLogger(logDir, level, os.Stderr)
}

func newLogger(logDir, level string, fallback io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	w := zapcore.AddSync(fallback)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, err
		}
		w = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(logDir, "apphealth.log"),
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		})
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, lvl)
	return zap.New(core), nil
}
