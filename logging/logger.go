package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Auto installs a tint-backed default slog logger. It writes to path when set and
// to stderr otherwise. Closing the result closes the log file.
func Auto(debug bool, path string) (io.Closer, error) {
	w, err := getWriter(path)
	if err != nil {
		return nil, err
	}

	logLevel := slog.LevelDebug
	if !debug {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   debug,
		Level:       logLevel,
		ReplaceAttr: nil,
		TimeFormat:  time.Kitchen,
		NoColor:     !debug || path != "",
	}))

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(logLevel)

	return w, nil
}

func getWriter(path string) (io.WriteCloser, error) {
	if path == "" {
		return struct {
			io.Writer
			io.Closer
		}{
			os.Stderr,
			io.NopCloser(nil),
		}, nil
	}

	return os.OpenFile(os.ExpandEnv(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
