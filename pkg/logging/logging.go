// Package logging configures the process wide logrus logger.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options selects level and destinations of the log output
type Options struct {
	Level string
	// File additionally receives the log output, rotated by size. Empty
	// disables file logging.
	File string
}

// Configure applies opts to the standard logger. The returned closer
// releases the log file, it is a no-op without one.
func Configure(opts Options) (io.Closer, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", opts.Level)
		}
		level = l
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetLevel(level)

	if opts.File == "" {
		logrus.SetOutput(os.Stdout)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, file))

	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
