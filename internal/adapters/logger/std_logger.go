package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
	"github.com/baditaflorin/l"
)

// Options configures where the standard logger writes.
type Options struct {
	// Dir and File locate the log file. An empty File disables file output.
	Dir  string
	File string
	// Console mirrors every line to stdout.
	Console bool
	// JSON switches the line format to JSON.
	JSON bool
	// Debug lowers the minimum level from info to debug.
	Debug bool
}

// DefaultOptions logs debug lines to the console and to logs/data_preprocessing.log.
func DefaultOptions() Options {
	return Options{
		Dir:     "logs",
		File:    "data_preprocessing.log",
		Console: true,
		Debug:   true,
	}
}

// StdLogger adapts the l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
	file   *os.File

	closeOnce sync.Once
	closeErr  error
}

// NewStdLogger creates a logger writing to the console and/or a log file.
// The log directory is created when missing.
func NewStdLogger(opts Options) (ports.Logger, error) {
	var writers []io.Writer
	if opts.Console {
		writers = append(writers, os.Stdout)
	}

	var file *os.File
	if opts.File != "" {
		if opts.Dir != "" {
			if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		f, err := os.OpenFile(filepath.Join(opts.Dir, opts.File), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	var output io.Writer = io.Discard
	if len(writers) > 0 {
		output = io.MultiWriter(writers...)
	}

	cfg := l.Config{
		Output:      output,
		JsonFormat:  opts.JSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
	}
	if opts.Debug {
		cfg.MinLevel = l.LevelDebug
	}
	logger, err := l.NewStandardFactory().CreateLogger(cfg)
	if err != nil {
		if file != nil {
			_ = file.Close()
		}
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &StdLogger{logger: logger, file: file}, nil
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes pending writes and releases the log file.
func (s *StdLogger) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.logger.Close()
		if s.file != nil {
			if err := s.file.Close(); err != nil && s.closeErr == nil {
				s.closeErr = err
			}
		}
	})
	return s.closeErr
}

// FromExisting wraps an already configured l.Logger. Closing the adapter
// closes the wrapped logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}
