// logger.go
// Package textprep provides shared utilities for the go_text_preprocessing package.
package textprep

import (
	"io"

	"github.com/baditaflorin/l"
)

// createDefaultLogger creates a logger writing to output. Debug lines are only
// emitted when debug is set, which New does for traced preprocessors.
func createDefaultLogger(output io.Writer, debug bool) (l.Logger, error) {
	cfg := l.Config{
		Output:     output,
		AsyncWrite: true,
		BufferSize: 64 * 1024,
	}
	if debug {
		cfg.MinLevel = l.LevelDebug
	}
	return l.NewStandardFactory().CreateLogger(cfg)
}
