// Package csvstore reads and writes datasets as CSV files with a header row.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/baditaflorin/go_text_preprocessing/internal/core/domain"
)

// Option configures a Source or Sink.
type Option func(*options)

type options struct {
	comma rune
}

func defaultOptions() options {
	return options{comma: ','}
}

// WithDelimiter sets the field delimiter. The default is a comma.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		o.comma = r
	}
}

// Source loads datasets from CSV files keyed by dataset name.
type Source struct {
	paths map[string]string
	opts  options
}

// NewSource creates a source reading each named dataset from its path.
func NewSource(paths map[string]string, opts ...Option) *Source {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Source{paths: paths, opts: o}
}

// Load reads the named dataset. A missing file yields domain.ErrSourceNotFound
// and a file without a header row yields domain.ErrEmptySource.
func (s *Source) Load(ctx context.Context, name string) (*domain.Dataset, error) {
	path, ok := s.paths[name]
	if !ok {
		return nil, fmt.Errorf("%w: no path configured for dataset %q", domain.ErrSourceNotFound, name)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return s.read(ctx, f, path)
}

func (s *Source) read(ctx context.Context, r io.Reader, path string) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = s.opts.comma
	// Every record must be as wide as the header.
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptySource, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}
	for i, cell := range header {
		header[i] = cleanHeader(cell)
	}

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, record)
	}
	return domain.NewDataset(header, rows), nil
}

func cleanHeader(v string) string {
	v = strings.TrimPrefix(v, "\ufeff")
	return strings.TrimSpace(v)
}
