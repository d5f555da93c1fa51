package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/baditaflorin/go_text_preprocessing/internal/core/domain"
)

const (
	stagedSuffix = ".tmp"
	backupSuffix = ".bak"
)

// Sink writes datasets to CSV files keyed by dataset name. Files are staged
// next to their destination and only renamed into place by Commit.
type Sink struct {
	paths map[string]string
	opts  options

	mu     sync.Mutex
	staged []string
}

// NewSink creates a sink writing each named dataset to its path.
func NewSink(paths map[string]string, opts ...Option) *Sink {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sink{paths: paths, opts: o}
}

// Stage writes ds to a temporary file beside the destination of name.
func (s *Sink) Stage(ctx context.Context, name string, ds *domain.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, ok := s.paths[name]
	if !ok {
		return fmt.Errorf("no output path configured for dataset %q", name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp := path + stagedSuffix
	if err := s.write(tmp, ds); err != nil {
		os.Remove(tmp)
		return err
	}

	s.mu.Lock()
	s.staged = append(s.staged, path)
	s.mu.Unlock()
	return nil
}

func (s *Sink) write(path string, ds *domain.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = s.opts.comma
	if err := writer.Write(ds.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writer.WriteAll(ds.Rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return f.Close()
}

// Commit moves every staged file into place. Either every destination is
// replaced or, on error, every destination keeps its previous content.
func (s *Sink) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var backedUp []string
	for _, path := range s.staged {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.Rename(path, path+backupSuffix); err != nil {
			s.restore(nil, backedUp)
			return fmt.Errorf("commit %s: back up existing output: %w", path, err)
		}
		backedUp = append(backedUp, path)
	}

	var published []string
	for _, path := range s.staged {
		if err := os.Rename(path+stagedSuffix, path); err != nil {
			s.restore(published, backedUp)
			return fmt.Errorf("commit %s: %w", path, err)
		}
		published = append(published, path)
	}

	for _, path := range backedUp {
		os.Remove(path + backupSuffix)
	}
	s.staged = nil
	return nil
}

// restore takes back the published outputs and puts the backups in place.
func (s *Sink) restore(published, backedUp []string) {
	for _, path := range published {
		os.Remove(path)
	}
	for _, path := range backedUp {
		os.Rename(path+backupSuffix, path)
	}
}

// Discard removes every staged file.
func (s *Sink) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, path := range s.staged {
		if err := os.Remove(path + stagedSuffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	s.staged = nil
	return errors.Join(errs...)
}
