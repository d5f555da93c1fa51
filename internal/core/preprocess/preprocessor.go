// Package preprocess applies label encoding, deduplication and text
// normalization to a whole dataset.
package preprocess

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/baditaflorin/go_text_preprocessing/internal/core/domain"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/labels"
	"github.com/baditaflorin/go_text_preprocessing/internal/pool"
	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
)

// Result is the outcome of preprocessing one dataset.
type Result struct {
	Dataset *domain.Dataset
	// Encoder is the label encoder used for the target column.
	Encoder *labels.Encoder
	Report  domain.Report
}

// Preprocessor runs encode, dedup and normalize, in that order, over a
// dataset. The input dataset is never modified.
type Preprocessor struct {
	normalizer ports.TextNormalizer
	logger     ports.Logger
	builders   *pool.StringBuilderPool
}

// NewPreprocessor creates a preprocessor.
func NewPreprocessor(normalizer ports.TextNormalizer, logger ports.Logger) (*Preprocessor, error) {
	if normalizer == nil {
		return nil, errors.New("preprocess: normalizer is required")
	}
	if logger == nil {
		return nil, errors.New("preprocess: logger is required")
	}
	return &Preprocessor{
		normalizer: normalizer,
		logger:     logger,
		builders:   pool.NewStringBuilderPool(),
	}, nil
}

// Preprocess fits a fresh label encoder on ds and applies the full transform.
func (p *Preprocessor) Preprocess(ctx context.Context, ds *domain.Dataset, cols domain.Columns) (*Result, error) {
	return p.run(ctx, ds, cols, labels.NewEncoder(), true)
}

// PreprocessWithEncoder applies the full transform using an encoder fitted
// elsewhere, typically on the training dataset. Labels unknown to enc fail
// the whole dataset.
func (p *Preprocessor) PreprocessWithEncoder(ctx context.Context, ds *domain.Dataset, cols domain.Columns, enc *labels.Encoder) (*Result, error) {
	if !enc.Fitted() {
		return nil, labels.ErrNotFitted
	}
	return p.run(ctx, ds, cols, enc, false)
}

func (p *Preprocessor) run(ctx context.Context, ds *domain.Dataset, cols domain.Columns, enc *labels.Encoder, fit bool) (*Result, error) {
	if ds == nil {
		return nil, errors.New("preprocess: nil dataset")
	}
	start := time.Now()
	p.logger.Debug("Starting preprocessing for dataset", "rows", ds.Len())

	targetIdx, err := ds.ColumnIndex(cols.Target)
	if err != nil {
		p.logger.Error("Column not found", "column", cols.Target)
		return nil, err
	}
	textIdx, err := ds.ColumnIndex(cols.Text)
	if err != nil {
		p.logger.Error("Column not found", "column", cols.Text)
		return nil, err
	}

	out := ds.Clone()

	// Step 1: label encoding.
	targets := make([]string, len(out.Rows))
	for i, row := range out.Rows {
		targets[i] = row[targetIdx]
	}
	if fit {
		enc.Fit(targets)
	}
	codes, err := enc.Transform(targets)
	if err != nil {
		var unseen *labels.UnseenLabelError
		if errors.As(err, &unseen) {
			err = &domain.TransformError{Row: unseen.Index, Column: cols.Target, Input: unseen.Value, Err: err}
		}
		p.logger.Error("Error during label encoding", "column", cols.Target, "error", err)
		return nil, err
	}
	for i, row := range out.Rows {
		row[targetIdx] = strconv.Itoa(codes[i])
	}
	p.logger.Debug("Target column encoded", "column", cols.Target, "classes", len(enc.Classes()))

	// Step 2: deduplication on the encoded rows.
	rowsIn := len(out.Rows)
	rows, origin := dropDuplicates(out.Rows, p.builders)
	out.Rows = rows
	p.logger.Debug("Duplicates removed", "removed", rowsIn-len(rows))

	// Step 3: text normalization.
	for i, row := range out.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		normalized, err := p.normalizer.Normalize(row[textIdx])
		if err != nil {
			err = annotate(err, origin[i], cols.Text, row[textIdx])
			p.logger.Error("Error during text normalization", "row", origin[i], "error", err)
			return nil, err
		}
		row[textIdx] = normalized
	}
	p.logger.Debug("Text column transformed", "column", cols.Text)

	return &Result{
		Dataset: out,
		Encoder: enc,
		Report: domain.Report{
			RowsIn:            rowsIn,
			RowsOut:           len(out.Rows),
			DuplicatesRemoved: rowsIn - len(out.Rows),
			Classes:           enc.Classes(),
			Duration:          time.Since(start),
		},
	}, nil
}

// annotate pins a normalizer failure to the dataset row it came from.
func annotate(err error, row int, column, input string) error {
	var te *domain.TransformError
	if errors.As(err, &te) {
		return &domain.TransformError{Row: row, Column: column, Input: input, Err: te.Err}
	}
	return &domain.TransformError{Row: row, Column: column, Input: input, Err: fmt.Errorf("normalize: %w", err)}
}
