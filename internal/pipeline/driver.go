// Package pipeline runs the batch preprocessing of the train and test datasets.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/baditaflorin/go_text_preprocessing/internal/core/domain"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/labels"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/preprocess"
	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
)

// Dataset names, in processing order.
const (
	TrainDataset = "train"
	TestDataset  = "test"
)

// LabelMode selects how label encoders relate across datasets.
type LabelMode string

const (
	// FitTrain fits the encoder on train and reuses it for test, so equal
	// labels get equal codes in both outputs.
	FitTrain LabelMode = "fit_train"
	// PerDataset fits an independent encoder on each dataset.
	PerDataset LabelMode = "per_dataset"
)

// Config holds driver settings.
type Config struct {
	Columns   domain.Columns
	LabelMode LabelMode
}

// DefaultConfig returns the default column names in FitTrain mode.
func DefaultConfig() Config {
	return Config{Columns: domain.DefaultColumns(), LabelMode: FitTrain}
}

// Result summarizes a successful run.
type Result struct {
	RunID    string
	Train    domain.Report
	Test     domain.Report
	Duration time.Duration
}

// Driver loads both datasets, preprocesses them and publishes both outputs
// together.
type Driver struct {
	cfg          Config
	source       ports.DatasetSource
	sink         ports.DatasetSink
	preprocessor *preprocess.Preprocessor
	logger       ports.Logger
}

// NewDriver creates a driver.
func NewDriver(
	cfg Config,
	source ports.DatasetSource,
	sink ports.DatasetSink,
	preprocessor *preprocess.Preprocessor,
	logger ports.Logger,
) (*Driver, error) {
	switch {
	case source == nil:
		return nil, errors.New("pipeline: source is required")
	case sink == nil:
		return nil, errors.New("pipeline: sink is required")
	case preprocessor == nil:
		return nil, errors.New("pipeline: preprocessor is required")
	case logger == nil:
		return nil, errors.New("pipeline: logger is required")
	}
	switch cfg.LabelMode {
	case FitTrain, PerDataset:
	case "":
		cfg.LabelMode = FitTrain
	default:
		return nil, fmt.Errorf("pipeline: unknown label mode %q", cfg.LabelMode)
	}
	return &Driver{
		cfg:          cfg,
		source:       source,
		sink:         sink,
		preprocessor: preprocessor,
		logger:       logger,
	}, nil
}

// Run executes the pipeline once. Nothing is written unless both datasets
// are processed successfully.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	d.logger.Info("Starting data preprocessing",
		"run_id", runID,
		"label_mode", string(d.cfg.LabelMode),
		"text_column", d.cfg.Columns.Text,
		"target_column", d.cfg.Columns.Target,
	)

	train, err := d.load(ctx, runID, TrainDataset)
	if err != nil {
		return Result{}, err
	}
	test, err := d.load(ctx, runID, TestDataset)
	if err != nil {
		return Result{}, err
	}

	trainRes, err := d.process(ctx, runID, TrainDataset, train, nil)
	if err != nil {
		return Result{}, err
	}
	var enc *labels.Encoder
	if d.cfg.LabelMode == FitTrain {
		enc = trainRes.Encoder
	}
	testRes, err := d.process(ctx, runID, TestDataset, test, enc)
	if err != nil {
		return Result{}, err
	}

	if err := d.publish(ctx, runID, trainRes.Dataset, testRes.Dataset); err != nil {
		return Result{}, err
	}

	res := Result{
		RunID:    runID,
		Train:    trainRes.Report,
		Test:     testRes.Report,
		Duration: time.Since(start),
	}
	d.logger.Info("Data preprocessing completed",
		"run_id", runID,
		"train_rows", res.Train.RowsOut,
		"test_rows", res.Test.RowsOut,
		"duration", res.Duration.String(),
	)
	return res, nil
}

func (d *Driver) load(ctx context.Context, runID, name string) (*domain.Dataset, error) {
	ds, err := d.source.Load(ctx, name)
	if err != nil {
		d.logger.Error("Failed to load dataset", "run_id", runID, "dataset", name, "error", err)
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	d.logger.Debug("Dataset loaded", "run_id", runID, "dataset", name, "rows", ds.Len())
	return ds, nil
}

// process preprocesses one dataset; a nil enc fits a fresh encoder.
func (d *Driver) process(ctx context.Context, runID, name string, ds *domain.Dataset, enc *labels.Encoder) (*preprocess.Result, error) {
	var (
		res *preprocess.Result
		err error
	)
	if enc == nil {
		res, err = d.preprocessor.Preprocess(ctx, ds, d.cfg.Columns)
	} else {
		res, err = d.preprocessor.PreprocessWithEncoder(ctx, ds, d.cfg.Columns, enc)
	}
	if err != nil {
		d.logger.Error("Failed to preprocess dataset", "run_id", runID, "dataset", name, "error", err)
		return nil, fmt.Errorf("preprocess %s: %w", name, err)
	}
	res.Report.Name = name
	d.logger.Info("Dataset preprocessed",
		"run_id", runID,
		"dataset", name,
		"rows_in", res.Report.RowsIn,
		"rows_out", res.Report.RowsOut,
		"duplicates_removed", res.Report.DuplicatesRemoved,
		"classes", len(res.Report.Classes),
	)
	return res, nil
}

func (d *Driver) publish(ctx context.Context, runID string, train, test *domain.Dataset) error {
	for _, out := range []struct {
		name string
		ds   *domain.Dataset
	}{{TrainDataset, train}, {TestDataset, test}} {
		if err := d.sink.Stage(ctx, out.name, out.ds); err != nil {
			d.discard(runID)
			d.logger.Error("Failed to write dataset", "run_id", runID, "dataset", out.name, "error", err)
			return fmt.Errorf("write %s: %w", out.name, err)
		}
	}
	if err := d.sink.Commit(); err != nil {
		d.discard(runID)
		d.logger.Error("Failed to publish datasets", "run_id", runID, "error", err)
		return fmt.Errorf("publish: %w", err)
	}
	d.logger.Info("Processed data saved", "run_id", runID)
	return nil
}

func (d *Driver) discard(runID string) {
	if err := d.sink.Discard(); err != nil {
		d.logger.Warn("Failed to discard staged output", "run_id", runID, "error", err)
	}
}
