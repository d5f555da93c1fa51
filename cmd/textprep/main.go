package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/csvstore"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/logger"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/stemmer"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/stopwords"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_text_preprocessing/internal/config"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/domain"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/preprocess"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/textnorm"
	"github.com/baditaflorin/go_text_preprocessing/internal/pipeline"
	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
)

// Command-line flags
var (
	configPath   string
	textColumn   string
	targetColumn string
	labelMode    string
)

func init() {
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file (default $"+config.PathEnv+")")
	flag.StringVar(&textColumn, "text-column", "", "Name of the free-text column (overrides config)")
	flag.StringVar(&targetColumn, "target-column", "", "Name of the label column (overrides config)")
	flag.StringVar(&labelMode, "label-mode", "", "Label encoding across datasets: 'fit_train' or 'per_dataset' (overrides config)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nReads the raw train/test CSV files, encodes labels, drops duplicate rows,\n")
		fmt.Fprintf(os.Stderr, "normalizes the text column and writes the processed CSV files.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --config=textprep.yaml --label-mode=per_dataset\n", os.Args[0])
	}
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewStdLogger(logger.Options{
		Dir:     cfg.Log.Dir,
		File:    cfg.Log.File,
		Console: !cfg.Log.Quiet,
		JSON:    cfg.Log.JSON,
		Debug:   cfg.Log.Level == config.LogLevelDebug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()

	if err != nil {
		log.Error("Failed to complete the data preprocessing process", "error", err)
	}
	if cerr := log.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Error closing logger: %v\n", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config and applies the flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if textColumn != "" {
		cfg.CSV.TextColumn = textColumn
	}
	if targetColumn != "" {
		cfg.CSV.TargetColumn = targetColumn
	}
	if labelMode != "" {
		cfg.Labels.Mode = labelMode
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, log ports.Logger) error {
	tok, err := tokenizer.NewFactory().Create(tokenizer.Type(cfg.Text.Tokenizer))
	if err != nil {
		return err
	}
	stem, err := stemmer.New(stemmer.Type(cfg.Text.Stemmer))
	if err != nil {
		return err
	}
	stop, err := stopwords.New(stopwords.Type(cfg.Text.Stopwords))
	if err != nil {
		return err
	}

	normalizer, err := textnorm.NewNormalizer(textnorm.Config{Trace: cfg.Text.Trace}, log, tok, stem, stop)
	if err != nil {
		return err
	}
	preprocessor, err := preprocess.NewPreprocessor(normalizer, log)
	if err != nil {
		return err
	}

	delim := csvstore.WithDelimiter(cfg.DelimiterRune())
	source := csvstore.NewSource(map[string]string{
		pipeline.TrainDataset: cfg.TrainPath(),
		pipeline.TestDataset:  cfg.TestPath(),
	}, delim)
	sink := csvstore.NewSink(map[string]string{
		pipeline.TrainDataset: cfg.TrainOutputPath(),
		pipeline.TestDataset:  cfg.TestOutputPath(),
	}, delim)

	driver, err := pipeline.NewDriver(pipeline.Config{
		Columns:   domain.Columns{Text: cfg.CSV.TextColumn, Target: cfg.CSV.TargetColumn},
		LabelMode: pipeline.LabelMode(cfg.Labels.Mode),
	}, source, sink, preprocessor, log)
	if err != nil {
		return err
	}

	res, err := driver.Run(ctx)
	if err != nil {
		return err
	}
	log.Info("Processed datasets written",
		"run_id", res.RunID,
		"train", cfg.TrainOutputPath(),
		"test", cfg.TestOutputPath(),
	)
	return nil
}
