package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/stemmer"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/stopwords"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/tokenizer"
)

// Validate performs validation on the loaded configuration.
// It must be called after loading or overriding; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Labels.Mode {
	case LabelModeFitTrain, LabelModePerDataset:
	default:
		return fmt.Errorf("labels.mode must be %q or %q (got %q)", LabelModeFitTrain, LabelModePerDataset, c.Labels.Mode)
	}

	if c.CSV.TextColumn == "" {
		return errors.New("csv.text_column must not be empty")
	}
	if c.CSV.TargetColumn == "" {
		return errors.New("csv.target_column must not be empty")
	}
	if c.CSV.TextColumn == c.CSV.TargetColumn {
		return fmt.Errorf("csv.text_column and csv.target_column must differ (both %q)", c.CSV.TextColumn)
	}
	if n := utf8.RuneCountInString(c.CSV.Delimiter); n != 1 {
		return fmt.Errorf("csv.delimiter must be a single character (got %q)", c.CSV.Delimiter)
	}
	switch c.CSV.Delimiter {
	case "\"", "\r", "\n":
		return fmt.Errorf("csv.delimiter %q is not allowed", c.CSV.Delimiter)
	}

	if c.Input.TrainFile == "" || c.Input.TestFile == "" {
		return errors.New("input.train_file and input.test_file are required")
	}
	if c.Output.TrainFile == "" || c.Output.TestFile == "" {
		return errors.New("output.train_file and output.test_file are required")
	}

	switch c.Log.Level {
	case LogLevelDebug, LogLevelInfo:
	default:
		return fmt.Errorf("log.level must be %q or %q (got %q)", LogLevelDebug, LogLevelInfo, c.Log.Level)
	}

	if err := c.Text.validate(); err != nil {
		return fmt.Errorf("text: %w", err)
	}
	return nil
}

func (t *TextConfig) validate() error {
	switch tokenizer.Type(t.Tokenizer) {
	case tokenizer.TreebankType, tokenizer.WordPunctType:
	default:
		return fmt.Errorf("unknown tokenizer %q", t.Tokenizer)
	}
	switch stemmer.Type(t.Stemmer) {
	case stemmer.PorterType, stemmer.SnowballType, stemmer.NoneType:
	default:
		return fmt.Errorf("unknown stemmer %q", t.Stemmer)
	}
	switch stopwords.Type(t.Stopwords) {
	case stopwords.NLTKType, stopwords.SnowballType:
	default:
		return fmt.Errorf("unknown stopword set %q", t.Stopwords)
	}
	return nil
}
