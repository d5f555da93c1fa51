// textprep.go
// Package textprep normalizes free text for classic NLP models and
// preprocesses labeled text datasets.
//
// A text is normalized by lowercasing, tokenizing, keeping alphanumeric
// tokens, dropping stopwords and punctuation, stemming, and joining the
// surviving tokens with single spaces:
//
//	"I loved the loving actor who acted amazingly!" -> "love love actor act amazingli"
//
// A dataset is preprocessed by encoding its target column to integer codes,
// dropping exact duplicate rows and normalizing its text column.
//
// This version uses the functional options pattern to configure the
// tokenizer, stemmer, stopword list and logging.
package textprep

import (
	"context"
	"io"
	"os"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/logger"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/stemmer"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/stopwords"
	"github.com/baditaflorin/go_text_preprocessing/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/domain"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/preprocess"
	"github.com/baditaflorin/go_text_preprocessing/internal/core/textnorm"
	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
)

// Dataset is a header plus rows of string cells.
type Dataset = domain.Dataset

// Columns names the text and target columns of a dataset.
type Columns = domain.Columns

// Report summarizes a preprocessed dataset.
type Report = domain.Report

// Errors returned by dataset preprocessing.
var (
	ErrMissingColumn = domain.ErrMissingColumn
	ErrTransform     = domain.ErrTransform
)

// NewDataset builds a dataset from a header and rows.
func NewDataset(header []string, rows [][]string) *Dataset {
	return domain.NewDataset(header, rows)
}

// Tokenizer, stemmer and stopword list names.
const (
	TokenizerTreebank  = string(tokenizer.TreebankType)
	TokenizerWordPunct = string(tokenizer.WordPunctType)
	StemmerPorter      = string(stemmer.PorterType)
	StemmerSnowball    = string(stemmer.SnowballType)
	StemmerNone        = string(stemmer.NoneType)
	StopwordsNLTK      = string(stopwords.NLTKType)
	StopwordsSnowball  = string(stopwords.SnowballType)
)

// Config holds configuration options for the preprocessor.
type Config struct {
	Tokenizer string
	Stemmer   string
	Stopwords string
	// Trace logs every normalization stage at debug level.
	Trace   bool
	Columns Columns
	// Logger receives the trace and error lines. When nil, a logger writing
	// to LogOutput is created and owned by the preprocessor.
	Logger    l.Logger
	LogOutput io.Writer
}

// Option defines a functional option for configuring the preprocessor.
type Option func(*Config)

// WithTokenizer selects the tokenizer by name.
func WithTokenizer(name string) Option {
	return func(cfg *Config) {
		cfg.Tokenizer = name
	}
}

// WithStemmer selects the stemmer by name.
func WithStemmer(name string) Option {
	return func(cfg *Config) {
		cfg.Stemmer = name
	}
}

// WithStopwords selects the stopword list by name.
func WithStopwords(name string) Option {
	return func(cfg *Config) {
		cfg.Stopwords = name
	}
}

// WithTrace enables per-stage debug logging.
func WithTrace(trace bool) Option {
	return func(cfg *Config) {
		cfg.Trace = trace
	}
}

// WithColumns sets the dataset column names.
func WithColumns(cols Columns) Option {
	return func(cfg *Config) {
		cfg.Columns = cols
	}
}

// WithLogger sets a custom logger. The caller keeps ownership of it.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithLogOutput sets where the default logger writes.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// Preprocessor normalizes texts and preprocesses datasets. It is safe for
// concurrent use.
type Preprocessor struct {
	config       Config
	logger       ports.Logger
	ownsLogger   bool
	normalizer   *textnorm.Normalizer
	preprocessor *preprocess.Preprocessor
}

// New creates a Preprocessor with the provided functional options.
// If no logger is provided, a default logger is created; release it with Close.
func New(opts ...Option) (*Preprocessor, error) {
	cfg := Config{
		Tokenizer: TokenizerTreebank,
		Stemmer:   StemmerPorter,
		Stopwords: StopwordsNLTK,
		Columns:   domain.DefaultColumns(),
		LogOutput: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	tok, err := tokenizer.NewFactory().Create(tokenizer.Type(cfg.Tokenizer))
	if err != nil {
		return nil, err
	}
	stem, err := stemmer.New(stemmer.Type(cfg.Stemmer))
	if err != nil {
		return nil, err
	}
	stop, err := stopwords.New(stopwords.Type(cfg.Stopwords))
	if err != nil {
		return nil, err
	}

	p := &Preprocessor{config: cfg}
	if cfg.Logger != nil {
		p.logger = logger.FromExisting(cfg.Logger)
	} else {
		base, err := createDefaultLogger(cfg.LogOutput, cfg.Trace)
		if err != nil {
			return nil, err
		}
		p.logger = logger.FromExisting(base)
		p.ownsLogger = true
	}

	p.normalizer, err = textnorm.NewNormalizer(textnorm.Config{Trace: cfg.Trace}, p.logger, tok, stem, stop)
	if err != nil {
		p.Close()
		return nil, err
	}
	p.preprocessor, err = preprocess.NewPreprocessor(p.normalizer, p.logger)
	if err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// Normalize returns the canonical token string of text.
func (p *Preprocessor) Normalize(text string) (string, error) {
	return p.normalizer.Normalize(text)
}

// Process label-encodes, deduplicates and normalizes ds, returning a new
// dataset. ds is left untouched.
func (p *Preprocessor) Process(ctx context.Context, ds *Dataset) (*Dataset, Report, error) {
	res, err := p.preprocessor.Preprocess(ctx, ds, p.config.Columns)
	if err != nil {
		return nil, Report{}, err
	}
	return res.Dataset, res.Report, nil
}

// Close releases the default logger. Loggers passed with WithLogger are left open.
func (p *Preprocessor) Close() error {
	if p.ownsLogger && p.logger != nil {
		return p.logger.Close()
	}
	return nil
}

// NormalizeWithDefaults normalizes text with the default configuration.
func NormalizeWithDefaults(text string) (string, error) {
	p, err := New(WithLogOutput(io.Discard))
	if err != nil {
		return "", err
	}
	defer p.Close()
	return p.Normalize(text)
}
