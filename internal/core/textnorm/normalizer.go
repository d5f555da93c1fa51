// Package textnorm turns one raw text into its canonical token string:
// lowercase, tokenize, keep alphanumeric tokens, drop stopwords and
// punctuation, stem, join with single spaces.
package textnorm

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baditaflorin/go_text_preprocessing/internal/core/domain"
	"github.com/baditaflorin/go_text_preprocessing/internal/pool"
	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
)

// ErrMalformedText is returned for input that is not valid UTF-8.
var ErrMalformedText = errors.New("text is not valid UTF-8")

// ErrCollaboratorPanic is returned when the tokenizer or stemmer panics.
var ErrCollaboratorPanic = errors.New("tokenizer or stemmer panicked")

// asciiPunctuation is the set of single characters removed after stopword filtering.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Config holds configuration for the normalizer.
type Config struct {
	// Trace logs every intermediate stage at debug level.
	Trace bool
}

// Normalizer implements ports.TextNormalizer. It holds no mutable state and
// may be shared.
type Normalizer struct {
	config    Config
	logger    ports.Logger
	tokenizer ports.Tokenizer
	stemmer   ports.Stemmer
	stopwords ports.StopwordSet
	builders  *pool.StringBuilderPool
}

// NewNormalizer creates a normalizer from its collaborators.
func NewNormalizer(
	config Config,
	logger ports.Logger,
	tokenizer ports.Tokenizer,
	stemmer ports.Stemmer,
	stopwords ports.StopwordSet,
) (*Normalizer, error) {
	switch {
	case logger == nil:
		return nil, errors.New("textnorm: logger is required")
	case tokenizer == nil:
		return nil, errors.New("textnorm: tokenizer is required")
	case stemmer == nil:
		return nil, errors.New("textnorm: stemmer is required")
	case stopwords == nil:
		return nil, errors.New("textnorm: stopword set is required")
	}

	return &Normalizer{
		config:    config,
		logger:    logger,
		tokenizer: tokenizer,
		stemmer:   stemmer,
		stopwords: stopwords,
		builders:  pool.NewStringBuilderPool(),
	}, nil
}

// Normalize returns the canonical form of text. Any failure is returned as a
// *domain.TransformError carrying the input; there is no partial output.
func (n *Normalizer) Normalize(text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", n.fail(text, fmt.Errorf("%w: %v", ErrCollaboratorPanic, r))
		}
	}()
	n.trace("Original text", "text", text)

	if !utf8.ValidString(text) {
		return "", n.fail(text, ErrMalformedText)
	}

	// A Caser is stateful, so a fresh one keeps Normalize safe for concurrent use.
	lowered := cases.Lower(language.Und).String(text)
	n.trace("Lowercased text", "text", lowered)

	tokens, err := n.tokenizer.Tokenize(lowered)
	if err != nil {
		return "", n.fail(text, err)
	}
	n.trace("Tokenized text", "tokens", tokens)

	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if isAlnum(tok) {
			kept = append(kept, tok)
		}
	}
	n.trace("Alphanumeric filtered", "tokens", kept)

	filtered := make([]string, 0, len(kept))
	for _, tok := range kept {
		if n.stopwords.Contains(tok) || isPunctuation(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}
	n.trace("Stopwords and punctuation removed", "tokens", filtered)

	stemmed := make([]string, len(filtered))
	for i, tok := range filtered {
		stemmed[i] = n.stemmer.Stem(tok)
	}
	n.trace("Stemmed text", "tokens", stemmed)

	out = n.builders.Join(stemmed, " ")
	n.trace("Final transformed text", "text", out)
	return out, nil
}

func (n *Normalizer) fail(text string, err error) error {
	n.logger.Error("Error in text normalization", "error", err)
	return &domain.TransformError{Row: -1, Input: text, Err: err}
}

func (n *Normalizer) trace(msg string, keysAndValues ...interface{}) {
	if n.config.Trace {
		n.logger.Debug(msg, keysAndValues...)
	}
}

// isAlnum reports whether tok is non-empty and made only of letters and numbers.
func isAlnum(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

func isPunctuation(tok string) bool {
	return len(tok) == 1 && strings.IndexByte(asciiPunctuation, tok[0]) >= 0
}
