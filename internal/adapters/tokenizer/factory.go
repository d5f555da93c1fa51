package tokenizer

import (
	"fmt"

	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
)

// Type names a tokenizer implementation.
type Type string

const (
	// TreebankType is the Penn Treebank style word tokenizer.
	TreebankType Type = "treebank"
	// WordPunctType splits on word/punctuation runs.
	WordPunctType Type = "wordpunct"
)

// Factory creates tokenizers by name.
type Factory struct{}

// NewFactory creates a new tokenizer factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the tokenizer registered under t.
func (f *Factory) Create(t Type) (ports.Tokenizer, error) {
	switch t {
	case TreebankType, "":
		return NewTreebankTokenizer(), nil
	case WordPunctType:
		return NewWordPunctTokenizer(), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", t)
	}
}
