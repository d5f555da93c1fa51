package tokenizer

import (
	"regexp"
	"unicode/utf8"

	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
)

var wordPunctPattern = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]+`)

// WordPunctTokenizer splits text into runs of word characters and runs of
// punctuation. Contractions are not treated specially: "don't" yields
// "don", "'", "t".
type WordPunctTokenizer struct{}

// NewWordPunctTokenizer creates a word/punctuation run tokenizer.
func NewWordPunctTokenizer() ports.Tokenizer {
	return &WordPunctTokenizer{}
}

// Tokenize segments text into word and punctuation runs.
func (t *WordPunctTokenizer) Tokenize(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	return wordPunctPattern.FindAllString(text, -1), nil
}
