// Package stemmer adapts suffix-stripping stemmers to ports.Stemmer.
package stemmer

import (
	"fmt"

	"github.com/kljensen/snowball/english"
	porterstemmer "github.com/reiver/go-porterstemmer"

	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
)

// Type names a stemmer implementation.
type Type string

const (
	// PorterType is the original Porter algorithm.
	PorterType Type = "porter"
	// SnowballType is the Snowball English (Porter2) algorithm.
	SnowballType Type = "snowball"
	// NoneType leaves tokens untouched.
	NoneType Type = "none"
)

// Porter applies the classic Porter rules.
type Porter struct{}

// NewPorter creates a Porter stemmer.
func NewPorter() ports.Stemmer {
	return Porter{}
}

// Stem returns the Porter stem of word. Words the rule tables cannot handle
// (such as "eed") are returned unchanged.
func (Porter) Stem(word string) (stem string) {
	defer func() {
		if recover() != nil {
			stem = word
		}
	}()
	return porterstemmer.StemString(word)
}

// Snowball applies the Snowball English rules. Stopwords are stemmed too,
// since stopword removal happens before stemming.
type Snowball struct{}

// NewSnowball creates a Snowball English stemmer.
func NewSnowball() ports.Stemmer {
	return Snowball{}
}

// Stem returns the Snowball English stem of word.
func (Snowball) Stem(word string) string {
	return english.Stem(word, true)
}

// Identity returns every word unchanged.
type Identity struct{}

// NewIdentity creates a stemmer that does nothing.
func NewIdentity() ports.Stemmer {
	return Identity{}
}

// Stem returns word.
func (Identity) Stem(word string) string {
	return word
}

// New returns the stemmer registered under t.
func New(t Type) (ports.Stemmer, error) {
	switch t {
	case PorterType, "":
		return NewPorter(), nil
	case SnowballType:
		return NewSnowball(), nil
	case NoneType:
		return NewIdentity(), nil
	default:
		return nil, fmt.Errorf("unknown stemmer %q", t)
	}
}
