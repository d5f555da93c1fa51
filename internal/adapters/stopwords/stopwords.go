// Package stopwords provides English stopword sets.
package stopwords

import (
	"fmt"

	"github.com/kljensen/snowball/english"

	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
)

// Type names a stopword list.
type Type string

const (
	// NLTKType is the 179-word NLTK English list.
	NLTKType Type = "nltk"
	// SnowballType is the Snowball English list.
	SnowballType Type = "snowball"
)

// nltkEnglish is the NLTK English stopword corpus. Clitic fragments such as
// "don", "ll" and "t" are members so that tokenizer output is covered.
var nltkEnglish = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he",
	"him", "his", "himself", "she", "she's", "her", "hers", "herself", "it", "it's",
	"its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which",
	"who", "whom", "this", "that", "that'll", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having", "do",
	"does", "did", "doing", "a", "an", "the", "and", "but", "if", "or", "because",
	"as", "until", "while", "of", "at", "by", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after", "above", "below",
	"to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some", "such", "no",
	"nor", "not", "only", "own", "same", "so", "than", "too", "very", "s", "t",
	"can", "will", "just", "don", "don't", "should", "should've", "now", "d", "ll",
	"m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't",
	"didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn",
	"mustn't", "needn", "needn't", "shan", "shan't", "shouldn", "shouldn't", "wasn",
	"wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
}

// Set is an in-memory stopword set.
type Set map[string]struct{}

// NewSet builds a set from words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// NewNLTKEnglish returns the NLTK English stopword set.
func NewNLTKEnglish() Set {
	return NewSet(nltkEnglish...)
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Snowball is the Snowball English stopword list.
type Snowball struct{}

// Contains reports whether word is a Snowball English stopword.
func (Snowball) Contains(word string) bool {
	return english.IsStopWord(word)
}

// New returns the stopword set registered under t.
func New(t Type) (ports.StopwordSet, error) {
	switch t {
	case NLTKType, "":
		return NewNLTKEnglish(), nil
	case SnowballType:
		return Snowball{}, nil
	default:
		return nil, fmt.Errorf("unknown stopword list %q", t)
	}
}
