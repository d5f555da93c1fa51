package ports

// TextNormalizer maps one raw text to its canonical token string.
type TextNormalizer interface {
	Normalize(text string) (string, error)
}

// Tokenizer segments already lowercased text into word-level tokens.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Stemmer reduces a single token to its root form.
type Stemmer interface {
	Stem(word string) string
}

// StopwordSet reports whether a token is a stopword.
type StopwordSet interface {
	Contains(word string) bool
}
