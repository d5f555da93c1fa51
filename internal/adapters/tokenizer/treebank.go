package tokenizer

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_text_preprocessing/internal/ports"
)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

type rule struct {
	re   *regexp.Regexp
	repl string
}

func apply(text string, rules []rule) string {
	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}

// Rule tables of the Penn Treebank word tokenizer, in application order.
var (
	startingQuotes = []rule{
		{regexp.MustCompile("([«“‘„]|[`]+)"), " ${1} "},
		{regexp.MustCompile(`^"`), "``"},
		{regexp.MustCompile("(``)"), " ${1} "},
		{regexp.MustCompile(`([ (\[{<])("|'{2})`), "${1} `` "},
	}

	// A leading apostrophe glued to a single letter, except the clitic letters.
	openingApostrophe = regexp.MustCompile(`'(\w)\b`)

	punctuation = []rule{
		{regexp.MustCompile(`([^.])(\.)([\])}>"']*)\s*$`), "${1} ${2} ${3} "},
		{regexp.MustCompile(`([:,])([^\d])`), " ${1} ${2}"},
		{regexp.MustCompile(`([:,])$`), " ${1} "},
		{regexp.MustCompile(`\.{2,}`), " ${0} "},
		{regexp.MustCompile(`[;@#$%&]`), " ${0} "},
		{regexp.MustCompile(`([^.])(\.)([\])}>"']*)\s*$`), "${1} ${2}${3} "},
		{regexp.MustCompile(`[?!]`), " ${0} "},
		{regexp.MustCompile(`([^'])' `), "${1} ' "},
		{regexp.MustCompile(`[*]`), " ${0} "},
		{regexp.MustCompile(`[\]\[(){}<>]`), " ${0} "},
		{regexp.MustCompile(`--`), " -- "},
	}

	endingQuotes = []rule{
		{regexp.MustCompile(`([»”’])`), " ${1} "},
		{regexp.MustCompile(`''`), " '' "},
		{regexp.MustCompile(`"`), " '' "},
		{regexp.MustCompile(`([^' ])('[sS]|'[mM]|'[dD]|') `), "${1} ${2} "},
		{regexp.MustCompile(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `), "${1} ${2} "},
	}

	contractions = []rule{
		{regexp.MustCompile(`(?i)\b(can)(not)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(d)('ye)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(gim)(me)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(gon)(na)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(got)(ta)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(lem)(me)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(more)('n)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i)\b(wan)(na)(\s)`), " ${1} ${2} ${3}"},
		{regexp.MustCompile(`(?i) ('t)(is)\b`), " ${1} ${2} "},
		{regexp.MustCompile(`(?i) ('t)(was)\b`), " ${1} ${2} "},
	}
)

// abbreviations never end a sentence even when followed by a period.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "vs": {}, "etc": {}, "inc": {}, "ltd": {}, "co": {}, "corp": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {}, "aug": {},
	"sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {}, "no": {}, "approx": {},
	"dept": {}, "est": {}, "fig": {}, "gen": {}, "gov": {}, "lt": {}, "mt": {},
	"rev": {}, "sen": {}, "sgt": {}, "col": {}, "capt": {},
}

// TreebankTokenizer splits text into sentences on terminal punctuation and
// then applies the Penn Treebank word rules to each sentence: punctuation
// becomes its own token, clitics are split off ("don't" -> "do", "n't") and
// intra-word hyphens, periods and digit-group commas are kept.
type TreebankTokenizer struct{}

// NewTreebankTokenizer creates the default word tokenizer.
func NewTreebankTokenizer() ports.Tokenizer {
	return &TreebankTokenizer{}
}

// Tokenize segments text into word-level tokens.
func (t *TreebankTokenizer) Tokenize(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	var tokens []string
	for _, sentence := range splitSentences(text) {
		tokens = append(tokens, treebankWords(sentence)...)
	}
	return tokens, nil
}

func treebankWords(text string) []string {
	text = apply(text, startingQuotes)
	text = openingApostrophe.ReplaceAllStringFunc(text, func(m string) string {
		if strings.ContainsAny(strings.ToLower(m[1:]), "mtsdn") {
			return m
		}
		return "' " + m[1:]
	})
	text = apply(text, punctuation)
	text = " " + text + " "
	text = apply(text, endingQuotes)
	text = apply(text, contractions)
	return strings.Fields(text)
}

// splitSentences groups whitespace separated chunks into sentences. A chunk
// closes a sentence when it ends in '?', '!' or a period that does not belong
// to an abbreviation, an initial or a dotted acronym.
func splitSentences(text string) []string {
	chunks := strings.Fields(text)
	if len(chunks) == 0 {
		return nil
	}
	var sentences []string
	start := 0
	for i, chunk := range chunks {
		if i == len(chunks)-1 || endsSentence(chunk) {
			sentences = append(sentences, strings.Join(chunks[start:i+1], " "))
			start = i + 1
		}
	}
	return sentences
}

func endsSentence(chunk string) bool {
	trimmed := strings.TrimRight(chunk, `"')]}»”’`)
	switch {
	case trimmed == "":
		return false
	case strings.HasSuffix(trimmed, "?"), strings.HasSuffix(trimmed, "!"):
		return true
	case strings.HasSuffix(trimmed, ".."):
		return false
	case !strings.HasSuffix(trimmed, "."):
		return false
	}
	word := strings.ToLower(strings.TrimLeft(strings.TrimSuffix(trimmed, "."), `"'([{«“‘`))
	if word == "" {
		return true
	}
	if strings.Contains(word, ".") {
		return false
	}
	if r, size := utf8.DecodeRuneInString(word); size == len(word) && unicode.IsLetter(r) {
		return false
	}
	_, abbrev := abbreviations[word]
	return !abbrev
}
