// textprep_test.go
package textprep

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Worked example",
			text:     "I loved the loving actor who acted amazingly!",
			expected: "love love actor act amazingli",
		},
		{
			name:     "Only stopwords",
			text:     "I am what I am",
			expected: "",
		},
		{
			name:     "Empty text",
			text:     "",
			expected: "",
		},
		{
			name:     "Numbers survive",
			text:     "Call 911 now",
			expected: "call 911",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeWithDefaults(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNormalizeMalformed(t *testing.T) {
	_, err := NormalizeWithDefaults("bad \xff byte")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransform)
}

func TestNewOptions(t *testing.T) {
	p, err := New(
		WithLogOutput(io.Discard),
		WithTokenizer(TokenizerWordPunct),
		WithStemmer(StemmerNone),
		WithStopwords(StopwordsSnowball),
		WithTrace(true),
	)
	require.NoError(t, err)
	defer p.Close()

	got, err := p.Normalize("Cats, dogs & birds!")
	require.NoError(t, err)
	assert.Equal(t, "cats dogs birds", got)
}

func TestNewUnknownComponents(t *testing.T) {
	for _, opt := range []Option{
		WithTokenizer("bpe"),
		WithStemmer("lancaster"),
		WithStopwords("spacy"),
	} {
		_, err := New(WithLogOutput(io.Discard), opt)
		assert.Error(t, err)
	}
}

func TestProcess(t *testing.T) {
	p, err := New(WithLogOutput(io.Discard), WithStemmer(StemmerNone))
	require.NoError(t, err)
	defer p.Close()

	in := NewDataset([]string{"text", "target"}, [][]string{
		{"Win money now!!!", "spam"},
		{"See you tomorrow", "ham"},
		{"Win money now!!!", "spam"},
	})
	out, report, err := p.Process(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"win money", "1"}, {"see tomorrow", "0"}}, out.Rows)
	assert.Equal(t, 1, report.DuplicatesRemoved)
	assert.Equal(t, "Win money now!!!", in.Rows[0][0])
}

func TestProcessCustomColumns(t *testing.T) {
	p, err := New(WithLogOutput(io.Discard), WithColumns(Columns{Text: "body", Target: "label"}))
	require.NoError(t, err)
	defer p.Close()

	_, _, err = p.Process(context.Background(), NewDataset([]string{"text", "target"}, nil))
	assert.ErrorIs(t, err, ErrMissingColumn)

	out, _, err := p.Process(context.Background(), NewDataset([]string{"label", "body"}, [][]string{{"x", "Hello"}}))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "hello"}}, out.Rows)
}

func TestTraceReachesLogOutput(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(WithLogOutput(&buf), WithTrace(true))
	require.NoError(t, err)

	_, err = p.Normalize("Win money now!!!")
	require.NoError(t, err)
	require.NoError(t, p.Close())

	assert.Contains(t, buf.String(), "Lowercased text")
	assert.Contains(t, buf.String(), "Final transformed text")
	assert.NotContains(t, buf.String(), "source=")
}
