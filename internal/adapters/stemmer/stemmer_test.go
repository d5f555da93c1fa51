package stemmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPorterStem(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"loved", "love"},
		{"loving", "love"},
		{"acted", "act"},
		{"actor", "actor"},
		{"amazingly", "amazingli"},
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"cats", "cat"},
		{"running", "run"},
		{"relational", "relat"},
	}

	p := NewPorter()
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Stem(tc.word))
		})
	}
}

func TestPorterStemIsFixedPointOnStems(t *testing.T) {
	p := NewPorter()
	for _, word := range []string{"love", "act", "actor", "cat", "run"} {
		assert.Equal(t, word, p.Stem(word), word)
	}
}

func TestPorterStemShortDoubleE(t *testing.T) {
	p := NewPorter()
	for _, word := range []string{"eed", "eeds"} {
		assert.NotPanics(t, func() { p.Stem(word) }, word)
	}
	assert.Equal(t, "eed", p.Stem("eed"))
	assert.Equal(t, "eeds", p.Stem("eeds"))
}

func TestSnowballStem(t *testing.T) {
	s := NewSnowball()
	assert.Equal(t, "run", s.Stem("running"))
	assert.Equal(t, "cat", s.Stem("cats"))
}

func TestNew(t *testing.T) {
	for _, typ := range []Type{PorterType, SnowballType, NoneType, ""} {
		st, err := New(typ)
		require.NoError(t, err, typ)
		assert.NotNil(t, st)
	}

	_, err := New("lancaster")
	assert.Error(t, err)

	id, err := New(NoneType)
	require.NoError(t, err)
	assert.Equal(t, "running", id.Stem("running"))
}
