package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNLTKEnglish(t *testing.T) {
	s := NewNLTKEnglish()
	assert.Len(t, s, 179)

	for _, w := range []string{"i", "the", "who", "now", "you", "don't", "ll"} {
		assert.True(t, s.Contains(w), w)
	}
	for _, w := range []string{"love", "actor", "win", "money", "tomorrow", "The"} {
		assert.False(t, s.Contains(w), w)
	}
}

func TestNew(t *testing.T) {
	set, err := New(SnowballType)
	require.NoError(t, err)
	assert.True(t, set.Contains("the"))

	set, err = New("")
	require.NoError(t, err)
	assert.True(t, set.Contains("who"))

	_, err = New("klingon")
	assert.Error(t, err)
}
