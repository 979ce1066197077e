package language

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

func TestEnglish_Stopwords(t *testing.T) {
	en := NewEnglish()
	set := en.Stopwords()

	assert.Equal(t, 179, en.Len())
	for _, w := range []string{"this", "was", "not", "very", "don't", "t", "wouldn"} {
		assert.Contains(t, set, w)
	}
	for _, w := range []string{"movie", "good", "bad", "This"} {
		assert.NotContains(t, set, w)
	}
}

func TestEnglish_StopwordsIsCopy(t *testing.T) {
	en := NewEnglish()
	set := en.Stopwords()
	delete(set, "the")

	assert.Contains(t, en.Stopwords(), "the")
}

func TestEnglish_Extra(t *testing.T) {
	en := NewEnglish("film", "")

	assert.Contains(t, en.Stopwords(), "film")
	assert.Equal(t, 180, en.Len())
}

func TestDictionaryLemmatizer_Lemma(t *testing.T) {
	lem, err := NewDictionaryLemmatizer()
	require.NoError(t, err)

	tests := []struct {
		token string
		want  string
	}{
		{"films", "film"},
		{"actors", "actor"},
		{"movies", "movie"},
		{"stories", "story"},
		{"children", "child"},
		{"women", "woman"},
		{"goes", "go"},
		// not listed, returned unchanged
		{"xyzzyq", "xyzzyq"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, lem.Lemma(tt.token))
		})
	}
}

func TestDictionaryLemmatizer_UnlistedPluralsUnchanged(t *testing.T) {
	lem, err := NewDictionaryLemmatizer()
	require.NoError(t, err)

	assert.Equal(t, "go", lem.Lemma("goes"))
	for _, token := range []string{"xyzzyqs", "blorptangles", "qwzxes"} {
		assert.Equal(t, token, lem.Lemma(token))
	}
}

func TestDictionaryLemmatizer_SharedDictionary(t *testing.T) {
	first, err := NewDictionaryLemmatizer()
	require.NoError(t, err)
	second, err := NewDictionaryLemmatizer()
	require.NoError(t, err)

	assert.Same(t, first.dict, second.dict)
	for _, token := range []string{"movies", "performances", "plots"} {
		assert.Equal(t, first.Lemma(token), second.Lemma(token))
	}
}

func TestIdentityLemmatizer(t *testing.T) {
	lem := NewIdentityLemmatizer()

	assert.Equal(t, "movies", lem.Lemma("movies"))
	assert.Equal(t, "identity", lem.Name())
}

func TestNewLemmatizer(t *testing.T) {
	dict, err := NewLemmatizer(domain.LemmatizerDictionary)
	require.NoError(t, err)
	assert.Equal(t, "dictionary", dict.Name())

	identity, err := NewLemmatizer(domain.LemmatizerIdentity)
	require.NoError(t, err)
	assert.Equal(t, "identity", identity.Name())

	_, err = NewLemmatizer("stemmer")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
