package vectorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

func docs(tokens ...[]string) []domain.NormalizedDocument {
	out := make([]domain.NormalizedDocument, len(tokens))
	for i, t := range tokens {
		out[i] = domain.NewNormalizedDocument(t)
	}
	return out
}

func TestNew(t *testing.T) {
	assert.Equal(t, 1, New().minCount)
	assert.Equal(t, 1, New(WithMinCount(0)).minCount)
	assert.Equal(t, 3, New(WithMinCount(3)).minCount)
}

func TestFit_LexicographicOrder(t *testing.T) {
	train := docs(
		[]string{"movie", "good", "good"},
		[]string{"plot", "bad", "movie"},
	)

	vocab := New().Fit(train)

	assert.Equal(t, []string{"bad", "good", "movie", "plot"}, vocab.Terms())
	idx, ok := vocab.Index("movie")
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestFit_Empty(t *testing.T) {
	assert.Equal(t, 0, New().Fit(nil).Size())
	assert.Equal(t, 0, New().Fit(docs([]string{}, nil)).Size())
}

func TestFit_MinCount(t *testing.T) {
	train := docs(
		[]string{"good", "film"},
		[]string{"good", "plot"},
		[]string{"bad", "film", "film"},
	)

	vocab := New(WithMinCount(2)).Fit(train)

	assert.Equal(t, []string{"film", "good"}, vocab.Terms())
}

func TestTransform_Counts(t *testing.T) {
	c := New()
	vocab := c.Fit(docs([]string{"bad", "good", "movie"}))

	vectors := c.Transform(docs([]string{"good", "good", "movie"}), vocab)

	require.Len(t, vectors, 1)
	assert.Equal(t, []float64{0, 2, 1}, vectors[0].Dense())
}

func TestTransform_UnseenTokensIgnored(t *testing.T) {
	c := New()
	vocab := c.Fit(docs([]string{"good", "movie"}))

	vectors := c.Transform(docs([]string{"terrible", "sequel"}, []string{"good", "awful"}), vocab)

	require.Len(t, vectors, 2)
	assert.True(t, vectors[0].IsZero())
	assert.Equal(t, []float64{1, 0}, vectors[1].Dense())
}

func TestTransform_LengthMatchesVocabulary(t *testing.T) {
	c := New()
	train := docs(
		[]string{"a", "b", "c"},
		[]string{"c", "d"},
	)
	vocab := c.Fit(train)
	test := docs([]string{"d"}, []string{}, []string{"x", "a", "a"})

	for _, v := range c.Transform(test, vocab) {
		assert.Equal(t, vocab.Size(), v.Len())
	}
}

func TestTransform_EmptyVocabulary(t *testing.T) {
	c := New()
	vocab := c.Fit(nil)

	vectors := c.Transform(docs([]string{"good"}), vocab)

	require.Len(t, vectors, 1)
	assert.Equal(t, 0, vectors[0].Len())
}

func TestFitTransform(t *testing.T) {
	vocab, vectors := New().FitTransform(docs([]string{"b", "a", "b"}))

	assert.Equal(t, []string{"a", "b"}, vocab.Terms())
	require.Len(t, vectors, 1)
	assert.Equal(t, []float64{1, 2}, vectors[0].Dense())
}
