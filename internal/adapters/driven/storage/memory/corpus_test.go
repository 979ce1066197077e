package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

func TestCorpus_Read(t *testing.T) {
	ctx := context.Background()
	c := NewCorpusFrom(map[string][]string{
		"pos": {"great", "superb"},
		"neg": {"awful"},
	})

	categories, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"neg", "pos"}, categories)

	docs, err := c.Documents(ctx, "pos")
	require.NoError(t, err)
	assert.Equal(t, []string{"great", "superb"}, docs)
}

func TestCorpus_Documents_NotFound(t *testing.T) {
	_, err := NewCorpus().Documents(context.Background(), "pos")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorpus_NewCorpusFrom_CopiesInput(t *testing.T) {
	src := map[string][]string{"pos": {"a", "b"}}
	c := NewCorpusFrom(src)
	src["pos"][0] = "changed"

	docs, err := c.Documents(context.Background(), "pos")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, docs)
	assert.Equal(t, "memory", c.Name())
}

func TestCorpus_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	c := NewCorpusFrom(map[string][]string{"pos": {"a"}, "neg": {"b"}})
	next := map[string][]string{"pos": {"c"}}

	require.NoError(t, c.ReplaceAll(ctx, next))
	next["pos"][0] = "mutated"

	categories, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pos"}, categories)
	docs, err := c.Documents(ctx, "pos")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, docs)
}

func TestCorpus_ReplaceAll_InvalidCategoryKeepsContents(t *testing.T) {
	ctx := context.Background()
	c := NewCorpusFrom(map[string][]string{"pos": {"a"}})

	err := c.ReplaceAll(ctx, map[string][]string{"": {"x"}, "neg": {"b"}})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	docs, err := c.Documents(ctx, "pos")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, docs)
}
