package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDocs(n int) []Document {
	docs := make([]Document, n)
	for i := range docs {
		label := LabelNegative
		if i%2 == 0 {
			label = LabelPositive
		}
		docs[i] = NewDocument(fmt.Sprintf("review %d", i), label)
	}
	return docs
}

func TestDocument_Accessors(t *testing.T) {
	doc := NewDocument("A fine film.", LabelPositive)
	assert.Equal(t, "A fine film.", doc.Text())
	assert.Equal(t, LabelPositive, doc.Label())
}

func TestNormalizedDocument_CopiesInput(t *testing.T) {
	tokens := []string{"movie", "good"}
	nd := NewNormalizedDocument(tokens)
	tokens[0] = "changed"

	assert.Equal(t, []string{"movie", "good"}, nd.Tokens())
	assert.Equal(t, "movie good", nd.Text())
	assert.Equal(t, 2, nd.Len())

	out := nd.Tokens()
	out[1] = "bad"
	assert.Equal(t, "movie good", nd.Text())
}

func TestNormalizedDocument_Empty(t *testing.T) {
	nd := NewNormalizedDocument(nil)
	assert.True(t, nd.IsEmpty())
	assert.Equal(t, "", nd.Text())
	assert.Nil(t, nd.Tokens())

	var seen int
	nd.Each(func(string) { seen++ })
	assert.Zero(t, seen)
}

func TestNewSplit(t *testing.T) {
	docs := makeDocs(10)

	split, err := NewSplit(docs, 0.2)

	require.NoError(t, err)
	assert.Equal(t, 8, split.TrainSize())
	assert.Equal(t, 2, split.TestSize())
	assert.Equal(t, docs[:8], split.Train())
	assert.Equal(t, docs[8:], split.Test())
}

func TestNewSplit_RoundsTestSizeUp(t *testing.T) {
	split, err := NewSplit(makeDocs(11), 0.2)

	require.NoError(t, err)
	assert.Equal(t, 3, split.TestSize())
	assert.Equal(t, 8, split.TrainSize())
}

func TestNewSplit_Immutable(t *testing.T) {
	docs := makeDocs(4)
	split, err := NewSplit(docs, 0.5)
	require.NoError(t, err)

	docs[0] = NewDocument("mutated", LabelNegative)
	train := split.Train()
	train[1] = NewDocument("mutated", LabelNegative)

	assert.Equal(t, "review 0", split.Train()[0].Text())
	assert.Equal(t, "review 1", split.Train()[1].Text())
}

func TestNewSplit_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		ratio float64
	}{
		{"zero ratio", 10, 0},
		{"ratio of one", 10, 1},
		{"negative ratio", 10, -0.1},
		{"empty corpus", 0, 0.2},
		{"single document", 1, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSplit(makeDocs(tt.n), tt.ratio)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestLabels(t *testing.T) {
	docs := makeDocs(3)
	assert.Equal(t, []Label{LabelPositive, LabelNegative, LabelPositive}, Labels(docs))
}
