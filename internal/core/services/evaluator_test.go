package services

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

const (
	pos = domain.LabelPositive
	neg = domain.LabelNegative
)

func TestEvaluator_Accuracy(t *testing.T) {
	tests := []struct {
		name      string
		predicted []domain.Label
		actual    []domain.Label
		expected  float64
	}{
		{
			name:      "two of three",
			predicted: []domain.Label{pos, neg, pos},
			actual:    []domain.Label{pos, neg, neg},
			expected:  2.0 / 3.0,
		},
		{
			name:      "all correct",
			predicted: []domain.Label{neg, pos},
			actual:    []domain.Label{neg, pos},
			expected:  1,
		},
		{
			name:      "all wrong",
			predicted: []domain.Label{neg, pos},
			actual:    []domain.Label{pos, neg},
			expected:  0,
		},
	}

	e := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := e.Accuracy(tt.predicted, tt.actual)

			require.NoError(t, err)
			assert.InDelta(t, tt.expected, acc, 1e-12)
			assert.GreaterOrEqual(t, acc, 0.0)
			assert.LessOrEqual(t, acc, 1.0)
		})
	}
}

func TestEvaluator_Accuracy_FormatsToFourDecimals(t *testing.T) {
	acc, err := NewEvaluator().Accuracy(
		[]domain.Label{pos, neg, pos},
		[]domain.Label{pos, neg, neg},
	)

	require.NoError(t, err)
	assert.Equal(t, "0.6667", fmt.Sprintf("%.4f", acc))
}

func TestEvaluator_Accuracy_Errors(t *testing.T) {
	e := NewEvaluator()

	_, err := e.Accuracy([]domain.Label{pos}, []domain.Label{pos, neg})
	assert.ErrorIs(t, err, domain.ErrLengthMismatch)

	_, err = e.Accuracy(nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEvaluator_Confusion(t *testing.T) {
	m, err := NewEvaluator().Confusion(
		[]domain.Label{pos, neg, pos, pos},
		[]domain.Label{pos, neg, neg, pos},
	)

	require.NoError(t, err)
	assert.Equal(t, 2, m.Count(pos, pos))
	assert.Equal(t, 1, m.Count(neg, neg))
	assert.Equal(t, 1, m.Count(neg, pos))
	assert.Equal(t, 0, m.Count(pos, neg))
	assert.Equal(t, 4, m.Total())

	_, err = NewEvaluator().Confusion([]domain.Label{pos}, nil)
	assert.ErrorIs(t, err, domain.ErrLengthMismatch)
}

func TestEvaluator_Sample(t *testing.T) {
	texts := []string{"a", "b", "c", "d", "e"}
	actual := []domain.Label{pos, neg, pos, neg, pos}
	predicted := []domain.Label{pos, pos, pos, neg, neg}

	samples, err := NewEvaluator().Sample(texts, actual, predicted, 3, rand.New(rand.NewPCG(42, 42)))

	require.NoError(t, err)
	require.Len(t, samples, 3)
	seen := make(map[int]bool)
	for _, s := range samples {
		assert.False(t, seen[s.Index], "index drawn twice")
		seen[s.Index] = true
		assert.Equal(t, texts[s.Index], s.Text)
		assert.Equal(t, actual[s.Index], s.Actual)
		assert.Equal(t, predicted[s.Index], s.Predicted)
	}
}

func TestEvaluator_Sample_Deterministic(t *testing.T) {
	texts := []string{"a", "b", "c", "d", "e", "f"}
	labels := []domain.Label{pos, neg, pos, neg, pos, neg}

	a, err := NewEvaluator().Sample(texts, labels, labels, 3, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	b, err := NewEvaluator().Sample(texts, labels, labels, 3, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEvaluator_Sample_Errors(t *testing.T) {
	texts := []string{"a", "b", "c"}
	labels := []domain.Label{pos, neg, pos}
	rng := rand.New(rand.NewPCG(1, 1))
	e := NewEvaluator()

	_, err := e.Sample(texts, labels, labels, 5, rng)
	assert.ErrorIs(t, err, domain.ErrSampleSizeExceeded)

	_, err = e.Sample(texts, labels, labels, -1, rng)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.Sample(texts, labels[:2], labels, 1, rng)
	assert.ErrorIs(t, err, domain.ErrLengthMismatch)

	samples, err := e.Sample(texts, labels, labels, 0, rng)
	require.NoError(t, err)
	assert.Empty(t, samples)
}
