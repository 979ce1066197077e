package services

import (
	"fmt"
	"math/rand/v2"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

// Evaluator scores predictions against true labels.
type Evaluator struct{}

// NewEvaluator creates an evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Accuracy returns the fraction of positions where predicted equals actual.
func (e *Evaluator) Accuracy(predicted, actual []domain.Label) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("%w: %d predictions, %d labels", domain.ErrLengthMismatch, len(predicted), len(actual))
	}
	if len(actual) == 0 {
		return 0, fmt.Errorf("%w: no predictions to score", domain.ErrInvalidInput)
	}

	correct := 0
	for i := range actual {
		if predicted[i] == actual[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(actual)), nil
}

// Confusion tallies predictions per (actual, predicted) pair.
func (e *Evaluator) Confusion(predicted, actual []domain.Label) (domain.ConfusionMatrix, error) {
	var m domain.ConfusionMatrix
	if len(predicted) != len(actual) {
		return m, fmt.Errorf("%w: %d predictions, %d labels", domain.ErrLengthMismatch, len(predicted), len(actual))
	}
	for i := range actual {
		m.Add(actual[i], predicted[i])
	}
	return m, nil
}

// Sample draws n distinct positions without replacement using rng and
// returns the text and labels at each, in draw order.
func (e *Evaluator) Sample(
	texts []string,
	actual, predicted []domain.Label,
	n int,
	rng *rand.Rand,
) ([]domain.Sample, error) {
	if len(texts) != len(actual) || len(actual) != len(predicted) {
		return nil, fmt.Errorf("%w: %d texts, %d labels, %d predictions",
			domain.ErrLengthMismatch, len(texts), len(actual), len(predicted))
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: sample size %d", domain.ErrInvalidInput, n)
	}
	if n > len(texts) {
		return nil, fmt.Errorf("%w: requested %d samples from %d documents",
			domain.ErrSampleSizeExceeded, n, len(texts))
	}

	samples := make([]domain.Sample, 0, n)
	for _, idx := range rng.Perm(len(texts))[:n] {
		samples = append(samples, domain.Sample{
			Index:     idx,
			Text:      texts[idx],
			Actual:    actual[idx],
			Predicted: predicted[idx],
		})
	}
	return samples, nil
}
