package domain

import "time"

// Sample is one test document surfaced for human inspection.
type Sample struct {
	// Index is the position of the document in the test set.
	Index int

	// Text is the normalised review text.
	Text string

	// Actual is the true label.
	Actual Label

	// Predicted is the classifier's label.
	Predicted Label
}

// Correct reports whether the prediction matches the true label.
func (s Sample) Correct() bool {
	return s.Actual == s.Predicted
}

// ConfusionMatrix counts test predictions per (actual, predicted) pair.
// Indexed as [actual][predicted].
type ConfusionMatrix [2][2]int

// Add records one prediction.
func (c *ConfusionMatrix) Add(actual, predicted Label) {
	if !actual.IsValid() || !predicted.IsValid() {
		return
	}
	c[actual][predicted]++
}

// Count returns the number of predictions for the pair.
func (c *ConfusionMatrix) Count(actual, predicted Label) int {
	if !actual.IsValid() || !predicted.IsValid() {
		return 0
	}
	return c[actual][predicted]
}

// Total returns the number of recorded predictions.
func (c *ConfusionMatrix) Total() int {
	return c[0][0] + c[0][1] + c[1][0] + c[1][1]
}

// Report is the outcome of one pipeline run.
type Report struct {
	// RunID uniquely identifies the run.
	RunID string

	// Seed drove the shuffle and sample selection.
	Seed uint64

	// CorpusSize is the number of loaded documents.
	CorpusSize int

	// TrainSize and TestSize are the split sizes.
	TrainSize int
	TestSize  int

	// VocabularySize is the feature dimensionality.
	VocabularySize int

	// Accuracy is the held-out accuracy in [0, 1].
	Accuracy float64

	// Iterations is the number of optimiser iterations.
	Iterations int

	// Converged is false when training hit the iteration limit.
	Converged bool

	// Confusion holds the test-set confusion matrix.
	Confusion ConfusionMatrix

	// Samples are the qualitative examples.
	Samples []Sample

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is the wall time of the run.
	Duration time.Duration
}
