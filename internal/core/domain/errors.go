package domain

import "errors"

// Domain errors represent pipeline contract failures.
// These are distinct from infrastructure errors, which are wrapped around them.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownLabel indicates a corpus category that is neither positive nor negative.
	ErrUnknownLabel = errors.New("unknown label")

	// Pipeline Errors.

	// ErrCorpusUnavailable indicates the corpus source cannot be read or enumerated.
	// Fatal: the pipeline aborts before any training.
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	// ErrDimensionMismatch indicates a feature vector whose length disagrees
	// with the model or with the other vectors of a training set.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrLengthMismatch indicates two sequences that must be parallel differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrSampleSizeExceeded indicates more qualitative samples were requested
	// than there are test documents.
	ErrSampleSizeExceeded = errors.New("sample size exceeded")
)
