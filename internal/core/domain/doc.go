// Package domain defines the core entities of the sentiment pipeline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A labelled review as read from the corpus
//   - NormalizedDocument: The canonical token sequence of a review
//   - Vocabulary: Token to feature index mapping learned from training data
//   - FeatureVector: Token counts of one document over a Vocabulary
//   - Model: Weights and bias of the trained linear classifier
//   - Split: The train/test partition of a shuffled corpus
//   - Report: The outcome of one pipeline run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
