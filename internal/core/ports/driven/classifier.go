package driven

import (
	"context"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
)

// Classifier is a binary linear classifier.
type Classifier interface {
	// Name returns the classifier name for logging.
	Name() string

	// Train learns a model from feature vectors and their labels.
	// Training that stops at maxIterations still returns a usable model
	// with Converged set to false.
	Train(ctx context.Context, features []domain.FeatureVector, labels []domain.Label, maxIterations int) (*domain.Model, error)

	// Predict labels each vector. A vector whose length differs from
	// model.Dim() is a domain.ErrDimensionMismatch.
	Predict(model *domain.Model, features []domain.FeatureVector) ([]domain.Label, error)

	// Probability returns the model's estimate that x is positive.
	Probability(model *domain.Model, x domain.FeatureVector) (float64, error)
}
