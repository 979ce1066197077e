// Package logistic implements L2-regularised binary logistic regression
// trained with L-BFGS.
package logistic

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/custodia-labs/sentiment-cli/internal/core/domain"
	"github.com/custodia-labs/sentiment-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sentiment-cli/internal/logger"
)

// Ensure Classifier implements the interface.
var _ driven.Classifier = (*Classifier)(nil)

// Default training parameters.
const (
	DefaultRegularization = 1.0
	DefaultTolerance      = 1e-4
)

// Classifier minimises 0.5*||w||^2 + C * sum(log(1 + exp(-y*(w.x + b))))
// with y in {-1, +1}. The bias is not penalised.
type Classifier struct {
	c         float64
	tolerance float64
}

// Option configures the classifier.
type Option func(*Classifier)

// WithRegularization sets C, the inverse penalty strength.
func WithRegularization(c float64) Option {
	return func(cl *Classifier) {
		if c > 0 {
			cl.c = c
		}
	}
}

// WithTolerance sets the gradient infinity-norm at which training stops.
func WithTolerance(tol float64) Option {
	return func(cl *Classifier) {
		if tol > 0 {
			cl.tolerance = tol
		}
	}
}

// New creates a logistic regression classifier.
func New(opts ...Option) *Classifier {
	cl := &Classifier{
		c:         DefaultRegularization,
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Name returns the classifier name.
func (cl *Classifier) Name() string {
	return "logistic"
}

// Train fits weights and bias to the labelled vectors.
func (cl *Classifier) Train(
	ctx context.Context,
	features []domain.FeatureVector,
	labels []domain.Label,
	maxIterations int,
) (*domain.Model, error) {
	if len(features) != len(labels) {
		return nil, fmt.Errorf("%w: %d feature vectors, %d labels",
			domain.ErrLengthMismatch, len(features), len(labels))
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("%w: no training samples", domain.ErrInvalidInput)
	}
	if maxIterations <= 0 {
		return nil, fmt.Errorf("%w: max iterations must be positive, got %d",
			domain.ErrInvalidInput, maxIterations)
	}

	dim := features[0].Len()
	for i, f := range features {
		if f.Len() != dim {
			return nil, fmt.Errorf("%w: vector %d has length %d, expected %d",
				domain.ErrDimensionMismatch, i, f.Len(), dim)
		}
	}
	for i, l := range labels {
		if !l.IsValid() {
			return nil, fmt.Errorf("%w: label %d at index %d", domain.ErrUnknownLabel, int(l), i)
		}
	}

	if single, ok := singleClass(labels); ok {
		logger.Warn("all %d training labels are %s, using a constant model", len(labels), single)
		return &domain.Model{
			Weights:   make([]float64, dim),
			Bias:      single.Sign(),
			Converged: true,
		}, nil
	}
	if dim == 0 {
		logger.Warn("training with an empty vocabulary, only the bias is learned")
	}

	obj := newObjective(features, labels, cl.c)
	problem := optimize.Problem{
		Func: obj.value,
		Grad: obj.gradient,
		Status: func() (optimize.Status, error) {
			if err := ctx.Err(); err != nil {
				return optimize.Failure, err
			}
			return optimize.NotTerminated, nil
		},
	}
	settings := &optimize.Settings{
		GradientThreshold: cl.tolerance,
		MajorIterations:   maxIterations,
	}

	logger.Debug("lbfgs: %d samples, %d features, C=%g, tol=%g, max_iter=%d",
		len(features), dim, cl.c, cl.tolerance, maxIterations)

	result, err := optimize.Minimize(problem, make([]float64, dim+1), settings, &optimize.LBFGS{})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil && (result == nil || !usable(result.X)) {
		return nil, fmt.Errorf("optimise: %w", err)
	}

	converged := err == nil && !result.Status.Early()
	if !converged {
		reason := result.Status.String()
		if err != nil {
			reason = err.Error()
		}
		logger.Warn("classifier did not converge after %d iterations (%s)", result.MajorIterations, reason)
	}
	logger.Debug("lbfgs: status=%s iterations=%d loss=%.6f", result.Status, result.MajorIterations, result.F)

	weights := make([]float64, dim)
	copy(weights, result.X[:dim])
	return &domain.Model{
		Weights:    weights,
		Bias:       result.X[dim],
		Iterations: result.MajorIterations,
		Converged:  converged,
		Loss:       result.F,
	}, nil
}

// Predict labels each vector: positive when w.x + b > 0.
func (cl *Classifier) Predict(model *domain.Model, features []domain.FeatureVector) ([]domain.Label, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil model", domain.ErrInvalidInput)
	}
	out := make([]domain.Label, len(features))
	for i, f := range features {
		if f.Len() != model.Dim() {
			return nil, fmt.Errorf("%w: vector %d has length %d, model expects %d",
				domain.ErrDimensionMismatch, i, f.Len(), model.Dim())
		}
		if model.Decision(f) > 0 {
			out[i] = domain.LabelPositive
		} else {
			out[i] = domain.LabelNegative
		}
	}
	return out, nil
}

// Probability returns P(positive | x), the sigmoid of the decision value.
func (cl *Classifier) Probability(model *domain.Model, x domain.FeatureVector) (float64, error) {
	if model == nil {
		return 0, fmt.Errorf("%w: nil model", domain.ErrInvalidInput)
	}
	if x.Len() != model.Dim() {
		return 0, fmt.Errorf("%w: vector has length %d, model expects %d",
			domain.ErrDimensionMismatch, x.Len(), model.Dim())
	}
	return sigmoid(model.Decision(x)), nil
}

func singleClass(labels []domain.Label) (domain.Label, bool) {
	first := labels[0]
	for _, l := range labels[1:] {
		if l != first {
			return 0, false
		}
	}
	return first, true
}

func usable(x []float64) bool {
	if len(x) == 0 {
		return false
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// objective evaluates the penalised log-loss over the training set.
// The parameter vector is the weights followed by the bias.
type objective struct {
	features []domain.FeatureVector
	signs    []float64
	c        float64
	dim      int
}

func newObjective(features []domain.FeatureVector, labels []domain.Label, c float64) *objective {
	signs := make([]float64, len(labels))
	for i, l := range labels {
		signs[i] = l.Sign()
	}
	return &objective{
		features: features,
		signs:    signs,
		c:        c,
		dim:      features[0].Len(),
	}
}

func (o *objective) value(x []float64) float64 {
	w, b := x[:o.dim], x[o.dim]
	loss := 0.0
	for i, f := range o.features {
		loss += logLoss(o.signs[i] * (f.Dot(w) + b))
	}
	return 0.5*floats.Dot(w, w) + o.c*loss
}

func (o *objective) gradient(grad, x []float64) {
	w, b := x[:o.dim], x[o.dim]
	copy(grad[:o.dim], w)
	grad[o.dim] = 0
	for i, f := range o.features {
		y := o.signs[i]
		// d/dz log(1+exp(-y*z)) = -y * sigmoid(-y*z)
		g := -y * sigmoid(-y*(f.Dot(w)+b)) * o.c
		f.AddScaledTo(grad[:o.dim], g)
		grad[o.dim] += g
	}
}

// logLoss returns log(1 + exp(-m)) without overflow.
func logLoss(m float64) float64 {
	if m > 0 {
		return math.Log1p(math.Exp(-m))
	}
	return -m + math.Log1p(math.Exp(m))
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
