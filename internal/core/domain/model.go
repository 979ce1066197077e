package domain

// Model is a trained linear decision boundary.
// It is owned by the classifier that produced it and is never persisted.
type Model struct {
	// Weights has one entry per vocabulary term.
	Weights []float64

	// Bias is the unpenalised intercept.
	Bias float64

	// Iterations is the number of optimiser iterations performed.
	Iterations int

	// Converged is false when training stopped at the iteration limit
	// or the optimiser gave up early. The weights are still usable.
	Converged bool

	// Loss is the objective value at the returned weights.
	Loss float64
}

// Dim returns the feature dimensionality the model accepts.
func (m *Model) Dim() int {
	return len(m.Weights)
}

// Decision returns w·x + b. The caller checks dimensionality.
func (m *Model) Decision(x FeatureVector) float64 {
	return x.Dot(m.Weights) + m.Bias
}
