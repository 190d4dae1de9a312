// Package ml holds the adapters around the optional model backends. The
// core never talks to a model directly: it receives either a valid value
// or an explicit absence from these adapters.
package ml

import "context"

// Prediction is the classifier output consumed upstream of the priority
// scorer when the reporter did not pick a category.
type Prediction struct {
	Category   string
	Confidence float64
	Scores     map[string]float64
}

// Classifier assigns a complaint category to free text.
type Classifier interface {
	Classify(ctx context.Context, text string) (*Prediction, error)
}

// Embedder produces a fixed-length vector for similarity comparison. A
// nil vector with a nil error is an explicit "unavailable" marker, not a
// failure: callers treat it as "no embedding".
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
