package ml

import (
	"context"
	"fmt"

	vo "civicdesk/internal/domain/complaint/valueobjects"
	"civicdesk/internal/shared/config"
	"civicdesk/internal/shared/logger"
)

// Mode names for the ml.mode config key.
const (
	ModeInference = "inference"
	ModeKeyword   = "keyword"
	ModeOff       = "off"
)

// disabledEmbedder reports an explicit absence for every input.
type disabledEmbedder struct{}

func (disabledEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, nil
}

// NewDisabledEmbedder returns an Embedder that always reports absence.
func NewDisabledEmbedder() Embedder {
	return disabledEmbedder{}
}

// Select picks the classifier and embedder implementations once at process
// configuration time. The keyword classifier always backs the inference
// classifier so categorization still works when the model server is down.
func Select(cfg *config.MLConfig, log logger.Interface) (Classifier, Embedder, error) {
	switch cfg.Mode {
	case ModeInference:
		if cfg.InferenceURL == "" {
			return nil, nil, fmt.Errorf("ml.mode is %q but ml.inference_url is empty", ModeInference)
		}
		client := NewInferenceClient(cfg, log)
		classifier := &fallbackClassifier{
			primary:  client,
			fallback: NewKeywordClassifier(),
			logger:   log.Named("classifier"),
		}
		return classifier, client, nil
	case ModeKeyword, "":
		return NewKeywordClassifier(), NewDisabledEmbedder(), nil
	case ModeOff:
		return noopClassifier{}, NewDisabledEmbedder(), nil
	default:
		return nil, nil, fmt.Errorf("unknown ml.mode %q", cfg.Mode)
	}
}

// fallbackClassifier degrades to keyword rules when the model server call
// fails, so a classifier outage never surfaces past this adapter.
type fallbackClassifier struct {
	primary  Classifier
	fallback Classifier
	logger   logger.Interface
}

func (f *fallbackClassifier) Classify(ctx context.Context, text string) (*Prediction, error) {
	prediction, err := f.primary.Classify(ctx, text)
	if err == nil && prediction != nil {
		return prediction, nil
	}
	if err != nil {
		f.logger.Warnw("model classification failed, falling back to keyword rules", "error", err)
	}
	return f.fallback.Classify(ctx, text)
}

// noopClassifier labels everything "other" when categorization is off.
type noopClassifier struct{}

func (noopClassifier) Classify(ctx context.Context, text string) (*Prediction, error) {
	return &Prediction{
		Category:   vo.CategoryOther.String(),
		Confidence: 0,
		Scores:     map[string]float64{},
	}, nil
}

func categoryLabels() []string {
	categories := vo.AllCategories()
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.String())
	}
	return labels
}
