package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"civicdesk/internal/shared/config"
	"civicdesk/internal/shared/logger"
)

// InferenceClient talks to an external model server exposing embedding and
// zero-shot classification endpoints. Upstream failures never propagate as
// errors for embeddings: per the adapter contract they degrade to an
// explicit absence so intake is never blocked.
type InferenceClient struct {
	baseURL       string
	apiKey        string
	embedModel    string
	classifyModel string
	httpClient    *http.Client
	logger        logger.Interface
}

type inferenceHTTPError struct {
	StatusCode int
	Body       string
}

func (e *inferenceHTTPError) Error() string {
	return fmt.Sprintf("inference server returned %d: %s", e.StatusCode, e.Body)
}

func NewInferenceClient(cfg *config.MLConfig, log logger.Interface) *InferenceClient {
	timeout := 15 * time.Second
	if cfg.RequestTimeoutSec > 0 {
		timeout = time.Duration(cfg.RequestTimeoutSec) * time.Second
	}

	return &InferenceClient{
		baseURL:       cfg.InferenceURL,
		apiKey:        cfg.InferenceAPIKey,
		embedModel:    cfg.EmbedModel,
		classifyModel: cfg.ClassifyModel,
		httpClient:    &http.Client{Timeout: timeout},
		logger:        log.Named("inference-client"),
	}
}

type embedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// Embed returns the description embedding, or (nil, nil) when the model
// server is unreachable or replies with garbage.
func (c *InferenceClient) Embed(ctx context.Context, text string) ([]float32, error) {
	var resp embedResponse
	err := c.do(ctx, "/v1/embed", embedRequest{Model: c.embedModel, Input: text}, &resp)
	if err != nil {
		c.logger.Warnw("embedding unavailable, continuing without", "error", err)
		return nil, nil
	}

	if len(resp.Embedding) == 0 {
		c.logger.Warnw("embedding response was empty, continuing without")
		return nil, nil
	}

	out := make([]float32, len(resp.Embedding))
	for i, f := range resp.Embedding {
		out[i] = float32(f)
	}
	return out, nil
}

type classifyRequest struct {
	Model  string   `json:"model"`
	Text   string   `json:"text"`
	Labels []string `json:"labels"`
}

type classifyResponse struct {
	Label      string             `json:"label"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
}

func (c *InferenceClient) Classify(ctx context.Context, text string) (*Prediction, error) {
	req := classifyRequest{
		Model:  c.classifyModel,
		Text:   text,
		Labels: categoryLabels(),
	}

	var resp classifyResponse
	if err := c.do(ctx, "/v1/classify", req, &resp); err != nil {
		return nil, err
	}

	return &Prediction{
		Category:   resp.Label,
		Confidence: resp.Confidence,
		Scores:     resp.Scores,
	}, nil
}

func (c *InferenceClient) do(ctx context.Context, path string, body any, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &inferenceHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("inference decode error: %w", err)
	}
	return nil
}
