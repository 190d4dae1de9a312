package ml

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "civicdesk/internal/domain/complaint/valueobjects"
	"civicdesk/internal/shared/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*InferenceClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewInferenceClient(&config.MLConfig{
		Mode:          ModeInference,
		InferenceURL:  server.URL,
		EmbedModel:    "embed-test",
		ClassifyModel: "classify-test",
	}, testLogger())

	return client, server
}

func TestInferenceClient_Embed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embed", r.URL.Path)

		var req embedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "embed-test", req.Model)

		json.NewEncoder(w).Encode(embedResponse{Embedding: []float64{0.1, 0.2, 0.3}})
	})

	embedding, err := client.Embed(context.Background(), "pothole on main street")

	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, embedding)
}

func TestInferenceClient_EmbedDegradesToAbsence(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model loading", http.StatusServiceUnavailable)
			},
		},
		{
			name: "empty embedding",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(embedResponse{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.handler)

			embedding, err := client.Embed(context.Background(), "anything")

			// Upstream failure is reported as absence, never as an error.
			require.NoError(t, err)
			assert.Nil(t, embedding)
		})
	}
}

func TestInferenceClient_Classify(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/classify", r.URL.Path)

		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, categoryLabels(), req.Labels)

		json.NewEncoder(w).Encode(classifyResponse{
			Label:      "drainage",
			Confidence: 0.91,
			Scores:     map[string]float64{"drainage": 0.91, "other": 0.09},
		})
	})

	prediction, err := client.Classify(context.Background(), "sewage overflowing near the market")

	require.NoError(t, err)
	assert.Equal(t, "drainage", prediction.Category)
	assert.Equal(t, 0.91, prediction.Confidence)
}

func TestFallbackClassifier_DegradesToKeywords(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusBadGateway)
	})

	classifier := &fallbackClassifier{
		primary:  client,
		fallback: NewKeywordClassifier(),
		logger:   testLogger(),
	}

	prediction, err := classifier.Classify(context.Background(), "blocked drain and sewage smell")

	require.NoError(t, err)
	assert.Equal(t, vo.CategoryDrainage.String(), prediction.Category)
}
