package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RISHABH72git/SkillBridge/internal/config"
)

func newTestClient(baseURL string) Client {
	return NewClient(config.InferenceConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "test-model",
		MaxTokens:      2000,
		TimeoutSeconds: 5,
	})
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": `{"skills": []}`}},
			},
		})
	}))
	defer server.Close()

	completion, err := newTestClient(server.URL).Complete(context.Background(), "parse this resume")
	require.NoError(t, err)
	assert.Equal(t, `{"skills": []}`, completion)

	assert.Equal(t, "test-model", captured.Model)
	assert.Equal(t, 2000, captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "parse this resume", captured.Messages[0].Content)
}

func TestCompleteErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "empty choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
			},
		},
		{
			name: "invalid response body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := newTestClient(server.URL).Complete(context.Background(), "prompt")
			require.Error(t, err)
		})
	}
}
