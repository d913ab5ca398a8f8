package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GavinoGM/Problem-Solver/src/ai/core"
)

func TestNewClient_MissingKey(t *testing.T) {
	_, err := newClient(core.FactoryConfig{})
	require.Error(t, err)
	var cfgErr *core.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "OPENAI API key not configured", err.Error())
}

func TestComplete_Passthrough(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &gotBody))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	c, err := newClient(core.FactoryConfig{OpenAIKey: "sk-test", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := c.Complete(context.Background(), core.ChatRequest{
		Model:       "gpt-4o",
		Messages:    []core.Message{{Role: "user", Content: "hi"}},
		Temperature: 0.7,
		MaxTokens:   100,
	})
	require.NoError(t, err)
	require.Equal(t, "hello", resp.Text())
	require.Equal(t, "Bearer sk-test", gotAuth)
	require.Equal(t, "gpt-4o", gotBody["model"])
	require.Equal(t, float64(100), gotBody["max_tokens"])
	// the provider field is routing metadata, never forwarded to the vendor
	require.NotContains(t, gotBody, "provider")
}

func TestComplete_VendorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer srv.Close()

	c, err := newClient(core.FactoryConfig{OpenAIKey: "sk-bad", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), core.ChatRequest{Model: "gpt-4o"})
	var vErr *core.VendorError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, http.StatusUnauthorized, vErr.StatusCode)
	require.Equal(t, "Incorrect API key provided", vErr.Message)
	require.Equal(t, core.ProviderOpenAI, vErr.Vendor)
}

func TestComplete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c, err := newClient(core.FactoryConfig{OpenAIKey: "sk-test", BaseURL: srv.URL})
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), core.ChatRequest{Model: "gpt-4o"})
	require.Error(t, err)
}
