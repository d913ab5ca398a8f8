package webserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/GavinoGM/Problem-Solver/src/api/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestRouter(h *Chat) *gin.Engine {
	r := gin.New()
	r.POST("/api/openai", h.Relay)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/openai", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRelay_MissingOpenAIKey(t *testing.T) {
	h := NewChat(config.Config{})
	w := postChat(t, newTestRouter(h), `{"model":"gpt-4o","messages":[{"role":"user","content":"hi"}]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "OPENAI API key not configured", body["error"])
}

func TestRelay_MissingAnthropicKey(t *testing.T) {
	h := NewChat(config.Config{OpenAIKey: "sk-test"})
	w := postChat(t, newTestRouter(h), `{"model":"claude-3-opus","messages":[{"role":"user","content":"hi"}]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "ANTHROPIC API key not configured")
}

func TestRelay_InvalidBody(t *testing.T) {
	h := NewChat(config.Config{OpenAIKey: "sk-test"})
	w := postChat(t, newTestRouter(h), `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRelay_RoutesClaudeToAnthropic(t *testing.T) {
	anthropicHit := false
	anthropicSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		anthropicHit = true
		require.Equal(t, "/v1/messages", r.URL.Path)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"from claude"}]}`))
	}))
	defer anthropicSrv.Close()

	h := NewChat(config.Config{OpenAIKey: "sk-o", AnthropicKey: "sk-a"})
	h.AnthropicBase = anthropicSrv.URL

	w := postChat(t, newTestRouter(h), `{"model":"claude-3-opus","messages":[{"role":"user","content":"hi"}],"provider":"anthropic"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, anthropicHit)

	// callers see the normalized envelope, never the vendor shape
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Choices, 1)
	require.Equal(t, "from claude", resp.Choices[0].Message.Content)
}

func TestRelay_DerivesProviderWhenOmitted(t *testing.T) {
	openaiHit := false
	openaiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		openaiHit = true
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer openaiSrv.Close()

	h := NewChat(config.Config{OpenAIKey: "sk-o"})
	h.OpenAIBase = openaiSrv.URL

	w := postChat(t, newTestRouter(h), `{"model":"gpt-4o","messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, openaiHit)
}

func TestRelay_CreditFallback(t *testing.T) {
	anthropicSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Your credit balance is too low to access the API"}}`))
	}))
	defer anthropicSrv.Close()

	var fallbackModels []string
	openaiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		var body struct {
			Model string `json:"model"`
		}
		_ = json.Unmarshal(b, &body)
		fallbackModels = append(fallbackModels, body.Model)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"fallback reply"}}]}`))
	}))
	defer openaiSrv.Close()

	h := NewChat(config.Config{OpenAIKey: "sk-o", AnthropicKey: "sk-a"})
	h.AnthropicBase = anthropicSrv.URL
	h.OpenAIBase = openaiSrv.URL

	w := postChat(t, newTestRouter(h), `{"model":"claude-3-opus","messages":[{"role":"user","content":"hi"}],"provider":"anthropic"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "fallback reply")
	// exactly one retry, pinned to the fallback model
	require.Equal(t, []string{"gpt-4"}, fallbackModels)
}

func TestRelay_NonCreditAnthropicErrorPropagates(t *testing.T) {
	anthropicSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"Rate limit exceeded"}}`))
	}))
	defer anthropicSrv.Close()

	openaiHit := false
	openaiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		openaiHit = true
	}))
	defer openaiSrv.Close()

	h := NewChat(config.Config{OpenAIKey: "sk-o", AnthropicKey: "sk-a"})
	h.AnthropicBase = anthropicSrv.URL
	h.OpenAIBase = openaiSrv.URL

	w := postChat(t, newTestRouter(h), `{"model":"claude-3-opus","messages":[{"role":"user","content":"hi"}],"provider":"anthropic"}`)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Contains(t, w.Body.String(), "Rate limit exceeded")
	require.False(t, openaiHit, "non-credit errors must not trigger the fallback")
}
