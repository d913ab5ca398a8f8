package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GavinoGM/Problem-Solver/src/ai/core"
	"github.com/GavinoGM/Problem-Solver/src/webclient"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	apiVersion       = "2023-06-01"
	defaultMaxTokens = 1024
)

func init() {
	core.RegisterProvider(core.ProviderAnthropic, newClient, "claude")
}

type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newClient(cfg core.FactoryConfig) (core.Client, error) {
	if cfg.ClaudeKey == "" {
		return nil, &core.ConfigError{Vendor: core.ProviderAnthropic}
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &client{
		apiKey:     cfg.ClaudeKey,
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: webclient.NewDefault(120 * time.Second),
	}, nil
}

// Complete reshapes the normalized request into the Messages API format,
// issues the call, and rewraps the content blocks into the normalized
// envelope so callers never see the vendor shape.
func (c *client) Complete(ctx context.Context, req core.ChatRequest) (*core.ChatResponse, error) {
	system, messages := splitSystem(req.Messages)

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	body := map[string]interface{}{
		"model":       ResolveModel(req.Model),
		"max_tokens":  maxTokens,
		"temperature": req.Temperature,
		"messages":    messages,
	}
	if system != "" {
		body["system"] = system
	}
	bodyBytes, _ := json.Marshal(body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &core.VendorError{
			Vendor:     core.ProviderAnthropic,
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(b),
		}
	}

	var result anthropicResponse
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}
	text := extractText(result.Content)
	if text == "" {
		return nil, fmt.Errorf("anthropic: empty response")
	}
	return core.NewTextResponse(text), nil
}

// splitSystem hoists the first system message into the Messages API's
// top-level system string. Any later system messages become user turns: the
// API rejects "system" inside messages, and a user turn keeps the
// instruction as context the model actually weighs.
func splitSystem(messages []core.Message) (string, []core.Message) {
	system := ""
	out := make([]core.Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == "system" {
			if system == "" {
				system = m.Content
				continue
			}
			m.Role = "user"
		}
		out = append(out, m)
	}
	return system, out
}

// modelAliases maps friendly model names onto the dated identifiers the
// Messages API requires.
var modelAliases = []struct {
	substr string
	id     string
}{
	{"opus", "claude-3-opus-20240229"},
	{"sonnet", "claude-3-sonnet-20240229"},
	{"haiku", "claude-3-haiku-20240307"},
}

// ResolveModel maps a friendly alias to its dated model identifier.
// Unrecognized names pass through unchanged.
func ResolveModel(model string) string {
	lower := strings.ToLower(model)
	for _, a := range modelAliases {
		if strings.Contains(lower, a.substr) {
			return a.id
		}
	}
	return model
}

func extractText(chunks []anthropicContent) string {
	var b strings.Builder
	for _, chunk := range chunks {
		if chunk.Text != "" {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(chunk.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

func extractErrorMessage(body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return strings.TrimSpace(string(body))
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}
