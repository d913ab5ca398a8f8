package openai

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

const defaultBaseURL = "https://api.openai.com/v1"

func init() {
	core.RegisterProvider(core.ProviderOpenAI, newClient, "gpt")
}

type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newClient(cfg core.FactoryConfig) (core.Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, &core.ConfigError{Vendor: core.ProviderOpenAI}
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &client{
		apiKey:     cfg.OpenAIKey,
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: webclient.NewDefault(120 * time.Second),
	}, nil
}

// Complete issues a chat completion. OpenAI already speaks the normalized
// envelope, so the request and response pass through unchanged.
func (c *client) Complete(ctx context.Context, req core.ChatRequest) (*core.ChatResponse, error) {
	body := map[string]interface{}{
		"model":       req.Model,
		"messages":    req.Messages,
		"temperature": req.Temperature,
		"max_tokens":  req.MaxTokens,
	}
	bodyBytes, _ := json.Marshal(body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

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
			Vendor:     core.ProviderOpenAI,
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(b),
		}
	}

	var result core.ChatResponse
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("openai: no response choices")
	}
	return &result, nil
}

// extractErrorMessage digs the human-readable message out of an OpenAI error
// body, falling back to the raw body.
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
