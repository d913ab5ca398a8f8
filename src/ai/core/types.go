package core

import "context"

// Message represents a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the normalized request envelope accepted by every provider.
// Provider selection happens before a client sees it; clients never branch on
// the Provider field themselves.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Provider    string    `json:"provider,omitempty"`
}

// ChatResponse is the normalized response envelope. It is shaped like an
// OpenAI chat completion; Anthropic responses are rewrapped into it at the
// client boundary so callers never see a vendor-specific shape.
type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message Message `json:"message"`
}

// Text returns the content of the first choice, or "".
func (r *ChatResponse) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// NewTextResponse wraps plain assistant text in the normalized envelope.
func NewTextResponse(content string) *ChatResponse {
	return &ChatResponse{Choices: []Choice{{Message: Message{Role: "assistant", Content: content}}}}
}

// Client is a provider-agnostic interface for chat completion.
type Client interface {
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
