package solver

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

// Service drives the problem-solving flow against the provider gateway:
// build prompt, relay through the gateway, parse the reply into typed
// records. One Service per session; its configuration is explicit, never
// ambient.
type Service struct {
	gatewayURL string
	httpClient *http.Client
	session    Session
}

func NewService(gatewayURL string, sess Session) *Service {
	return &Service{
		gatewayURL: strings.TrimRight(gatewayURL, "/"),
		httpClient: webclient.NewDefault(120 * time.Second),
		session:    sess.withDefaults(),
	}
}

// GenerateSolutions produces solution records for the problem. The parse
// status reports whether the reply degraded to a synthetic record.
func (s *Service) GenerateSolutions(ctx context.Context, p Problem) ([]Solution, ParseStatus, error) {
	reply, err := s.complete(ctx, SolutionPrompt(p))
	if err != nil {
		return nil, "", err
	}
	sols, status := ParseSolutions(reply)
	return sols, status, nil
}

// GenerateReframings produces the ordered three-technique reframing sequence.
// When the reply degrades, the raw text lands on the first technique.
func (s *Service) GenerateReframings(ctx context.Context, p Problem) ([]Reframing, ParseStatus, error) {
	reply, err := s.complete(ctx, ReframingPrompt(p))
	if err != nil {
		return nil, "", err
	}
	statements, status := ParseReframings(reply)
	out := make([]Reframing, 0, len(Techniques))
	for i, technique := range Techniques {
		r := Reframing{Technique: technique}
		if i < len(statements) {
			r.Statement = strings.TrimSpace(statements[i])
		}
		out = append(out, r)
	}
	return out, status, nil
}

// Enhance applies one of the four fixed enhancement categories to a solution
// and returns the styled rendering of the reply.
func (s *Service) Enhance(ctx context.Context, p Problem, sol Solution, category string) (Enhancement, error) {
	reply, err := s.complete(ctx, EnhancementPrompt(p, sol, category))
	if err != nil {
		return Enhancement{}, err
	}
	return Enhancement{
		Category: category,
		Solution: sol.Title,
		HTML:     FormatEnhancement(category, reply),
	}, nil
}

// Ask relays a free-form question about the problem.
func (s *Service) Ask(ctx context.Context, p Problem, question string) (string, error) {
	return s.complete(ctx, CustomPrompt(p, question))
}

// complete sends one normalized request through the gateway, retrying up to 3
// times with linear backoff. The final error reaches the caller unmodified.
func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	req := core.ChatRequest{
		Model: s.session.Model,
		Messages: []core.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: s.session.Temperature,
		MaxTokens:   s.session.MaxTokens,
		Provider:    core.DeriveProvider(s.session.Model),
	}
	bodyBytes, _ := json.Marshal(req)

	var content string
	err := webclient.Do(ctx, 3, func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL+"/api/openai", bytes.NewBuffer(bodyBytes))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		resp, err := s.httpClient.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			var gwErr struct {
				Error  string `json:"error"`
				Detail string `json:"detail"`
			}
			if json.Unmarshal(b, &gwErr) == nil && gwErr.Error != "" {
				return fmt.Errorf("gateway: %s", gwErr.Error)
			}
			return fmt.Errorf("gateway: status %d", resp.StatusCode)
		}
		var envelope core.ChatResponse
		if err := json.Unmarshal(b, &envelope); err != nil {
			return err
		}
		if envelope.Text() == "" {
			return fmt.Errorf("gateway: empty completion")
		}
		content = envelope.Text()
		return nil
	})
	return content, err
}
