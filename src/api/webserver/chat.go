package webserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GavinoGM/Problem-Solver/src/ai/core"
	"github.com/GavinoGM/Problem-Solver/src/api/config"
	"github.com/GavinoGM/Problem-Solver/src/logging"
)

// fallbackModel is the model used when an Anthropic call fails on account
// credit and the request is replayed against OpenAI.
const fallbackModel = "gpt-4"

type Chat struct {
	cfg config.Config

	// Vendor endpoint overrides, used by tests to point at fake upstreams.
	OpenAIBase    string
	AnthropicBase string
}

func NewChat(cfg config.Config) *Chat {
	return &Chat{cfg: cfg}
}

// Relay accepts the normalized chat request, routes it to the derived vendor,
// and returns the vendor-independent envelope. The one cross-vendor behavior
// lives here: an Anthropic failure on insufficient credit is replayed exactly
// once against OpenAI with the fallback model.
func (h *Chat) Relay(c *gin.Context) {
	var req core.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return
	}

	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	if provider == "claude" {
		provider = core.ProviderAnthropic
	}
	if provider == "" {
		provider = core.DeriveProvider(req.Model)
	}

	reqID := uuid.NewString()[:8]
	log.Printf("chat %s: provider=%s model=%s messages=%d temp=%.2f", reqID, provider, req.Model, len(req.Messages), req.Temperature)

	resp, err := h.complete(c, provider, req)
	if err != nil && provider == core.ProviderAnthropic && logging.IsInsufficientCredit(err) {
		log.Printf("chat %s: anthropic credit exhausted, falling back to openai model=%s", reqID, fallbackModel)
		fb := req
		fb.Model = fallbackModel
		fb.Provider = core.ProviderOpenAI
		resp, err = h.complete(c, core.ProviderOpenAI, fb)
	}
	if err != nil {
		status, body := errorResponse(err)
		log.Printf("chat %s: failed: %v", reqID, err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Chat) complete(c *gin.Context, provider string, req core.ChatRequest) (*core.ChatResponse, error) {
	client, err := core.NewClient(core.FactoryConfig{
		Provider:  provider,
		OpenAIKey: h.cfg.OpenAIKey,
		ClaudeKey: h.cfg.AnthropicKey,
		BaseURL:   h.baseFor(provider),
	})
	if err != nil {
		return nil, err
	}
	return client.Complete(c.Request.Context(), req)
}

func (h *Chat) baseFor(provider string) string {
	if provider == core.ProviderAnthropic {
		return h.AnthropicBase
	}
	return h.OpenAIBase
}

func errorResponse(err error) (int, gin.H) {
	var cfgErr *core.ConfigError
	if errors.As(err, &cfgErr) {
		return http.StatusInternalServerError, gin.H{"error": cfgErr.Error()}
	}
	var vErr *core.VendorError
	if errors.As(err, &vErr) {
		status := vErr.StatusCode
		if status < 400 {
			status = http.StatusBadGateway
		}
		return status, gin.H{"error": vErr.Message, "detail": vErr.Vendor}
	}
	return http.StatusBadGateway, gin.H{"error": "upstream request failed", "detail": err.Error()}
}
