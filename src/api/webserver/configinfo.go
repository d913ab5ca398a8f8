package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GavinoGM/Problem-Solver/src/api/config"
)

type ConfigInfo struct {
	cfg config.Config
}

func NewConfigInfo(cfg config.Config) ConfigInfo {
	return ConfigInfo{cfg: cfg}
}

// Get reports whether keys are configured and the default model, without ever
// exposing a key beyond a prefix/suffix hint.
func (h ConfigInfo) Get(c *gin.Context) {
	var hint interface{}
	if s := config.KeyHint(h.cfg.OpenAIKey); s != "" {
		hint = s
	}
	c.JSON(http.StatusOK, gin.H{
		"apiKeyConfigured": h.cfg.OpenAIKey != "",
		"apiKeyHint":       hint,
		"model":            h.cfg.Model,
		"providers": gin.H{
			"openai":    h.cfg.OpenAIKey != "",
			"anthropic": h.cfg.AnthropicKey != "",
		},
	})
}
