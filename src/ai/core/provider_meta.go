package core

import "strings"

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// DeriveProvider picks the vendor from the model naming convention: model
// names beginning with "claude" route to Anthropic, everything else to
// OpenAI. This is the only provider-selection mechanism.
func DeriveProvider(model string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(model)), "claude") {
		return ProviderAnthropic
	}
	return ProviderOpenAI
}
