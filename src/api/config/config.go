package config

import "os"

type Config struct {
	OpenAIKey    string
	AnthropicKey string
	Model        string
	Port         string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// Load reads the process environment. API keys are optional here: a missing
// key fails the individual request that needs it, not the process.
func Load() Config {
	return Config{
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:        getenv("OPENAI_MODEL", "gpt-4o"),
		Port:         getenv("PORT", "3000"),
	}
}

// KeyHint returns a prefix…suffix hint for a configured key, never the key
// itself. Empty when no key is set or the key is too short to hint safely.
func KeyHint(key string) string {
	if len(key) < 8 {
		return ""
	}
	return key[:4] + "..." + key[len(key)-4:]
}
