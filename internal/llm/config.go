// Package llm provides the text-generation client abstraction.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// DefaultModel is used when no model is configured
const DefaultModel = "gemini-2.5-flash"

// Config holds the model configuration for the generation client
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
	}
}

// WithModel returns a new Config with the given model name
func (c *Config) WithModel(model string) *Config {
	if model == "" {
		return c
	}
	return &Config{
		Provider: c.Provider,
		Model:    model,
	}
}
