package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, DefaultModel, cfg.Model)
}

func TestConfig_WithModel(t *testing.T) {
	cfg := DefaultConfig()

	override := cfg.WithModel("gemini-2.5-pro")
	assert.Equal(t, "gemini-2.5-pro", override.Model)
	assert.Equal(t, ProviderGemini, override.Provider)

	// Original is untouched
	assert.Equal(t, DefaultModel, cfg.Model)

	// Empty override keeps the current model
	same := cfg.WithModel("")
	assert.Equal(t, DefaultModel, same.Model)
}
