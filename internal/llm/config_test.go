package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigGetModel(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))

	t.Run("unknown tier falls back to standard", func(t *testing.T) {
		assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(ModelTier("advanced")))
	})
}

func TestUpstreamErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("429 quota exceeded")
	err := &UpstreamError{Op: "generate", Cause: cause}

	assert.Contains(t, err.Error(), "generate")
	assert.Contains(t, err.Error(), "quota")
	assert.True(t, errors.Is(err, cause))

	var upstream *UpstreamError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &upstream))
}

func TestNewGeminiClientRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), nil, "")
	assert.Error(t, err)
}
