package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teilomillet/toolschema/types"
)

func TestNewBuilderRegistry(t *testing.T) {
	t.Run("all known schemas by default", func(t *testing.T) {
		registry := NewBuilderRegistry()
		assert.Equal(t, []string{SchemaGemini, SchemaOpenAI}, registry.Names())
	})

	t.Run("only requested schemas", func(t *testing.T) {
		registry := NewBuilderRegistry(SchemaOpenAI, "unknown")
		assert.Equal(t, []string{SchemaOpenAI}, registry.Names())

		_, err := registry.Get(SchemaGemini)
		assert.Error(t, err)
	})
}

func TestBuilderRegistryGet(t *testing.T) {
	registry := NewBuilderRegistry()

	builder, err := registry.Get(SchemaGemini)
	require.NoError(t, err)
	out, err := builder(weatherConfig())
	require.NoError(t, err)

	expected, err := GenerateGeminiToolsConfig(weatherConfig())
	require.NoError(t, err)
	assert.Equal(t, expected, out)

	_, err = registry.Get("anthropic")
	assert.EqualError(t, err, "unknown schema: anthropic")
}

func TestBuilderRegistryRegister(t *testing.T) {
	registry := NewBuilderRegistry()
	registry.Register("names", func(cfg *types.ToolConfig) (string, error) {
		return cfg.Functions[0].Name, nil
	})

	builder, err := registry.Get("names")
	require.NoError(t, err)
	out, err := builder(weatherConfig())
	require.NoError(t, err)
	assert.Equal(t, "get_current_weather", out)
	assert.Equal(t, []string{SchemaGemini, "names", SchemaOpenAI}, registry.Names())
}
