package toolschema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherYAML = `
functions:
  - name: get_current_weather
    description: 获取当前天气
    parameters:
      - name: location
        description: 城市名
        type: string
        required: true
      - name: unit
        description: 温度单位
        type: string
        enum_values: [celsius, fahrenheit]
        required: false
`

const weatherJSON = `{
  "functions": [
    {
      "name": "get_current_weather",
      "description": "获取当前天气",
      "parameters": [
        {"name": "location", "description": "城市名", "type": "string", "required": true},
        {"name": "unit", "description": "温度单位", "type": "string", "enum_values": ["celsius", "fahrenheit"], "required": false}
      ]
    }
  ]
}`

func TestParseToolConfig(t *testing.T) {
	for name, data := range map[string]string{"yaml": weatherYAML, "json": weatherJSON} {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseToolConfig([]byte(data))
			require.NoError(t, err)
			require.Len(t, cfg.Functions, 1)

			fn := cfg.Functions[0]
			assert.Equal(t, "get_current_weather", fn.Name)
			assert.Equal(t, "获取当前天气", fn.Description)
			require.Len(t, fn.Parameters, 2)
			assert.Equal(t, "location", fn.Parameters[0].Name)
			assert.True(t, fn.Parameters[0].Required)
			assert.Nil(t, fn.Parameters[0].EnumValues)
			assert.Equal(t, []string{"celsius", "fahrenheit"}, fn.Parameters[1].EnumValues)
			assert.False(t, fn.Parameters[1].Required)
		})
	}

	t.Run("invalid input", func(t *testing.T) {
		_, err := ParseToolConfig([]byte("functions: [unterminated"))
		assert.Error(t, err)
	})
}

func TestLoadToolConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(weatherYAML), 0o600))

	cfg, err := LoadToolConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Len())

	_, err = LoadToolConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
