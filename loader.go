package toolschema

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/teilomillet/toolschema/types"
)

// ParseToolConfig decodes a ToolConfig from YAML or JSON.
func ParseToolConfig(data []byte) (*types.ToolConfig, error) {
	var cfg types.ToolConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tool config: %w", err)
	}
	return &cfg, nil
}

// LoadToolConfig reads and decodes a ToolConfig file.
func LoadToolConfig(path string) (*types.ToolConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool config: %w", err)
	}
	return ParseToolConfig(data)
}
