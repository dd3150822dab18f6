package providers

import (
	"github.com/teilomillet/toolschema/types"
)

// OpenAIConfig is the OpenAI tools document:
//
//	{"tools": [{"type": "function", "function": {...}}]}
type OpenAIConfig struct {
	Tools []FunctionTool `json:"tools"`
}

// FunctionTool wraps one function in the OpenAI tool envelope.
type FunctionTool struct {
	Type     string       `json:"type"`
	Function FunctionSpec `json:"function"`
}

// FunctionSpec is the function body of an OpenAI tool.
type FunctionSpec struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Parameters  ParametersSchema `json:"parameters"`
}

// BuildOpenAIConfig maps a ToolConfig into the OpenAI document structure.
// A nil config yields an empty tool list.
func BuildOpenAIConfig(cfg *types.ToolConfig) *OpenAIConfig {
	tools := make([]FunctionTool, 0, cfg.Len())
	if cfg != nil {
		for _, fn := range cfg.Functions {
			tools = append(tools, FunctionTool{
				Type: "function",
				Function: FunctionSpec{
					Name:        fn.Name,
					Description: fn.Description,
					Parameters:  newParametersSchema(fn.Parameters),
				},
			})
		}
	}
	return &OpenAIConfig{Tools: tools}
}

// GenerateOpenAIToolsConfig renders cfg as a pretty-printed OpenAI tools document.
// It only fails with a *SerializationError if JSON encoding fails.
func GenerateOpenAIToolsConfig(cfg *types.ToolConfig) (string, error) {
	return encode(SchemaOpenAI, BuildOpenAIConfig(cfg))
}
