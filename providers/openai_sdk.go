package providers

import (
	"encoding/json"

	"github.com/openai/openai-go/v2"

	"github.com/teilomillet/toolschema/types"
)

// ToOpenAIToolParams converts cfg into tool params for the openai-go client.
// The parameters object goes through JSON so the SDK receives exactly what
// GenerateOpenAIToolsConfig would emit.
func ToOpenAIToolParams(cfg *types.ToolConfig) ([]openai.ChatCompletionToolUnionParam, error) {
	tools := BuildOpenAIConfig(cfg).Tools
	params := make([]openai.ChatCompletionToolUnionParam, 0, len(tools))

	for _, tool := range tools {
		schemaBytes, err := json.Marshal(tool.Function.Parameters)
		if err != nil {
			return nil, NewSerializationError(SchemaOpenAI, err)
		}
		var parameters map[string]any
		if err := json.Unmarshal(schemaBytes, &parameters); err != nil {
			return nil, NewSerializationError(SchemaOpenAI, err)
		}

		params = append(params, openai.ChatCompletionFunctionTool(
			openai.FunctionDefinitionParam{
				Name:        tool.Function.Name,
				Description: openai.String(tool.Function.Description),
				Parameters:  parameters,
			},
		))
	}

	return params, nil
}
