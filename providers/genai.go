package providers

import (
	"google.golang.org/genai"

	"github.com/teilomillet/toolschema/types"
)

// ToGenAITools converts cfg into tools for the google.golang.org/genai client.
// All declarations go into a single genai.Tool, and each one carries the same
// parameters object as the JSON document in ParametersJsonSchema.
func ToGenAITools(cfg *types.ToolConfig) []*genai.Tool {
	if cfg.Len() == 0 {
		return []*genai.Tool{}
	}

	decls := BuildGeminiConfig(cfg).Tools.FunctionDeclarations
	functions := make([]*genai.FunctionDeclaration, 0, len(decls))
	for _, decl := range decls {
		functions = append(functions, &genai.FunctionDeclaration{
			Name:                 decl.Name,
			Description:          decl.Description,
			ParametersJsonSchema: decl.Parameters,
		})
	}

	return []*genai.Tool{{FunctionDeclarations: functions}}
}
