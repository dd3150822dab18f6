package providers

import (
	"github.com/teilomillet/toolschema/types"
)

// GeminiConfig is the Gemini tools document:
//
//	{"tools": {"functionDeclarations": [...]}}
type GeminiConfig struct {
	Tools GeminiTools `json:"tools"`
}

// GeminiTools holds the function declarations in input order.
type GeminiTools struct {
	FunctionDeclarations []FunctionDeclaration `json:"functionDeclarations"`
}

// FunctionDeclaration is a bare Gemini function declaration.
type FunctionDeclaration struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Parameters  ParametersSchema `json:"parameters"`
}

// BuildGeminiConfig maps a ToolConfig into the Gemini document structure.
// A nil config yields an empty declaration list.
func BuildGeminiConfig(cfg *types.ToolConfig) *GeminiConfig {
	decls := make([]FunctionDeclaration, 0, cfg.Len())
	if cfg != nil {
		for _, fn := range cfg.Functions {
			decls = append(decls, FunctionDeclaration{
				Name:        fn.Name,
				Description: fn.Description,
				Parameters:  newParametersSchema(fn.Parameters),
			})
		}
	}
	return &GeminiConfig{Tools: GeminiTools{FunctionDeclarations: decls}}
}

// GenerateGeminiToolsConfig renders cfg as a pretty-printed Gemini tools document.
// It only fails with a *SerializationError if JSON encoding fails.
func GenerateGeminiToolsConfig(cfg *types.ToolConfig) (string, error) {
	return encode(SchemaGemini, BuildGeminiConfig(cfg))
}
