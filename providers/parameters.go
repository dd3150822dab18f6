// Package providers builds vendor-specific tool configuration documents from a
// types.ToolConfig. Every builder is a pure function of its input.
package providers

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/teilomillet/toolschema/types"
)

// Property is the JSON Schema of a single function parameter.
// Enum is a pointer so that an empty, present enum still serializes as [].
type Property struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Enum        *[]string `json:"enum,omitempty"`
}

// Properties maps parameter names to their schema in declaration order.
type Properties = orderedmap.OrderedMap[string, Property]

// ParametersSchema is the object schema shared by the Gemini and OpenAI documents.
type ParametersSchema struct {
	Type       string      `json:"type"`
	Properties *Properties `json:"properties"`
	Required   []string    `json:"required"`
}

// buildParameters maps a function's parameter list into its properties and required names.
// Both vendor builders go through here so their parameter semantics cannot drift apart.
//
// A later parameter with an already seen name replaces the earlier property in place,
// and each declaration marked required is listed, duplicates included.
func buildParameters(params []types.FunctionParameter) (*Properties, []string) {
	properties := orderedmap.New[string, Property](len(params))
	required := make([]string, 0, len(params))

	for _, p := range params {
		prop := Property{
			Type:        p.Type,
			Description: p.Description,
		}
		if p.HasEnum() {
			values := make([]string, len(p.EnumValues))
			copy(values, p.EnumValues)
			prop.Enum = &values
		}
		properties.Set(p.Name, prop)

		if p.Required {
			required = append(required, p.Name)
		}
	}

	return properties, required
}

func newParametersSchema(params []types.FunctionParameter) ParametersSchema {
	properties, required := buildParameters(params)
	return ParametersSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// encode pretty-prints v with two-space indentation.
func encode(schema string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", NewSerializationError(schema, err)
	}
	return string(data), nil
}
