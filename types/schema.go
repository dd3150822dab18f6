package types

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// InputJSONSchema returns the JSON Schema describing the wire form of a ToolConfig,
// suitable for editors and for checking config files before they are loaded.
func InputJSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := r.Reflect(&ToolConfig{})
	schema.Title = "ToolConfig"
	schema.Description = "Vendor-neutral description of callable tool functions"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input schema: %w", err)
	}
	return data, nil
}
