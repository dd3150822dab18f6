// Package types contains the vendor-neutral tool description shared by every schema builder.
// It helps avoid import cycles between the providers and the root facade.
package types

// FunctionParameter describes one named argument of a tool function.
//
// EnumValues distinguishes absent from empty: a nil slice emits no "enum" key,
// a non-nil empty slice emits "enum": [].
type FunctionParameter struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Type        string   `json:"type" yaml:"type" validate:"required"`
	EnumValues  []string `json:"enum_values,omitempty" yaml:"enum_values,omitempty"`
	Required    bool     `json:"required" yaml:"required"`
}

// FunctionDefinition describes one callable tool.
type FunctionDefinition struct {
	Name        string              `json:"name" yaml:"name" validate:"required"`
	Description string              `json:"description" yaml:"description"`
	Parameters  []FunctionParameter `json:"parameters" yaml:"parameters" validate:"unique=Name,dive"`
}

// ToolConfig is the top-level input of the schema builders.
// Function order is preserved into every generated document.
type ToolConfig struct {
	Functions []FunctionDefinition `json:"functions" yaml:"functions" validate:"unique=Name,dive"`
}

// NewToolConfig creates a ToolConfig from the given functions.
func NewToolConfig(functions ...FunctionDefinition) *ToolConfig {
	return &ToolConfig{Functions: functions}
}

// Len returns the number of functions, treating a nil config as empty.
func (c *ToolConfig) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Functions)
}

// RequiredNames returns the names of the required parameters in declaration order.
// Duplicated names are reported as many times as they are declared required.
func (f *FunctionDefinition) RequiredNames() []string {
	names := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// HasEnum reports whether an enum constraint should be emitted for the parameter.
func (p *FunctionParameter) HasEnum() bool {
	return p.EnumValues != nil
}
