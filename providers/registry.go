package providers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/teilomillet/toolschema/types"
)

// Builder renders a ToolConfig as one vendor's tools document.
type Builder func(cfg *types.ToolConfig) (string, error)

// BuilderRegistry manages the registration and retrieval of schema builders.
// It provides thread-safe access and supports registering extra schemas.
type BuilderRegistry struct {
	builders map[string]Builder
	mutex    sync.RWMutex
}

// NewBuilderRegistry creates a registry with the specified known schemas.
// If no schemas are specified, all known schemas are registered.
func NewBuilderRegistry(schemas ...string) *BuilderRegistry {
	registry := &BuilderRegistry{
		builders: make(map[string]Builder),
	}

	known := getKnownBuilders()
	if len(schemas) == 0 {
		for name, builder := range known {
			registry.builders[name] = builder
		}
		return registry
	}
	for _, name := range schemas {
		if builder, ok := known[name]; ok {
			registry.builders[name] = builder
		}
	}
	return registry
}

// getKnownBuilders returns all built-in builders
func getKnownBuilders() map[string]Builder {
	return map[string]Builder{
		SchemaGemini: GenerateGeminiToolsConfig,
		SchemaOpenAI: GenerateOpenAIToolsConfig,
	}
}

// Register adds or replaces the builder for a schema name.
func (r *BuilderRegistry) Register(name string, builder Builder) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.builders[name] = builder
}

// Get returns the builder registered under name.
func (r *BuilderRegistry) Get(name string) (Builder, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema: %s", name)
	}
	return builder, nil
}

// Names returns the registered schema names in sorted order.
func (r *BuilderRegistry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
