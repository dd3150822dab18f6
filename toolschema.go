// Package toolschema converts a vendor-neutral description of tool functions into
// Gemini and OpenAI tool configuration documents.
//
// The package-level functions are pure re-exports of the providers package. Generator
// adds configuration, optional validation and logging on top of them.
//
// Example usage:
//
//	cfg := toolschema.NewToolConfig(toolschema.FunctionDefinition{
//	    Name:        "get_current_weather",
//	    Description: "Get the current weather",
//	    Parameters: []toolschema.FunctionParameter{
//	        {Name: "location", Type: "string", Required: true},
//	    },
//	})
//	doc, err := toolschema.GenerateGeminiToolsConfig(cfg)
package toolschema

import (
	"errors"
	"fmt"

	"github.com/teilomillet/toolschema/config"
	"github.com/teilomillet/toolschema/providers"
	"github.com/teilomillet/toolschema/types"
	"github.com/teilomillet/toolschema/utils"
)

// Re-export the data model and error types for easier access
type (
	ToolConfig         = types.ToolConfig
	FunctionDefinition = types.FunctionDefinition
	FunctionParameter  = types.FunctionParameter
	SerializationError = providers.SerializationError
)

// Re-export the builders
var (
	NewToolConfig             = types.NewToolConfig
	Validate                  = types.Validate
	GenerateGeminiToolsConfig = providers.GenerateGeminiToolsConfig
	GenerateOpenAIToolsConfig = providers.GenerateOpenAIToolsConfig
)

// ErrUnknownTarget is returned by Generate when the configured target is not recognised.
var ErrUnknownTarget = errors.New("unknown target")

// Document is one generated tool configuration.
type Document struct {
	Schema string
	JSON   string
}

// Generator renders tool configurations according to a config.Config.
// It is safe for concurrent use.
type Generator struct {
	config   *config.Config
	logger   utils.Logger
	builders *providers.BuilderRegistry
}

// New creates a Generator from config.NewConfig with the given options applied.
func New(opts ...config.ConfigOption) *Generator {
	cfg := config.NewConfig()
	config.ApplyOptions(cfg, opts...)
	return NewFromConfig(cfg)
}

// NewFromConfig creates a Generator from an existing configuration.
func NewFromConfig(cfg *config.Config) *Generator {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = utils.NewLogger(cfg.LogLevel)
	}
	return &Generator{
		config:   cfg,
		logger:   logger,
		builders: providers.NewBuilderRegistry(),
	}
}

// Config returns the generator's configuration.
func (g *Generator) Config() *config.Config {
	return g.config
}

// Register adds a builder for an extra schema, usable through Render.
func (g *Generator) Register(schema string, builder providers.Builder) {
	g.builders.Register(schema, builder)
}

// Gemini renders tc as a Gemini tools document.
func (g *Generator) Gemini(tc *types.ToolConfig) (string, error) {
	return g.Render(providers.SchemaGemini, tc)
}

// OpenAI renders tc as an OpenAI tools document.
func (g *Generator) OpenAI(tc *types.ToolConfig) (string, error) {
	return g.Render(providers.SchemaOpenAI, tc)
}

// Generate renders the documents selected by the configured target, Gemini first.
func (g *Generator) Generate(tc *types.ToolConfig) ([]Document, error) {
	var schemas []string
	switch g.config.Target {
	case config.TargetGemini:
		schemas = []string{providers.SchemaGemini}
	case config.TargetOpenAI:
		schemas = []string{providers.SchemaOpenAI}
	case config.TargetBoth:
		schemas = []string{providers.SchemaGemini, providers.SchemaOpenAI}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, g.config.Target)
	}

	docs := make([]Document, 0, len(schemas))
	for _, schema := range schemas {
		out, err := g.Render(schema, tc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{Schema: schema, JSON: out})
	}
	return docs, nil
}

// Render renders tc with the builder registered under schema.
func (g *Generator) Render(schema string, tc *types.ToolConfig) (string, error) {
	build, err := g.builders.Get(schema)
	if err != nil {
		return "", err
	}

	if g.config.Validate {
		if err := types.Validate(tc); err != nil {
			g.logger.Error("Tool config failed validation", "schema", schema, "error", err)
			return "", err
		}
	}

	g.logger.Debug("Generating tools config", "schema", schema, "functions", tc.Len())
	out, err := build(tc)
	if err != nil {
		g.logger.Error("Failed to generate tools config", "schema", schema, "error", err)
		return "", err
	}
	g.logger.Debug("Generated tools config", "schema", schema, "bytes", len(out))
	return out, nil
}
