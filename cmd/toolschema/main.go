// Package main provides a command-line interface for generating tool configurations.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/teilomillet/toolschema"
	"github.com/teilomillet/toolschema/config"
	"github.com/teilomillet/toolschema/types"
)

// cmdFlags holds all command-line flags
type cmdFlags struct {
	configPath  string
	target      string
	validate    bool
	countTokens bool
	printSchema bool
}

// parseFlags parses command-line flags
func parseFlags() *cmdFlags {
	flags := &cmdFlags{}
	flag.StringVar(&flags.configPath, "config", "", "Tool config file (YAML or JSON); the built-in weather sample is used when empty")
	flag.StringVar(&flags.target, "target", "", "Documents to generate (gemini, openai, both)")
	flag.BoolVar(&flags.validate, "validate", false, "Validate the tool config before generating")
	flag.BoolVar(&flags.countTokens, "tokens", false, "Print an estimated token count for each document")
	flag.BoolVar(&flags.printSchema, "schema", false, "Print the JSON Schema of the tool config format and exit")
	flag.Parse()
	return flags
}

func main() {
	flags := parseFlags()

	if flags.printSchema {
		schema, err := types.InputJSONSchema()
		if err != nil {
			exitWithError("Error generating input schema: %v\n", err)
		}
		fmt.Println(string(schema))
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		exitWithError("Error loading .env: %v\n", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		exitWithError("Error loading configuration: %v\n", err)
	}
	applyFlags(cfg, flags)

	toolConfig, err := loadToolConfig(flags.configPath)
	if err != nil {
		exitWithError("Error loading tool config: %v\n", err)
	}

	gen := toolschema.NewFromConfig(cfg)
	docs, err := gen.Generate(toolConfig)
	if err != nil {
		exitWithError("Error generating tools config: %v\n", err)
	}

	for _, doc := range docs {
		fmt.Printf("%s config:\n%s\n", doc.Schema, doc.JSON)
		if flags.countTokens {
			n, err := gen.CountTokens(doc.JSON)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error counting tokens for %s: %v\n", doc.Schema, err)
				continue
			}
			fmt.Printf("%s tokens (%s): %d\n", doc.Schema, cfg.TokenModel, n)
		}
	}
}

// applyFlags overrides environment configuration with explicitly set flags
func applyFlags(cfg *config.Config, flags *cmdFlags) {
	var opts []config.ConfigOption
	if flags.target != "" {
		opts = append(opts, config.SetTarget(flags.target))
	}
	if flags.validate {
		opts = append(opts, config.SetValidate(true))
	}
	config.ApplyOptions(cfg, opts...)
}

func loadToolConfig(path string) (*types.ToolConfig, error) {
	if path == "" {
		return sampleToolConfig(), nil
	}
	return toolschema.LoadToolConfig(path)
}

// sampleToolConfig is the weather example used when no config file is given
func sampleToolConfig() *types.ToolConfig {
	return types.NewToolConfig(types.FunctionDefinition{
		Name:        "get_current_weather",
		Description: "获取当前天气",
		Parameters: []types.FunctionParameter{
			{
				Name:        "location",
				Description: "城市名",
				Type:        "string",
				Required:    true,
			},
			{
				Name:        "unit",
				Description: "温度单位",
				Type:        "string",
				EnumValues:  []string{"celsius", "fahrenheit"},
			},
		},
	})
}

// exitWithError prints an error message and exits
func exitWithError(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
