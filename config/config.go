// File: config/config.go

package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/teilomillet/toolschema/utils"
)

// Targets accepted by Config.Target.
const (
	TargetGemini = "gemini"
	TargetOpenAI = "openai"
	TargetBoth   = "both"
)

type Config struct {
	Target     string         `env:"TOOLSCHEMA_TARGET" envDefault:"both"`
	LogLevel   utils.LogLevel `env:"TOOLSCHEMA_LOG_LEVEL" envDefault:"WARN"`
	Validate   bool           `env:"TOOLSCHEMA_VALIDATE" envDefault:"false"`
	TokenModel string         `env:"TOOLSCHEMA_TOKEN_MODEL" envDefault:"gpt-4o"`
	Logger     utils.Logger
}

// LoadConfig reads the configuration from TOOLSCHEMA_* environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

type ConfigOption func(*Config)

func NewConfig() *Config {
	return &Config{
		Target:     TargetBoth,
		LogLevel:   utils.LogLevelWarn,
		TokenModel: "gpt-4o",
	}
}

func SetTarget(target string) ConfigOption {
	return func(c *Config) {
		c.Target = target
	}
}

func SetLogLevel(level utils.LogLevel) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// SetValidate makes the facade run types.Validate before generating.
func SetValidate(validate bool) ConfigOption {
	return func(c *Config) {
		c.Validate = validate
	}
}

func SetTokenModel(model string) ConfigOption {
	return func(c *Config) {
		c.TokenModel = model
	}
}

// SetLogger replaces the logger built from LogLevel.
func SetLogger(logger utils.Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

func ApplyOptions(cfg *Config, options ...ConfigOption) {
	for _, option := range options {
		option(cfg)
	}
}
