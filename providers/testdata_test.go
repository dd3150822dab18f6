package providers

import (
	"github.com/teilomillet/toolschema/types"
)

func weatherConfig() *types.ToolConfig {
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

func multiConfig() *types.ToolConfig {
	return types.NewToolConfig(
		types.FunctionDefinition{
			Name:        "search",
			Description: "Search the index",
			Parameters: []types.FunctionParameter{
				{Name: "query", Description: "Search terms", Type: "string", Required: true},
				{Name: "limit", Description: "Max results", Type: "number"},
				{Name: "exact", Description: "Exact match", Type: "boolean", Required: true},
			},
		},
		types.FunctionDefinition{
			Name:        "ping",
			Description: "No arguments",
		},
		types.FunctionDefinition{
			Name:        "archive",
			Description: "Archive a record",
			Parameters: []types.FunctionParameter{
				{Name: "zeta", Description: "Last alphabetically", Type: "string"},
				{Name: "alpha", Description: "First alphabetically", Type: "string"},
			},
		},
	)
}
