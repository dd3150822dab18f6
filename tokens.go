package toolschema

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const defaultTokenModel = "gpt-4o"

// CountTokens estimates how many prompt tokens a generated document consumes
// for the configured token model. Unknown models fall back to the gpt-4o encoding.
//
// The first call for an encoding downloads its BPE ranks unless TIKTOKEN_CACHE_DIR
// points at a warm cache.
func (g *Generator) CountTokens(doc string) (int, error) {
	model := g.config.TokenModel
	if model == "" {
		model = defaultTokenModel
	}

	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		g.logger.Warn("Failed to get encoding for model, defaulting to gpt-4o", "model", model, "error", err)
		encoding, err = tiktoken.EncodingForModel(defaultTokenModel)
		if err != nil {
			return 0, fmt.Errorf("failed to get default encoding: %w", err)
		}
	}

	return len(encoding.Encode(doc, nil, nil)), nil
}
