package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance used across the package.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a ToolConfig for problems the schema builders accept silently:
// empty function or parameter names, empty type strings, and duplicated names.
// The builders never call it; callers that want a stricter contract run it first.
//
// Type strings are only checked for presence, not against the JSON Schema vocabulary.
func Validate(cfg *ToolConfig) error {
	if cfg == nil {
		return nil
	}
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid tool config: %s", describe(verrs))
		}
		return fmt.Errorf("invalid tool config: %w", err)
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "ToolConfig.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "unique":
			msgs = append(msgs, field+" contains duplicate names")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
