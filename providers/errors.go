package providers

import (
	"fmt"
)

// Schema names used in errors and by the facade.
const (
	SchemaGemini = "gemini"
	SchemaOpenAI = "openai"
)

// SerializationError is returned when a constructed tool document cannot be encoded as JSON.
// The documented data model only holds strings, booleans and lists of them, so it is
// not reachable through well-formed input.
type SerializationError struct {
	Schema string
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("SerializationError (%s): %v", e.Schema, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// NewSerializationError creates a new SerializationError
func NewSerializationError(schema string, err error) *SerializationError {
	return &SerializationError{
		Schema: schema,
		Err:    err,
	}
}
