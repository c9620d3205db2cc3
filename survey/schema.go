package survey

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ProfileSchema returns an indented JSON Schema describing the persisted profile table.
func ProfileSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	schema := reflector.Reflect(ProfileTable{})
	schema.Title = "Party profile table"
	schema.Description = "Per-party typical answer index (zero-based) keyed by question ID."

	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ProfileSchema: marshal: %w", err)
	}
	return b, nil
}
