package survey

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProfileSchema(t *testing.T) {
	t.Parallel()

	b, err := ProfileSchema()
	if err != nil {
		t.Fatalf("ProfileSchema: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}
	if m["type"] != "object" {
		t.Fatalf("type=%v, want object", m["type"])
	}
	if m["title"] != "Party profile table" {
		t.Fatalf("title=%v", m["title"])
	}
	if !strings.Contains(string(b), `"integer"`) {
		t.Fatalf("schema should describe integer answers:\n%s", b)
	}
	if !strings.Contains(string(b), `"additionalProperties"`) {
		t.Fatalf("schema should describe map values:\n%s", b)
	}
}
