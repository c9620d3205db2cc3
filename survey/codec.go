package survey

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// profileCodec encodes a ProfileTable to and from its on-disk text form.
type profileCodec struct {
	name      string
	marshal   func(ProfileTable) ([]byte, error)
	unmarshal func([]byte, *ProfileTable) error
}

var jsonCodec = profileCodec{
	name: "json",
	marshal: func(t ProfileTable) ([]byte, error) {
		return json.MarshalIndent(t, "", "  ")
	},
	unmarshal: func(b []byte, t *ProfileTable) error {
		return json.Unmarshal(b, t)
	},
}

var yamlCodec = profileCodec{
	name: "yaml",
	marshal: func(t ProfileTable) ([]byte, error) {
		return yaml.Marshal(t)
	},
	unmarshal: func(b []byte, t *ProfileTable) error {
		return yaml.Unmarshal(b, t)
	},
}

// codecForPath picks the codec from the file extension. An empty extension means JSON.
func codecForPath(path string) (profileCodec, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".json":
		return jsonCodec, nil
	case ".yaml", ".yml":
		return yamlCodec, nil
	default:
		return profileCodec{}, fmt.Errorf("unsupported profile file extension %q (want .json, .yaml or .yml)", ext)
	}
}

// CheckPath reports whether path has an extension the store knows how to encode.
func CheckPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("CheckPath: path is empty")
	}
	_, err := codecForPath(path)
	return err
}
