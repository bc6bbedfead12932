package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadFile loads a schema document from disk, picking the decoder by file
// extension: .yaml/.yml parse as YAML, everything else as JSON.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON parses JSON data into a schema document.
func ParseJSON(data []byte) (map[string]any, error) {
	var doc map[string]any

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	return doc, nil
}

// ParseYAML parses YAML data into a schema document. Mapping keys must be
// strings, matching the JSON object model.
func ParseYAML(data []byte) (map[string]any, error) {
	var doc map[string]any

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	return doc, nil
}
