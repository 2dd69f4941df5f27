package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// readDocument decodes a YAML or JSON file into dst using dst's json tags,
// so files use the same snake_case keys as the API.
func readDocument(path string, dst any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path from trusted CLI flag
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
