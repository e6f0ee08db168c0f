package stack

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a layout to indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return data, nil
}

// UnmarshalLayout parses a layout from JSON.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Mode != "" && !l.Mode.Valid() {
		return Layout{}, fmt.Errorf("unmarshal layout: unknown mode %q", l.Mode)
	}
	return l, nil
}

// WriteLayoutFile writes a layout to path as JSON.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write layout file: %w", err)
	}
	return nil
}

// ReadLayoutFile reads a layout from a JSON file at path.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout file: %w", err)
	}
	return UnmarshalLayout(data)
}
