package motiongraph

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeJSON renders the timeline as the renderer consumes it.
func EncodeJSON(t *Timeline) ([]byte, error) {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode timeline json: %w", err)
	}
	return b, nil
}

func EncodeYAML(t *Timeline) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("encode timeline yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode timeline yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeYAML(b []byte) (*Timeline, error) {
	var t Timeline
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("decode timeline yaml: %w", err)
	}
	return &t, nil
}
