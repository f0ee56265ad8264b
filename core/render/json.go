// Package render — JSON renderer.
// Emits the page metadata and the normalized meta object as indented JSON.
// Media records marshal with every field present; unset values are null.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/ogmedia/core"
)

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the page.
func (r *JSONRenderer) Render(page core.PageJSON) ([]byte, error) {
	if page.Meta == nil {
		page.Meta = core.Object{}
	}
	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
