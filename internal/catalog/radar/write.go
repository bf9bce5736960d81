package radar

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kamusis/techradar/internal/publish"
)

// ErrNoTechnologies is returned instead of writing an empty artifact.
var ErrNoTechnologies = errors.New("no technologies found")

// GlobalName is the browser global the artifact exposes the data under.
const GlobalName = "radarData"

// Render returns the JavaScript artifact embedding d.
func Render(d Data) ([]byte, error) {
	var js bytes.Buffer
	enc := json.NewEncoder(&js)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("cannot encode radar data: %w", err)
	}

	var out bytes.Buffer
	out.WriteString("// Auto-generated radar data\n")
	out.WriteString("// Generated from markdown files in docs/\n\n")
	fmt.Fprintf(&out, "const %s = %s;\n\n", GlobalName, bytes.TrimRight(js.Bytes(), "\n"))
	out.WriteString("// Make it available globally\n")
	out.WriteString("if (typeof window !== 'undefined') {\n")
	fmt.Fprintf(&out, "    window.%s = %s;\n", GlobalName, GlobalName)
	out.WriteString("}\n")
	return out.Bytes(), nil
}

// Write renders d and atomically replaces path with it. Nothing is written when
// d has no technologies.
func Write(path string, d Data) error {
	if len(d.Technologies) == 0 {
		return ErrNoTechnologies
	}
	b, err := Render(d)
	if err != nil {
		return err
	}
	if err := publish.WriteFile(path, b); err != nil {
		return fmt.Errorf("cannot write radar data %s: %w", path, err)
	}
	return nil
}
