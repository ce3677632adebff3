// Package serialization persists projects as JSON or YAML and restores
// them losslessly. The two encodings share the same schema; YAML output
// additionally rewrites vertex sequences into inline [x, y] lists.
package serialization

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JenkinsJB/roids/internal/utils"
	"github.com/JenkinsJB/roids/pkg/annotation"
)

// ErrUnsupportedExtension is returned when a file's extension maps to no
// known annotation format. An unrecognized extension is an error, never a
// silent fallback.
var ErrUnsupportedExtension = errors.New("unsupported annotation file extension")

// Export writes the project to path, choosing the encoding by extension
// (.json, .yaml, or .yml).
func Export(project *annotation.Project, path string) error {
	data, err := encodeForPath(project, path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write annotation file: %w", err)
	}
	return nil
}

// Import reads a project from path, choosing the encoding by extension.
// A malformed file or schema mismatch aborts the import; no partial
// project is ever returned.
func Import(path string) (*annotation.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotation file: %w", err)
	}

	var project *annotation.Project
	switch utils.GetFileExtension(path) {
	case "json":
		project, err = DecodeJSON(data)
	case "yaml", "yml":
		project, err = DecodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, path)
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

func encodeForPath(project *annotation.Project, path string) ([]byte, error) {
	switch utils.GetFileExtension(path) {
	case "json":
		return EncodeJSON(project)
	case "yaml", "yml":
		return EncodeYAML(project)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, path)
	}
}

// EncodeJSON renders the project as pretty-printed JSON with keys in
// struct declaration order.
func EncodeJSON(project *annotation.Project) ([]byte, error) {
	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode project as JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeJSON parses and validates a JSON-encoded project.
func DecodeJSON(data []byte) (*annotation.Project, error) {
	var project annotation.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to parse JSON project: %w", err)
	}
	if err := validateProject(&project); err != nil {
		return nil, err
	}
	if project.Annotations == nil {
		project.Annotations = []annotation.Annotation{}
	}
	return &project, nil
}

// EncodeYAML renders the project as YAML with vertex sequences rewritten
// into inline [x, y] lists.
func EncodeYAML(project *annotation.Project) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(project); err != nil {
		return nil, fmt.Errorf("failed to encode project as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode project as YAML: %w", err)
	}
	return []byte(inlineVertexLists(buf.String())), nil
}

// DecodeYAML parses and validates a YAML-encoded project. The inline
// bracket form written by EncodeYAML is standard YAML and needs no
// special handling here.
func DecodeYAML(data []byte) (*annotation.Project, error) {
	var project annotation.Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to parse YAML project: %w", err)
	}
	if err := validateProject(&project); err != nil {
		return nil, err
	}
	if project.Annotations == nil {
		project.Annotations = []annotation.Annotation{}
	}
	return &project, nil
}

// validateProject rejects decoded projects that violate the model
// invariants: unknown kinds are caught during decoding, so this checks
// vertex counts and coordinate finiteness.
func validateProject(project *annotation.Project) error {
	for i := range project.Annotations {
		a := &project.Annotations[i]
		if a.VertexCount() < 2 {
			return fmt.Errorf("annotation %q has %d vertices; at least 2 are required", a.Name, a.VertexCount())
		}
		for _, v := range a.Vertices {
			if !isFinite(v.X) || !isFinite(v.Y) {
				return fmt.Errorf("annotation %q has a non-finite vertex coordinate", a.Name)
			}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SupportedExtension reports whether path carries a recognized annotation
// file extension.
func SupportedExtension(path string) bool {
	switch utils.GetFileExtension(path) {
	case "json", "yaml", "yml":
		return true
	default:
		return false
	}
}
