// Package annotation defines the core data model: normalized points,
// polygon/line annotations, and the project that owns them.
package annotation

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Point is a 2D point with coordinates normalized to the [0, 1] range
// relative to the image width and height.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarshalYAML encodes a point as a two-element [x, y] sequence.
func (p Point) MarshalYAML() (interface{}, error) {
	return []float64{p.X, p.Y}, nil
}

// UnmarshalYAML decodes a point from a two-element [x, y] sequence.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var coords []float64
	if err := value.Decode(&coords); err != nil {
		return fmt.Errorf("failed to decode point: %w", err)
	}
	if len(coords) != 2 {
		return fmt.Errorf("point must have exactly 2 coordinates, got %d", len(coords))
	}
	p.X = coords[0]
	p.Y = coords[1]
	return nil
}

// Kind is the type of an annotation.
type Kind int

const (
	// Polygon is a closed region with an implicit edge between the last
	// and first vertex.
	Polygon Kind = iota
	// Line is an open polyline.
	Line
)

// String returns the lowercase tag used in serialized form.
func (k Kind) String() string {
	switch k {
	case Polygon:
		return "polygon"
	case Line:
		return "line"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a serialized tag back into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "polygon":
		return Polygon, nil
	case "line":
		return Line, nil
	default:
		return 0, fmt.Errorf("unknown annotation type: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler (used by encoding/json).
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Polygon, Line:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("invalid annotation kind: %d", int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler (used by encoding/json).
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// MarshalYAML encodes the kind as its lowercase tag.
func (k Kind) MarshalYAML() (interface{}, error) {
	switch k {
	case Polygon, Line:
		return k.String(), nil
	default:
		return nil, fmt.Errorf("invalid annotation kind: %d", int(k))
	}
}

// UnmarshalYAML decodes the kind from its lowercase tag.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var tag string
	if err := value.Decode(&tag); err != nil {
		return fmt.Errorf("failed to decode annotation type: %w", err)
	}
	kind, err := ParseKind(tag)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Annotation is a named polygon or line with an ordered vertex sequence.
// Vertex order is insertion order and is semantically meaningful: edges
// connect consecutive vertices.
type Annotation struct {
	Name     string  `json:"name" yaml:"name"`
	Kind     Kind    `json:"type" yaml:"type"`
	Vertices []Point `json:"vertices" yaml:"vertices"`
}

// New creates an annotation with the given name and kind and no vertices.
func New(name string, kind Kind) Annotation {
	return Annotation{
		Name:     name,
		Kind:     kind,
		Vertices: []Point{},
	}
}

// AddVertex appends a vertex to the annotation.
func (a *Annotation) AddVertex(p Point) {
	a.Vertices = append(a.Vertices, p)
}

// UpdateVertex replaces the vertex at index i. It returns false if the
// index is out of bounds.
func (a *Annotation) UpdateVertex(i int, p Point) bool {
	if i < 0 || i >= len(a.Vertices) {
		return false
	}
	a.Vertices[i] = p
	return true
}

// RemoveVertex deletes the vertex at index i. It returns false if the
// index is out of bounds.
func (a *Annotation) RemoveVertex(i int) bool {
	if i < 0 || i >= len(a.Vertices) {
		return false
	}
	a.Vertices = append(a.Vertices[:i], a.Vertices[i+1:]...)
	return true
}

// VertexCount returns the number of vertices.
func (a *Annotation) VertexCount() int {
	return len(a.Vertices)
}

// IsClosed reports whether the annotation has an implicit closing edge.
// This depends only on the kind, never on the vertex count.
func (a *Annotation) IsClosed() bool {
	return a.Kind == Polygon
}

// Clone returns a deep copy of the annotation.
func (a *Annotation) Clone() Annotation {
	vertices := make([]Point, len(a.Vertices))
	copy(vertices, a.Vertices)
	return Annotation{
		Name:     a.Name,
		Kind:     a.Kind,
		Vertices: vertices,
	}
}

// CloneAll returns a deep copy of an annotation slice. Used wherever a
// snapshot must not alias live project state.
func CloneAll(annotations []Annotation) []Annotation {
	cloned := make([]Annotation, len(annotations))
	for i := range annotations {
		cloned[i] = annotations[i].Clone()
	}
	return cloned
}
