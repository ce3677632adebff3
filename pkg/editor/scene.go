package editor

import (
	"github.com/JenkinsJB/roids/pkg/annotation"
	"github.com/JenkinsJB/roids/pkg/media"
)

// Tool is the active editing tool.
type Tool int

const (
	// ToolSelect picks and manipulates existing annotations.
	ToolSelect Tool = iota
	// ToolPolygon draws closed regions.
	ToolPolygon
	// ToolLine draws open polylines.
	ToolLine
)

// String returns a human-readable tool name.
func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolPolygon:
		return "polygon"
	case ToolLine:
		return "line"
	default:
		return "unknown"
	}
}

// DragTarget identifies the vertex being dragged, by position.
type DragTarget struct {
	Annotation int
	Vertex     int
}

// SceneAnnotation is a read-only view of one annotation for drawing.
type SceneAnnotation struct {
	Name     string
	Vertices []annotation.Point
	Closed   bool
}

// Scene is the per-frame read-only snapshot the rendering surface
// consumes. The renderer never mutates controller state; all slices are
// copies of the live data.
type Scene struct {
	Tool        Tool
	Frame       *media.Frame
	Annotations []SceneAnnotation
	InProgress  *SceneAnnotation
	Selected    int // index into Annotations, -1 when nothing is selected
	Drag        *DragTarget
	Loading     bool
}

// Scene captures the current editing state for the renderer.
func (c *Controller) Scene() Scene {
	scene := Scene{
		Tool:     c.tool,
		Frame:    c.frame,
		Selected: c.selected,
		Loading:  c.loading(),
	}

	if c.project != nil {
		scene.Annotations = make([]SceneAnnotation, len(c.project.Annotations))
		for i := range c.project.Annotations {
			scene.Annotations[i] = sceneAnnotation(&c.project.Annotations[i])
		}
	}
	if c.inProgress != nil {
		view := sceneAnnotation(c.inProgress)
		scene.InProgress = &view
	}
	if c.drag != nil {
		target := *c.drag
		scene.Drag = &target
	}
	return scene
}

func sceneAnnotation(a *annotation.Annotation) SceneAnnotation {
	vertices := make([]annotation.Point, len(a.Vertices))
	copy(vertices, a.Vertices)
	return SceneAnnotation{
		Name:     a.Name,
		Vertices: vertices,
		Closed:   a.IsClosed(),
	}
}
