// Package editor implements the interaction state machine that turns
// pointer and keyboard events into annotation edits. A single Controller
// instance owns the current tool, the project, the in-progress annotation,
// the selection, and the drag target, and mediates every mutation through
// the history manager.
package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/JenkinsJB/roids/internal/config"
	"github.com/JenkinsJB/roids/pkg/annotation"
	"github.com/JenkinsJB/roids/pkg/geometry"
	"github.com/JenkinsJB/roids/pkg/history"
	"github.com/JenkinsJB/roids/pkg/media"
	"github.com/JenkinsJB/roids/pkg/serialization"
)

// ErrNoProject is returned when an export is requested before any image
// or annotation file has been loaded.
var ErrNoProject = errors.New("no project loaded")

// Controller is the single owner of all interactive editing state. It is
// not safe for concurrent use: one user event must fully resolve before
// the next is processed. The only concurrency is the background image
// loader, which communicates by value through Poll.
type Controller struct {
	tool       Tool
	project    *annotation.Project
	frame      *media.Frame
	history    *history.Manager
	loader     *media.Loader
	inProgress *annotation.Annotation

	// selected and drag reference project contents by index, never by
	// pointer: indices survive history snapshot swaps.
	selected int
	drag     *DragTarget

	// counter is monotonic and used only for default naming; it is never
	// reused, even after deletions.
	counter uint

	pickRadiusPx  float64
	pickThreshold float64 // normalized override, 0 = derive from frame
	textFocus     func() bool
	status        string
}

// New creates a controller with no project loaded.
func New(cfg *config.Config) *Controller {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Controller{
		tool:         ToolSelect,
		history:      history.NewManager(cfg.Editor.HistoryLimit),
		loader:       media.NewLoader(),
		selected:     -1,
		pickRadiusPx: cfg.Editor.PickRadiusPx,
	}
}

// SelectTool switches the active tool. Switching away from a draw tool
// discards any in-progress annotation without touching history.
func (c *Controller) SelectTool(t Tool) {
	if t != c.tool {
		c.inProgress = nil
	}
	c.tool = t
}

// Tool returns the active tool.
func (c *Controller) Tool() Tool {
	return c.tool
}

// Project returns the live project, or nil when nothing is loaded.
// Renderers should use Scene instead; this accessor exists for the
// surrounding shell and for persistence.
func (c *Controller) Project() *annotation.Project {
	return c.project
}

// Status returns the last user-visible status or warning message.
func (c *Controller) Status() string {
	return c.status
}

// SetTextFocusQuery installs the shell's predicate reporting whether a
// text-editing widget currently has focus. While it returns true, the
// delete actions are suppressed.
func (c *Controller) SetTextFocusQuery(fn func() bool) {
	c.textFocus = fn
}

// SetPickThreshold overrides the derived hit-test tolerance with an exact
// normalized value, typically recomputed by the shell from the current
// display scale. Zero restores the derived default.
func (c *Controller) SetPickThreshold(norm float64) {
	c.pickThreshold = norm
}

// Click handles an accepted single click at normalized coordinates.
func (c *Controller) Click(p annotation.Point) {
	if c.loading() || c.project == nil {
		return
	}
	switch c.tool {
	case ToolPolygon:
		c.appendVertex(p, annotation.Polygon)
	case ToolLine:
		c.appendVertex(p, annotation.Line)
	case ToolSelect:
		if i, ok := c.hitAnnotation(p); ok {
			c.selected = i
		} else {
			c.selected = -1
		}
	}
}

// DoubleClick finishes an in-progress polygon. Lines finish via Escape.
func (c *Controller) DoubleClick(p annotation.Point) {
	if c.loading() {
		return
	}
	if c.tool == ToolPolygon && c.inProgress != nil {
		c.finishInProgress()
	}
}

// Escape finishes an in-progress line (subject to the commit gate) or
// cancels any other in-progress annotation, discarding it without
// touching history or the counter.
func (c *Controller) Escape() {
	if c.loading() || c.inProgress == nil {
		return
	}
	if c.tool == ToolLine {
		c.finishInProgress()
		return
	}
	c.inProgress = nil
}

// Press begins a vertex drag when the select tool is active and the press
// lands near a vertex of the selected annotation. The history snapshot is
// taken once here, so the whole drag collapses into a single undo step.
func (c *Controller) Press(p annotation.Point) {
	if c.loading() || c.tool != ToolSelect || c.project == nil {
		return
	}
	if c.selected < 0 || c.selected >= len(c.project.Annotations) {
		return
	}
	a := &c.project.Annotations[c.selected]
	vi, ok := geometry.VertexWithinThreshold(a.Vertices, p, c.pickTolerance())
	if !ok {
		return
	}
	c.history.Push(c.project.CloneAnnotations())
	c.drag = &DragTarget{Annotation: c.selected, Vertex: vi}
}

// Move applies an intermediate drag position directly, without an
// additional history entry.
func (c *Controller) Move(p annotation.Point) {
	if c.drag == nil || c.project == nil {
		return
	}
	if c.drag.Annotation < 0 || c.drag.Annotation >= len(c.project.Annotations) {
		return
	}
	c.project.Annotations[c.drag.Annotation].UpdateVertex(c.drag.Vertex, p)
}

// Release ends a vertex drag.
func (c *Controller) Release() {
	c.drag = nil
}

// DeleteVertexAt removes the vertex of the selected annotation nearest to
// p, if one is within the pick tolerance. Removal is refused when it
// would leave fewer than 2 vertices.
func (c *Controller) DeleteVertexAt(p annotation.Point) {
	if c.loading() || c.tool != ToolSelect || c.project == nil {
		return
	}
	if c.textFocus != nil && c.textFocus() {
		return
	}
	if c.selected < 0 || c.selected >= len(c.project.Annotations) {
		return
	}
	a := &c.project.Annotations[c.selected]
	vi, ok := geometry.VertexWithinThreshold(a.Vertices, p, c.pickTolerance())
	if !ok || a.VertexCount() <= 2 {
		return
	}
	c.history.Push(c.project.CloneAnnotations())
	a.RemoveVertex(vi)
}

// DeleteSelected removes the selected annotation, snapshotting history
// first and clearing the selection. It is suppressed while a text-editing
// widget has focus.
func (c *Controller) DeleteSelected() {
	if c.loading() || c.project == nil {
		return
	}
	if c.textFocus != nil && c.textFocus() {
		return
	}
	if c.selected < 0 || c.selected >= len(c.project.Annotations) {
		return
	}
	c.history.Push(c.project.CloneAnnotations())
	c.project.RemoveAnnotation(c.selected)
	c.selected = -1
}

// DeleteKey handles the Delete/Backspace key. It behaves exactly like the
// explicit delete action.
func (c *Controller) DeleteKey() {
	c.DeleteSelected()
}

// Undo restores the previous annotation collection, if any. The selection
// is cleared rather than remapped.
func (c *Controller) Undo() {
	if c.project == nil {
		return
	}
	if restored, ok := c.history.Undo(c.project.CloneAnnotations()); ok {
		c.project.ReplaceAnnotations(restored)
		c.selected = -1
		c.drag = nil
	}
}

// Redo reapplies the most recently undone annotation collection, if any.
func (c *Controller) Redo() {
	if c.project == nil {
		return
	}
	if restored, ok := c.history.Redo(c.project.CloneAnnotations()); ok {
		c.project.ReplaceAnnotations(restored)
		c.selected = -1
		c.drag = nil
	}
}

// CanUndo reports whether an undo step is available, for UI enablement.
func (c *Controller) CanUndo() bool {
	return c.history.CanUndo()
}

// CanRedo reports whether a redo step is available, for UI enablement.
func (c *Controller) CanRedo() bool {
	return c.history.CanRedo()
}

// OpenImage dispatches a background load of the image at path. On
// completion a fresh project referencing that image replaces the current
// one. A decode failure leaves the prior project and image untouched.
func (c *Controller) OpenImage(path string) {
	c.loader.StartImage(path)
	c.setStatus("loading image %s", path)
}

// LoadAnnotations dispatches a background import of the annotation file
// at path and of the image it references. A parse failure installs
// nothing; a missing referenced image installs the annotations alone with
// a warning.
func (c *Controller) LoadAnnotations(path string) {
	c.loader.StartProject(path)
	c.setStatus("loading annotations %s", path)
}

// ExportAnnotations writes the current project to path, with the encoding
// chosen by extension.
func (c *Controller) ExportAnnotations(path string) error {
	if c.project == nil {
		return ErrNoProject
	}
	if err := serialization.Export(c.project, path); err != nil {
		c.setStatus("export failed: %v", err)
		return err
	}
	c.setStatus("exported annotations to %s", path)
	return nil
}

// Poll checks the background loader once and applies a completed result.
// It returns true while a load remains outstanding, in which case the
// shell should keep polling; canvas interaction is suppressed until then.
func (c *Controller) Poll() bool {
	res, ok := c.loader.Poll()
	if !ok {
		return c.loader.Pending()
	}
	c.applyLoadResult(res)
	return c.loader.Pending()
}

// Loading reports whether a load is outstanding.
func (c *Controller) Loading() bool {
	return c.loading()
}

// InstallProject replaces the current project and frame wholesale:
// history, selection, drag state, and the in-progress annotation are all
// reset, and the naming counter restarts past the installed annotations.
func (c *Controller) InstallProject(project *annotation.Project, frame *media.Frame) {
	c.project = project
	c.frame = frame
	c.history.Clear()
	c.inProgress = nil
	c.selected = -1
	c.drag = nil
	c.counter = uint(len(project.Annotations))
}

func (c *Controller) applyLoadResult(res *media.Result) {
	if res.Err != nil {
		c.setStatus("load failed: %v", res.Err)
		return
	}
	if res.Project != nil {
		c.InstallProject(res.Project, res.Frame)
		if res.Warning != "" {
			c.setStatus("loaded annotations from %s; %s", res.Path, res.Warning)
		} else {
			c.setStatus("loaded annotations from %s", res.Path)
		}
		return
	}
	project := annotation.NewProject(res.Path, res.Frame.Width, res.Frame.Height)
	c.InstallProject(project, res.Frame)
	c.setStatus("loaded image %s (%dx%d)", res.Path, res.Frame.Width, res.Frame.Height)
}

func (c *Controller) appendVertex(p annotation.Point, kind annotation.Kind) {
	if c.inProgress == nil {
		name := fmt.Sprintf("%s %d", kindLabel(kind), c.counter+1)
		a := annotation.New(name, kind)
		c.inProgress = &a
	}
	c.inProgress.AddVertex(p)
}

// finishInProgress commits the in-progress annotation if it passes the
// commit gate (at least 2 vertices) and discards it silently otherwise.
func (c *Controller) finishInProgress() {
	a := c.inProgress
	c.inProgress = nil
	if a == nil || a.VertexCount() < 2 {
		return
	}
	c.history.Push(c.project.CloneAnnotations())
	c.project.AddAnnotation(*a)
	c.counter++
}

// hitAnnotation returns the first annotation whose vertex or edge lies
// within the pick tolerance of p.
func (c *Controller) hitAnnotation(p annotation.Point) (int, bool) {
	tolerance := c.pickTolerance()
	for i := range c.project.Annotations {
		a := &c.project.Annotations[i]
		if _, ok := geometry.VertexWithinThreshold(a.Vertices, p, tolerance); ok {
			return i, true
		}
		if hitEdge(a, p, tolerance) {
			return i, true
		}
	}
	return 0, false
}

func hitEdge(a *annotation.Annotation, p annotation.Point, tolerance float64) bool {
	limit := tolerance * tolerance
	n := len(a.Vertices)
	for i := 0; i+1 < n; i++ {
		if geometry.DistanceToSegmentSquared(p, a.Vertices[i], a.Vertices[i+1]) <= limit {
			return true
		}
	}
	if a.IsClosed() && n >= 3 {
		if geometry.DistanceToSegmentSquared(p, a.Vertices[n-1], a.Vertices[0]) <= limit {
			return true
		}
	}
	return false
}

// pickTolerance converts the configured pixel radius into normalized
// units using the frame width as the display scale. Shells that zoom or
// letterbox should install the exact value via SetPickThreshold.
func (c *Controller) pickTolerance() float64 {
	if c.pickThreshold > 0 {
		return c.pickThreshold
	}
	if c.frame != nil && c.frame.Width > 0 {
		return c.pickRadiusPx / float64(c.frame.Width)
	}
	if c.project != nil && c.project.FrameWidth > 0 {
		return c.pickRadiusPx / float64(c.project.FrameWidth)
	}
	return 0.01
}

func (c *Controller) loading() bool {
	return c.loader.Pending()
}

func (c *Controller) setStatus(format string, args ...interface{}) {
	c.status = fmt.Sprintf(format, args...)
	log.Printf("%s", c.status)
}

func kindLabel(kind annotation.Kind) string {
	if kind == annotation.Polygon {
		return "region"
	}
	return "line"
}
