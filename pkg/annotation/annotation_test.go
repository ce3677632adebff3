package annotation

import "testing"

func TestNew(t *testing.T) {
	a := New("region 1", Polygon)

	if a.Name != "region 1" {
		t.Errorf("Expected name %q, got %q", "region 1", a.Name)
	}
	if a.Kind != Polygon {
		t.Errorf("Expected Polygon kind, got %v", a.Kind)
	}
	if a.VertexCount() != 0 {
		t.Errorf("Expected empty vertex sequence, got %d", a.VertexCount())
	}
}

func TestAddVertexCount(t *testing.T) {
	a := New("line 1", Line)
	points := []Point{{X: 0.1, Y: 0.2}, {X: 0.3, Y: 0.4}, {X: 0.5, Y: 0.6}}

	for i, p := range points {
		a.AddVertex(p)
		if a.VertexCount() != i+1 {
			t.Errorf("After %d adds expected count %d, got %d", i+1, i+1, a.VertexCount())
		}
	}

	for i, p := range points {
		if a.Vertices[i] != p {
			t.Errorf("Vertex %d out of order: got %v, want %v", i, a.Vertices[i], p)
		}
	}
}

func TestIsClosedDependsOnlyOnKind(t *testing.T) {
	polygon := New("r", Polygon)
	line := New("l", Line)

	for i := 0; i < 4; i++ {
		if !polygon.IsClosed() {
			t.Errorf("Polygon with %d vertices reported open", polygon.VertexCount())
		}
		if line.IsClosed() {
			t.Errorf("Line with %d vertices reported closed", line.VertexCount())
		}
		polygon.AddVertex(Point{X: float64(i) * 0.1})
		line.AddVertex(Point{X: float64(i) * 0.1})
	}
}

func TestUpdateVertexBounds(t *testing.T) {
	a := New("r", Polygon)
	a.AddVertex(Point{X: 0.1, Y: 0.1})

	if !a.UpdateVertex(0, Point{X: 0.2, Y: 0.2}) {
		t.Error("Expected in-bounds update to succeed")
	}
	if a.Vertices[0] != (Point{X: 0.2, Y: 0.2}) {
		t.Errorf("Vertex not updated: %v", a.Vertices[0])
	}

	if a.UpdateVertex(1, Point{}) {
		t.Error("Expected out-of-bounds update to fail")
	}
	if a.UpdateVertex(-1, Point{}) {
		t.Error("Expected negative-index update to fail")
	}
	if a.VertexCount() != 1 {
		t.Errorf("Failed updates must not change the count: %d", a.VertexCount())
	}
}

func TestRemoveVertexBounds(t *testing.T) {
	a := New("r", Polygon)
	a.AddVertex(Point{X: 0.1})
	a.AddVertex(Point{X: 0.2})
	a.AddVertex(Point{X: 0.3})

	if a.RemoveVertex(3) || a.RemoveVertex(-1) {
		t.Error("Expected out-of-bounds removal to fail")
	}

	if !a.RemoveVertex(1) {
		t.Error("Expected in-bounds removal to succeed")
	}
	if a.VertexCount() != 2 {
		t.Errorf("Expected 2 vertices after removal, got %d", a.VertexCount())
	}
	if a.Vertices[0] != (Point{X: 0.1}) || a.Vertices[1] != (Point{X: 0.3}) {
		t.Errorf("Removal broke vertex order: %v", a.Vertices)
	}
}

func TestCloneIndependence(t *testing.T) {
	a := New("r", Polygon)
	a.AddVertex(Point{X: 0.1, Y: 0.1})
	a.AddVertex(Point{X: 0.2, Y: 0.2})

	clone := a.Clone()
	clone.UpdateVertex(0, Point{X: 0.9, Y: 0.9})

	if a.Vertices[0] != (Point{X: 0.1, Y: 0.1}) {
		t.Error("Mutating a clone changed the original")
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("polygon"); err != nil || k != Polygon {
		t.Errorf("ParseKind(polygon) = %v, %v", k, err)
	}
	if k, err := ParseKind("line"); err != nil || k != Line {
		t.Errorf("ParseKind(line) = %v, %v", k, err)
	}
	if _, err := ParseKind("circle"); err == nil {
		t.Error("Expected an error for an unknown kind tag")
	}
}

func TestProjectOwnership(t *testing.T) {
	p := NewProject("image.png", 1920, 1080)

	a := New("region 1", Polygon)
	a.AddVertex(Point{X: 0.1, Y: 0.1})
	a.AddVertex(Point{X: 0.2, Y: 0.2})
	p.AddAnnotation(a)

	snapshot := p.CloneAnnotations()
	snapshot[0].UpdateVertex(0, Point{X: 0.5, Y: 0.5})

	if p.Annotations[0].Vertices[0] != (Point{X: 0.1, Y: 0.1}) {
		t.Error("Snapshot aliases live project state")
	}
}

func TestProjectRemoveAnnotation(t *testing.T) {
	p := NewProject("image.png", 640, 480)
	p.AddAnnotation(New("a", Polygon))
	p.AddAnnotation(New("b", Line))

	if p.RemoveAnnotation(2) || p.RemoveAnnotation(-1) {
		t.Error("Expected out-of-bounds removal to fail")
	}
	if !p.RemoveAnnotation(0) {
		t.Error("Expected in-bounds removal to succeed")
	}
	if len(p.Annotations) != 1 || p.Annotations[0].Name != "b" {
		t.Errorf("Unexpected annotations after removal: %v", p.Annotations)
	}
}

func TestReplaceAnnotationsNil(t *testing.T) {
	p := NewProject("image.png", 640, 480)
	p.ReplaceAnnotations(nil)

	if p.Annotations == nil {
		t.Error("ReplaceAnnotations(nil) must leave an empty, non-nil collection")
	}
}
