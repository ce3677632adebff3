package geometry

import (
	"math"
	"testing"

	"github.com/JenkinsJB/roids/pkg/annotation"
)

func TestDistanceSymmetry(t *testing.T) {
	a := annotation.Point{X: 0.1, Y: 0.9}
	b := annotation.Point{X: 0.7, Y: 0.3}

	if Distance(a, b) != Distance(b, a) {
		t.Errorf("Distance is not symmetric: %f vs %f", Distance(a, b), Distance(b, a))
	}
}

func TestDistanceSquaredSelf(t *testing.T) {
	p := annotation.Point{X: 0.42, Y: 0.17}

	if d := DistanceSquared(p, p); d != 0 {
		t.Errorf("Expected zero distance to self, got %f", d)
	}
}

func TestDistanceMatchesSquared(t *testing.T) {
	a := annotation.Point{X: 0, Y: 0}
	b := annotation.Point{X: 3, Y: 4}

	if d := Distance(a, b); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if d := DistanceSquared(a, b); d != 25 {
		t.Errorf("Expected squared distance 25, got %f", d)
	}
}

func TestNearestVertexEmpty(t *testing.T) {
	if _, ok := NearestVertex(nil, annotation.Point{X: 0.5, Y: 0.5}); ok {
		t.Error("Expected no result for empty sequence")
	}
}

func TestNearestVertex(t *testing.T) {
	points := []annotation.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
	}

	i, ok := NearestVertex(points, annotation.Point{X: 0.95, Y: 0.05})
	if !ok {
		t.Fatal("Expected a nearest vertex")
	}
	if i != 1 {
		t.Errorf("Expected index 1, got %d", i)
	}
}

func TestNearestVertexTieBreak(t *testing.T) {
	// Two points equidistant from the query; the lower index wins.
	points := []annotation.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
	}

	i, ok := NearestVertex(points, annotation.Point{X: 0.5, Y: 0})
	if !ok {
		t.Fatal("Expected a nearest vertex")
	}
	if i != 0 {
		t.Errorf("Expected tie broken to index 0, got %d", i)
	}
}

func TestVertexWithinThreshold(t *testing.T) {
	points := []annotation.Point{
		{X: 0, Y: 0},
		{X: 0.5, Y: 0},
		{X: 1, Y: 0},
	}
	query := annotation.Point{X: 0.52, Y: 0.02}

	i, ok := VertexWithinThreshold(points, query, 0.05)
	if !ok {
		t.Fatal("Expected a vertex within threshold 0.05")
	}
	if i != 1 {
		t.Errorf("Expected index 1, got %d", i)
	}

	if _, ok := VertexWithinThreshold(points, query, 0.01); ok {
		t.Error("Expected no vertex within threshold 0.01")
	}
}

func TestVertexWithinThresholdEmpty(t *testing.T) {
	if _, ok := VertexWithinThreshold(nil, annotation.Point{}, 1); ok {
		t.Error("Expected no result for empty sequence")
	}
}

func TestDistanceToSegmentSquared(t *testing.T) {
	a := annotation.Point{X: 0, Y: 0}
	b := annotation.Point{X: 1, Y: 0}

	// Perpendicular projection inside the segment.
	if d := DistanceToSegmentSquared(annotation.Point{X: 0.5, Y: 0.3}, a, b); math.Abs(d-0.09) > 1e-12 {
		t.Errorf("Expected 0.09, got %f", d)
	}

	// Beyond the endpoint: distance to the endpoint itself.
	if d := DistanceToSegmentSquared(annotation.Point{X: 1.3, Y: 0.4}, a, b); math.Abs(d-0.25) > 1e-12 {
		t.Errorf("Expected 0.25, got %f", d)
	}

	// Degenerate segment.
	if d := DistanceToSegmentSquared(annotation.Point{X: 3, Y: 4}, a, a); d != 25 {
		t.Errorf("Expected 25, got %f", d)
	}
}

func TestNormalizeDenormalizeRoundtrip(t *testing.T) {
	width, height := uint(1920), uint(1080)
	pixelX, pixelY := 960.0, 540.0

	normalized := Normalize(pixelX, pixelY, width, height)
	denormX, denormY := Denormalize(normalized, width, height)

	if math.Abs(denormX-pixelX) > 0.0001 || math.Abs(denormY-pixelY) > 0.0001 {
		t.Errorf("Roundtrip drifted: got (%f, %f), want (%f, %f)", denormX, denormY, pixelX, pixelY)
	}
}

func TestNormalizeCorners(t *testing.T) {
	width, height := uint(1920), uint(1080)

	tl := Normalize(0, 0, width, height)
	if tl.X != 0 || tl.Y != 0 {
		t.Errorf("Expected top-left (0, 0), got (%f, %f)", tl.X, tl.Y)
	}

	br := Normalize(1920, 1080, width, height)
	if br.X != 1 || br.Y != 1 {
		t.Errorf("Expected bottom-right (1, 1), got (%f, %f)", br.X, br.Y)
	}
}
