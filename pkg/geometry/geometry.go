// Package geometry provides point distance, nearest-neighbor, and
// coordinate conversion utilities used for vertex hit-testing.
package geometry

import (
	"math"

	"github.com/JenkinsJB/roids/pkg/annotation"
)

// DistanceSquared returns the squared Euclidean distance between two
// points. Internal comparisons use this to avoid unnecessary square roots
// where only ordering matters.
func DistanceSquared(a, b annotation.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b annotation.Point) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// NearestVertex returns the index of the point closest to query. Ties are
// broken by the lowest index. It returns false for an empty sequence.
func NearestVertex(points []annotation.Point, query annotation.Point) (int, bool) {
	if len(points) == 0 {
		return 0, false
	}

	best := 0
	bestDist := DistanceSquared(points[0], query)
	for i := 1; i < len(points); i++ {
		if d := DistanceSquared(points[i], query); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, true
}

// VertexWithinThreshold returns the index of the point closest to query
// among those within threshold distance of it. The threshold is in
// normalized-coordinate units; callers must convert a pixel tolerance
// using the current image scale before calling. Ties are broken by the
// lowest index. It returns false if no point qualifies.
func VertexWithinThreshold(points []annotation.Point, query annotation.Point, threshold float64) (int, bool) {
	limit := threshold * threshold
	best := 0
	bestDist := math.Inf(1)
	found := false

	for i, p := range points {
		d := DistanceSquared(p, query)
		if d > limit {
			continue
		}
		if d < bestDist {
			best = i
			bestDist = d
			found = true
		}
	}
	return best, found
}

// DistanceToSegmentSquared returns the squared distance from point p to
// the line segment between a and b.
func DistanceToSegmentSquared(p, a, b annotation.Point) float64 {
	segLen := DistanceSquared(a, b)
	if segLen == 0 {
		return DistanceSquared(p, a)
	}

	// Project p onto the segment, clamping to the endpoints.
	t := ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / segLen
	t = clamp(t, 0, 1)

	closest := annotation.Point{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
	return DistanceSquared(p, closest)
}

// Normalize converts pixel coordinates to normalized [0, 1] coordinates.
func Normalize(pixelX, pixelY float64, width, height uint) annotation.Point {
	return annotation.Point{
		X: pixelX / float64(width),
		Y: pixelY / float64(height),
	}
}

// Denormalize converts normalized coordinates back to pixel coordinates.
func Denormalize(p annotation.Point, width, height uint) (float64, float64) {
	return p.X * float64(width), p.Y * float64(height)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
