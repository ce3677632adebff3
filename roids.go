// Package roids provides an annotation editing engine for marking
// regions of interest on still images.
//
// Users mark polygons and counting lines over an image, edit them
// interactively (add, move, and delete vertices with full undo/redo), and
// persist them alongside the source image reference as JSON or YAML.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/JenkinsJB/roids"
//		"github.com/JenkinsJB/roids/pkg/annotation"
//		"github.com/JenkinsJB/roids/pkg/editor"
//	)
//
//	func main() {
//		ed := roids.New()
//
//		// Load an image; the decode runs on a background worker.
//		ed.OpenImage("frame.png")
//		for ed.Poll() {
//		}
//
//		// Draw a triangular region.
//		ed.SelectTool(editor.ToolPolygon)
//		ed.Click(annotation.Point{X: 0.1, Y: 0.1})
//		ed.Click(annotation.Point{X: 0.9, Y: 0.1})
//		ed.Click(annotation.Point{X: 0.5, Y: 0.9})
//		ed.DoubleClick(annotation.Point{X: 0.5, Y: 0.9})
//
//		// Persist the result.
//		if err := ed.ExportAnnotations("frame.yaml"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of five main components:
//
// 1. Annotation model (pkg/annotation): points, polygons/lines, projects
// 2. Geometry (pkg/geometry): distance and vertex hit-testing utilities
// 3. History (pkg/history): snapshot-based undo/redo
// 4. Serialization (pkg/serialization): lossless JSON and YAML round trips
// 5. Editor (pkg/editor): the interaction state machine tying it together
//
// Image decoding (pkg/media) accepts the common raster formats and always
// normalizes to an 8-bit RGBA frame. All coordinates are normalized to
// [0, 1] relative to the image dimensions, independent of display scale.
package roids

import (
	"github.com/JenkinsJB/roids/internal/config"
	"github.com/JenkinsJB/roids/pkg/editor"
)

// Version of the roids library
const Version = "1.0.0"

// Editor is a thin high-level wrapper around the interaction controller,
// wired with configuration defaults.
type Editor struct {
	*editor.Controller
}

// New creates an editor with the default configuration, overlaid with any
// ROIDS_* environment variables.
func New() *Editor {
	cfg := config.Default()
	cfg.ApplyEnv()
	return &Editor{Controller: editor.New(cfg)}
}

// NewWithConfigFile creates an editor configured from the JSON file at
// path, overlaid with any ROIDS_* environment variables.
func NewWithConfigFile(path string) (*Editor, error) {
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Editor{Controller: editor.New(cfg)}, nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
