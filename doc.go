// Package panomark provides an interactive marker overlay for panoramic
// image viewers.
//
// # Overview
//
// panomark models visual annotations ("markers") anchored to a panorama and
// computes their screen-space placement every animation frame. It renders
// nothing itself: the hosting viewer supplies the 3D-to-viewport projection
// and owns the drawing surface, while panomark owns the marker entity model,
// its configuration lifecycle, and tooltip placement.
//
// # Quick Start
//
//	import "github.com/gogpu/panomark"
//
//	markers := panomark.NewCollection(viewer)
//
//	m, err := markers.Add(panomark.MarkerConfig{
//		ID:      "pin-1",
//		Image:   "pin.png",
//		Size:    &panomark.Size{Width: 32, Height: 32},
//		Anchor:  "bottom center",
//		Tooltip: "A red pin",
//	})
//
//	// Once per animation frame:
//	visible := markers.RenderAll(panomark.RenderView{
//		Position: viewerPos,
//		Zoom:     zoomLevel,
//	})
//
// # Marker Variants
//
// A marker's variant is fixed at creation by the single content field its
// configuration defines: a flat overlay (Image, HTML, Element), a 3D-space
// layer (ImageLayer, VideoLayer), a point-list shape (Polygon, Polyline),
// a CSS-projected element (ElementLayer), or an SVG shape (Circle, Path).
// Supplying a different content field on a later Update is an error.
//
// # Coordinate System
//
// Marker positions are spherical (yaw/pitch, radians; configuration accepts
// "45deg"/"0.5rad" strings). Viewport coordinates follow standard computer
// graphics conventions:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Raster element construction for image and shape markers lives in the
// element subpackage.
package panomark

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
