package panomark

// Viewer is the contract the marker subsystem requires from the hosting
// panorama viewer. Implementations live outside this module; markers only
// consume the projection, the container geometry for pointer conversion,
// and the tooltip service.
type Viewer interface {
	TooltipFactory

	// Project maps a spherical position to viewport pixel coordinates.
	// ok is false when the position is outside the current view.
	Project(pos Position) (pt Point, ok bool)

	// ContainerOrigin is the page position of the viewer container's
	// top-left corner, used to convert pointer page coordinates to
	// viewer-local ones.
	ContainerOrigin() Point
}

// TooltipFactory allocates tooltips. The viewer's tooltip service
// implements it; tests and embedding applications may substitute their own
// through WithTooltipFactory.
type TooltipFactory interface {
	CreateTooltip(cfg TooltipOptions) Tooltip
}

// Tooltip is a handle to a live tooltip owned by the tooltip service. Its
// lifecycle is fully controlled by the marker that created it: the marker
// never leaves a dangling handle after HideTooltip or Destroy.
type Tooltip interface {
	// Move repositions the tooltip without touching its content.
	Move(cfg TooltipOptions)

	// Update replaces the content and repositions the tooltip.
	Update(content string, cfg TooltipOptions)

	// Hide removes the tooltip. The handle is dead afterwards.
	Hide()
}

// TooltipOptions is the placement and content computed by a marker for the
// tooltip service.
type TooltipOptions struct {
	// Top and Left are the viewer-local coordinates of the point the
	// tooltip is anchored around.
	Top, Left float64

	// Box is an exclusion box around (Left, Top) that the tooltip must
	// not overlap, so it clears the marker (or the pointer) underneath.
	Box Size

	// Content is the tooltip text or HTML.
	Content string

	// Position is the placement hint from the marker configuration.
	Position string

	// ClassName is passed through from the marker configuration.
	ClassName string

	// CapturePointer is true for pinned tooltips, which receive pointer
	// events. Transient tooltips leave it false so the marker underneath
	// stays hoverable.
	CapturePointer bool
}

// Element is a renderable visual bound to a marker: a DOM node in a
// browser-backed viewer, or a raster sprite from the element subpackage.
// The marker releases the elements it owns on Destroy.
type Element interface {
	Release() error
}

// RenderView is the viewer state for one animation frame, passed to
// Marker.Render and Collection.RenderAll.
type RenderView struct {
	// Position is the viewer's current orientation.
	Position Position

	// Zoom is the viewer zoom level, 0..100.
	Zoom float64

	// Hovering is the marker currently under the pointer, if any.
	Hovering *Marker
}
