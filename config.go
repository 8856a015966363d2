package panomark

import (
	"fmt"
	"maps"
)

// MarkerConfig is the raw configuration accepted by NewMarker and
// Marker.Update. The zero value of every field means "not supplied":
// Update treats the struct as a partial patch and merges it into the
// marker's parsed configuration.
//
// Exactly one content field (Image, HTML, Element, ImageLayer, VideoLayer,
// Polygon, Polyline, ElementLayer, Circle, Path) must be set when the
// marker is created; later patches may repeat the same variant's field to
// replace its payload, or omit all of them.
type MarkerConfig struct {
	// ID uniquely identifies the marker within its collection.
	// Required at creation, immutable afterwards.
	ID string

	// Content fields. Each defines one variant, see Variant.
	Image        string
	HTML         string
	Element      Element
	ImageLayer   string
	VideoLayer   string
	Polygon      []PositionSpec
	Polyline     []PositionSpec
	ElementLayer Element
	Circle       float64
	Path         string

	// Position locates point-like markers on the sphere.
	Position *PositionSpec

	// Anchor is the fractional point of the marker box aligned to
	// Position, like "bottom center" or "50% 100%". Defaults to center.
	Anchor string

	// Size is the marker's on-screen box, in pixels.
	Size *Size

	// Visible toggles rendering. Defaults to true.
	Visible *bool

	// ZIndex orders overlapping markers. Defaults to 1.
	ZIndex *int

	// Opacity is the marker's opacity in 0..1. Defaults to 1.
	Opacity *float64

	// Rotation accepts either a single Angle, applied as roll only, or a
	// *EulerSpec / map[string]any with "yaw", "pitch", "roll" keys.
	// Absent components are zero; the triple always replaces the previous
	// rotation wholesale.
	Rotation any

	// Scale maps the viewer zoom level to a size factor for flat and SVG
	// markers.
	Scale *ScaleSpec

	// HoverScale grows the tooltip box of transient tooltips so they
	// clear the hover-scaled marker. Values <= 0 disable it.
	HoverScale *float64

	// Tooltip accepts a plain string (shorthand for the tooltip content)
	// or a *TooltipConfig.
	Tooltip any

	// ListContent overrides the text shown by list and search UIs.
	ListContent string

	// ClassName and Style are passed through to the viewer's element
	// layer untouched.
	ClassName string
	Style     map[string]string

	// Data is an opaque user payload the subsystem never interprets.
	Data map[string]any
}

// PositionSpec is a configuration-level spherical position whose components
// are Angles ("45deg" strings or radians).
type PositionSpec struct {
	Yaw, Pitch Angle
}

// EulerSpec is a configuration-level rotation triple. Absent components
// parse to zero.
type EulerSpec struct {
	Yaw, Pitch, Roll Angle
}

// ScaleSpec interpolates a marker size factor from the viewer zoom level.
// Zoom[0] applies at zoom 0 and Zoom[1] at zoom 100, linearly in between.
// The zero value disables scaling (factor 1 at every zoom).
type ScaleSpec struct {
	Zoom [2]float64
}

// Factor returns the size factor for the given zoom level (0..100).
func (s ScaleSpec) Factor(zoom float64) float64 {
	if s.Zoom == [2]float64{} {
		return 1
	}
	if zoom < 0 {
		zoom = 0
	} else if zoom > 100 {
		zoom = 100
	}
	return s.Zoom[0] + (s.Zoom[1]-s.Zoom[0])*zoom/100
}

// TooltipTrigger selects how a marker's tooltip is shown.
type TooltipTrigger string

const (
	// TriggerHover shows a transient tooltip while the pointer is over
	// the marker. Transient tooltips never capture pointer events.
	TriggerHover TooltipTrigger = "hover"

	// TriggerClick pins the tooltip on click until the next click.
	// Pinned tooltips capture pointer events.
	TriggerClick TooltipTrigger = "click"
)

// TooltipConfig configures a marker's tooltip.
type TooltipConfig struct {
	// Content is the tooltip text or HTML. Empty disables the tooltip.
	Content string

	// Position hints where the viewer places the tooltip relative to its
	// anchor point ("top center", ...). Passed through to the tooltip
	// service.
	Position string

	// Trigger defaults to TriggerHover.
	Trigger TooltipTrigger

	// ClassName is passed through to the tooltip service.
	ClassName string
}

// ParsedConfig is the normalized configuration derived from successive
// MarkerConfig patches, with every default applied and every angle parsed
// to radians. It is owned exclusively by the marker; callers read it
// through Marker.Config.
type ParsedConfig struct {
	// Content payload of the fixed variant. Only the field matching the
	// marker's variant is meaningful.
	Image        string
	HTML         string
	Element      Element
	ImageLayer   string
	VideoLayer   string
	Polygon      []Position
	Polyline     []Position
	ElementLayer Element
	Circle       float64
	Path         string

	Position    Position
	Anchor      string
	Size        Size
	Visible     bool
	ZIndex      int
	Opacity     float64
	Rotation    Euler
	Scale       ScaleSpec
	HoverScale  float64
	Tooltip     *TooltipConfig
	ListContent string
	ClassName   string
	Style       map[string]string
	Data        map[string]any
}

// Points returns the point list of a poly variant, nil otherwise.
func (c *ParsedConfig) Points() []Position {
	if c.Polygon != nil {
		return c.Polygon
	}
	return c.Polyline
}

// defaultParsed returns the starting configuration every marker is
// reconciled onto: visible, zIndex 1, opacity 1, centered anchor.
func defaultParsed() ParsedConfig {
	return ParsedConfig{
		Visible: true,
		ZIndex:  1,
		Opacity: 1,
		Anchor:  "center center",
	}
}

// reconcile applies a configuration patch onto base and returns the new
// parsed configuration. It is the single point where merge semantics and
// normalization rules live: maps merge key-by-key, slices and scalars
// replace, absent optional fields keep their current (defaulted) values.
// base is never mutated, so a failed reconcile leaves the marker's state
// untouched.
func reconcile(base ParsedConfig, patch MarkerConfig) (ParsedConfig, error) {
	next := base
	// Shared maps must not alias the previous configuration.
	next.Style = maps.Clone(base.Style)
	next.Data = maps.Clone(base.Data)

	if err := applyContent(&next, patch); err != nil {
		return base, err
	}

	if patch.Position != nil {
		pos, err := parsePosition(*patch.Position)
		if err != nil {
			return base, &ConfigError{Field: "position", Err: err}
		}
		next.Position = pos
	}
	if patch.Anchor != "" {
		next.Anchor = patch.Anchor
	}
	if patch.Size != nil {
		next.Size = *patch.Size
	}
	if patch.Visible != nil {
		next.Visible = *patch.Visible
	}
	if patch.ZIndex != nil {
		next.ZIndex = *patch.ZIndex
	}
	if patch.Opacity != nil {
		next.Opacity = *patch.Opacity
	}
	if patch.Rotation != nil {
		rot, err := normalizeRotation(patch.Rotation)
		if err != nil {
			return base, &ConfigError{Field: "rotation", Err: err}
		}
		next.Rotation = rot
	}
	if patch.Scale != nil {
		next.Scale = *patch.Scale
	}
	if patch.HoverScale != nil {
		next.HoverScale = *patch.HoverScale
	}
	if patch.Tooltip != nil {
		tip, err := normalizeTooltip(patch.Tooltip)
		if err != nil {
			return base, &ConfigError{Field: "tooltip", Err: err}
		}
		next.Tooltip = tip
	}
	if patch.ListContent != "" {
		next.ListContent = patch.ListContent
	}
	if patch.ClassName != "" {
		next.ClassName = patch.ClassName
	}
	if patch.Style != nil {
		if next.Style == nil {
			next.Style = make(map[string]string, len(patch.Style))
		}
		maps.Copy(next.Style, patch.Style)
	}
	if patch.Data != nil {
		if next.Data == nil {
			next.Data = make(map[string]any, len(patch.Data))
		}
		maps.Copy(next.Data, patch.Data)
	}
	return next, nil
}

// applyContent replaces the variant payload when the patch carries one.
// Variant immutability is validated by the caller before reconciling.
func applyContent(next *ParsedConfig, patch MarkerConfig) error {
	switch {
	case patch.Image != "":
		next.Image = patch.Image
	case patch.HTML != "":
		next.HTML = patch.HTML
	case patch.Element != nil:
		next.Element = patch.Element
	case patch.ImageLayer != "":
		next.ImageLayer = patch.ImageLayer
	case patch.VideoLayer != "":
		next.VideoLayer = patch.VideoLayer
	case patch.Polygon != nil:
		pts, err := parsePositions(patch.Polygon)
		if err != nil {
			return &ConfigError{Field: "polygon", Err: err}
		}
		next.Polygon = pts
	case patch.Polyline != nil:
		pts, err := parsePositions(patch.Polyline)
		if err != nil {
			return &ConfigError{Field: "polyline", Err: err}
		}
		next.Polyline = pts
	case patch.ElementLayer != nil:
		next.ElementLayer = patch.ElementLayer
	case patch.Circle > 0:
		next.Circle = patch.Circle
	case patch.Path != "":
		next.Path = patch.Path
	}
	return nil
}

func parsePosition(spec PositionSpec) (Position, error) {
	yaw, err := ParseAngle(spec.Yaw)
	if err != nil {
		return Position{}, err
	}
	pitch, err := ParseAngle(spec.Pitch)
	if err != nil {
		return Position{}, err
	}
	return Position{Yaw: yaw, Pitch: pitch}, nil
}

func parsePositions(specs []PositionSpec) ([]Position, error) {
	if len(specs) < 2 {
		return nil, fmt.Errorf("point list requires at least 2 points, got %d", len(specs))
	}
	points := make([]Position, len(specs))
	for i, spec := range specs {
		pos, err := parsePosition(spec)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points[i] = pos
	}
	return points, nil
}

// normalizeRotation parses a configuration rotation value into a fully
// populated Euler triple. A scalar value is a roll-only rotation; object
// forms zero their absent components. The result always replaces the
// previous rotation, it is never merged with it.
func normalizeRotation(v any) (Euler, error) {
	switch rot := v.(type) {
	case *EulerSpec:
		if rot == nil {
			return Euler{}, fmt.Errorf("nil %T", v)
		}
		return parseEuler(*rot)
	case EulerSpec:
		return parseEuler(rot)
	case map[string]any:
		return parseEuler(EulerSpec{
			Yaw:   rot["yaw"],
			Pitch: rot["pitch"],
			Roll:  rot["roll"],
		})
	default:
		roll, err := ParseAngle(v)
		if err != nil {
			return Euler{}, err
		}
		return Euler{Roll: roll}, nil
	}
}

func parseEuler(spec EulerSpec) (Euler, error) {
	yaw, err := ParseAngle(spec.Yaw)
	if err != nil {
		return Euler{}, err
	}
	pitch, err := ParseAngle(spec.Pitch)
	if err != nil {
		return Euler{}, err
	}
	roll, err := ParseAngle(spec.Roll)
	if err != nil {
		return Euler{}, err
	}
	return Euler{Yaw: yaw, Pitch: pitch, Roll: roll}, nil
}

// normalizeTooltip parses a configuration tooltip value: a bare string is
// shorthand for {Content}, and the trigger defaults to hover.
func normalizeTooltip(v any) (*TooltipConfig, error) {
	var tip TooltipConfig
	switch t := v.(type) {
	case string:
		tip.Content = t
	case *TooltipConfig:
		if t == nil {
			return nil, fmt.Errorf("nil %T", v)
		}
		tip = *t
	case TooltipConfig:
		tip = t
	default:
		return nil, fmt.Errorf("unsupported tooltip value %v (%T)", v, v)
	}
	if tip.Trigger == "" {
		tip.Trigger = TriggerHover
	}
	return &tip, nil
}
