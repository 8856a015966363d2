// Package element builds raster visual elements for markers.
//
// Browser-backed viewers construct marker elements in the DOM; native
// viewers in the GoGPU ecosystem rasterize them instead. This package
// renders image, circle, polygon and polyline markers into gg drawing
// contexts and hands them back as sprites the compositor can blit.
//
// Sprites implement panomark.Element, so a marker takes ownership of its
// sprite through Marker.AttachElement and releases it on Destroy.
package element

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strconv"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/panomark"
)

// Style controls how shape sprites are painted. Colors are hex strings
// ("#RRGGBB" or "#RRGGBBAA"); an empty color skips that pass.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// DefaultStyle is used when a marker carries no style of its own.
var DefaultStyle = Style{
	Fill:        "#1e78c8",
	Stroke:      "#ffffff",
	StrokeWidth: 2,
}

// Sprite is a rasterized marker visual backed by a gg drawing context.
type Sprite struct {
	dc   *gg.Context
	size panomark.Size
}

// Size returns the sprite's pixel dimensions.
func (s *Sprite) Size() panomark.Size { return s.size }

// Image exposes the rendered pixels for compositing.
func (s *Sprite) Image() image.Image { return s.dc.Image() }

// Release frees the sprite's drawing context. The sprite is dead
// afterwards.
func (s *Sprite) Release() error { return s.dc.Close() }

// Image rasterizes an image file into a sprite. PNG, JPEG and WebP are
// supported. A zero size keeps the image's natural dimensions; otherwise
// the image is scaled to fit the requested box.
func Image(path string, size panomark.Size) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("element: open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("element: decode image %q: %w", path, err)
	}
	if size.IsZero() {
		bounds := img.Bounds()
		size = panomark.Size{
			Width:  float64(bounds.Dx()),
			Height: float64(bounds.Dy()),
		}
	}
	dc := gg.NewContext(ceil(size.Width), ceil(size.Height))
	dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		DstWidth:  size.Width,
		DstHeight: size.Height,
	})
	return &Sprite{dc: dc, size: size}, nil
}

// Circle rasterizes a circle marker of the given radius.
func Circle(radius float64, st Style) (*Sprite, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("element: circle radius must be positive, got %v", radius)
	}
	edge := radius*2 + st.StrokeWidth
	dc := gg.NewContext(ceil(edge), ceil(edge))
	center := edge / 2
	if st.Fill != "" {
		dc.SetHexColor(st.Fill)
		dc.DrawCircle(center, center, radius)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("element: fill circle: %w", err)
		}
	}
	if st.Stroke != "" && st.StrokeWidth > 0 {
		dc.SetHexColor(st.Stroke)
		dc.SetLineWidth(st.StrokeWidth)
		dc.DrawCircle(center, center, radius)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("element: stroke circle: %w", err)
		}
	}
	return &Sprite{dc: dc, size: panomark.Size{Width: edge, Height: edge}}, nil
}

// Polygon rasterizes a closed point-list shape from its projected
// viewport vertices. The sprite covers the shape's bounding box, and the
// returned origin is the box's top-left corner in viewport coordinates.
func Polygon(points []panomark.Point, st Style) (*Sprite, panomark.Point, error) {
	return tracePoints(points, st, true)
}

// Polyline rasterizes an open point-list shape. Only the stroke pass
// applies.
func Polyline(points []panomark.Point, st Style) (*Sprite, panomark.Point, error) {
	st.Fill = ""
	return tracePoints(points, st, false)
}

func tracePoints(points []panomark.Point, st Style, closed bool) (*Sprite, panomark.Point, error) {
	if len(points) < 2 {
		return nil, panomark.Point{}, fmt.Errorf("element: point list requires at least 2 points, got %d", len(points))
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	pad := st.StrokeWidth
	origin := panomark.Pt(min.X-pad, min.Y-pad)
	size := panomark.Size{
		Width:  max.X - min.X + 2*pad,
		Height: max.Y - min.Y + 2*pad,
	}
	dc := gg.NewContext(ceil(size.Width), ceil(size.Height))

	trace := func() {
		dc.MoveTo(points[0].X-origin.X, points[0].Y-origin.Y)
		for _, p := range points[1:] {
			dc.LineTo(p.X-origin.X, p.Y-origin.Y)
		}
		if closed {
			dc.ClosePath()
		}
	}
	if st.Fill != "" && closed {
		dc.SetHexColor(st.Fill)
		trace()
		if err := dc.Fill(); err != nil {
			return nil, origin, fmt.Errorf("element: fill shape: %w", err)
		}
	}
	if st.Stroke != "" && st.StrokeWidth > 0 {
		dc.SetHexColor(st.Stroke)
		dc.SetLineWidth(st.StrokeWidth)
		trace()
		if err := dc.Stroke(); err != nil {
			return nil, origin, fmt.Errorf("element: stroke shape: %w", err)
		}
	}
	return &Sprite{dc: dc, size: size}, origin, nil
}

// ForMarker builds the sprite matching a marker's configuration. Image and
// circle markers rasterize directly; poly markers need their projected
// vertices and go through Polygon or Polyline after a Render.
func ForMarker(m *panomark.Marker) (*Sprite, error) {
	cfg := m.Config()
	switch m.Variant() {
	case panomark.VariantImage:
		return Image(cfg.Image, cfg.Size)
	case panomark.VariantCircle:
		return Circle(cfg.Circle, StyleFrom(cfg.Style))
	default:
		return nil, fmt.Errorf("element: no raster element for %s markers", m.Variant())
	}
}

// StyleFrom reads SVG-ish style attributes ("fill", "stroke",
// "stroke-width") from a marker's style map, falling back to DefaultStyle
// for absent or malformed attributes.
func StyleFrom(attrs map[string]string) Style {
	st := DefaultStyle
	if v, ok := attrs["fill"]; ok {
		st.Fill = v
	}
	if v, ok := attrs["stroke"]; ok {
		st.Stroke = v
	}
	if v, ok := attrs["stroke-width"]; ok {
		if w, err := strconv.ParseFloat(v, 64); err == nil {
			st.StrokeWidth = w
		}
	}
	return st
}

func ceil(v float64) int {
	n := int(math.Ceil(v))
	if n < 1 {
		n = 1
	}
	return n
}
