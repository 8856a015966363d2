package panomark

import (
	"github.com/peterstace/simplefeatures/geom"
)

// Render resolves the marker's viewport placement for the current frame
// and returns its 2D anchor point. ok is false when the marker is hidden
// this frame, either because its configuration says so or because it is
// outside the current view.
//
// Render never mutates the parsed configuration; it only rewrites the
// render state consumed by tooltip positioning. Point-like variants
// project the configured position and offset it by the anchored fraction
// of the (zoom- and hover-scaled) size; poly variants project their whole
// point list, drop out-of-view vertices, and return a representative
// point.
func (m *Marker) Render(view RenderView) (Point, bool) {
	m.state.visible = false
	m.state.points2D = nil
	m.state.zoom = view.Zoom
	if m.destroyed || !m.config.Visible {
		return Point{}, false
	}
	if m.variant.IsPoly() {
		return m.renderPoly()
	}
	return m.renderPoint(view)
}

func (m *Marker) renderPoint(view RenderView) (Point, bool) {
	pt, ok := m.viewer.Project(m.config.Position)
	if !ok {
		Logger().Debug("marker out of view", "id", m.id)
		return Point{}, false
	}
	size := m.scaledSize(view.Zoom, view.Hovering == m)
	origin := Pt(
		pt.X-size.Width*m.state.anchor.X,
		pt.Y-size.Height*m.state.anchor.Y,
	)
	m.state.position2D = origin
	m.state.size = size
	m.state.visible = true
	return origin, true
}

func (m *Marker) renderPoly() (Point, bool) {
	var visible []Point
	for _, pos := range m.config.Points() {
		if pt, ok := m.viewer.Project(pos); ok {
			visible = append(visible, pt)
		}
	}
	if len(visible) == 0 {
		return Point{}, false
	}
	// Representative point: centroid of the visible vertices, or the
	// first visible vertex when the centroid degenerates.
	rep, ok := centroid(visible)
	if !ok {
		rep = visible[0]
	}
	m.state.points2D = visible
	m.state.position2D = rep
	m.state.size = Size{}
	m.state.visible = true
	return rep, true
}

// scaledSize resolves the pixel size of flat and SVG markers for the given
// zoom level, including the hover growth factor. Other variants are sized
// by the viewer and keep their configured size untouched.
func (m *Marker) scaledSize(zoom float64, hovered bool) Size {
	size := m.config.Size
	if !m.variant.IsNormal() && !m.variant.IsSvg() {
		return size
	}
	factor := m.config.Scale.Factor(zoom)
	if hovered && m.config.HoverScale > 0 {
		factor *= m.config.HoverScale
	}
	return size.Mul(factor)
}

// centroid computes the centroid of a set of viewport points. ok is false
// when the centroid is undefined (empty input).
func centroid(pts []Point) (Point, bool) {
	gpts := make([]geom.Point, len(pts))
	for i, p := range pts {
		gpts[i] = geom.NewPoint(geom.Coordinates{
			XY:   geom.XY{X: p.X, Y: p.Y},
			Type: geom.DimXY,
		})
	}
	xy, ok := geom.NewMultiPoint(gpts).Centroid().XY()
	if !ok {
		return Point{}, false
	}
	return Pt(xy.X, xy.Y), true
}
