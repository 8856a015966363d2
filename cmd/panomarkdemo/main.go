// Command panomarkdemo demonstrates the panomark marker overlay.
//
// It hosts a collection of markers on a minimal stand-in viewer, renders
// one frame, rasterizes the marker elements, and composites the overlay
// into a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/panomark"
	"github.com/gogpu/panomark/element"
)

func main() {
	var (
		width  = flag.Int("width", 800, "viewport width")
		height = flag.Int("height", 600, "viewport height")
		output = flag.String("output", "overlay.png", "output file")
		zoom   = flag.Float64("zoom", 50, "viewer zoom level (0..100)")
	)
	flag.Parse()

	panomark.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	viewer := &demoViewer{width: float64(*width), height: float64(*height)}
	markers := panomark.NewCollection(viewer)

	seed(markers)

	visible := markers.RenderAll(panomark.RenderView{Zoom: *zoom})

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.RGBA{R: 0.12, G: 0.12, B: 0.16, A: 1})

	for _, m := range visible {
		drawMarker(dc, m)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("save %s: %v", *output, err)
	}
	log.Printf("rendered %d markers to %s", len(visible), *output)

	for _, item := range markers.ListItems() {
		log.Printf("marker %s: %s", item.ID, item.Content)
	}
}

func seed(markers *panomark.Collection) {
	configs := []panomark.MarkerConfig{
		{
			ID:       "summit",
			Circle:   14,
			Position: &panomark.PositionSpec{Yaw: "-60deg", Pitch: "20deg"},
			Anchor:   "bottom center",
			Tooltip:  "Summit viewpoint",
			Style:    map[string]string{"fill": "#e04848"},
		},
		{
			ID:       "river",
			Polyline: []panomark.PositionSpec{
				{Yaw: "-30deg", Pitch: "-10deg"},
				{Yaw: "0deg", Pitch: "-14deg"},
				{Yaw: "35deg", Pitch: "-8deg"},
			},
			Tooltip:  "River walk",
			Style:    map[string]string{"stroke": "#48a0e0", "stroke-width": "4"},
		},
		{
			ID:      "meadow",
			Polygon: []panomark.PositionSpec{
				{Yaw: "10deg", Pitch: "0deg"},
				{Yaw: "40deg", Pitch: "0deg"},
				{Yaw: "40deg", Pitch: "18deg"},
				{Yaw: "10deg", Pitch: "18deg"},
			},
			Tooltip: "Meadow",
			Style:   map[string]string{"fill": "#3c9650", "stroke": "#ffffff", "stroke-width": "2"},
		},
	}
	for _, cfg := range configs {
		if _, err := markers.Add(cfg); err != nil {
			log.Fatalf("add marker %s: %v", cfg.ID, err)
		}
	}
}

func drawMarker(dc *gg.Context, m *panomark.Marker) {
	switch {
	case m.IsPoly():
		drawPoly(dc, m)
	default:
		sprite, err := element.ForMarker(m)
		if err != nil {
			log.Printf("skip %s: %v", m.ID(), err)
			return
		}
		defer sprite.Release()
		origin, ok := m.Position2D()
		if !ok {
			return
		}
		dc.DrawImageEx(gg.ImageBufFromImage(sprite.Image()), gg.DrawImageOptions{
			X:       origin.X,
			Y:       origin.Y,
			Opacity: m.Config().Opacity,
		})
	}
}

func drawPoly(dc *gg.Context, m *panomark.Marker) {
	cfg := m.Config()
	st := element.StyleFrom(cfg.Style)

	points := m.Points2D()
	var (
		sprite *element.Sprite
		origin panomark.Point
		err    error
	)
	if m.Variant() == panomark.VariantPolygon {
		sprite, origin, err = element.Polygon(points, st)
	} else {
		sprite, origin, err = element.Polyline(points, st)
	}
	if err != nil {
		log.Printf("skip %s: %v", m.ID(), err)
		return
	}
	defer sprite.Release()
	dc.DrawImageEx(gg.ImageBufFromImage(sprite.Image()), gg.DrawImageOptions{
		X:       origin.X,
		Y:       origin.Y,
		Opacity: cfg.Opacity,
	})
}

// demoViewer is a stand-in for a real panorama viewer: it projects
// yaw/pitch linearly onto the viewport and never creates real tooltips.
type demoViewer struct {
	width, height float64
}

func (v *demoViewer) Project(pos panomark.Position) (panomark.Point, bool) {
	const pxPerRad = 300
	pt := panomark.Pt(
		v.width/2+pos.Yaw*pxPerRad,
		v.height/2-pos.Pitch*pxPerRad,
	)
	inside := pt.X >= 0 && pt.X <= v.width && pt.Y >= 0 && pt.Y <= v.height
	return pt, inside
}

func (v *demoViewer) ContainerOrigin() panomark.Point { return panomark.Point{} }

func (v *demoViewer) CreateTooltip(cfg panomark.TooltipOptions) panomark.Tooltip {
	return nopTooltip{}
}

type nopTooltip struct{}

func (nopTooltip) Move(panomark.TooltipOptions)           {}
func (nopTooltip) Update(string, panomark.TooltipOptions) {}
func (nopTooltip) Hide()                                  {}
