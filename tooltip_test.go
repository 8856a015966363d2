package panomark

import (
	"math"
	"testing"
)

func TestShowTooltip_AnchorRelative(t *testing.T) {
	m, v := newTestMarker(t, MarkerConfig{
		ID:      "m",
		Image:   "pin.png",
		Size:    &Size{Width: 32, Height: 32},
		Anchor:  "bottom center",
		Tooltip: "hello",
	})
	v.project = func(Position) (Point, bool) { return Pt(100, 100), true }

	m.Render(RenderView{})
	m.ShowTooltip(nil, false)

	if len(v.created) != 1 {
		t.Fatalf("created %d tooltips, want 1", len(v.created))
	}
	got := v.created[0].opts
	// Origin offset by -size*anchor + size/2 per axis: the tooltip sits
	// directly above a bottom-center anchored marker.
	if got.Top != 84 {
		t.Errorf("Top = %v, want 84", got.Top)
	}
	if got.Left != 100 {
		t.Errorf("Left = %v, want 100", got.Left)
	}
	if got.Box != (Size{Width: 32, Height: 32}) {
		t.Errorf("Box = %+v, want 32x32", got.Box)
	}
	if got.CapturePointer {
		t.Error("transient tooltip captures pointer events")
	}
	if got.Content != "hello" {
		t.Errorf("Content = %q, want %q", got.Content, "hello")
	}
}

func TestShowTooltip_AnchorRelativeHoverScale(t *testing.T) {
	tests := []struct {
		name    string
		trigger TooltipTrigger
		want    Size
	}{
		{"transient scales", TriggerHover, Size{Width: 64, Height: 64}},
		{"pinned does not", TriggerClick, Size{Width: 32, Height: 32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, v := newTestMarker(t, MarkerConfig{
				ID:         "m",
				Image:      "pin.png",
				Size:       &Size{Width: 32, Height: 32},
				HoverScale: floatPtr(2),
				Tooltip:    &TooltipConfig{Content: "hello", Trigger: tt.trigger},
			})
			v.project = func(Position) (Point, bool) { return Pt(100, 100), true }

			m.Render(RenderView{})
			m.ShowTooltip(nil, false)

			if len(v.created) != 1 {
				t.Fatalf("created %d tooltips, want 1", len(v.created))
			}
			if got := v.created[0].opts.Box; got != tt.want {
				t.Errorf("Box = %+v, want %+v", got, tt.want)
			}
			if got := v.created[0].opts.CapturePointer; got != (tt.trigger == TriggerClick) {
				t.Errorf("CapturePointer = %v for trigger %q", got, tt.trigger)
			}
		})
	}
}

func TestShowTooltip_PointerRelative(t *testing.T) {
	m, v := newTestMarker(t, MarkerConfig{
		ID:      "m",
		Polygon: []PositionSpec{{0.0, 0.0}, {0.1, 0.0}, {0.1, 0.1}},
		Tooltip: "area",
	})
	v.origin = Pt(10, 20)

	m.Render(RenderView{})
	at := Pt(150, 300)
	m.ShowTooltip(&at, false)

	if len(v.created) != 1 {
		t.Fatalf("created %d tooltips, want 1", len(v.created))
	}
	got := v.created[0].opts
	// Page to viewer-local conversion, anchored 10 units below the
	// pointer with a 20x20 exclusion box.
	if want := 300.0 - 20 + 10; got.Top != want {
		t.Errorf("Top = %v, want %v", got.Top, want)
	}
	if want := 150.0 - 10; got.Left != want {
		t.Errorf("Left = %v, want %v", got.Left, want)
	}
	if got.Box != (Size{Width: 20, Height: 20}) {
		t.Errorf("Box = %+v, want 20x20", got.Box)
	}
}

func TestShowTooltip_PointerFallbackToCachedPosition(t *testing.T) {
	m, v := newTestMarker(t, MarkerConfig{
		ID:      "m",
		Polygon: []PositionSpec{{0.0, 0.0}, {0.1, 0.0}, {0.1, 0.1}},
		Tooltip: "area",
	})
	v.project = func(pos Position) (Point, bool) {
		return Pt(pos.Yaw*100, pos.Pitch*100), true
	}

	rep, ok := m.Render(RenderView{})
	if !ok {
		t.Fatal("Render() reported hidden")
	}
	m.ShowTooltip(nil, false)

	got := v.created[0].opts
	if math.Abs(got.Top-rep.Y) > 1e-9 || math.Abs(got.Left-rep.X) > 1e-9 {
		t.Errorf("tooltip at (%v, %v), want cached position %v", got.Left, got.Top, rep)
	}
	if !got.Box.IsZero() {
		t.Errorf("Box = %+v, want zero without pointer coordinates", got.Box)
	}
}

func TestShowTooltip_MoveAndForce(t *testing.T) {
	m, v := newTestMarker(t, MarkerConfig{ID: "m", Image: "pin.png", Tooltip: "tip"})
	m.Render(RenderView{})

	m.ShowTooltip(nil, false)
	if len(v.created) != 1 {
		t.Fatalf("created %d tooltips, want 1", len(v.created))
	}
	tip := v.created[0]

	// Second call repositions the existing tooltip.
	m.ShowTooltip(nil, false)
	if len(v.created) != 1 || tip.moves != 1 {
		t.Errorf("reposition created=%d moves=%d, want 1 tooltip moved once", len(v.created), tip.moves)
	}

	// Forced call refreshes content and position.
	if err := m.Update(MarkerConfig{Tooltip: "updated"}); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	m.ShowTooltip(nil, true)
	if tip.updates != 1 || tip.content != "updated" {
		t.Errorf("force refresh updates=%d content=%q, want 1 %q", tip.updates, tip.content, "updated")
	}
}

func TestShowTooltip_NoOps(t *testing.T) {
	tests := []struct {
		name    string
		cfg     MarkerConfig
		prepare func(m *Marker, v *fakeViewer)
	}{
		{
			"no tooltip content",
			MarkerConfig{ID: "m", Image: "pin.png"},
			func(m *Marker, v *fakeViewer) { m.Render(RenderView{}) },
		},
		{
			"not rendered visible",
			MarkerConfig{ID: "m", Image: "pin.png", Tooltip: "tip"},
			func(m *Marker, v *fakeViewer) {
				v.project = func(Position) (Point, bool) { return Point{}, false }
				m.Render(RenderView{})
			},
		},
		{
			"hidden by config",
			MarkerConfig{ID: "m", Image: "pin.png", Tooltip: "tip", Visible: boolPtr(false)},
			func(m *Marker, v *fakeViewer) { m.Render(RenderView{}) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, v := newTestMarker(t, tt.cfg)
			tt.prepare(m, v)
			m.ShowTooltip(nil, false)
			if len(v.created) != 0 {
				t.Errorf("created %d tooltips, want none", len(v.created))
			}
		})
	}
}

func TestHideTooltip_Idempotent(t *testing.T) {
	m, v := newTestMarker(t, MarkerConfig{ID: "m", Image: "pin.png", Tooltip: "tip"})
	m.Render(RenderView{})
	m.ShowTooltip(nil, false)

	m.HideTooltip()
	if !v.created[0].hidden {
		t.Error("HideTooltip did not hide the tooltip")
	}
	if m.TooltipVisible() {
		t.Error("HideTooltip left the handle in place")
	}

	// Safe to call again with no handle.
	m.HideTooltip()
}

func TestShowTooltip_AnchorRelativeOutOfView(t *testing.T) {
	m, v := newTestMarker(t, MarkerConfig{ID: "m", Image: "pin.png", Tooltip: "tip"})

	// Visible during render, but gone by the time the tooltip shows.
	m.Render(RenderView{})
	v.project = func(Position) (Point, bool) { return Point{}, false }
	m.ShowTooltip(nil, false)

	if len(v.created) != 0 {
		t.Errorf("created %d tooltips for an out-of-view marker, want none", len(v.created))
	}
}
