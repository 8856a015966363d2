package panomark

import (
	"errors"
	"testing"
)

// fakeViewer implements Viewer for tests. The default projection maps a
// spherical position linearly into a 1000x1000 viewport centered at
// (500, 500), 100 pixels per radian.
type fakeViewer struct {
	origin  Point
	project func(Position) (Point, bool)
	created []*fakeTooltip
}

func (v *fakeViewer) Project(pos Position) (Point, bool) {
	if v.project != nil {
		return v.project(pos)
	}
	return Pt(500+pos.Yaw*100, 500+pos.Pitch*100), true
}

func (v *fakeViewer) ContainerOrigin() Point { return v.origin }

func (v *fakeViewer) CreateTooltip(cfg TooltipOptions) Tooltip {
	tt := &fakeTooltip{content: cfg.Content, opts: cfg}
	v.created = append(v.created, tt)
	return tt
}

type fakeTooltip struct {
	content string
	opts    TooltipOptions
	moves   int
	updates int
	hidden  bool
}

func (t *fakeTooltip) Move(cfg TooltipOptions) {
	t.opts = cfg
	t.moves++
}

func (t *fakeTooltip) Update(content string, cfg TooltipOptions) {
	t.content = content
	t.opts = cfg
	t.updates++
}

func (t *fakeTooltip) Hide() { t.hidden = true }

// fakeElement implements Element and records its release.
type fakeElement struct {
	released   int
	releaseErr error
}

func (e *fakeElement) Release() error {
	e.released++
	return e.releaseErr
}

func newTestMarker(t *testing.T, cfg MarkerConfig) (*Marker, *fakeViewer) {
	t.Helper()
	v := &fakeViewer{}
	m, err := NewMarker(v, cfg)
	if err != nil {
		t.Fatalf("NewMarker() = %v", err)
	}
	return m, v
}

func TestNewMarker_MissingID(t *testing.T) {
	_, err := NewMarker(&fakeViewer{}, MarkerConfig{Image: "pin.png"})
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("NewMarker() = %v, want ErrMissingID", err)
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("NewMarker() error is %T, want *ConfigError", err)
	}
	if cerr.Field != "id" {
		t.Errorf("ConfigError.Field = %q, want %q", cerr.Field, "id")
	}
}

func TestNewMarker_AmbiguousVariant(t *testing.T) {
	tests := []struct {
		name string
		cfg  MarkerConfig
	}{
		{"no content field", MarkerConfig{ID: "m"}},
		{"two content fields", MarkerConfig{ID: "m", Image: "pin.png", HTML: "<b>hi</b>"}},
		{"poly and image", MarkerConfig{ID: "m", Image: "pin.png", Polygon: []PositionSpec{{0, 0}, {1, 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMarker(&fakeViewer{}, tt.cfg)
			if !errors.Is(err, ErrAmbiguousVariant) {
				t.Errorf("NewMarker() = %v, want ErrAmbiguousVariant", err)
			}
		})
	}
}

func TestMarker_VariantFixed(t *testing.T) {
	m, _ := newTestMarker(t, MarkerConfig{ID: "m", Image: "pin.png"})
	if m.Variant() != VariantImage {
		t.Fatalf("Variant() = %v, want VariantImage", m.Variant())
	}

	err := m.Update(MarkerConfig{Polygon: []PositionSpec{{0, 0}, {1, 0}, {1, 1}}})
	if !errors.Is(err, ErrVariantChange) {
		t.Fatalf("Update() = %v, want ErrVariantChange", err)
	}

	// Prior configuration must be fully intact.
	if got := m.Config().Image; got != "pin.png" {
		t.Errorf("Config().Image = %q after failed update, want %q", got, "pin.png")
	}
	if m.Config().Polygon != nil {
		t.Error("Config().Polygon set after failed update")
	}
	if m.Variant() != VariantImage {
		t.Errorf("Variant() = %v after failed update, want VariantImage", m.Variant())
	}
}

func TestMarker_UpdateSameVariantPayload(t *testing.T) {
	m, _ := newTestMarker(t, MarkerConfig{ID: "m", Image: "pin.png"})
	if err := m.Update(MarkerConfig{Image: "flag.png"}); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if got := m.Config().Image; got != "flag.png" {
		t.Errorf("Config().Image = %q, want %q", got, "flag.png")
	}
}

func TestMarker_UpdateFailureKeepsState(t *testing.T) {
	m, _ := newTestMarker(t, MarkerConfig{ID: "m", Image: "pin.png", Anchor: "bottom center"})
	before := m.Config()

	err := m.Update(MarkerConfig{Rotation: "sideways"})
	if err == nil {
		t.Fatal("Update() with malformed rotation succeeded, want error")
	}
	after := m.Config()
	if after.Anchor != before.Anchor || after.Rotation != before.Rotation {
		t.Error("failed update mutated the parsed configuration")
	}
}

func TestMarker_GetListContent(t *testing.T) {
	tests := []struct {
		name string
		cfg  MarkerConfig
		want string
	}{
		{
			"list content wins",
			MarkerConfig{ID: "m", HTML: "<i>raw</i>", ListContent: "list", Tooltip: "tip"},
			"list",
		},
		{
			"tooltip second",
			MarkerConfig{ID: "m", HTML: "<i>raw</i>", Tooltip: "tip"},
			"tip",
		},
		{
			"raw content third",
			MarkerConfig{ID: "m", HTML: "<i>raw</i>"},
			"<i>raw</i>",
		},
		{
			"id fallback",
			MarkerConfig{ID: "m", Image: "pin.png"},
			"m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMarker(t, tt.cfg)
			if got := m.GetListContent(); got != tt.want {
				t.Errorf("GetListContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarker_Destroy(t *testing.T) {
	m, v := newTestMarker(t, MarkerConfig{
		ID:       "m",
		Image:    "pin.png",
		Tooltip:  "tip",
		Position: &PositionSpec{0, 0},
	})
	el := &fakeElement{}
	m.AttachElement(el)

	m.Render(RenderView{})
	m.ShowTooltip(nil, false)
	if len(v.created) != 1 {
		t.Fatalf("created %d tooltips, want 1", len(v.created))
	}

	m.Destroy()

	if !m.Destroyed() {
		t.Error("Destroyed() = false after Destroy")
	}
	if !v.created[0].hidden {
		t.Error("Destroy left the tooltip visible")
	}
	if m.TooltipVisible() {
		t.Error("Destroy left a dangling tooltip handle")
	}
	if el.released != 1 {
		t.Errorf("element released %d times, want 1", el.released)
	}
	if m.Element() != nil {
		t.Error("Destroy left the element attached")
	}

	// No operation is valid afterwards.
	if err := m.Update(MarkerConfig{Visible: boolPtr(false)}); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Update() after Destroy = %v, want ErrDestroyed", err)
	}
	if _, ok := m.Render(RenderView{}); ok {
		t.Error("Render() after Destroy reported visible")
	}

	// Destroy is idempotent.
	m.Destroy()
	if el.released != 1 {
		t.Errorf("second Destroy released the element again (%d times)", el.released)
	}
}

func TestMarker_DestroyWithFailingElement(t *testing.T) {
	m, v := newTestMarker(t, MarkerConfig{ID: "m", Image: "pin.png", Tooltip: "tip"})
	m.AttachElement(&fakeElement{releaseErr: errors.New("gpu buffer busy")})

	m.Render(RenderView{})
	m.ShowTooltip(nil, false)
	m.Destroy()

	// The tooltip must be released even when the element release fails.
	if len(v.created) != 1 || !v.created[0].hidden {
		t.Error("Destroy with failing element left the tooltip visible")
	}
	if !m.Destroyed() {
		t.Error("Destroy with failing element did not complete")
	}
}

func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
