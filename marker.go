package panomark

// Marker is a single visual annotation anchored to the panorama. One
// instance exists per annotation; the owning collection creates it, patches
// it through Update, drives Render once per animation frame, and destroys
// it when removed.
//
// Markers are not safe for concurrent use. The surrounding viewer is
// frame-driven and single-threaded: Update may be called between frames at
// any time and takes effect atomically, and a Render call always reflects
// the most recently completed Update.
type Marker struct {
	id      string
	variant Variant

	viewer   Viewer
	tooltips TooltipFactory

	// element is the visual owned by this marker, attached by the caller
	// after construction. Caller-supplied content elements (Element /
	// ElementLayer variants) stay owned by the caller and are only
	// dereferenced on Destroy.
	element Element

	config    ParsedConfig
	state     renderState
	destroyed bool
}

// renderState is the per-frame derived state. Render recomputes it; the
// tooltip positioning reads it.
type renderState struct {
	// anchor is the parsed fractional anchor point, recomputed on every
	// Update.
	anchor Point

	// visible is the resolved visibility for the current frame.
	visible bool

	// position2D is the anchor-adjusted viewport origin of point-like
	// markers, or the representative point of poly markers.
	position2D Point

	// points2D holds the projected vertices of poly markers that are
	// inside the current view.
	points2D []Point

	// size is the element box after zoom and hover scaling.
	size Size

	// zoom is the zoom level of the last rendered frame, kept so tooltip
	// placement resolves the same size the frame did.
	zoom float64

	tooltip Tooltip
	pinned  bool
}

// NewMarker creates a marker from its initial configuration. The
// configuration must carry an id and exactly one content field; the
// resolved variant is fixed for the marker's whole life.
//
// The viewer also serves as the tooltip factory unless the owning
// collection overrides it.
func NewMarker(viewer Viewer, cfg MarkerConfig) (*Marker, error) {
	if cfg.ID == "" {
		return nil, configErr("", "id", ErrMissingID)
	}
	variant, err := ResolveVariant(cfg)
	if err != nil || variant == VariantNone {
		return nil, configErr(cfg.ID, "content", ErrAmbiguousVariant)
	}
	m := &Marker{
		id:       cfg.ID,
		variant:  variant,
		viewer:   viewer,
		tooltips: viewer,
		config:   defaultParsed(),
	}
	if err := m.Update(cfg); err != nil {
		return nil, err
	}
	Logger().Debug("marker created", "id", m.id, "variant", variant.String())
	return m, nil
}

// ID returns the marker's immutable identifier.
func (m *Marker) ID() string { return m.id }

// Variant returns the variant fixed at creation.
func (m *Marker) Variant() Variant { return m.variant }

// Config returns the current parsed configuration.
func (m *Marker) Config() ParsedConfig { return m.config }

// Capability predicates, delegated to the fixed variant.

// IsNormal reports whether the marker is a flat overlay.
func (m *Marker) IsNormal() bool { return m.variant.IsNormal() }

// IsSvg reports whether the marker is an SVG shape.
func (m *Marker) IsSvg() bool { return m.variant.IsSvg() }

// Is3D reports whether the marker is rendered in 3D space.
func (m *Marker) Is3D() bool { return m.variant.Is3D() }

// IsPoly reports whether the marker is a point-list shape.
func (m *Marker) IsPoly() bool { return m.variant.IsPoly() }

// IsCSS3D reports whether the marker is a CSS-projected element.
func (m *Marker) IsCSS3D() bool { return m.variant.IsCSS3D() }

// Update merges a configuration patch into the marker: nested maps merge
// key-by-key, slices and scalars replace, and all defaults and angle
// parsing rules re-apply. Supplying a content field of a different variant
// fails with ErrVariantChange. On any failure the previous configuration
// is left fully intact.
//
// Update is idempotent: applying the same patch twice yields the same
// parsed configuration as applying it once.
func (m *Marker) Update(cfg MarkerConfig) error {
	if m.destroyed {
		return ErrDestroyed
	}
	variant, err := ResolveVariant(cfg)
	if err != nil {
		return configErr(m.id, "content", err)
	}
	if variant != VariantNone && variant != m.variant {
		return configErr(m.id, variant.String(), ErrVariantChange)
	}
	next, err := reconcile(m.config, cfg)
	if err != nil {
		if cerr, ok := err.(*ConfigError); ok {
			cerr.MarkerID = m.id
		}
		return err
	}
	anchor, err := ParseAnchor(next.Anchor)
	if err != nil {
		return configErr(m.id, "anchor", err)
	}
	m.config = next
	m.state.anchor = anchor
	return nil
}

// GetListContent returns the display string for index and search UIs, in
// priority order: explicit list-content override, tooltip text, raw HTML
// content, and finally the marker id.
func (m *Marker) GetListContent() string {
	switch {
	case m.config.ListContent != "":
		return m.config.ListContent
	case m.config.Tooltip != nil && m.config.Tooltip.Content != "":
		return m.config.Tooltip.Content
	case m.config.HTML != "":
		return m.config.HTML
	default:
		return m.id
	}
}

// AttachElement hands the marker ownership of its visual element. Any
// previously attached element is released first.
func (m *Marker) AttachElement(el Element) {
	if m.destroyed {
		return
	}
	m.releaseElement()
	m.element = el
}

// Element returns the attached visual element, if any.
func (m *Marker) Element() Element { return m.element }

// Position2D returns the marker's viewport anchor point resolved by the
// last Render. ok is false when the marker was hidden that frame.
func (m *Marker) Position2D() (Point, bool) {
	return m.state.position2D, m.state.visible
}

// Points2D returns the in-view projected vertices of a poly marker from
// the last Render. Nil for other variants or hidden markers.
func (m *Marker) Points2D() []Point { return m.state.points2D }

// Destroyed reports whether Destroy has been called.
func (m *Marker) Destroyed() bool { return m.destroyed }

// Destroy releases everything the marker owns: the active tooltip, the
// attached element, and the viewer references. It is idempotent, and no
// other operation is valid afterwards. The tooltip is hidden on every
// path, including element release failures.
func (m *Marker) Destroy() {
	if m.destroyed {
		return
	}
	m.HideTooltip()
	m.releaseElement()
	m.config.Element = nil
	m.config.ElementLayer = nil
	m.viewer = nil
	m.tooltips = nil
	m.destroyed = true
	Logger().Debug("marker destroyed", "id", m.id)
}

func (m *Marker) releaseElement() {
	if m.element == nil {
		return
	}
	if err := m.element.Release(); err != nil {
		Logger().Warn("marker element release failed", "id", m.id, "error", err)
	}
	m.element = nil
}
