package panomark

// pointerBox is the exclusion box reserved around the cursor by
// pointer-relative tooltip placement.
var pointerBox = Size{Width: 20, Height: 20}

// pointerOffset is how far below the pointer the tooltip anchors, in
// viewer-local units.
const pointerOffset = 10

// ShowTooltip shows, moves or refreshes the marker's tooltip. It is a
// no-op unless the marker is visible this frame, has tooltip content
// configured, and resolved a 2D position on its last Render.
//
// at, when non-nil, is the pointer position in page coordinates; poly, 3D
// and CSS-projected markers anchor the tooltip relative to it. force
// refreshes the content as well as the position of an existing tooltip.
func (m *Marker) ShowTooltip(at *Point, force bool) {
	if m.destroyed || !m.state.visible {
		return
	}
	tip := m.config.Tooltip
	if tip == nil || tip.Content == "" {
		return
	}
	pinned := tip.Trigger == TriggerClick
	opts := TooltipOptions{
		Content:        tip.Content,
		Position:       tip.Position,
		ClassName:      tip.ClassName,
		CapturePointer: pinned,
	}
	if m.variant.IsPoly() || m.variant.Is3D() || m.variant.IsCSS3D() {
		m.positionAtPointer(&opts, at)
	} else if !m.positionAtAnchor(&opts, pinned) {
		return
	}
	switch {
	case m.state.tooltip == nil:
		m.state.tooltip = m.tooltips.CreateTooltip(opts)
	case force:
		m.state.tooltip.Update(opts.Content, opts)
	default:
		m.state.tooltip.Move(opts)
	}
	m.state.pinned = pinned
}

// positionAtPointer anchors the tooltip just below the pointer, converted
// from page to viewer-local coordinates, reserving a small exclusion box
// so the tooltip clears the cursor. Without pointer coordinates it falls
// back to the marker's cached 2D position.
func (m *Marker) positionAtPointer(opts *TooltipOptions, at *Point) {
	if at == nil {
		opts.Top = m.state.position2D.Y
		opts.Left = m.state.position2D.X
		return
	}
	origin := m.viewer.ContainerOrigin()
	opts.Top = at.Y - origin.Y + pointerOffset
	opts.Left = at.X - origin.X
	opts.Box = pointerBox
}

// positionAtAnchor anchors the tooltip against the marker's own box: the
// configured position is re-projected, and the origin is offset by
// -size*anchor + size/2 per axis, so a bottom-center anchor puts the
// tooltip directly above the marker's visual anchor point. The box passed
// along is the resolved marker size, grown by the hover-scale factor for
// transient tooltips so the tooltip clears the scaled-up marker.
func (m *Marker) positionAtAnchor(opts *TooltipOptions, pinned bool) bool {
	pt, ok := m.viewer.Project(m.config.Position)
	if !ok {
		return false
	}
	size := m.scaledSize(m.state.zoom, false)
	if !pinned && m.config.HoverScale > 0 {
		size = size.Mul(m.config.HoverScale)
	}
	opts.Top = pt.Y - size.Height*m.state.anchor.Y + size.Height/2
	opts.Left = pt.X - size.Width*m.state.anchor.X + size.Width/2
	opts.Box = size
	return true
}

// HideTooltip hides and releases the active tooltip handle. Idempotent.
func (m *Marker) HideTooltip() {
	if m.state.tooltip == nil {
		return
	}
	m.state.tooltip.Hide()
	m.state.tooltip = nil
	m.state.pinned = false
}

// TooltipVisible reports whether the marker currently holds a live
// tooltip handle.
func (m *Marker) TooltipVisible() bool { return m.state.tooltip != nil }

// TooltipPinned reports whether the active tooltip is pinned (click
// trigger) rather than transient.
func (m *Marker) TooltipPinned() bool { return m.state.tooltip != nil && m.state.pinned }
