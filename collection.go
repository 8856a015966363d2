package panomark

import (
	"fmt"
	"sort"
)

// Collection owns a set of markers for one viewer. It enforces id
// uniqueness, drives per-frame rendering, and forwards hover and click
// events to the tooltip logic.
//
// Like the markers it owns, a Collection is frame-driven and
// single-threaded: it must only be used from the viewer's update loop.
type Collection struct {
	viewer   Viewer
	tooltips TooltipFactory
	markers  map[string]*Marker
	hovered  *Marker
}

// NewCollection creates an empty marker collection bound to a viewer.
func NewCollection(viewer Viewer, opts ...CollectionOption) *Collection {
	o := defaultCollectionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	tooltips := o.tooltips
	if tooltips == nil {
		tooltips = viewer
	}
	return &Collection{
		viewer:   viewer,
		tooltips: tooltips,
		markers:  make(map[string]*Marker),
	}
}

// Add creates a marker from its initial configuration and registers it.
// The id must not be in use.
func (c *Collection) Add(cfg MarkerConfig) (*Marker, error) {
	if _, exists := c.markers[cfg.ID]; exists && cfg.ID != "" {
		return nil, configErr(cfg.ID, "id", ErrDuplicateID)
	}
	m, err := NewMarker(c.viewer, cfg)
	if err != nil {
		return nil, err
	}
	m.tooltips = c.tooltips
	c.markers[m.id] = m
	return m, nil
}

// Get returns the marker with the given id, or nil.
func (c *Collection) Get(id string) *Marker {
	return c.markers[id]
}

// Update patches the configuration of an existing marker.
func (c *Collection) Update(id string, cfg MarkerConfig) error {
	m := c.markers[id]
	if m == nil {
		return fmt.Errorf("%w: %q", ErrMarkerNotFound, id)
	}
	return m.Update(cfg)
}

// Remove destroys the marker with the given id and unregisters it.
// It reports whether a marker was removed.
func (c *Collection) Remove(id string) bool {
	m := c.markers[id]
	if m == nil {
		return false
	}
	if c.hovered == m {
		c.hovered = nil
	}
	m.Destroy()
	delete(c.markers, id)
	return true
}

// Clear destroys and removes every marker.
func (c *Collection) Clear() {
	for id, m := range c.markers {
		m.Destroy()
		delete(c.markers, id)
	}
	c.hovered = nil
}

// Len returns the number of markers in the collection.
func (c *Collection) Len() int { return len(c.markers) }

// RenderAll renders every marker for the current frame and returns the
// ones visible this frame. Pinned tooltips of visible markers are
// repositioned so they track their marker under viewer movement; tooltips
// of markers that left the view are hidden.
func (c *Collection) RenderAll(view RenderView) []*Marker {
	visible := make([]*Marker, 0, len(c.markers))
	for _, m := range c.markers {
		if _, ok := m.Render(view); !ok {
			m.HideTooltip()
			continue
		}
		visible = append(visible, m)
		if m.TooltipPinned() || (c.hovered == m && m.TooltipVisible()) {
			m.ShowTooltip(nil, false)
		}
	}
	return visible
}

// SetHovered updates the marker under the pointer, showing and hiding
// transient tooltips as the pointer moves. at is the pointer position in
// page coordinates, forwarded to pointer-relative tooltip placement.
func (c *Collection) SetHovered(m *Marker, at *Point) {
	if c.hovered == m {
		if m != nil && m.TooltipVisible() && !m.TooltipPinned() {
			m.ShowTooltip(at, false)
		}
		return
	}
	if c.hovered != nil && !c.hovered.TooltipPinned() {
		c.hovered.HideTooltip()
	}
	c.hovered = m
	if m == nil {
		return
	}
	if tip := m.config.Tooltip; tip != nil && tip.Trigger == TriggerHover {
		m.ShowTooltip(at, false)
	}
}

// Hovered returns the marker currently under the pointer, if any.
func (c *Collection) Hovered() *Marker { return c.hovered }

// Click toggles the pinned tooltip of a click-triggered marker. The
// plugin forwards pointer clicks here.
func (c *Collection) Click(m *Marker, at *Point) {
	if m == nil {
		return
	}
	tip := m.config.Tooltip
	if tip == nil || tip.Trigger != TriggerClick {
		return
	}
	if m.TooltipPinned() {
		m.HideTooltip()
		return
	}
	m.ShowTooltip(at, false)
}

// ListItem is one entry of the marker list UI.
type ListItem struct {
	ID      string
	Content string
}

// ListItems returns the list/search entries for every marker, sorted by
// id for stable display order.
func (c *Collection) ListItems() []ListItem {
	items := make([]ListItem, 0, len(c.markers))
	for _, m := range c.markers {
		items = append(items, ListItem{ID: m.id, Content: m.GetListContent()})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
