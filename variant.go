package panomark

// Variant identifies the kind of a marker. It is fixed when the marker is
// created and can never change across updates.
//
// Variants fall into capability groups that drive tooltip placement and the
// plugin's batched behavior (for example which markers react to zoom-based
// scaling): flat overlays (IsNormal), SVG shapes (IsSvg), 3D-space layers
// (Is3D), point-list shapes (IsPoly) and CSS-projected elements (IsCSS3D).
// Every concrete variant belongs to exactly one group.
type Variant uint8

const (
	// VariantNone is the zero value: no content field resolved. It is only
	// a valid resolution result during Update, where it means "no change".
	VariantNone Variant = iota

	// VariantImage is a flat raster image overlay.
	VariantImage

	// VariantHTML is a flat HTML overlay.
	VariantHTML

	// VariantElement is a flat overlay around a caller-supplied element.
	VariantElement

	// VariantImageLayer is an image rendered in 3D space by the viewer.
	VariantImageLayer

	// VariantVideoLayer is a video rendered in 3D space by the viewer.
	VariantVideoLayer

	// VariantPolygon is a closed point-list shape on the sphere.
	VariantPolygon

	// VariantPolyline is an open point-list shape on the sphere.
	VariantPolyline

	// VariantElementLayer is a caller-supplied element projected with CSS
	// 3D transforms.
	VariantElementLayer

	// VariantCircle is an SVG circle shape.
	VariantCircle

	// VariantPath is an SVG path shape.
	VariantPath
)

// String returns the configuration field name defining the variant.
func (v Variant) String() string {
	switch v {
	case VariantImage:
		return "image"
	case VariantHTML:
		return "html"
	case VariantElement:
		return "element"
	case VariantImageLayer:
		return "imageLayer"
	case VariantVideoLayer:
		return "videoLayer"
	case VariantPolygon:
		return "polygon"
	case VariantPolyline:
		return "polyline"
	case VariantElementLayer:
		return "elementLayer"
	case VariantCircle:
		return "circle"
	case VariantPath:
		return "path"
	default:
		return "none"
	}
}

// IsNormal reports whether the variant is a flat overlay (image, HTML or
// caller-supplied element).
func (v Variant) IsNormal() bool {
	return v == VariantImage || v == VariantHTML || v == VariantElement
}

// IsSvg reports whether the variant is an SVG shape. SVG markers behave
// like flat overlays for tooltip placement and zoom scaling.
func (v Variant) IsSvg() bool {
	return v == VariantCircle || v == VariantPath
}

// Is3D reports whether the variant is rendered in 3D space by the viewer.
func (v Variant) Is3D() bool {
	return v == VariantImageLayer || v == VariantVideoLayer
}

// IsPoly reports whether the variant is a point-list shape.
func (v Variant) IsPoly() bool {
	return v == VariantPolygon || v == VariantPolyline
}

// IsCSS3D reports whether the variant is a CSS-projected element.
func (v Variant) IsCSS3D() bool {
	return v == VariantElementLayer
}

// ResolveVariant inspects the content fields of a configuration and returns
// the variant they define.
//
// Exactly one content field must be set. When none is set, ResolveVariant
// returns VariantNone with no error: during Update that is a valid partial
// edit, and NewMarker rejects it separately. When more than one is set, it
// returns ErrAmbiguousVariant.
func ResolveVariant(cfg MarkerConfig) (Variant, error) {
	found := VariantNone
	match := func(v Variant) bool {
		if found != VariantNone {
			return false
		}
		found = v
		return true
	}
	ok := true
	if cfg.Image != "" {
		ok = match(VariantImage)
	}
	if ok && cfg.HTML != "" {
		ok = match(VariantHTML)
	}
	if ok && cfg.Element != nil {
		ok = match(VariantElement)
	}
	if ok && cfg.ImageLayer != "" {
		ok = match(VariantImageLayer)
	}
	if ok && cfg.VideoLayer != "" {
		ok = match(VariantVideoLayer)
	}
	if ok && cfg.Polygon != nil {
		ok = match(VariantPolygon)
	}
	if ok && cfg.Polyline != nil {
		ok = match(VariantPolyline)
	}
	if ok && cfg.ElementLayer != nil {
		ok = match(VariantElementLayer)
	}
	if ok && cfg.Circle > 0 {
		ok = match(VariantCircle)
	}
	if ok && cfg.Path != "" {
		ok = match(VariantPath)
	}
	if !ok {
		return VariantNone, ErrAmbiguousVariant
	}
	return found, nil
}
