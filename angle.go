package panomark

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Angle is a configuration angle value. Accepted forms:
//   - float64, float32 or any integer type: radians
//   - string with a unit suffix: "45deg", "0.5rad"
//   - bare numeric string: radians
//   - nil: zero
//
// Angles are normalized to float64 radians by ParseAngle.
type Angle = any

// ParseAngle converts a configuration angle to radians.
func ParseAngle(a Angle) (float64, error) {
	switch v := a.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return parseAngleString(v)
	default:
		return 0, fmt.Errorf("unsupported angle value %v (%T)", a, a)
	}
}

func parseAngleString(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty angle")
	}
	unit := "rad"
	switch {
	case strings.HasSuffix(s, "deg"):
		unit = "deg"
		s = strings.TrimSuffix(s, "deg")
	case strings.HasSuffix(s, "rad"):
		s = strings.TrimSuffix(s, "rad")
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable angle %q", s)
	}
	if unit == "deg" {
		value = value * math.Pi / 180
	}
	return value, nil
}

// ParseAnchor converts an anchor description to a fractional point.
// Accepted forms, matching CSS background-position:
//   - keywords: "top", "bottom", "left", "right", "center", pairs thereof
//     in either order ("bottom center", "center left")
//   - percentages: "50% 100%" (horizontal first)
//   - empty string: center
func ParseAnchor(s string) (Point, error) {
	anchor := Pt(0.5, 0.5)
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) > 2 {
		return anchor, fmt.Errorf("unparsable anchor %q", s)
	}
	// A single keyword leaves the other axis centered; a single
	// percentage applies to the horizontal axis only.
	xSet, ySet := false, false
	for _, tok := range fields {
		switch tok {
		case "left":
			if xSet {
				return anchor, fmt.Errorf("conflicting anchor %q", s)
			}
			anchor.X, xSet = 0, true
		case "right":
			if xSet {
				return anchor, fmt.Errorf("conflicting anchor %q", s)
			}
			anchor.X, xSet = 1, true
		case "top":
			if ySet {
				return anchor, fmt.Errorf("conflicting anchor %q", s)
			}
			anchor.Y, ySet = 0, true
		case "bottom":
			if ySet {
				return anchor, fmt.Errorf("conflicting anchor %q", s)
			}
			anchor.Y, ySet = 1, true
		case "center":
			// center is valid for either axis and needs no assignment
		default:
			if !strings.HasSuffix(tok, "%") {
				return anchor, fmt.Errorf("unparsable anchor %q", s)
			}
			value, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
			if err != nil {
				return anchor, fmt.Errorf("unparsable anchor %q", s)
			}
			if !xSet {
				anchor.X, xSet = value/100, true
			} else if !ySet {
				anchor.Y, ySet = value/100, true
			} else {
				return anchor, fmt.Errorf("conflicting anchor %q", s)
			}
		}
	}
	return anchor, nil
}
