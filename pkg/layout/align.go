package layout

import (
	"fmt"
	"strings"
)

// Axis selects which dimension is the main axis.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// FlexDirection is the main-axis direction of a single-line flex container.
// Reversal only affects offsets, never measurement.
type FlexDirection int

const (
	DirectionRow FlexDirection = iota
	DirectionRowReverse
	DirectionColumn
	DirectionColumnReverse
)

// Axis returns the main axis for the direction.
func (d FlexDirection) Axis() Axis {
	if d == DirectionColumn || d == DirectionColumnReverse {
		return AxisVertical
	}
	return AxisHorizontal
}

// IsReverse reports whether children are placed from the main-axis end.
func (d FlexDirection) IsReverse() bool {
	return d == DirectionRowReverse || d == DirectionColumnReverse
}

// String returns a human-readable representation of the direction.
func (d FlexDirection) String() string {
	switch d {
	case DirectionRow:
		return "row"
	case DirectionRowReverse:
		return "row_reverse"
	case DirectionColumn:
		return "column"
	case DirectionColumnReverse:
		return "column_reverse"
	default:
		return fmt.Sprintf("FlexDirection(%d)", int(d))
	}
}

// FlexAlign is used both for main-axis justification and cross-axis item
// alignment. Stretch and Baseline only apply to the cross axis. FlexAlignAuto
// is the zero value; as an item's AlignSelf it defers to the container, as a
// container alignment it behaves like FlexAlignStart.
type FlexAlign int

const (
	FlexAlignAuto FlexAlign = iota
	FlexAlignStart
	FlexAlignEnd
	FlexAlignCenter
	FlexAlignSpaceBetween
	FlexAlignSpaceAround
	FlexAlignSpaceEvenly
	FlexAlignStretch
	FlexAlignBaseline
)

var flexAlignNames = map[FlexAlign]string{
	FlexAlignAuto:         "auto",
	FlexAlignStart:        "start",
	FlexAlignEnd:          "end",
	FlexAlignCenter:       "center",
	FlexAlignSpaceBetween: "space_between",
	FlexAlignSpaceAround:  "space_around",
	FlexAlignSpaceEvenly:  "space_evenly",
	FlexAlignStretch:      "stretch",
	FlexAlignBaseline:     "baseline",
}

// String returns a human-readable representation of the alignment.
func (a FlexAlign) String() string {
	if name, ok := flexAlignNames[a]; ok {
		return name
	}
	return fmt.Sprintf("FlexAlign(%d)", int(a))
}

// ParseFlexAlign parses names such as "center", "flex-end" or "SPACE_AROUND".
func ParseFlexAlign(s string) (FlexAlign, error) {
	key := normalizeName(s)
	switch key {
	case "flex_start":
		return FlexAlignStart, nil
	case "flex_end":
		return FlexAlignEnd, nil
	}
	for align, name := range flexAlignNames {
		if name == key {
			return align, nil
		}
	}
	return FlexAlignAuto, fmt.Errorf("unknown flex alignment %q", s)
}

// ParseFlexDirection parses "row", "row-reverse", "column" or "column_reverse".
func ParseFlexDirection(s string) (FlexDirection, error) {
	for _, d := range []FlexDirection{DirectionRow, DirectionRowReverse, DirectionColumn, DirectionColumnReverse} {
		if d.String() == normalizeName(s) {
			return d, nil
		}
	}
	return DirectionRow, fmt.Errorf("unknown flex direction %q", s)
}

// WrapDirection is the main-axis direction of a multi-line container.
type WrapDirection int

const (
	WrapHorizontal WrapDirection = iota
	WrapVertical
	WrapHorizontalReverse
	WrapVerticalReverse
)

// Axis returns the main axis for the wrap direction.
func (d WrapDirection) Axis() Axis {
	if d == WrapVertical || d == WrapVerticalReverse {
		return AxisVertical
	}
	return AxisHorizontal
}

// IsReverse reports whether the direction is one of the reverse variants.
func (d WrapDirection) IsReverse() bool {
	return d == WrapHorizontalReverse || d == WrapVerticalReverse
}

// String returns a human-readable representation of the wrap direction.
func (d WrapDirection) String() string {
	switch d {
	case WrapHorizontal:
		return "horizontal"
	case WrapVertical:
		return "vertical"
	case WrapHorizontalReverse:
		return "horizontal_reverse"
	case WrapVerticalReverse:
		return "vertical_reverse"
	default:
		return fmt.Sprintf("WrapDirection(%d)", int(d))
	}
}

// ParseWrapDirection parses a wrap direction name.
func ParseWrapDirection(s string) (WrapDirection, error) {
	for _, d := range []WrapDirection{WrapHorizontal, WrapVertical, WrapHorizontalReverse, WrapVerticalReverse} {
		if d.String() == normalizeName(s) {
			return d, nil
		}
	}
	return WrapHorizontal, fmt.Errorf("unknown wrap direction %q", s)
}

// WrapAlignment mirrors FlexAlign for multi-line layout: it is used for
// item alignment within a line and for distributing lines.
type WrapAlignment int

const (
	WrapAlignStart WrapAlignment = iota
	WrapAlignEnd
	WrapAlignCenter
	WrapAlignSpaceBetween
	WrapAlignSpaceAround
	WrapAlignSpaceEvenly
	WrapAlignStretch
	WrapAlignBaseline
)

// FlexAlign returns the equivalent FlexAlign.
func (a WrapAlignment) FlexAlign() FlexAlign {
	switch a {
	case WrapAlignEnd:
		return FlexAlignEnd
	case WrapAlignCenter:
		return FlexAlignCenter
	case WrapAlignSpaceBetween:
		return FlexAlignSpaceBetween
	case WrapAlignSpaceAround:
		return FlexAlignSpaceAround
	case WrapAlignSpaceEvenly:
		return FlexAlignSpaceEvenly
	case WrapAlignStretch:
		return FlexAlignStretch
	case WrapAlignBaseline:
		return FlexAlignBaseline
	default:
		return FlexAlignStart
	}
}

// String returns a human-readable representation of the wrap alignment.
func (a WrapAlignment) String() string {
	if a < WrapAlignStart || a > WrapAlignBaseline {
		return fmt.Sprintf("WrapAlignment(%d)", int(a))
	}
	return a.FlexAlign().String()
}

// ParseWrapAlignment parses a wrap alignment name.
func ParseWrapAlignment(s string) (WrapAlignment, error) {
	for a := WrapAlignStart; a <= WrapAlignBaseline; a++ {
		if a.String() == normalizeName(s) {
			return a, nil
		}
	}
	return WrapAlignStart, fmt.Errorf("unknown wrap alignment %q", s)
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}
