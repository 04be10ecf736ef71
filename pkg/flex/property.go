package flex

import (
	"fmt"

	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
)

// MainAxisSize controls how much main-axis space a flex container takes.
type MainAxisSize int

const (
	// MainAxisSizeMax fills a bounded main axis.
	MainAxisSizeMax MainAxisSize = iota
	// MainAxisSizeMin wraps the children's total main extent.
	MainAxisSizeMin
)

// String returns a human-readable representation of the main axis size.
func (s MainAxisSize) String() string {
	switch s {
	case MainAxisSizeMax:
		return "max"
	case MainAxisSizeMin:
		return "min"
	default:
		return fmt.Sprintf("MainAxisSize(%d)", int(s))
	}
}

// FlexLayoutProperty is the declared intent of a single-line flex container.
type FlexLayoutProperty struct {
	layout.LayoutProperty
	Direction      layout.FlexDirection
	MainAxisAlign  layout.FlexAlign
	CrossAxisAlign layout.FlexAlign
	MainAxisSize   MainAxisSize
}

// WrapReverseMode selects how reverse wrap directions are laid out.
type WrapReverseMode int

const (
	// WrapReverseCurrent mirrors main offsets within each line and reverses
	// the cross-axis order of the lines.
	WrapReverseCurrent WrapReverseMode = iota
	// WrapReverseLegacy mirrors main offsets within each line only. Targets
	// at platform version 9 or older expect this.
	WrapReverseLegacy
)

// String returns a human-readable representation of the mode.
func (m WrapReverseMode) String() string {
	switch m {
	case WrapReverseCurrent:
		return "current"
	case WrapReverseLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("WrapReverseMode(%d)", int(m))
	}
}

// WrapLayoutProperty is the declared intent of a multi-line container.
type WrapLayoutProperty struct {
	layout.LayoutProperty
	Direction layout.WrapDirection
	// Alignment distributes lines along the cross axis.
	Alignment layout.WrapAlignment
	// MainAlignment places items along the main axis within a line.
	MainAlignment layout.WrapAlignment
	// CrossAlignment places items within the thickness of their line.
	CrossAlignment layout.WrapAlignment
	// Spacing is the main-axis gap between items of a line.
	Spacing graphics.Dimension
	// ContentSpace is the cross-axis gap between lines.
	ContentSpace graphics.Dimension
}
