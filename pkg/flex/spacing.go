package flex

import "github.com/go-drift/flexlayout/pkg/layout"

// distributeSpace returns the leading space and the gap between consecutive
// items for n items sharing free space. Negative free space cannot be spread:
// SpaceBetween then falls back to Start, SpaceAround and SpaceEvenly to
// Center.
func distributeSpace(align layout.FlexAlign, free float64, n int) (leading, between float64) {
	if n <= 0 {
		return 0, 0
	}
	if free < 0 {
		switch align {
		case layout.FlexAlignSpaceBetween:
			align = layout.FlexAlignStart
		case layout.FlexAlignSpaceAround, layout.FlexAlignSpaceEvenly:
			align = layout.FlexAlignCenter
		}
	}
	count := float64(n)
	switch align {
	case layout.FlexAlignEnd:
		return free, 0
	case layout.FlexAlignCenter:
		return free / 2, 0
	case layout.FlexAlignSpaceBetween:
		if n > 1 {
			return 0, free / (count - 1)
		}
		return 0, 0
	case layout.FlexAlignSpaceAround:
		return free / (2 * count), free / count
	case layout.FlexAlignSpaceEvenly:
		return free / (count + 1), free / (count + 1)
	default:
		return 0, 0
	}
}

// crossOffset positions an item of extent child inside a cross extent of
// size. Baseline only applies when the main axis is horizontal; otherwise it
// behaves like Start.
func crossOffset(align layout.FlexAlign, axis layout.Axis, size, child, maxBaseline, baseline float64) float64 {
	switch align {
	case layout.FlexAlignEnd:
		return size - child
	case layout.FlexAlignCenter:
		return (size - child) / 2
	case layout.FlexAlignBaseline:
		if axis == layout.AxisHorizontal {
			return maxBaseline - baseline
		}
		return 0
	default:
		return 0
	}
}

// effectiveAlign resolves an item's AlignSelf against the container's
// alignment. Auto at both levels means Start.
func effectiveAlign(self, container layout.FlexAlign) layout.FlexAlign {
	if self != layout.FlexAlignAuto {
		return self
	}
	if container == layout.FlexAlignAuto {
		return layout.FlexAlignStart
	}
	return container
}

// lineAlign maps a line distribution alignment to the main-axis rules.
// Stretch is applied while measuring and Baseline has no meaning for lines,
// so both distribute like Start.
func lineAlign(a layout.WrapAlignment) layout.FlexAlign {
	switch a {
	case layout.WrapAlignStretch, layout.WrapAlignBaseline:
		return layout.FlexAlignStart
	default:
		return a.FlexAlign()
	}
}
