package flex

import (
	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
)

func mainOf(axis layout.Axis, size graphics.Size) float64 {
	if axis == layout.AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func crossOf(axis layout.Axis, size graphics.Size) float64 {
	if axis == layout.AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func makeSize(axis layout.Axis, main, cross float64) graphics.Size {
	if axis == layout.AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func makeOffset(axis layout.Axis, main, cross float64) graphics.Offset {
	if axis == layout.AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

func mainIdeal(axis layout.Axis, o graphics.OptionalSize) (float64, bool) {
	if axis == layout.AxisHorizontal {
		return o.Width, o.HasWidth
	}
	return o.Height, o.HasHeight
}

func crossIdeal(axis layout.Axis, o graphics.OptionalSize) (float64, bool) {
	if axis == layout.AxisHorizontal {
		return o.Height, o.HasHeight
	}
	return o.Width, o.HasWidth
}

func setMainIdeal(axis layout.Axis, o *graphics.OptionalSize, v float64) {
	if axis == layout.AxisHorizontal {
		o.SetWidth(v)
	} else {
		o.SetHeight(v)
	}
}

func setCrossIdeal(axis layout.Axis, o *graphics.OptionalSize, v float64) {
	if axis == layout.AxisHorizontal {
		o.SetHeight(v)
	} else {
		o.SetWidth(v)
	}
}

// declaresCross reports whether a child fixes its own cross size, which
// exempts it from stretching.
func declaresCross(axis layout.Axis, p *layout.LayoutProperty) bool {
	if axis == layout.AxisHorizontal {
		return p.HasIdealHeight()
	}
	return p.HasIdealWidth()
}
