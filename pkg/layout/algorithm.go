package layout

import (
	"math"

	"github.com/go-drift/flexlayout/pkg/graphics"
)

var graphicsOrigin = graphics.Offset{}

// BoxLayoutAlgorithm sizes a node to its ideal size, or else to its largest
// child plus padding, and stacks every child at the content origin.
type BoxLayoutAlgorithm struct{}

// Measure implements LayoutAlgorithm.
func (BoxLayoutAlgorithm) Measure(w *LayoutWrapperNode) {
	p := w.LayoutProperty()
	childConstraint := w.CreateChildConstraint()
	content := graphics.Size{}
	for _, child := range w.Children() {
		child.Measure(childConstraint)
		if child.IsGone() {
			continue
		}
		size := child.Geometry().FrameSize()
		content.Width = math.Max(content.Width, size.Width)
		content.Height = math.Max(content.Height, size.Height)
	}
	frame := p.FrameSizeFor(content)
	w.Geometry().SetFrameSize(frame)
	pad := p.Padding.Clamped()
	w.Geometry().SetContentSize(graphics.Size{
		Width:  graphics.NonNegative(frame.Width - pad.Horizontal()),
		Height: graphics.NonNegative(frame.Height - pad.Vertical()),
	})
}

// Layout implements LayoutAlgorithm.
func (BoxLayoutAlgorithm) Layout(w *LayoutWrapperNode) {
	origin := w.Geometry().ContentOffset()
	for _, child := range w.Children() {
		if child.IsGone() {
			child.Geometry().SetFrameOffset(graphicsOrigin)
			continue
		}
		child.Geometry().SetFrameOffset(origin)
		child.Layout()
	}
}
