package layout

import "github.com/go-drift/flexlayout/pkg/graphics"

// GeometryNode owns a node's measured frame and its placement offset. The
// offset is relative to the parent's frame origin. Geometry is rewritten on
// every pass that is not skipped.
//
// A nil *GeometryNode reads as zero and ignores writes.
type GeometryNode struct {
	frameSize     graphics.Size
	frameOffset   graphics.Offset
	contentSize   graphics.Size
	contentOffset graphics.Offset
	baseline      float64
	hasBaseline   bool
}

// FrameSize returns the measured frame size.
func (g *GeometryNode) FrameSize() graphics.Size {
	if g == nil {
		return graphics.Size{}
	}
	return g.frameSize
}

// SetFrameSize records the measured frame size.
func (g *GeometryNode) SetFrameSize(size graphics.Size) {
	if g == nil {
		return
	}
	g.frameSize = size
}

// FrameOffset returns the frame origin relative to the parent.
func (g *GeometryNode) FrameOffset() graphics.Offset {
	if g == nil {
		return graphics.Offset{}
	}
	return g.frameOffset
}

// SetFrameOffset records the frame origin relative to the parent.
func (g *GeometryNode) SetFrameOffset(offset graphics.Offset) {
	if g == nil {
		return
	}
	g.frameOffset = offset
}

// FrameRect returns the frame in parent coordinates.
func (g *GeometryNode) FrameRect() graphics.Rect {
	return graphics.RectFromOffsetSize(g.frameOffset, g.frameSize)
}

// ContentSize returns the size of the content box. A container without
// children reports ContentSizeUnset.
func (g *GeometryNode) ContentSize() graphics.Size {
	if g == nil {
		return graphics.Size{}
	}
	return g.contentSize
}

// SetContentSize records the content box size.
func (g *GeometryNode) SetContentSize(size graphics.Size) {
	if g == nil {
		return
	}
	g.contentSize = size
}

// ContentOffset returns the content box origin within the frame.
func (g *GeometryNode) ContentOffset() graphics.Offset {
	if g == nil {
		return graphics.Offset{}
	}
	return g.contentOffset
}

// SetContentOffset records the content box origin within the frame.
func (g *GeometryNode) SetContentOffset(offset graphics.Offset) {
	if g == nil {
		return
	}
	g.contentOffset = offset
}

// Baseline returns the distance from the frame top to the first baseline.
// Nodes without text report their frame height.
func (g *GeometryNode) Baseline() float64 {
	if g == nil {
		return 0
	}
	if g.hasBaseline {
		return g.baseline
	}
	return g.frameSize.Height
}

// SetBaseline records the first baseline distance.
func (g *GeometryNode) SetBaseline(v float64) {
	if g == nil {
		return
	}
	g.baseline = v
	g.hasBaseline = true
}

// Reset clears all geometry to zero.
func (g *GeometryNode) Reset() {
	if g == nil {
		return
	}
	*g = GeometryNode{}
}

// ContentSizeUnset is reported as the content size of a container measured
// without any children.
var ContentSizeUnset = graphics.Size{Width: -1, Height: -1}
