package flex

import (
	stderrors "errors"
	"fmt"
	"math"
	"slices"

	"github.com/go-drift/flexlayout/pkg/errors"
	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
)

// WrapLayoutAlgorithm lays children out in as many lines as the main axis
// needs, then distributes the lines along the cross axis.
type WrapLayoutAlgorithm struct {
	ReverseMode WrapReverseMode

	axis         layout.Axis
	lines        []*wrapLine
	mainSize     float64
	crossSize    float64
	spacing      float64
	contentSpace float64

	reports errors.ReportOnce
}

// NewWrapLayoutAlgorithm returns an algorithm for one wrap node.
func NewWrapLayoutAlgorithm(mode WrapReverseMode) *WrapLayoutAlgorithm {
	return &WrapLayoutAlgorithm{ReverseMode: mode}
}

func wrapProperty(w *layout.LayoutWrapperNode, op string) *WrapLayoutProperty {
	if p, ok := w.Property().(*WrapLayoutProperty); ok && p != nil {
		return p
	}
	errors.Report(&errors.LayoutError{
		Op:   op,
		Kind: errors.KindNullGuard,
		Node: w.String(),
		Err:  fmt.Errorf("want *flex.WrapLayoutProperty, got %T", w.Property()),
	})
	return nil
}

func resolveGap(d graphics.Dimension, reference float64) float64 {
	v, _ := d.Resolve(reference)
	return v
}

// Lines returns the number of lines produced by the last measurement.
func (a *WrapLayoutAlgorithm) Lines() int {
	return len(a.lines)
}

// Measure implements layout.LayoutAlgorithm.
func (a *WrapLayoutAlgorithm) Measure(w *layout.LayoutWrapperNode) {
	prop := wrapProperty(w, "wrap.Measure")
	if prop == nil {
		w.Geometry().SetFrameSize(graphics.Size{})
		a.lines = nil
		return
	}
	axis := prop.Direction.Axis()
	a.axis = axis
	content := w.ContentConstraint()
	childConstraint := w.CreateChildConstraint()
	maxMain := mainOf(axis, childConstraint.MaxSize)
	bounded := !graphics.IsInfinite(maxMain)
	a.spacing = resolveGap(prop.Spacing, mainOf(axis, childConstraint.PercentReference))
	a.contentSpace = resolveGap(prop.ContentSpace, crossOf(axis, childConstraint.PercentReference))
	if !bounded && w.ChildCount() > 1 {
		a.reports.Report(&errors.LayoutError{
			Op:   "wrap.Measure",
			Kind: errors.KindInvalidInput,
			Node: w.String(),
			Err:  stderrors.New("unbounded main axis, laying out a single line"),
		})
	}

	items := measureItems(w, axis, childConstraint)
	breaker := newLineBreaker(maxMain, a.spacing)
	for _, it := range items {
		breaker.push(it)
	}
	a.lines = breaker.finish()

	itemAlign := prop.CrossAlignment.FlexAlign()
	used := 0.0
	for _, line := range a.lines {
		available := maxMain - a.spacing*float64(len(line.items)-1)
		resolveMainAxis(line.items, available, bounded, false)
		applyResolvedMain(line.items, axis, childConstraint)
		line.measure(axis, a.spacing, itemAlign)
		used += line.cross
	}
	if n := len(a.lines); n > 1 {
		used += a.contentSpace * float64(n-1)
	}

	cross := used
	if v, ok := crossIdeal(axis, content.SelfIdealSize); ok {
		cross = v
	} else {
		cross = clampTo(cross, crossOf(axis, content.MinSize), crossOf(axis, content.MaxSize))
	}
	if prop.Alignment == layout.WrapAlignStretch && len(a.lines) > 0 && cross > used {
		extra := (cross - used) / float64(len(a.lines))
		for _, line := range a.lines {
			line.cross += extra
		}
	}
	for _, line := range a.lines {
		stretchItems(line.items, axis, itemAlign, childConstraint, line.cross)
	}

	var main float64
	switch v, ok := mainIdeal(axis, content.SelfIdealSize); {
	case ok:
		main = v
	case bounded:
		main = maxMain
	default:
		for _, line := range a.lines {
			main = math.Max(main, line.main)
		}
		main = math.Max(main, mainOf(axis, content.MinSize))
	}
	a.mainSize, a.crossSize = main, cross

	contentSize := makeSize(axis, main, cross)
	w.Geometry().SetFrameSize(prop.FrameSizeFor(contentSize))
	if w.ChildCount() == 0 {
		w.Geometry().SetContentSize(layout.ContentSizeUnset)
		return
	}
	w.Geometry().SetContentSize(contentSize)
}

// Layout implements layout.LayoutAlgorithm.
func (a *WrapLayoutAlgorithm) Layout(w *layout.LayoutWrapperNode) {
	prop := wrapProperty(w, "wrap.Layout")
	if prop == nil {
		return
	}
	for _, child := range w.Children() {
		child.Geometry().SetFrameOffset(graphics.Offset{})
	}
	used := 0.0
	for _, line := range a.lines {
		used += line.cross
	}
	if n := len(a.lines); n > 1 {
		used += a.contentSpace * float64(n-1)
	}
	leading, between := distributeSpace(lineAlign(prop.Alignment), a.crossSize-used, len(a.lines))
	between += a.contentSpace

	reverse := prop.Direction.IsReverse()
	lines := a.lines
	if reverse && a.ReverseMode == WrapReverseCurrent {
		lines = slices.Clone(a.lines)
		slices.Reverse(lines)
	}
	origin := w.Geometry().ContentOffset()
	cursor := leading
	for _, line := range lines {
		a.layoutLine(prop, line, origin, cursor, reverse)
		cursor += line.cross + between
	}
}

func (a *WrapLayoutAlgorithm) layoutLine(prop *WrapLayoutProperty, line *wrapLine, origin graphics.Offset, lineCross float64, reverse bool) {
	leading, between := distributeSpace(prop.MainAlignment.FlexAlign(), a.mainSize-line.main, len(line.items))
	between += a.spacing
	itemAlign := prop.CrossAlignment.FlexAlign()

	cursor := leading
	for _, it := range line.items {
		main := cursor
		if reverse {
			main = a.mainSize - cursor - it.main
		}
		align := effectiveAlign(it.align, itemAlign)
		cross := lineCross + crossOffset(align, a.axis, line.cross, it.cross, line.maxBaseline, it.baseline)
		it.node.Geometry().SetFrameOffset(origin.Add(makeOffset(a.axis, main, cross)))
		it.node.Layout()
		cursor += it.main + between
	}
}
