package flex

import (
	stderrors "errors"
	"fmt"

	"github.com/go-drift/flexlayout/pkg/errors"
	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
)

// FlexLayoutAlgorithm lays children out in a single line along the main axis
// of a FlexLayoutProperty. One instance serves one node; Measure keeps the
// state Layout needs.
type FlexLayoutAlgorithm struct {
	axis        layout.Axis
	items       []*flexItem
	mainSize    float64
	crossSize   float64
	maxBaseline float64

	reports errors.ReportOnce
}

// NewFlexLayoutAlgorithm returns an algorithm for one flex node.
func NewFlexLayoutAlgorithm() *FlexLayoutAlgorithm {
	return &FlexLayoutAlgorithm{}
}

func flexProperty(w *layout.LayoutWrapperNode, op string) *FlexLayoutProperty {
	if p, ok := w.Property().(*FlexLayoutProperty); ok && p != nil {
		return p
	}
	errors.Report(&errors.LayoutError{
		Op:   op,
		Kind: errors.KindNullGuard,
		Node: w.String(),
		Err:  fmt.Errorf("want *flex.FlexLayoutProperty, got %T", w.Property()),
	})
	return nil
}

// Measure implements layout.LayoutAlgorithm.
func (a *FlexLayoutAlgorithm) Measure(w *layout.LayoutWrapperNode) {
	prop := flexProperty(w, "flex.Measure")
	if prop == nil {
		w.Geometry().SetFrameSize(graphics.Size{})
		a.items = nil
		return
	}
	axis := prop.Direction.Axis()
	a.axis = axis
	content := w.ContentConstraint()
	childConstraint := w.CreateChildConstraint()
	maxMain := mainOf(axis, childConstraint.MaxSize)
	bounded := !graphics.IsInfinite(maxMain)

	a.items = measureItems(w, axis, childConstraint)
	if resolveMainAxis(a.items, maxMain, bounded, true) {
		a.reports.Report(&errors.LayoutError{
			Op:   "flex.Measure",
			Kind: errors.KindOverflow,
			Node: w.String(),
			Err:  fmt.Errorf("children need %.2f but only %.2f is available", allocated(a.items), maxMain),
		})
	}
	if !bounded && hasWeighted(a.items) {
		a.reports.Report(&errors.LayoutError{
			Op:   "flex.Measure",
			Kind: errors.KindInvalidInput,
			Node: w.String(),
			Err:  stderrors.New("weighted children in an unbounded main axis get no space"),
		})
	}
	applyResolvedMain(a.items, axis, childConstraint)

	cross, maxBaseline := crossExtent(a.items, axis, prop.CrossAxisAlign)
	if v, ok := crossIdeal(axis, content.SelfIdealSize); ok {
		cross = v
	} else {
		cross = clampTo(cross, crossOf(axis, content.MinSize), crossOf(axis, content.MaxSize))
	}
	stretchItems(a.items, axis, prop.CrossAxisAlign, childConstraint, cross)

	var main float64
	switch v, ok := mainIdeal(axis, content.SelfIdealSize); {
	case ok:
		main = v
	case prop.MainAxisSize == MainAxisSizeMax && bounded:
		main = maxMain
	default:
		main = clampTo(totalMain(a.items), mainOf(axis, content.MinSize), mainOf(axis, content.MaxSize))
	}
	a.mainSize, a.crossSize, a.maxBaseline = main, cross, maxBaseline

	contentSize := makeSize(axis, main, cross)
	w.Geometry().SetFrameSize(prop.FrameSizeFor(contentSize))
	if w.ChildCount() == 0 {
		w.Geometry().SetContentSize(layout.ContentSizeUnset)
		return
	}
	w.Geometry().SetContentSize(contentSize)
}

// Layout implements layout.LayoutAlgorithm.
func (a *FlexLayoutAlgorithm) Layout(w *layout.LayoutWrapperNode) {
	prop := flexProperty(w, "flex.Layout")
	if prop == nil {
		return
	}
	for _, child := range w.Children() {
		child.Geometry().SetFrameOffset(graphics.Offset{})
	}
	active := activeItems(a.items)
	leading, between := distributeSpace(prop.MainAxisAlign, a.mainSize-totalMain(active), len(active))
	origin := w.Geometry().ContentOffset()
	reverse := prop.Direction.IsReverse()

	cursor := leading
	for _, it := range active {
		main := cursor
		if reverse {
			main = a.mainSize - cursor - it.main
		}
		align := effectiveAlign(it.align, prop.CrossAxisAlign)
		cross := crossOffset(align, a.axis, a.crossSize, it.cross, a.maxBaseline, it.baseline)
		it.node.Geometry().SetFrameOffset(origin.Add(makeOffset(a.axis, main, cross)))
		it.node.Layout()
		cursor += it.main + between
	}
}

func hasWeighted(items []*flexItem) bool {
	for _, it := range items {
		if it.weighted() {
			return true
		}
	}
	return false
}

func clampTo(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
