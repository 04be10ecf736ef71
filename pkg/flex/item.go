package flex

import (
	"math"

	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
)

// flexItem is the per-pass state of one non-GONE child.
type flexItem struct {
	node     *layout.LayoutWrapperNode
	weight   float64
	grow     float64
	shrink   float64
	priority int32
	align    layout.FlexAlign

	// basis is the main extent requested by the first measurement; main is
	// the extent after shrink, culling, weights and grow.
	basis    float64
	main     float64
	minMain  float64
	cross    float64
	baseline float64

	culled bool
	frozen bool
}

func (it *flexItem) weighted() bool {
	return it.weight > 0
}

func (it *flexItem) read(axis layout.Axis) {
	g := it.node.Geometry()
	size := g.FrameSize()
	it.main = mainOf(axis, size)
	it.cross = crossOf(axis, size)
	it.baseline = g.Baseline()
}

// remeasure measures the item again with its main extent pinned, and its
// cross extent too when stretch is set.
func (it *flexItem) remeasure(axis layout.Axis, base layout.LayoutConstraint, cross float64, stretch bool) {
	c := base
	setMainIdeal(axis, &c.SelfIdealSize, it.main)
	if stretch {
		setCrossIdeal(axis, &c.SelfIdealSize, cross)
	}
	it.node.Measure(c)
	it.read(axis)
}

// measureItems runs the first measurement of every child. GONE children and
// children without a property are measured for their zero frame but get no
// item. Weighted children are measured at zero main extent to learn their
// cross extent; a resolvable flex basis pins the main extent.
func measureItems(w *layout.LayoutWrapperNode, axis layout.Axis, childConstraint layout.LayoutConstraint) []*flexItem {
	mainRef := mainOf(axis, childConstraint.PercentReference)
	items := make([]*flexItem, 0, w.ChildCount())
	for _, child := range w.Children() {
		p := child.LayoutProperty()
		if p == nil || p.Visibility == layout.Gone {
			child.Measure(childConstraint)
			continue
		}
		it := &flexItem{
			node:     child,
			weight:   graphics.NonNegative(p.FlexItem.LayoutWeight),
			grow:     graphics.NonNegative(p.FlexItem.FlexGrow),
			shrink:   graphics.NonNegative(p.FlexItem.FlexShrink),
			priority: p.FlexItem.Priority(),
			align:    p.FlexItem.AlignSelf,
		}
		c := childConstraint
		if it.weighted() {
			setMainIdeal(axis, &c.SelfIdealSize, 0)
		} else if v, ok := p.FlexItem.FlexBasis.Resolve(mainRef); ok {
			setMainIdeal(axis, &c.SelfIdealSize, v)
		}
		child.Measure(c)
		it.read(axis)
		it.basis = it.main
		minSize, _ := p.ResolvedMinMax(childConstraint.PercentReference)
		it.minMain = mainOf(axis, minSize)
		items = append(items, it)
	}
	return items
}

// applyResolvedMain re-measures every item whose main extent changed during
// resolution and collapses culled items.
func applyResolvedMain(items []*flexItem, axis layout.Axis, childConstraint layout.LayoutConstraint) {
	for _, it := range items {
		if it.culled {
			it.node.Collapse()
			continue
		}
		if it.weighted() || !graphics.NearEqual(it.main, it.basis) {
			it.remeasure(axis, childConstraint, 0, false)
		}
	}
}

// stretchItems re-measures items aligned with Stretch that do not declare a
// cross size so they fill cross.
func stretchItems(items []*flexItem, axis layout.Axis, container layout.FlexAlign, childConstraint layout.LayoutConstraint, cross float64) {
	for _, it := range items {
		if it.culled || effectiveAlign(it.align, container) != layout.FlexAlignStretch {
			continue
		}
		if declaresCross(axis, it.node.LayoutProperty()) || graphics.NearEqual(it.cross, cross) {
			continue
		}
		it.remeasure(axis, childConstraint, cross, true)
	}
}

// crossExtent returns the largest cross extent of the items and their
// largest baseline. Baseline-aligned items on a horizontal main axis extend
// the result to hold the tallest ascent plus the deepest descent.
func crossExtent(items []*flexItem, axis layout.Axis, container layout.FlexAlign) (cross, maxBaseline float64) {
	maxDescent := 0.0
	baselined := false
	for _, it := range items {
		if it.culled {
			continue
		}
		cross = math.Max(cross, it.cross)
		if axis == layout.AxisHorizontal && effectiveAlign(it.align, container) == layout.FlexAlignBaseline {
			baselined = true
			maxBaseline = math.Max(maxBaseline, it.baseline)
			maxDescent = math.Max(maxDescent, it.cross-it.baseline)
		}
	}
	if baselined {
		cross = math.Max(cross, maxBaseline+maxDescent)
	}
	return cross, maxBaseline
}

func activeItems(items []*flexItem) []*flexItem {
	out := make([]*flexItem, 0, len(items))
	for _, it := range items {
		if !it.culled {
			out = append(out, it)
		}
	}
	return out
}

func totalMain(items []*flexItem) float64 {
	sum := 0.0
	for _, it := range items {
		if !it.culled {
			sum += it.main
		}
	}
	return sum
}
