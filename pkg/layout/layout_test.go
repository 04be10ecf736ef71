package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/go-drift/flexlayout/pkg/errors"
	"github.com/go-drift/flexlayout/pkg/graphics"
)

type recordingHandler struct {
	errs []*errors.LayoutError
}

func (h *recordingHandler) HandleError(err *errors.LayoutError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(*errors.PanicError)      {}

func (h *recordingHandler) kinds() []errors.ErrorKind {
	out := make([]errors.ErrorKind, 0, len(h.errs))
	for _, e := range h.errs {
		out = append(out, e.Kind)
	}
	return out
}

func captureErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

// countingAlgorithm wraps BoxLayoutAlgorithm and counts invocations.
type countingAlgorithm struct {
	BoxLayoutAlgorithm
	measures int
	layouts  int
}

func (a *countingAlgorithm) Measure(w *LayoutWrapperNode) {
	a.measures++
	a.BoxLayoutAlgorithm.Measure(w)
}

func (a *countingAlgorithm) Layout(w *LayoutWrapperNode) {
	a.layouts++
	a.BoxLayoutAlgorithm.Layout(w)
}

func fixedBox(tree *Tree, width, height float64) *LayoutWrapperNode {
	p := &LayoutProperty{}
	p.CalcConstraint.SelfIdealSize = DimensionSize{Width: graphics.Px(width), Height: graphics.Px(height)}
	return tree.NewNode("Box", p, BoxLayoutAlgorithm{})
}

func TestLayoutConstraint_Clamped(t *testing.T) {
	c := LayoutConstraint{
		MinSize: graphics.Size{Width: 50, Height: math.NaN()},
		MaxSize: graphics.Size{Width: 20, Height: -5},
	}
	if c.IsValid() {
		t.Fatalf("IsValid() = true for %s", c)
	}
	got := c.Clamped()
	if !got.IsValid() {
		t.Fatalf("Clamped() = %s, still invalid", got)
	}
	if got.MinSize.Width != 20 || got.MaxSize.Height != 0 || got.MinSize.Height != 0 {
		t.Errorf("Clamped() = %s, want min [20 x 0] max [20 x 0]", got)
	}
}

func TestLayoutConstraint_MinusPadding(t *testing.T) {
	c := Loose(graphics.Size{Width: 100, Height: 50})
	c.SelfIdealSize.SetWidth(100)
	got := c.MinusPadding(graphics.EdgeInsets{Left: 10, Right: 10, Top: 30, Bottom: 30})
	if got.MaxSize.Width != 80 || got.MaxSize.Height != 0 {
		t.Errorf("MaxSize = %s, want [80 x 0]", got.MaxSize)
	}
	if got.SelfIdealSize.Width != 80 || got.SelfIdealSize.HasHeight {
		t.Errorf("SelfIdealSize = %s, want [80 x NA]", got.SelfIdealSize)
	}
}

func TestLayoutConstraint_EqualTreatsInfinityAsEqual(t *testing.T) {
	if !Unbounded().Equal(Unbounded()) {
		t.Error("Unbounded().Equal(Unbounded()) = false")
	}
	a := Loose(graphics.Size{Width: 100, Height: 100})
	b := a
	b.ParentIdealSize.SetWidth(100)
	if a.Equal(b) {
		t.Error("constraints differing in parent ideal size compare equal")
	}
}

func TestLayoutProperty_UpdateLayoutConstraint(t *testing.T) {
	tests := []struct {
		name      string
		calc      CalcLayoutConstraint
		parent    LayoutConstraint
		wantIdeal graphics.OptionalSize
		wantMax   graphics.Size
	}{
		{
			name:      "percent ideal resolves against reference",
			calc:      CalcLayoutConstraint{SelfIdealSize: DimensionSize{Width: graphics.Percent(50)}},
			parent:    Loose(graphics.Size{Width: 400, Height: 300}),
			wantIdeal: graphics.OptionalSize{Width: 200, HasWidth: true},
			wantMax:   graphics.Size{Width: 400, Height: 300},
		},
		{
			name: "parent pinned ideal wins",
			calc: CalcLayoutConstraint{SelfIdealSize: DimensionSize{Width: graphics.Px(10)}},
			parent: func() LayoutConstraint {
				c := Loose(graphics.Size{Width: 400, Height: 300})
				c.SelfIdealSize.SetWidth(96)
				return c
			}(),
			wantIdeal: graphics.OptionalSize{Width: 96, HasWidth: true},
			wantMax:   graphics.Size{Width: 400, Height: 300},
		},
		{
			name: "declared max caps ideal and max",
			calc: CalcLayoutConstraint{
				SelfIdealSize: DimensionSize{Height: graphics.Px(500)},
				MaxSize:       DimensionSize{Height: graphics.Px(120)},
			},
			parent:    Loose(graphics.Size{Width: 400, Height: 300}),
			wantIdeal: graphics.OptionalSize{Height: 120, HasHeight: true},
			wantMax:   graphics.Size{Width: 400, Height: 120},
		},
		{
			name:      "percent of unbounded reference stays unset",
			calc:      CalcLayoutConstraint{SelfIdealSize: DimensionSize{Width: graphics.Percent(50)}},
			parent:    Unbounded(),
			wantIdeal: graphics.OptionalSize{},
			wantMax:   graphics.Size{Width: graphics.Infinity, Height: graphics.Infinity},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &LayoutProperty{CalcConstraint: tt.calc}
			p.UpdateLayoutConstraint(tt.parent)
			got := p.LayoutConstraint()
			if got.SelfIdealSize != tt.wantIdeal {
				t.Errorf("SelfIdealSize = %s, want %s", got.SelfIdealSize, tt.wantIdeal)
			}
			if !got.MaxSize.NearEqual(tt.wantMax) {
				t.Errorf("MaxSize = %s, want %s", got.MaxSize, tt.wantMax)
			}
		})
	}
}

func TestLayoutProperty_CreateChildConstraint(t *testing.T) {
	p := &LayoutProperty{Padding: graphics.All(10)}
	p.CalcConstraint.SelfIdealSize.Width = graphics.Px(200)
	p.UpdateLayoutConstraint(Loose(graphics.Size{Width: 720, Height: 400}))
	p.UpdateContentConstraint()

	c := p.CreateChildConstraint()
	if c.MaxSize.Width != 180 || c.MaxSize.Height != 380 {
		t.Errorf("MaxSize = %s, want [180 x 380]", c.MaxSize)
	}
	if c.PercentReference.Width != 180 {
		t.Errorf("PercentReference.Width = %v, want 180", c.PercentReference.Width)
	}
	if !c.ParentIdealSize.HasWidth || c.ParentIdealSize.Width != 180 || c.ParentIdealSize.HasHeight {
		t.Errorf("ParentIdealSize = %s, want [180 x NA]", c.ParentIdealSize)
	}
	if !c.SelfIdealSize.IsNull() {
		t.Errorf("SelfIdealSize = %s, want unset", c.SelfIdealSize)
	}
}

func TestLayoutProperty_FrameSizeFor(t *testing.T) {
	p := &LayoutProperty{Padding: graphics.EdgeInsets{Left: 5, Right: 5, Top: 2, Bottom: 2}}
	p.CalcConstraint.SelfIdealSize.Height = graphics.Px(40)
	p.UpdateLayoutConstraint(Loose(graphics.Size{Width: 100, Height: 100}))
	got := p.FrameSizeFor(graphics.Size{Width: 200, Height: 10})
	want := graphics.Size{Width: 100, Height: 40}
	if got != want {
		t.Errorf("FrameSizeFor = %s, want %s", got, want)
	}
}

func TestTree_Children(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("Box", &LayoutProperty{}, BoxLayoutAlgorithm{})
	a := fixedBox(tree, 10, 10)
	b := fixedBox(tree, 20, 20)
	root.AppendChild(a)
	root.AppendChild(b)

	if root.ChildCount() != 2 || root.ChildAt(1) != b {
		t.Fatalf("children = %v, want [%s %s]", root.Children(), a, b)
	}
	if a.Parent() != root || root.Parent() != nil {
		t.Errorf("parents = %v, %v", a.Parent(), root.Parent())
	}
	if root.ChildAt(5) != nil || root.ChildAt(-1) != nil {
		t.Error("ChildAt out of range should return nil")
	}

	created := root.GetOrCreateChildByIndex(2, func(t *Tree) *LayoutWrapperNode {
		return fixedBox(t, 5, 5)
	})
	if created == nil || root.ChildAt(2) != created {
		t.Fatalf("GetOrCreateChildByIndex(2) did not append a child")
	}
	if root.GetOrCreateChildByIndex(0, nil) != a {
		t.Error("GetOrCreateChildByIndex(0) should return the existing child")
	}
	if root.GetOrCreateChildByIndex(7, func(t *Tree) *LayoutWrapperNode { return fixedBox(t, 1, 1) }) != nil {
		t.Error("GetOrCreateChildByIndex past the end should return nil")
	}

	other := tree.NewNode("Box", &LayoutProperty{}, BoxLayoutAlgorithm{})
	other.AppendChild(a)
	if root.ChildCount() != 2 || a.Parent() != other {
		t.Errorf("reparent: root has %d children, parent = %v", root.ChildCount(), a.Parent())
	}
}

func TestMeasure_NullGuards(t *testing.T) {
	h := captureErrors(t)
	tree := NewTree()

	noAlgo := tree.NewNode("Box", &LayoutProperty{}, nil)
	noAlgo.Measure(Loose(graphics.Size{Width: 10, Height: 10}))
	if got := noAlgo.Geometry().FrameSize(); got != (graphics.Size{}) {
		t.Errorf("FrameSize = %s, want zero", got)
	}

	noProp := tree.NewNode("Box", nil, BoxLayoutAlgorithm{})
	noProp.Measure(Loose(graphics.Size{Width: 10, Height: 10}))

	noGeom := fixedBox(tree, 10, 10)
	noGeom.SetGeometry(nil)
	noGeom.Measure(Loose(graphics.Size{Width: 10, Height: 10}))
	noGeom.Layout()

	kinds := h.kinds()
	if len(kinds) != 4 {
		t.Fatalf("reported %d errors, want 4: %v", len(kinds), h.errs)
	}
	for _, k := range kinds {
		if k != errors.KindNullGuard {
			t.Errorf("kind = %s, want %s", k, errors.KindNullGuard)
		}
	}
}

func TestMeasure_InvalidConstraintIsClamped(t *testing.T) {
	h := captureErrors(t)
	tree := NewTree()
	n := tree.NewNode("Box", &LayoutProperty{}, BoxLayoutAlgorithm{})
	n.Measure(LayoutConstraint{MaxSize: graphics.Size{Width: -10, Height: 20}})

	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindInvalidInput {
		t.Fatalf("errors = %v, want one invalid_input", h.errs)
	}
	if got := n.Geometry().FrameSize(); got != (graphics.Size{}) {
		t.Errorf("FrameSize = %s, want zero", got)
	}
}

func TestMeasure_GoneIsZero(t *testing.T) {
	tree := NewTree()
	n := fixedBox(tree, 40, 40)
	n.LayoutProperty().Visibility = Gone
	n.Measure(Loose(graphics.Size{Width: 100, Height: 100}))
	if got := n.Geometry().FrameSize(); got != (graphics.Size{}) {
		t.Errorf("FrameSize = %s, want zero", got)
	}
}

func TestBoxLayout_PaddingAndChildren(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("Box", &LayoutProperty{Padding: graphics.EdgeInsets{Left: 4, Top: 6, Right: 4, Bottom: 6}}, BoxLayoutAlgorithm{})
	root.AppendChild(fixedBox(tree, 30, 10))
	root.AppendChild(fixedBox(tree, 10, 20))

	NewPipelineOwner().FlushLayout(root, Loose(graphics.Size{Width: 100, Height: 100}))

	if got, want := root.Geometry().FrameSize(), (graphics.Size{Width: 38, Height: 32}); got != want {
		t.Errorf("root FrameSize = %s, want %s", got, want)
	}
	for _, child := range root.Children() {
		if got, want := child.Geometry().FrameOffset(), (graphics.Offset{X: 4, Y: 6}); got != want {
			t.Errorf("%s offset = %s, want %s", child, got, want)
		}
	}
}

func TestPipeline_SkipsCleanSubtrees(t *testing.T) {
	tree := NewTree()
	rootAlgo := &countingAlgorithm{}
	leftAlgo := &countingAlgorithm{}
	rightAlgo := &countingAlgorithm{}
	root := tree.NewNode("Box", &LayoutProperty{}, rootAlgo)
	left := tree.NewNode("Box", &LayoutProperty{}, leftAlgo)
	right := tree.NewNode("Box", &LayoutProperty{}, rightAlgo)
	root.AppendChild(left)
	root.AppendChild(right)

	owner := NewPipelineOwner()
	constraint := Loose(graphics.Size{Width: 200, Height: 200})
	first := owner.FlushLayout(root, constraint)
	if first.Measured != 3 || first.LaidOut != 3 {
		t.Fatalf("first pass stats = %+v, want 3 measured and laid out", first)
	}
	before := DumpString(root)

	second := owner.FlushLayout(root, constraint)
	if second.Measured != 0 || second.LaidOut != 0 || second.Skipped != 1 {
		t.Errorf("second pass stats = %+v, want everything skipped at the root", second)
	}
	if after := DumpString(root); after != before {
		t.Errorf("geometry changed on a clean pass:\n%s\nwant:\n%s", after, before)
	}

	owner.MarkDirty(left)
	owner.MarkDirty(left)
	if root.IsDirty() || left.IsDirty() {
		t.Fatal("scheduling must not set dirty flags before the pass")
	}
	if got := owner.DirtyNodes(); len(got) != 1 || got[0] != left.ID() {
		t.Errorf("DirtyNodes = %v, want [%d]", got, left.ID())
	}
	third := owner.FlushLayout(root, constraint)
	if third.Measured != 2 || third.Skipped != 1 {
		t.Errorf("third pass stats = %+v, want 2 measured and 1 skipped", third)
	}
	if rightAlgo.measures != 1 || leftAlgo.measures != 2 || rootAlgo.measures != 2 {
		t.Errorf("measures root/left/right = %d/%d/%d, want 2/2/1",
			rootAlgo.measures, leftAlgo.measures, rightAlgo.measures)
	}
	if !right.SkipMeasure() || !right.SkipLayout() {
		t.Error("clean sibling should skip measure and layout")
	}

	owner.FlushLayout(root, Loose(graphics.Size{Width: 150, Height: 200}))
	if rootAlgo.measures != 3 {
		t.Errorf("root measures after constraint change = %d, want 3", rootAlgo.measures)
	}
	if owner.Passes() != 4 || owner.NeedsLayout() {
		t.Errorf("Passes = %d, NeedsLayout = %v", owner.Passes(), owner.NeedsLayout())
	}
}

func TestMarkDirty_ReachesRootThroughDirtyAncestor(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("Box", &LayoutProperty{}, BoxLayoutAlgorithm{})
	mid := tree.NewNode("Box", &LayoutProperty{}, BoxLayoutAlgorithm{})
	leaf := fixedBox(tree, 10, 10)
	root.AppendChild(mid)
	mid.AppendChild(leaf)
	NewPipelineOwner().FlushLayout(root, Loose(graphics.Size{Width: 50, Height: 50}))
	if root.IsDirty() || mid.IsDirty() {
		t.Fatal("nodes still dirty after a pass")
	}

	// Measured but never laid out, like a culled child.
	mid.dirty = true
	leaf.MarkDirty()
	if !root.IsDirty() {
		t.Error("MarkDirty stopped at a dirty ancestor")
	}
}

func TestFlushLayout_IgnoresNodesOfOtherTrees(t *testing.T) {
	tree := NewTree()
	root := fixedBox(tree, 10, 10)
	stray := fixedBox(NewTree(), 10, 10)
	owner := NewPipelineOwner()
	owner.FlushLayout(root, Loose(graphics.Size{Width: 50, Height: 50}))
	owner.MarkDirty(stray)

	stats := owner.FlushLayout(root, Loose(graphics.Size{Width: 50, Height: 50}))
	if stats.Measured != 0 || stats.Skipped != 1 {
		t.Errorf("stats = %+v, want the clean root skipped", stats)
	}
	if len(owner.DirtyNodes()) != 0 {
		t.Errorf("DirtyNodes = %v after the pass", owner.DirtyNodes())
	}
}

func TestDumpTree(t *testing.T) {
	tree := NewTree()
	root := tree.NewNode("Box", &LayoutProperty{}, BoxLayoutAlgorithm{})
	child := fixedBox(tree, 10, 20)
	gone := fixedBox(tree, 10, 20)
	gone.LayoutProperty().Visibility = Gone
	root.AppendChild(child)
	root.AppendChild(gone)
	NewPipelineOwner().FlushLayout(root, Loose(graphics.Size{Width: 50, Height: 50}))

	got := DumpString(root)
	for _, want := range []string{
		"Box#0 offset=(0.00, 0.00) size=[10.00 x 20.00]\n",
		"  Box#1 offset=(0.00, 0.00) size=[10.00 x 20.00]\n",
		"  Box#2 offset=(0.00, 0.00) size=[0.00 x 0.00] gone\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DumpString missing %q in:\n%s", want, got)
		}
	}
}
