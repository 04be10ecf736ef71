package layout

import (
	stderrors "errors"
	"fmt"

	"github.com/go-drift/flexlayout/pkg/errors"
	"github.com/go-drift/flexlayout/pkg/graphics"
)

// NodeID addresses a node inside its Tree.
type NodeID int

// InvalidNode is the parent index of a root node.
const InvalidNode NodeID = -1

// LayoutAlgorithm measures and places the children of one node. Measure must
// run before Layout within a pass.
type LayoutAlgorithm interface {
	Measure(w *LayoutWrapperNode)
	Layout(w *LayoutWrapperNode)
}

// Tree is an arena of layout nodes. Parents own children by index and each
// child keeps a non-owning parent index.
type Tree struct {
	nodes []*LayoutWrapperNode
	stats PassStats
}

// PassStats counts the work done by the most recent pass.
type PassStats struct {
	Measured int
	LaidOut  int
	Skipped  int
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// NewNode allocates a detached node.
func (t *Tree) NewNode(tag string, property Property, algorithm LayoutAlgorithm) *LayoutWrapperNode {
	n := &LayoutWrapperNode{
		tree:      t,
		id:        NodeID(len(t.nodes)),
		parent:    InvalidNode,
		tag:       tag,
		property:  property,
		algorithm: algorithm,
		geometry:  &GeometryNode{},
		active:    true,
		dirty:     true,
	}
	t.nodes = append(t.nodes, n)
	return n
}

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id NodeID) *LayoutWrapperNode {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of allocated nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Stats returns the counters of the most recent pass.
func (t *Tree) Stats() PassStats {
	return t.stats
}

// ResetStats clears the pass counters.
func (t *Tree) ResetStats() {
	t.stats = PassStats{}
}

// LayoutWrapperNode pairs a node's property, algorithm and geometry with its
// ordered children. Child order is authoritative for every positional
// computation.
type LayoutWrapperNode struct {
	tree      *Tree
	id        NodeID
	parent    NodeID
	tag       string
	children  []NodeID
	property  Property
	algorithm LayoutAlgorithm
	geometry  *GeometryNode

	active      bool
	dirty       bool
	measured    bool
	skipMeasure bool
	skipLayout  bool
	constraint  LayoutConstraint
}

// ID returns the node's index in its tree.
func (w *LayoutWrapperNode) ID() NodeID {
	return w.id
}

// Tag returns the declarative tag the node was built from.
func (w *LayoutWrapperNode) Tag() string {
	return w.tag
}

// Tree returns the owning tree.
func (w *LayoutWrapperNode) Tree() *Tree {
	return w.tree
}

func (w *LayoutWrapperNode) String() string {
	return fmt.Sprintf("%s#%d", w.tag, w.id)
}

// Parent returns the parent node, or nil for a root.
func (w *LayoutWrapperNode) Parent() *LayoutWrapperNode {
	return w.tree.Node(w.parent)
}

// Property returns the node's layout property.
func (w *LayoutWrapperNode) Property() Property {
	return w.property
}

// LayoutProperty returns the shared part of the node's property, or nil.
func (w *LayoutWrapperNode) LayoutProperty() *LayoutProperty {
	if w.property == nil {
		return nil
	}
	return w.property.Base()
}

// Algorithm returns the node's layout algorithm.
func (w *LayoutWrapperNode) Algorithm() LayoutAlgorithm {
	return w.algorithm
}

// SetAlgorithm replaces the node's layout algorithm and marks it dirty.
func (w *LayoutWrapperNode) SetAlgorithm(algorithm LayoutAlgorithm) {
	w.algorithm = algorithm
	w.MarkDirty()
}

// Geometry returns the node's geometry.
func (w *LayoutWrapperNode) Geometry() *GeometryNode {
	return w.geometry
}

// SetGeometry replaces the node's geometry. Passing nil is allowed and makes
// every later pass on the node a reported no-op.
func (w *LayoutWrapperNode) SetGeometry(g *GeometryNode) {
	w.geometry = g
}

// IsActive reports whether the node took part in the last layout. Culled
// children are inactive.
func (w *LayoutWrapperNode) IsActive() bool {
	return w.active
}

// Collapse zeroes the node's frame and offset and takes it out of layout. The
// next Measure call runs even if the constraint is unchanged.
func (w *LayoutWrapperNode) Collapse() {
	w.geometry.SetFrameSize(graphics.Size{})
	w.geometry.SetFrameOffset(graphics.Offset{})
	w.active = false
	w.measured = false
}

// IsGone reports whether the node's visibility is Gone.
func (w *LayoutWrapperNode) IsGone() bool {
	p := w.LayoutProperty()
	return p != nil && p.Visibility == Gone
}

// AppendChild adds child as the last child, detaching it from any previous
// parent.
func (w *LayoutWrapperNode) AppendChild(child *LayoutWrapperNode) {
	if child == nil || child.tree != w.tree || child == w {
		return
	}
	if old := child.Parent(); old != nil {
		old.removeChild(child.id)
	}
	child.parent = w.id
	w.children = append(w.children, child.id)
	w.MarkDirty()
}

func (w *LayoutWrapperNode) removeChild(id NodeID) {
	for i, c := range w.children {
		if c == id {
			w.children = append(w.children[:i], w.children[i+1:]...)
			w.MarkDirty()
			return
		}
	}
}

// ChildCount returns the number of children.
func (w *LayoutWrapperNode) ChildCount() int {
	return len(w.children)
}

// ChildAt returns the child at index, or nil when out of range.
func (w *LayoutWrapperNode) ChildAt(index int) *LayoutWrapperNode {
	if index < 0 || index >= len(w.children) {
		return nil
	}
	return w.tree.Node(w.children[index])
}

// GetOrCreateChildByIndex returns the child at index. When index equals the
// child count and create is non-nil, a new child is created and appended.
func (w *LayoutWrapperNode) GetOrCreateChildByIndex(index int, create func(t *Tree) *LayoutWrapperNode) *LayoutWrapperNode {
	if child := w.ChildAt(index); child != nil {
		return child
	}
	if index != len(w.children) || create == nil {
		return nil
	}
	child := create(w.tree)
	if child == nil {
		return nil
	}
	w.AppendChild(child)
	return child
}

// Children returns the children in order.
func (w *LayoutWrapperNode) Children() []*LayoutWrapperNode {
	out := make([]*LayoutWrapperNode, 0, len(w.children))
	for _, id := range w.children {
		out = append(out, w.tree.Node(id))
	}
	return out
}

// LayoutConstraint returns the node's own resolved constraint.
func (w *LayoutWrapperNode) LayoutConstraint() LayoutConstraint {
	if p := w.LayoutProperty(); p != nil {
		return p.LayoutConstraint()
	}
	return LayoutConstraint{}
}

// ContentConstraint returns the node's resolved constraint minus padding.
func (w *LayoutWrapperNode) ContentConstraint() LayoutConstraint {
	if p := w.LayoutProperty(); p != nil {
		return p.ContentConstraint()
	}
	return LayoutConstraint{}
}

// CreateChildConstraint returns the constraint every algorithm passes to
// this node's children.
func (w *LayoutWrapperNode) CreateChildConstraint() LayoutConstraint {
	if p := w.LayoutProperty(); p != nil {
		return p.CreateChildConstraint()
	}
	return LayoutConstraint{}
}

// MarkDirty forces the node and its ancestors to run on the next pass.
//
// The walk always reaches the root: a node that was measured but never laid
// out (a culled child and its subtree) is still dirty from the previous pass,
// and its ancestors may already be clean.
func (w *LayoutWrapperNode) MarkDirty() {
	for n := w; n != nil; n = n.Parent() {
		n.dirty = true
	}
}

// IsDirty reports whether the node must run on the next pass.
func (w *LayoutWrapperNode) IsDirty() bool {
	return w.dirty
}

// SkipMeasure reports whether the last Measure call reused old geometry.
func (w *LayoutWrapperNode) SkipMeasure() bool {
	return w.skipMeasure
}

// SkipLayout reports whether the last Layout call reused old offsets.
func (w *LayoutWrapperNode) SkipLayout() bool {
	return w.skipLayout
}

// Measure resolves the node's constraint from parentConstraint and runs its
// algorithm. A clean node receiving an equal constraint keeps its previous
// geometry.
func (w *LayoutWrapperNode) Measure(parentConstraint LayoutConstraint) {
	if w.geometry == nil {
		w.reportNull("layout.Measure", "geometry node")
		return
	}
	p := w.LayoutProperty()
	if p == nil {
		w.reportNull("layout.Measure", "layout property")
		w.geometry.Reset()
		return
	}
	if !parentConstraint.IsValid() {
		errors.Report(&errors.LayoutError{
			Op:   "layout.Measure",
			Kind: errors.KindInvalidInput,
			Node: w.String(),
			Err:  fmt.Errorf("invalid constraint %s clamped", parentConstraint),
		})
		parentConstraint = parentConstraint.Clamped()
	}
	if !w.dirty && w.measured && w.constraint.Equal(parentConstraint) {
		w.skipMeasure = true
		w.tree.stats.Skipped++
		return
	}
	w.skipMeasure = false
	w.constraint = parentConstraint
	w.measured = true

	p.UpdateLayoutConstraint(parentConstraint)
	p.UpdateContentConstraint()
	w.active = p.Visibility != Gone
	if !w.active {
		w.geometry.SetFrameSize(graphics.Size{})
		w.geometry.SetContentSize(graphics.Size{})
		return
	}
	if w.algorithm == nil {
		w.reportNull("layout.Measure", "layout algorithm")
		w.geometry.SetFrameSize(graphics.Size{})
		return
	}
	w.geometry.SetContentOffset(graphics.Offset{X: p.Padding.Clamped().Left, Y: p.Padding.Clamped().Top})
	w.algorithm.Measure(w)
	w.tree.stats.Measured++
}

// Layout places the node's children. It must follow Measure; a node whose
// measurement was skipped keeps its previous child offsets.
func (w *LayoutWrapperNode) Layout() {
	if w.geometry == nil {
		w.reportNull("layout.Layout", "geometry node")
		return
	}
	if w.IsGone() {
		return
	}
	if w.skipMeasure && !w.dirty {
		w.skipLayout = true
		return
	}
	w.skipLayout = false
	if w.algorithm == nil {
		w.reportNull("layout.Layout", "layout algorithm")
		return
	}
	w.algorithm.Layout(w)
	w.dirty = false
	w.tree.stats.LaidOut++
}

func (w *LayoutWrapperNode) reportNull(op, what string) {
	errors.Report(&errors.LayoutError{
		Op:   op,
		Kind: errors.KindNullGuard,
		Node: w.String(),
		Err:  stderrors.New("missing " + what),
	})
}
