package layout

import "slices"

// PipelineOwner tracks nodes that need layout and runs passes over a tree.
//
// Scheduled nodes are kept in a list until the next FlushLayout, which marks
// each of them and its ancestors dirty, then measures and lays out from the
// root. Clean subtrees that receive an equal constraint are skipped and keep
// their geometry.
type PipelineOwner struct {
	dirty       []*LayoutWrapperNode
	dirtySet    map[*LayoutWrapperNode]bool
	needsLayout bool
	passes      int
}

// NewPipelineOwner returns an owner that will run the first pass
// unconditionally.
func NewPipelineOwner() *PipelineOwner {
	return &PipelineOwner{needsLayout: true}
}

// MarkDirty schedules node for the next pass. The node's dirty flags are
// set when the pass starts.
func (p *PipelineOwner) MarkDirty(node *LayoutWrapperNode) {
	if node == nil {
		return
	}
	if p.dirtySet == nil {
		p.dirtySet = make(map[*LayoutWrapperNode]bool)
	}
	p.needsLayout = true
	if p.dirtySet[node] {
		return
	}
	p.dirtySet[node] = true
	p.dirty = append(p.dirty, node)
}

// NeedsLayout reports whether a pass is pending.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// Passes returns how many passes have run.
func (p *PipelineOwner) Passes() int {
	return p.passes
}

// DirtyNodes returns the ids of the scheduled nodes in id order.
func (p *PipelineOwner) DirtyNodes() []NodeID {
	out := make([]NodeID, 0, len(p.dirty))
	for _, n := range p.dirty {
		out = append(out, n.ID())
	}
	slices.Sort(out)
	return out
}

// FlushLayout marks the scheduled nodes dirty, runs Measure then Layout on
// root with the given constraint and returns the work counters of the pass.
// The root's frame offset is reset to the origin. Scheduled nodes outside
// root's tree are dropped.
//
// Calling FlushLayout again with an equal constraint and no scheduled nodes
// recomputes nothing and leaves all geometry unchanged.
func (p *PipelineOwner) FlushLayout(root *LayoutWrapperNode, constraint LayoutConstraint) PassStats {
	if root == nil {
		return PassStats{}
	}
	tree := root.Tree()
	tree.ResetStats()
	for _, n := range p.dirty {
		if n.Tree() == tree {
			n.MarkDirty()
		}
	}

	root.Measure(constraint)
	if g := root.Geometry(); g != nil {
		g.SetFrameOffset(graphicsOrigin)
	}
	root.Layout()

	p.dirty = nil
	p.dirtySet = nil
	p.needsLayout = false
	p.passes++
	return tree.Stats()
}
