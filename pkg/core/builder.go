package core

import (
	stderrors "errors"
	"fmt"

	"github.com/go-drift/flexlayout/pkg/layout"
	"github.com/go-drift/flexlayout/pkg/widgets"
)

var (
	// ErrEmptyStack is returned by Pop when no node is open.
	ErrEmptyStack = stderrors.New("builder: pop on empty stack")
	// ErrSecondRoot is returned when a node is opened after the root closed.
	ErrSecondRoot = stderrors.New("builder: tree already has a root")
	// ErrUnbalanced is returned by Finish while nodes are still open.
	ErrUnbalanced = stderrors.New("builder: unclosed nodes")
	// ErrNoRoot is returned by Finish when nothing was built.
	ErrNoRoot = stderrors.New("builder: no root node")
)

// BuilderContext constructs one subtree with push/pop discipline. Push opens
// a node as the last child of the current node; Pop closes it. The context is
// owned by the caller for the duration of one build and is not safe for
// concurrent use.
type BuilderContext struct {
	registry *widgets.Registry
	tree     *layout.Tree
	pipeline *layout.PipelineOwner
	stack    []*layout.LayoutWrapperNode
	root     *layout.LayoutWrapperNode
}

// NewBuilderContext creates a context building into a fresh tree.
func NewBuilderContext(registry *widgets.Registry) *BuilderContext {
	if registry == nil {
		registry = widgets.NewRegistry(widgets.Options{})
	}
	return &BuilderContext{
		registry: registry,
		tree:     layout.NewTree(),
		pipeline: layout.NewPipelineOwner(),
	}
}

// Tree returns the tree being built.
func (b *BuilderContext) Tree() *layout.Tree {
	return b.tree
}

// Pipeline returns the owner that runs passes over the built tree.
func (b *BuilderContext) Pipeline() *layout.PipelineOwner {
	return b.pipeline
}

// Current returns the innermost open node, or nil.
func (b *BuilderContext) Current() *layout.LayoutWrapperNode {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// Depth returns the number of open nodes.
func (b *BuilderContext) Depth() int {
	return len(b.stack)
}

// Push creates a node for tag, attaches it to the current node and opens it.
func (b *BuilderContext) Push(tag string) (*layout.LayoutWrapperNode, error) {
	parent := b.Current()
	if parent == nil && b.root != nil {
		return nil, ErrSecondRoot
	}
	node, err := b.registry.Create(b.tree, tag)
	if err != nil {
		return nil, fmt.Errorf("push %s: %w", tag, err)
	}
	if parent == nil {
		b.root = node
	} else {
		parent.AppendChild(node)
	}
	b.stack = append(b.stack, node)
	b.pipeline.MarkDirty(node)
	return node, nil
}

// Pop closes the current node and returns it.
func (b *BuilderContext) Pop() (*layout.LayoutWrapperNode, error) {
	node := b.Current()
	if node == nil {
		return nil, ErrEmptyStack
	}
	b.stack = b.stack[:len(b.stack)-1]
	return node, nil
}

// Leaf creates a childless node under the current node.
func (b *BuilderContext) Leaf(tag string) (*layout.LayoutWrapperNode, error) {
	node, err := b.Push(tag)
	if err != nil {
		return nil, err
	}
	_, err = b.Pop()
	return node, err
}

// Finish returns the root once every opened node has been closed.
func (b *BuilderContext) Finish() (*layout.LayoutWrapperNode, error) {
	if len(b.stack) > 0 {
		return nil, fmt.Errorf("%w: %d still open, innermost %s", ErrUnbalanced, len(b.stack), b.Current())
	}
	if b.root == nil {
		return nil, ErrNoRoot
	}
	return b.root, nil
}

// Layout runs a pass over the finished tree.
func (b *BuilderContext) Layout(constraint layout.LayoutConstraint) (layout.PassStats, error) {
	root, err := b.Finish()
	if err != nil {
		return layout.PassStats{}, err
	}
	return b.pipeline.FlushLayout(root, constraint), nil
}
