package scene

import (
	"fmt"

	"github.com/go-drift/flexlayout/pkg/core"
	"github.com/go-drift/flexlayout/pkg/flex"
	"github.com/go-drift/flexlayout/pkg/layout"
	"github.com/go-drift/flexlayout/pkg/widgets"
)

// Scene is a document built into a layout tree.
type Scene struct {
	doc     *Document
	builder *core.BuilderContext
	root    *layout.LayoutWrapperNode
	byID    map[string]*layout.LayoutWrapperNode
	ids     map[layout.NodeID]string
}

// Build creates the layout tree described by doc. A nil registry uses the
// built-in tags with default options.
func Build(doc *Document, registry *widgets.Registry) (*Scene, error) {
	if doc == nil || doc.Root == nil {
		return nil, sceneError("scene.Build", fmt.Errorf("document has no root"))
	}
	s := &Scene{
		doc:     doc,
		builder: core.NewBuilderContext(registry),
		byID:    make(map[string]*layout.LayoutWrapperNode),
		ids:     make(map[layout.NodeID]string),
	}
	if err := s.build(doc.Root); err != nil {
		return nil, err
	}
	root, err := s.builder.Finish()
	if err != nil {
		return nil, sceneError("scene.Build", err)
	}
	s.root = root
	return s, nil
}

func (s *Scene) build(spec *NodeSpec) error {
	if spec == nil {
		return nil
	}
	node, err := s.builder.Push(spec.Tag)
	if err != nil {
		return sceneError("scene.Build", fmt.Errorf("line %d: %w", spec.Line, err))
	}
	if err := spec.apply(node); err != nil {
		return sceneError("scene.Build", fmt.Errorf("line %d: %s: %w", spec.Line, spec.Tag, err))
	}
	if spec.ID != "" {
		if _, dup := s.byID[spec.ID]; dup {
			return sceneError("scene.Build", fmt.Errorf("line %d: duplicate id %q", spec.Line, spec.ID))
		}
		s.byID[spec.ID] = node
		s.ids[node.ID()] = spec.ID
	}
	for _, child := range spec.Children {
		if err := s.build(child); err != nil {
			return err
		}
	}
	_, err = s.builder.Pop()
	return err
}

// apply copies the declared attributes onto the node's property. Attributes
// left empty keep the defaults of the tag's pattern.
func (s *NodeSpec) apply(node *layout.LayoutWrapperNode) error {
	base := node.LayoutProperty()
	if base == nil {
		return fmt.Errorf("node has no layout property")
	}
	base.CalcConstraint = s.CalcConstraint
	base.Padding = s.Padding
	base.Visibility = s.Visibility
	base.FlexItem = s.FlexItem

	switch p := node.Property().(type) {
	case *flex.FlexLayoutProperty:
		return s.applyFlex(p)
	case *flex.WrapLayoutProperty:
		return s.applyWrap(p)
	case *widgets.TextProperty:
		p.Content = s.Content
		p.Style = s.Style
	}
	if s.Direction != "" || s.MainAlign != "" || s.CrossAlign != "" || s.MainAxisSize != "" || s.Alignment != "" {
		return fmt.Errorf("container attributes do not apply")
	}
	return nil
}

func (s *NodeSpec) applyFlex(p *flex.FlexLayoutProperty) error {
	if s.Alignment != "" {
		return fmt.Errorf("alignment applies to Wrap only")
	}
	var err error
	if s.Direction != "" {
		if p.Direction, err = layout.ParseFlexDirection(s.Direction); err != nil {
			return err
		}
	}
	if s.MainAlign != "" {
		if p.MainAxisAlign, err = layout.ParseFlexAlign(s.MainAlign); err != nil {
			return err
		}
	}
	if s.CrossAlign != "" {
		if p.CrossAxisAlign, err = layout.ParseFlexAlign(s.CrossAlign); err != nil {
			return err
		}
	}
	switch s.MainAxisSize {
	case "":
	case flex.MainAxisSizeMax.String():
		p.MainAxisSize = flex.MainAxisSizeMax
	case flex.MainAxisSizeMin.String():
		p.MainAxisSize = flex.MainAxisSizeMin
	default:
		return fmt.Errorf("unknown mainAxisSize %q", s.MainAxisSize)
	}
	return nil
}

func (s *NodeSpec) applyWrap(p *flex.WrapLayoutProperty) error {
	if s.MainAxisSize != "" {
		return fmt.Errorf("mainAxisSize does not apply to Wrap")
	}
	var err error
	if s.Direction != "" {
		if p.Direction, err = layout.ParseWrapDirection(s.Direction); err != nil {
			return err
		}
	}
	for _, f := range []struct {
		name string
		dst  *layout.WrapAlignment
	}{
		{s.Alignment, &p.Alignment},
		{s.MainAlign, &p.MainAlignment},
		{s.CrossAlign, &p.CrossAlignment},
	} {
		if f.name == "" {
			continue
		}
		if *f.dst, err = layout.ParseWrapAlignment(f.name); err != nil {
			return err
		}
	}
	p.Spacing = s.Spacing
	p.ContentSpace = s.ContentSpace
	return nil
}

// Root returns the root node.
func (s *Scene) Root() *layout.LayoutWrapperNode {
	return s.root
}

// Node returns the node declared with id, or nil.
func (s *Scene) Node(id string) *layout.LayoutWrapperNode {
	return s.byID[id]
}

// Builder returns the context the scene was built with.
func (s *Scene) Builder() *core.BuilderContext {
	return s.builder
}

// Constraint returns the constraint the root is measured with: fallback
// overridden by the document's constraint block.
func (s *Scene) Constraint(fallback layout.LayoutConstraint) layout.LayoutConstraint {
	return s.doc.Constraint.Apply(fallback)
}

// Run lays out the scene against fallback overridden by the document's
// constraint block, and collects the resulting geometry.
func (s *Scene) Run(fallback layout.LayoutConstraint) (*Result, error) {
	return s.Measure(s.Constraint(fallback))
}

// Measure lays out the scene against exactly constraint. Measuring again
// with an equal constraint and no changes reuses the previous pass.
func (s *Scene) Measure(constraint layout.LayoutConstraint) (*Result, error) {
	stats, err := s.builder.Layout(constraint)
	if err != nil {
		return nil, sceneError("scene.Measure", err)
	}
	return newResult(s.root, s.ids, stats), nil
}
