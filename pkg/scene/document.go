// Package scene loads declarative layout scenes from YAML, builds them into
// layout trees, runs a pass and reports the resulting geometry.
//
// A scene names a root node and, optionally, the constraint the root is
// measured with:
//
//	root:
//	  tag: Row
//	  width: 720
//	  height: 80
//	  crossAlign: center
//	  children:
//	    - {tag: Box, width: 20%, height: 40}
//	    - {tag: Box, height: 40, layoutWeight: 1, displayPriority: 2}
//	constraint: {maxWidth: 720, maxHeight: 1000}
//
// Dimensions accept pixels (40, "40px"), percentages ("20%") and "auto".
// Padding is either one number for every side or a mapping with left, top,
// right and bottom keys.
package scene

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/flexlayout/pkg/errors"
	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
)

// Document is a parsed scene file.
type Document struct {
	Root       *NodeSpec       `yaml:"root"`
	Constraint *ConstraintSpec `yaml:"constraint,omitempty"`
}

// ConstraintSpec overrides the root constraint. Zero components fall back to
// the caller's constraint; ".inf" leaves a maximum unbounded.
type ConstraintSpec struct {
	MinWidth  float64 `yaml:"minWidth,omitempty"`
	MinHeight float64 `yaml:"minHeight,omitempty"`
	MaxWidth  float64 `yaml:"maxWidth,omitempty"`
	MaxHeight float64 `yaml:"maxHeight,omitempty"`
}

// Apply returns fallback with the declared components replaced.
func (c *ConstraintSpec) Apply(fallback layout.LayoutConstraint) layout.LayoutConstraint {
	if c == nil {
		return fallback
	}
	out := fallback
	if c.MinWidth > 0 {
		out.MinSize.Width = c.MinWidth
	}
	if c.MinHeight > 0 {
		out.MinSize.Height = c.MinHeight
	}
	if c.MaxWidth > 0 {
		out.MaxSize.Width = c.MaxWidth
		out.PercentReference.Width = c.MaxWidth
	}
	if c.MaxHeight > 0 {
		out.MaxSize.Height = c.MaxHeight
		out.PercentReference.Height = c.MaxHeight
	}
	return out
}

// NodeSpec describes one node of a scene. Generic attributes are decoded
// into their layout types; container attributes whose meaning depends on
// the tag are kept as names and resolved when the node is built.
type NodeSpec struct {
	// ID names the node for lookups in the result. Optional.
	ID  string
	Tag string

	CalcConstraint layout.CalcLayoutConstraint
	Padding        graphics.EdgeInsets
	Visibility     layout.Visibility
	FlexItem       layout.FlexItemProperty

	Direction    string
	MainAlign    string
	CrossAlign   string
	MainAxisSize string
	Alignment    string
	Spacing      graphics.Dimension
	ContentSpace graphics.Dimension

	Content string
	Style   graphics.TextStyle

	Children []*NodeSpec

	// Line is the source line of the node's mapping.
	Line int
}

type rawNode struct {
	ID        string    `yaml:"id"`
	Tag       string    `yaml:"tag"`
	Width     dimension `yaml:"width"`
	Height    dimension `yaml:"height"`
	MinWidth  dimension `yaml:"minWidth"`
	MinHeight dimension `yaml:"minHeight"`
	MaxWidth  dimension `yaml:"maxWidth"`
	MaxHeight dimension `yaml:"maxHeight"`
	Padding   padding   `yaml:"padding"`

	Visibility      string    `yaml:"visibility"`
	LayoutWeight    float64   `yaml:"layoutWeight"`
	FlexGrow        float64   `yaml:"flexGrow"`
	FlexShrink      float64   `yaml:"flexShrink"`
	FlexBasis       dimension `yaml:"flexBasis"`
	DisplayPriority int32     `yaml:"displayPriority"`
	AlignSelf       string    `yaml:"alignSelf"`

	Direction    string    `yaml:"direction"`
	MainAlign    string    `yaml:"mainAlign"`
	CrossAlign   string    `yaml:"crossAlign"`
	MainAxisSize string    `yaml:"mainAxisSize"`
	Alignment    string    `yaml:"alignment"`
	Spacing      dimension `yaml:"spacing"`
	ContentSpace dimension `yaml:"contentSpace"`

	Content  string  `yaml:"content"`
	FontSize float64 `yaml:"fontSize"`
	MaxLines int     `yaml:"maxLines"`

	Children []*NodeSpec `yaml:"children"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *NodeSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: node must be a mapping", n.Line)
	}
	var raw rawNode
	if err := n.Decode(&raw); err != nil {
		return err
	}
	if raw.Tag == "" {
		return fmt.Errorf("line %d: node has no tag", n.Line)
	}
	if raw.LayoutWeight < 0 || raw.FlexGrow < 0 || raw.FlexShrink < 0 {
		return fmt.Errorf("line %d: layoutWeight, flexGrow and flexShrink cannot be negative", n.Line)
	}

	*s = NodeSpec{
		ID:  raw.ID,
		Tag: raw.Tag,
		CalcConstraint: layout.CalcLayoutConstraint{
			SelfIdealSize: layout.DimensionSize{Width: raw.Width.Dimension, Height: raw.Height.Dimension},
			MinSize:       layout.DimensionSize{Width: raw.MinWidth.Dimension, Height: raw.MinHeight.Dimension},
			MaxSize:       layout.DimensionSize{Width: raw.MaxWidth.Dimension, Height: raw.MaxHeight.Dimension},
		},
		Padding: raw.Padding.EdgeInsets,
		FlexItem: layout.FlexItemProperty{
			FlexBasis:       raw.FlexBasis.Dimension,
			FlexGrow:        raw.FlexGrow,
			FlexShrink:      raw.FlexShrink,
			LayoutWeight:    raw.LayoutWeight,
			DisplayPriority: raw.DisplayPriority,
		},
		Direction:    raw.Direction,
		MainAlign:    raw.MainAlign,
		CrossAlign:   raw.CrossAlign,
		MainAxisSize: raw.MainAxisSize,
		Alignment:    raw.Alignment,
		Spacing:      raw.Spacing.Dimension,
		ContentSpace: raw.ContentSpace.Dimension,
		Content:      raw.Content,
		Style:        graphics.TextStyle{FontSize: raw.FontSize, MaxLines: raw.MaxLines},
		Children:     raw.Children,
		Line:         n.Line,
	}
	if raw.Visibility != "" {
		v, err := layout.ParseVisibility(raw.Visibility)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		s.Visibility = v
	}
	if raw.AlignSelf != "" {
		a, err := layout.ParseFlexAlign(raw.AlignSelf)
		if err != nil {
			return fmt.Errorf("line %d: alignSelf: %w", n.Line, err)
		}
		s.FlexItem.AlignSelf = a
	}
	return nil
}

type dimension struct {
	graphics.Dimension
}

func (d *dimension) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: dimension must be a scalar", n.Line)
	}
	v, err := graphics.ParseDimension(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	d.Dimension = v
	return nil
}

type padding struct {
	graphics.EdgeInsets
}

func (p *padding) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		p.EdgeInsets = graphics.All(v)
		return nil
	case yaml.MappingNode:
		var sides struct {
			Left   float64 `yaml:"left"`
			Top    float64 `yaml:"top"`
			Right  float64 `yaml:"right"`
			Bottom float64 `yaml:"bottom"`
		}
		if err := n.Decode(&sides); err != nil {
			return err
		}
		p.EdgeInsets = graphics.EdgeInsets{Left: sides.Left, Top: sides.Top, Right: sides.Right, Bottom: sides.Bottom}
		return nil
	default:
		return fmt.Errorf("line %d: padding must be a number or a mapping", n.Line)
	}
}

// Parse decodes a scene document.
func Parse(data []byte) (*Document, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes a scene document from r. Unknown top-level keys are rejected.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, sceneError("scene.Load", fmt.Errorf("empty document"))
		}
		return nil, sceneError("scene.Load", err)
	}
	if doc.Root == nil {
		return nil, sceneError("scene.Load", fmt.Errorf("document has no root"))
	}
	return &doc, nil
}

// LoadFile reads and decodes the scene at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func sceneError(op string, err error) *errors.LayoutError {
	return &errors.LayoutError{Op: op, Kind: errors.KindScene, Err: err}
}
