package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/flexlayout/pkg/graphics"
)

// Visibility controls whether a node takes part in layout.
type Visibility int

const (
	// Visible nodes are measured and placed normally.
	Visible Visibility = iota
	// Hidden nodes occupy space but are not painted.
	Hidden
	// Gone nodes measure as (0,0) and take no main-axis advance, but keep
	// their index slot among siblings.
	Gone
)

// String returns a human-readable representation of the visibility.
func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	case Gone:
		return "gone"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// ParseVisibility parses "visible", "hidden" or "gone".
func ParseVisibility(s string) (Visibility, error) {
	for _, v := range []Visibility{Visible, Hidden, Gone} {
		if v.String() == normalizeName(s) {
			return v, nil
		}
	}
	return Visible, fmt.Errorf("unknown visibility %q", s)
}

// CalcLayoutConstraint holds the sizes a node declares for itself. Auto
// dimensions leave the corresponding component to the layout.
type CalcLayoutConstraint struct {
	SelfIdealSize DimensionSize
	MinSize       DimensionSize
	MaxSize       DimensionSize
}

// DimensionSize is a pair of declared dimensions.
type DimensionSize struct {
	Width  graphics.Dimension
	Height graphics.Dimension
}

// DefaultDisplayPriority is the priority of children that do not set one.
const DefaultDisplayPriority int32 = 1

// FlexItemProperty carries the attributes a node exposes to a flex or wrap
// parent.
type FlexItemProperty struct {
	FlexBasis    graphics.Dimension
	FlexGrow     float64
	FlexShrink   float64
	LayoutWeight float64
	// DisplayPriority decides which children are culled first when the
	// parent overflows. Values below 1 mean DefaultDisplayPriority.
	DisplayPriority int32
	AlignSelf       FlexAlign
}

// Priority returns the effective display priority.
func (f FlexItemProperty) Priority() int32 {
	if f.DisplayPriority < 1 {
		return DefaultDisplayPriority
	}
	return f.DisplayPriority
}

// Property is implemented by every layout property. Concrete properties
// embed LayoutProperty and inherit Base.
type Property interface {
	Base() *LayoutProperty
}

// LayoutProperty is the declared layout intent shared by all nodes.
type LayoutProperty struct {
	CalcConstraint CalcLayoutConstraint
	Padding        graphics.EdgeInsets
	Visibility     Visibility
	FlexItem       FlexItemProperty

	layoutConstraint  LayoutConstraint
	contentConstraint LayoutConstraint
}

// Base returns the property itself.
func (p *LayoutProperty) Base() *LayoutProperty {
	return p
}

// LayoutConstraint returns the constraint resolved by the last measurement.
func (p *LayoutProperty) LayoutConstraint() LayoutConstraint {
	return p.layoutConstraint
}

// ContentConstraint returns the resolved constraint minus padding.
func (p *LayoutProperty) ContentConstraint() LayoutConstraint {
	return p.contentConstraint
}

// ResolvedMinMax resolves the declared min and max sizes against the percent
// reference. Unset maxima are infinite.
func (p *LayoutProperty) ResolvedMinMax(reference graphics.Size) (graphics.Size, graphics.Size) {
	min := graphics.Size{}
	max := graphics.Size{Width: graphics.Infinity, Height: graphics.Infinity}
	if v, ok := p.CalcConstraint.MinSize.Width.Resolve(reference.Width); ok {
		min.Width = v
	}
	if v, ok := p.CalcConstraint.MinSize.Height.Resolve(reference.Height); ok {
		min.Height = v
	}
	if v, ok := p.CalcConstraint.MaxSize.Width.Resolve(reference.Width); ok {
		max.Width = math.Max(v, min.Width)
	}
	if v, ok := p.CalcConstraint.MaxSize.Height.Resolve(reference.Height); ok {
		max.Height = math.Max(v, min.Height)
	}
	return min, max
}

// HasIdealWidth reports whether the node declares its own width.
func (p *LayoutProperty) HasIdealWidth() bool {
	return !p.CalcConstraint.SelfIdealSize.Width.IsAuto()
}

// HasIdealHeight reports whether the node declares its own height.
func (p *LayoutProperty) HasIdealHeight() bool {
	return !p.CalcConstraint.SelfIdealSize.Height.IsAuto()
}

// UpdateLayoutConstraint resolves the node's own constraint from the one its
// parent passed in. An ideal size pinned by the parent wins over the declared
// one; either is clamped into the declared min and max sizes.
func (p *LayoutProperty) UpdateLayoutConstraint(parent LayoutConstraint) {
	c := parent.Clamped()
	ref := c.PercentReference
	min, max := p.ResolvedMinMax(ref)

	c.MinSize.Width = math.Min(math.Max(c.MinSize.Width, min.Width), math.Max(c.MaxSize.Width, min.Width))
	c.MinSize.Height = math.Min(math.Max(c.MinSize.Height, min.Height), math.Max(c.MaxSize.Height, min.Height))
	c.MaxSize.Width = math.Max(math.Min(c.MaxSize.Width, max.Width), min.Width)
	c.MaxSize.Height = math.Max(math.Min(c.MaxSize.Height, max.Height), min.Height)

	if !c.SelfIdealSize.HasWidth {
		if v, ok := p.CalcConstraint.SelfIdealSize.Width.Resolve(ref.Width); ok {
			c.SelfIdealSize.SetWidth(v)
		}
	}
	if !c.SelfIdealSize.HasHeight {
		if v, ok := p.CalcConstraint.SelfIdealSize.Height.Resolve(ref.Height); ok {
			c.SelfIdealSize.SetHeight(v)
		}
	}
	if c.SelfIdealSize.HasWidth {
		c.SelfIdealSize.Width = clamp(c.SelfIdealSize.Width, min.Width, max.Width)
	}
	if c.SelfIdealSize.HasHeight {
		c.SelfIdealSize.Height = clamp(c.SelfIdealSize.Height, min.Height, max.Height)
	}
	p.layoutConstraint = c
}

// UpdateContentConstraint derives the content constraint by removing padding.
func (p *LayoutProperty) UpdateContentConstraint() {
	p.contentConstraint = p.layoutConstraint.MinusPadding(p.Padding.Clamped())
}

// CreateChildConstraint derives the constraint handed to every child: the
// content box becomes both the maximum and the percent reference, and the
// node's own ideal size becomes the child's parent ideal size.
func (p *LayoutProperty) CreateChildConstraint() LayoutConstraint {
	c := p.contentConstraint
	c.ParentIdealSize = c.SelfIdealSize
	if c.ParentIdealSize.HasWidth {
		c.MaxSize.Width = c.ParentIdealSize.Width
		c.PercentReference.Width = c.ParentIdealSize.Width
	}
	if c.ParentIdealSize.HasHeight {
		c.MaxSize.Height = c.ParentIdealSize.Height
		c.PercentReference.Height = c.ParentIdealSize.Height
	}
	c.SelfIdealSize = graphics.OptionalSize{}
	c.MinSize = graphics.Size{}
	return c
}

// FrameSizeFor returns the frame size for a content size: ideal components
// win, the rest is content plus padding clamped into the constraint.
func (p *LayoutProperty) FrameSizeFor(content graphics.Size) graphics.Size {
	pad := p.Padding.Clamped()
	c := p.layoutConstraint
	size := c.Constrain(graphics.Size{
		Width:  content.Width + pad.Horizontal(),
		Height: content.Height + pad.Vertical(),
	})
	return c.SelfIdealSize.Size(size)
}
