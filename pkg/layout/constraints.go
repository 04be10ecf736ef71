package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/flexlayout/pkg/graphics"
)

// LayoutConstraint is passed top-down during measurement. All sizes are in
// pixels; graphics.Infinity marks an unbounded maximum.
type LayoutConstraint struct {
	MinSize          graphics.Size
	MaxSize          graphics.Size
	PercentReference graphics.Size
	ParentIdealSize  graphics.OptionalSize
	SelfIdealSize    graphics.OptionalSize
}

// Loose returns a constraint with zero minimum and the given maximum, which
// also serves as the percent reference.
func Loose(max graphics.Size) LayoutConstraint {
	return LayoutConstraint{MaxSize: max, PercentReference: max}
}

// Unbounded returns a constraint without any maximum.
func Unbounded() LayoutConstraint {
	inf := graphics.Size{Width: graphics.Infinity, Height: graphics.Infinity}
	return LayoutConstraint{MaxSize: inf, PercentReference: inf}
}

// Equal reports whether two constraints are identical within tolerance.
func (c LayoutConstraint) Equal(other LayoutConstraint) bool {
	return c.MinSize.NearEqual(other.MinSize) &&
		c.MaxSize.NearEqual(other.MaxSize) &&
		c.PercentReference.NearEqual(other.PercentReference) &&
		optionalEqual(c.ParentIdealSize, other.ParentIdealSize) &&
		optionalEqual(c.SelfIdealSize, other.SelfIdealSize)
}

func optionalEqual(a, b graphics.OptionalSize) bool {
	if a.HasWidth != b.HasWidth || a.HasHeight != b.HasHeight {
		return false
	}
	if a.HasWidth && !graphics.NearEqual(a.Width, b.Width) {
		return false
	}
	return !a.HasHeight || graphics.NearEqual(a.Height, b.Height)
}

// IsValid reports whether the constraint contains no negative or NaN sizes
// and every minimum is within its maximum.
func (c LayoutConstraint) IsValid() bool {
	for _, v := range []float64{
		c.MinSize.Width, c.MinSize.Height,
		c.MaxSize.Width, c.MaxSize.Height,
		c.PercentReference.Width, c.PercentReference.Height,
	} {
		if math.IsNaN(v) || v < 0 {
			return false
		}
	}
	return c.MinSize.Width <= c.MaxSize.Width && c.MinSize.Height <= c.MaxSize.Height
}

// Clamped returns a copy with negative and NaN sizes clamped to zero and
// minimums capped by their maximums.
func (c LayoutConstraint) Clamped() LayoutConstraint {
	c.MaxSize = c.MaxSize.Clamped()
	c.MinSize = c.MinSize.Clamped()
	c.PercentReference = c.PercentReference.Clamped()
	c.MinSize.Width = math.Min(c.MinSize.Width, c.MaxSize.Width)
	c.MinSize.Height = math.Min(c.MinSize.Height, c.MaxSize.Height)
	c.SelfIdealSize = clampOptional(c.SelfIdealSize)
	c.ParentIdealSize = clampOptional(c.ParentIdealSize)
	return c
}

func clampOptional(o graphics.OptionalSize) graphics.OptionalSize {
	if o.HasWidth {
		o.Width = graphics.NonNegative(o.Width)
	}
	if o.HasHeight {
		o.Height = graphics.NonNegative(o.Height)
	}
	return o
}

// Constrain clamps size into [MinSize, MaxSize].
func (c LayoutConstraint) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinSize.Width, c.MaxSize.Width),
		Height: clamp(size.Height, c.MinSize.Height, c.MaxSize.Height),
	}
}

// MinusPadding shrinks every size of the constraint by the padding.
func (c LayoutConstraint) MinusPadding(p graphics.EdgeInsets) LayoutConstraint {
	h, v := p.Horizontal(), p.Vertical()
	shrink := func(s graphics.Size) graphics.Size {
		return graphics.Size{
			Width:  graphics.NonNegative(s.Width - h),
			Height: graphics.NonNegative(s.Height - v),
		}
	}
	c.MinSize = shrink(c.MinSize)
	c.MaxSize = shrink(c.MaxSize)
	c.PercentReference = shrink(c.PercentReference)
	if c.SelfIdealSize.HasWidth {
		c.SelfIdealSize.Width = graphics.NonNegative(c.SelfIdealSize.Width - h)
	}
	if c.SelfIdealSize.HasHeight {
		c.SelfIdealSize.Height = graphics.NonNegative(c.SelfIdealSize.Height - v)
	}
	return c
}

func (c LayoutConstraint) String() string {
	return fmt.Sprintf("{min: %s, max: %s, percent: %s, parentIdeal: %s, selfIdeal: %s}",
		c.MinSize, c.MaxSize, c.PercentReference, c.ParentIdealSize, c.SelfIdealSize)
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
