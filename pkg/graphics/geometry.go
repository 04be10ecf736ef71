package graphics

import (
	"fmt"
	"math"
)

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.001

// Infinity marks an unbounded extent in a constraint.
var Infinity = math.Inf(1)

// IsInfinite reports whether v is an unbounded extent.
func IsInfinite(v float64) bool {
	return math.IsInf(v, 1) || v >= math.MaxFloat64
}

// NearEqual reports whether a and b are equal within the layout tolerance.
func NearEqual(a, b float64) bool {
	if IsInfinite(a) && IsInfinite(b) {
		return true
	}
	return math.Abs(a-b) <= epsilon
}

// GreatNotEqual reports whether a is greater than b beyond the tolerance.
func GreatNotEqual(a, b float64) bool {
	return a-b > epsilon
}

// LessNotEqual reports whether a is less than b beyond the tolerance.
func LessNotEqual(a, b float64) bool {
	return b-a > epsilon
}

// NonNegative clamps NaN and negative values to zero.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

func (o Offset) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", o.X, o.Y)
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Clamped returns the size with NaN and negative components replaced by zero.
func (s Size) Clamped() Size {
	return Size{Width: NonNegative(s.Width), Height: NonNegative(s.Height)}
}

// NearEqual compares two sizes within the layout tolerance.
func (s Size) NearEqual(other Size) bool {
	return NearEqual(s.Width, other.Width) && NearEqual(s.Height, other.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("[%.2f x %.2f]", s.Width, s.Height)
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOffsetSize constructs a Rect from an origin and a size.
func RectFromOffsetSize(offset Offset, size Size) Rect {
	return RectFromLTWH(offset.X, offset.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Offset returns the top-left corner of the rectangle.
func (r Rect) Offset() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// EdgeInsets describes padding on each side of a box.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// All returns insets with the same value on every side.
func All(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns the sum of left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Clamped returns insets with negative or NaN sides set to zero.
func (e EdgeInsets) Clamped() EdgeInsets {
	return EdgeInsets{
		Left:   NonNegative(e.Left),
		Top:    NonNegative(e.Top),
		Right:  NonNegative(e.Right),
		Bottom: NonNegative(e.Bottom),
	}
}

// OptionalSize is a size whose components may each be unset.
type OptionalSize struct {
	Width     float64
	Height    float64
	HasWidth  bool
	HasHeight bool
}

// OptionalSizeOf returns an OptionalSize with both components set.
func OptionalSizeOf(width, height float64) OptionalSize {
	return OptionalSize{Width: width, Height: height, HasWidth: true, HasHeight: true}
}

// SetWidth sets the width component.
func (o *OptionalSize) SetWidth(v float64) {
	o.Width = v
	o.HasWidth = true
}

// SetHeight sets the height component.
func (o *OptionalSize) SetHeight(v float64) {
	o.Height = v
	o.HasHeight = true
}

// ResetWidth clears the width component.
func (o *OptionalSize) ResetWidth() {
	o.Width = 0
	o.HasWidth = false
}

// ResetHeight clears the height component.
func (o *OptionalSize) ResetHeight() {
	o.Height = 0
	o.HasHeight = false
}

// IsValid reports whether both components are set.
func (o OptionalSize) IsValid() bool {
	return o.HasWidth && o.HasHeight
}

// IsNull reports whether neither component is set.
func (o OptionalSize) IsNull() bool {
	return !o.HasWidth && !o.HasHeight
}

// Size converts to a Size, substituting fallback for unset components.
func (o OptionalSize) Size(fallback Size) Size {
	s := fallback
	if o.HasWidth {
		s.Width = o.Width
	}
	if o.HasHeight {
		s.Height = o.Height
	}
	return s
}

func (o OptionalSize) String() string {
	w, h := "NA", "NA"
	if o.HasWidth {
		w = fmt.Sprintf("%.2f", o.Width)
	}
	if o.HasHeight {
		h = fmt.Sprintf("%.2f", o.Height)
	}
	return "[" + w + " x " + h + "]"
}
