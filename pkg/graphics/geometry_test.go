package graphics

import (
	"math"
	"testing"
)

func TestTolerance(t *testing.T) {
	tests := []struct {
		a, b              float64
		near, great, less bool
	}{
		{1, 1.0005, true, false, false},
		{1, 1.01, false, false, true},
		{2, 1, false, true, false},
		{Infinity, Infinity, true, false, false},
		{Infinity, 10, false, true, false},
	}
	for _, tt := range tests {
		if got := NearEqual(tt.a, tt.b); got != tt.near {
			t.Errorf("NearEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.near)
		}
		if got := GreatNotEqual(tt.a, tt.b); got != tt.great {
			t.Errorf("GreatNotEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.great)
		}
		if got := LessNotEqual(tt.a, tt.b); got != tt.less {
			t.Errorf("LessNotEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.less)
		}
	}
}

func TestNonNegative(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-3, 0}, {math.NaN(), 0}, {4, 4}, {Infinity, Infinity}} {
		if got := NonNegative(tt.in); got != tt.want {
			t.Errorf("NonNegative(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if !IsInfinite(math.MaxFloat64) {
		t.Error("IsInfinite(MaxFloat64) = false, want true")
	}
}

func TestRect(t *testing.T) {
	r := RectFromOffsetSize(Offset{X: 10, Y: 20}, Size{Width: 30, Height: 40})
	if r != (Rect{Left: 10, Top: 20, Right: 40, Bottom: 60}) {
		t.Errorf("rect = %+v", r)
	}
	if r.Size() != (Size{Width: 30, Height: 40}) || r.Offset() != (Offset{X: 10, Y: 20}) {
		t.Errorf("size/offset = %s/%s", r.Size(), r.Offset())
	}
}

func TestEdgeInsets(t *testing.T) {
	e := EdgeInsets{Left: 1, Top: -2, Right: 3, Bottom: math.NaN()}.Clamped()
	if e != (EdgeInsets{Left: 1, Right: 3}) {
		t.Errorf("Clamped() = %+v", e)
	}
	if all := All(5); all.Horizontal() != 10 || all.Vertical() != 10 {
		t.Errorf("All(5) = %+v", all)
	}
}

func TestOptionalSize(t *testing.T) {
	var o OptionalSize
	if !o.IsNull() || o.IsValid() {
		t.Errorf("zero OptionalSize: null=%v valid=%v", o.IsNull(), o.IsValid())
	}
	o.SetWidth(12)
	if got := o.Size(Size{Width: 1, Height: 2}); got != (Size{Width: 12, Height: 2}) {
		t.Errorf("Size() = %s, want [12 x 2]", got)
	}
	if got := o.String(); got != "[12.00 x NA]" {
		t.Errorf("String() = %q", got)
	}
	o.SetHeight(3)
	if !o.IsValid() {
		t.Error("IsValid() = false with both components set")
	}
	o.ResetWidth()
	o.ResetHeight()
	if !o.IsNull() {
		t.Error("IsNull() = false after reset")
	}
	if got := OptionalSizeOf(1, 2); got.Size(Size{}) != (Size{Width: 1, Height: 2}) {
		t.Errorf("OptionalSizeOf = %s", got)
	}
}
