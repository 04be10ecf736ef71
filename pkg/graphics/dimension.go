package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

// DimensionUnit identifies how a Dimension value is interpreted.
type DimensionUnit int

const (
	// UnitAuto means the value is unset and sizing falls back to content.
	UnitAuto DimensionUnit = iota
	// UnitPx is an absolute pixel value.
	UnitPx
	// UnitPercent is a fraction of the percent reference, stored as 0..1.
	UnitPercent
)

// String returns a human-readable representation of the unit.
func (u DimensionUnit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitPx:
		return "px"
	case UnitPercent:
		return "percent"
	default:
		return fmt.Sprintf("DimensionUnit(%d)", int(u))
	}
}

// Dimension is a declared length that may be absolute or relative.
type Dimension struct {
	Value float64
	Unit  DimensionUnit
}

// Px returns an absolute dimension.
func Px(v float64) Dimension {
	return Dimension{Value: v, Unit: UnitPx}
}

// Percent returns a relative dimension; 50 means half of the reference.
func Percent(p float64) Dimension {
	return Dimension{Value: p / 100, Unit: UnitPercent}
}

// Auto returns an unset dimension.
func Auto() Dimension {
	return Dimension{}
}

// IsAuto reports whether the dimension is unset.
func (d Dimension) IsAuto() bool {
	return d.Unit == UnitAuto
}

// Resolve converts the dimension to pixels against reference. The boolean is
// false for auto dimensions and for percentages of an unbounded reference.
func (d Dimension) Resolve(reference float64) (float64, bool) {
	switch d.Unit {
	case UnitPx:
		return NonNegative(d.Value), true
	case UnitPercent:
		if IsInfinite(reference) {
			return 0, false
		}
		return NonNegative(d.Value * reference), true
	default:
		return 0, false
	}
}

func (d Dimension) String() string {
	switch d.Unit {
	case UnitPx:
		return strconv.FormatFloat(d.Value, 'f', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(d.Value*100, 'f', -1, 64) + "%"
	default:
		return "auto"
	}
}

// ParseDimension parses "auto", "120", "120px" or "50%".
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || strings.EqualFold(s, "auto"):
		return Auto(), nil
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		return Percent(v), nil
	default:
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return Dimension{}, fmt.Errorf("invalid dimension %q: %w", s, err)
		}
		return Px(v), nil
	}
}
