package flex

import (
	"math"

	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
)

// wrapLine is one greedily packed run of items.
type wrapLine struct {
	items       []*flexItem
	main        float64 // item extents plus the gaps between them
	cross       float64 // thickness
	maxBaseline float64
}

// measure recomputes the line's extents from its items.
func (l *wrapLine) measure(axis layout.Axis, spacing float64, align layout.FlexAlign) {
	l.main = totalMain(l.items)
	if n := len(l.items); n > 1 {
		l.main += spacing * float64(n-1)
	}
	l.cross, l.maxBaseline = crossExtent(l.items, axis, align)
}

type lineState int

const (
	accumulatingLine lineState = iota
	lineFull
	breakDone
)

// lineBreaker packs items into lines in child order. An item that would push
// a non-empty line past the limit fills the line and starts the next one; an
// item larger than the limit still gets a line of its own.
type lineBreaker struct {
	limit   float64
	spacing float64
	bounded bool
	state   lineState
	current *wrapLine
	lines   []*wrapLine
}

func newLineBreaker(limit, spacing float64) *lineBreaker {
	return &lineBreaker{
		limit:   limit,
		spacing: spacing,
		bounded: !graphics.IsInfinite(limit),
		current: &wrapLine{},
	}
}

// push feeds the next item.
func (b *lineBreaker) push(it *flexItem) {
	if b.state == breakDone {
		return
	}
	next := b.current.main + it.main
	if len(b.current.items) > 0 {
		next += b.spacing
		if b.bounded && graphics.GreatNotEqual(next, b.limit) {
			b.state = lineFull
		}
	}
	if b.state == lineFull {
		b.emit()
		b.state = accumulatingLine
		next = it.main
	}
	b.current.items = append(b.current.items, it)
	b.current.main = next
	b.current.cross = math.Max(b.current.cross, it.cross)
}

func (b *lineBreaker) emit() {
	b.lines = append(b.lines, b.current)
	b.current = &wrapLine{}
}

// finish emits the pending line and returns every line.
func (b *lineBreaker) finish() []*wrapLine {
	if b.state != breakDone {
		if len(b.current.items) > 0 {
			b.emit()
		}
		b.state = breakDone
	}
	return b.lines
}
