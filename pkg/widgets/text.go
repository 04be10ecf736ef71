package widgets

import (
	"fmt"

	"github.com/go-drift/flexlayout/pkg/errors"
	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
)

// TextProperty is the declared intent of a text leaf.
type TextProperty struct {
	layout.LayoutProperty
	Content string
	Style   graphics.TextStyle
}

// TextLayoutAlgorithm measures text and records the first-line baseline so
// that baseline-aligned flex parents can line it up with its siblings.
//
// Text wraps at the content width when the width is bounded, greedily at
// whitespace.
type TextLayoutAlgorithm struct {
	Fonts *graphics.FontManager

	paragraph *graphics.TextLayout
}

// Paragraph returns the layout of the last measurement.
func (a *TextLayoutAlgorithm) Paragraph() *graphics.TextLayout {
	return a.paragraph
}

// Measure implements layout.LayoutAlgorithm.
func (a *TextLayoutAlgorithm) Measure(w *layout.LayoutWrapperNode) {
	p, ok := w.Property().(*TextProperty)
	if !ok || p == nil {
		errors.Report(&errors.LayoutError{
			Op:   "text.Measure",
			Kind: errors.KindNullGuard,
			Node: w.String(),
			Err:  fmt.Errorf("want *widgets.TextProperty, got %T", w.Property()),
		})
		w.Geometry().SetFrameSize(graphics.Size{})
		return
	}
	fonts := a.Fonts
	if fonts == nil {
		fonts = graphics.DefaultFontManager()
	}
	content := w.ContentConstraint()
	maxWidth := content.MaxSize.Width
	if content.SelfIdealSize.HasWidth {
		maxWidth = content.SelfIdealSize.Width
	}
	paragraph, err := graphics.LayoutTextWithConstraints(p.Content, p.Style, fonts, maxWidth)
	if err != nil {
		errors.Report(&errors.LayoutError{
			Op:   "text.Measure",
			Kind: errors.KindInvalidInput,
			Node: w.String(),
			Err:  err,
		})
		w.Geometry().SetFrameSize(p.FrameSizeFor(graphics.Size{}))
		return
	}
	a.paragraph = paragraph
	w.Geometry().SetFrameSize(p.FrameSizeFor(paragraph.Size))
	w.Geometry().SetContentSize(paragraph.Size)
	w.Geometry().SetBaseline(p.Padding.Clamped().Top + paragraph.Baseline())
}

// Layout implements layout.LayoutAlgorithm. Text has no children to place.
func (a *TextLayoutAlgorithm) Layout(*layout.LayoutWrapperNode) {}
