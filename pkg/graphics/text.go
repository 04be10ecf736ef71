package graphics

import (
	stderrors "errors"
	"math"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// defaultFontSize is used when no font size is specified.
const defaultFontSize = 13

// TextStyle describes how text is measured.
type TextStyle struct {
	FontSize float64
	// MaxLines limits the number of measured lines. 0 means unlimited.
	MaxLines int
}

// TextLine is one measured line of a paragraph.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []TextLine
}

// Baseline returns the distance from the top of the layout to the first
// line's baseline.
func (l *TextLayout) Baseline() float64 {
	return l.Ascent
}

// FontManager resolves faces for text measurement.
type FontManager struct {
	mu   sync.RWMutex
	face font.Face
	// unitsPerEm is the pixel size the face was designed for.
	unitsPerEm float64
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager measuring with face, designed at
// designSize pixels. Measurements are scaled to the requested font size.
func NewFontManager(face font.Face, designSize float64) (*FontManager, error) {
	if face == nil {
		return nil, stderrors.New("font face required")
	}
	if designSize <= 0 {
		return nil, stderrors.New("design size must be positive")
	}
	return &FontManager{face: face, unitsPerEm: designSize}, nil
}

// DefaultFontManager returns a shared font manager backed by the bundled
// 7x13 bitmap face.
func DefaultFontManager() *FontManager {
	defaultFontManagerOnce.Do(func() {
		defaultFontManager = &FontManager{face: basicfont.Face7x13, unitsPerEm: defaultFontSize}
	})
	return defaultFontManager
}

// Face returns the face used for measurement.
func (m *FontManager) Face() font.Face {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.face
}

func (m *FontManager) scale(style TextStyle) float64 {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	return size / m.unitsPerEm
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// LayoutText measures text without a width limit.
func LayoutText(text string, style TextStyle, manager *FontManager) (*TextLayout, error) {
	return LayoutTextWithConstraints(text, style, manager, 0)
}

// LayoutTextWithConstraints measures and wraps text within the given width.
// A maxWidth of zero or infinity disables wrapping.
func LayoutTextWithConstraints(text string, style TextStyle, manager *FontManager, maxWidth float64) (*TextLayout, error) {
	if manager == nil {
		return nil, stderrors.New("font manager required")
	}
	face := manager.Face()
	scale := manager.scale(style)
	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent) * scale
	descent := fixedToFloat(metrics.Descent) * scale
	lineHeight := fixedToFloat(metrics.Height) * scale
	if lineHeight == 0 {
		lineHeight = ascent + descent
	}
	measure := func(s string) float64 {
		return fixedToFloat(font.MeasureString(face, s)) * scale
	}
	lines := layoutLines(text, maxWidth, measure)
	if style.MaxLines > 0 && len(lines) > style.MaxLines {
		lines = lines[:style.MaxLines]
	}
	maxLineWidth := 0.0
	for _, line := range lines {
		maxLineWidth = math.Max(maxLineWidth, line.Width)
	}
	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       Size{Width: maxLineWidth, Height: lineHeight * float64(len(lines))},
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
		Lines:      lines,
	}, nil
}

func layoutLines(text string, maxWidth float64, measure func(string) float64) []TextLine {
	if maxWidth < 0 || IsInfinite(maxWidth) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]TextLine, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, TextLine{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, TextLine{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, TextLine{Text: line, Width: measure(line)})
		}
	}
	return lines
}

// wrapParagraph breaks text greedily, preferring the last whitespace that
// fits. A single rune wider than maxWidth still gets its own line.
func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			if measure(text[start:next]) > maxWidth {
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) && lastBreak > start && lastBreak < lastFit {
			cut = lastBreak
		}
		lines = append(lines, strings.TrimRightFunc(text[start:cut], unicode.IsSpace))
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
