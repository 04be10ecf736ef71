package graphics

import (
	"slices"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func lineTexts(l *TextLayout) []string {
	var out []string
	for _, line := range l.Lines {
		out = append(out, line.Text)
	}
	return out
}

func TestLayoutText(t *testing.T) {
	l, err := LayoutText("hello world", TextStyle{}, DefaultFontManager())
	if err != nil {
		t.Fatalf("LayoutText: %v", err)
	}
	if l.Size != (Size{Width: 77, Height: 13}) {
		t.Errorf("size = %s, want [77 x 13]", l.Size)
	}
	if l.Baseline() != 11 || l.Descent != 2 {
		t.Errorf("ascent/descent = %v/%v, want 11/2", l.Baseline(), l.Descent)
	}
}

func TestLayoutText_Scaled(t *testing.T) {
	l, err := LayoutText("hi", TextStyle{FontSize: 26}, DefaultFontManager())
	if err != nil {
		t.Fatalf("LayoutText: %v", err)
	}
	if l.Size != (Size{Width: 28, Height: 26}) || l.Baseline() != 22 {
		t.Errorf("size = %s baseline = %v, want [28 x 26] and 22", l.Size, l.Baseline())
	}
}

func TestLayoutTextWithConstraints(t *testing.T) {
	tests := []struct {
		text     string
		maxWidth float64
		maxLines int
		want     []string
	}{
		{"hello world", 40, 0, []string{"hello", "world"}},
		{"hello world", Infinity, 0, []string{"hello world"}},
		{"abcdef", 14, 0, []string{"ab", "cd", "ef"}},
		{"a\n\nb", 0, 0, []string{"a", "", "b"}},
		{"one two three", 21, 2, []string{"one", "two"}},
	}
	for _, tt := range tests {
		l, err := LayoutTextWithConstraints(tt.text, TextStyle{MaxLines: tt.maxLines}, DefaultFontManager(), tt.maxWidth)
		if err != nil {
			t.Errorf("%q: %v", tt.text, err)
			continue
		}
		if got := lineTexts(l); !slices.Equal(got, tt.want) {
			t.Errorf("%q at %v = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
		}
		if h := l.LineHeight * float64(len(tt.want)); l.Size.Height != h {
			t.Errorf("%q height = %v, want %v", tt.text, l.Size.Height, h)
		}
	}
}

func TestFontManager(t *testing.T) {
	if _, err := NewFontManager(nil, 13); err == nil {
		t.Error("NewFontManager(nil) succeeded")
	}
	if _, err := NewFontManager(basicfont.Face7x13, 0); err == nil {
		t.Error("NewFontManager with zero design size succeeded")
	}
	m, err := NewFontManager(basicfont.Face7x13, 26)
	if err != nil {
		t.Fatalf("NewFontManager: %v", err)
	}
	// Designed at 26px, so a 13px style measures at half size.
	l, _ := LayoutText("ab", TextStyle{FontSize: 13}, m)
	if l.Size.Width != 7 {
		t.Errorf("width = %v, want 7", l.Size.Width)
	}
	if _, err := LayoutText("x", TextStyle{}, nil); err == nil {
		t.Error("LayoutText without a manager succeeded")
	}
	if DefaultFontManager() != DefaultFontManager() {
		t.Error("DefaultFontManager is not shared")
	}
}
