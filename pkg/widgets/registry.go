package widgets

import (
	"fmt"
	"slices"

	"github.com/go-drift/flexlayout/pkg/errors"
	"github.com/go-drift/flexlayout/pkg/flex"
	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
)

// Built-in tags.
const (
	TagFlex   = "Flex"
	TagRow    = "Row"
	TagColumn = "Column"
	TagWrap   = "Wrap"
	TagBox    = "Box"
	TagText   = "Text"
)

// Options configures the patterns a Registry creates.
type Options struct {
	// WrapReverseMode selects the reverse behavior of Wrap nodes.
	WrapReverseMode flex.WrapReverseMode
	// Fonts measures Text nodes. Nil means graphics.DefaultFontManager.
	Fonts *graphics.FontManager
}

// Pattern is the property and algorithm a node is built from.
type Pattern struct {
	Property  layout.Property
	Algorithm layout.LayoutAlgorithm
}

// Factory creates a fresh pattern. Every node gets its own instances.
type Factory func(opts Options) Pattern

// Registry creates nodes by tag.
type Registry struct {
	opts      Options
	factories map[string]Factory
}

// NewRegistry returns a registry holding the built-in tags.
func NewRegistry(opts Options) *Registry {
	if opts.Fonts == nil {
		opts.Fonts = graphics.DefaultFontManager()
	}
	r := &Registry{opts: opts, factories: make(map[string]Factory)}
	r.Register(TagFlex, func(Options) Pattern {
		return Pattern{&flex.FlexLayoutProperty{}, flex.NewFlexLayoutAlgorithm()}
	})
	r.Register(TagRow, func(Options) Pattern {
		return Pattern{&flex.FlexLayoutProperty{
			Direction:      layout.DirectionRow,
			CrossAxisAlign: layout.FlexAlignCenter,
			MainAxisSize:   flex.MainAxisSizeMin,
		}, flex.NewFlexLayoutAlgorithm()}
	})
	r.Register(TagColumn, func(Options) Pattern {
		return Pattern{&flex.FlexLayoutProperty{
			Direction:      layout.DirectionColumn,
			CrossAxisAlign: layout.FlexAlignCenter,
			MainAxisSize:   flex.MainAxisSizeMin,
		}, flex.NewFlexLayoutAlgorithm()}
	})
	r.Register(TagWrap, func(o Options) Pattern {
		return Pattern{&flex.WrapLayoutProperty{}, flex.NewWrapLayoutAlgorithm(o.WrapReverseMode)}
	})
	r.Register(TagBox, func(Options) Pattern {
		return Pattern{&layout.LayoutProperty{}, layout.BoxLayoutAlgorithm{}}
	})
	r.Register(TagText, func(o Options) Pattern {
		return Pattern{&TextProperty{}, &TextLayoutAlgorithm{Fonts: o.Fonts}}
	})
	return r
}

// Register adds or replaces the factory for tag.
func (r *Registry) Register(tag string, factory Factory) {
	r.factories[tag] = factory
}

// Options returns the options patterns are created with.
func (r *Registry) Options() Options {
	return r.opts
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Create allocates a detached node for tag in tree.
func (r *Registry) Create(tree *layout.Tree, tag string) (*layout.LayoutWrapperNode, error) {
	factory, ok := r.factories[tag]
	if !ok {
		return nil, &errors.LayoutError{
			Op:   "widgets.Create",
			Kind: errors.KindInvalidInput,
			Err:  fmt.Errorf("unknown tag %q", tag),
		}
	}
	p := factory(r.opts)
	return tree.NewNode(tag, p.Property, p.Algorithm), nil
}
