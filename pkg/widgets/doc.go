// Package widgets maps declarative tags to layout patterns.
//
// A pattern is the pair a node is built from: the layout property that holds
// its declared intent and the layout algorithm that measures and places its
// children. The Registry creates both for a tag:
//
//	reg := widgets.NewRegistry(widgets.Options{})
//	row, _ := reg.Create(tree, widgets.TagRow)
//	row.Property().(*flex.FlexLayoutProperty).CrossAxisAlign = layout.FlexAlignCenter
//
// # Built-in tags
//
//   - Flex: single-line flex, fills a bounded main axis, items at the cross start.
//   - Row, Column: horizontal and vertical flex that wrap their content and
//     center items on the cross axis.
//   - Wrap: multi-line flex. Reverse directions follow Options.WrapReverseMode.
//   - Box: sized leaf or stacking container.
//   - Text: a leaf measured with the font manager, exposing its baseline.
package widgets
