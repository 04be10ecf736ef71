// Package core builds layout trees.
//
// A BuilderContext replaces a process-wide "current node" stack: the caller
// owns it for one build, opens nodes with Push, closes them with Pop, and
// takes the root with Finish.
//
//	b := core.NewBuilderContext(widgets.NewRegistry(widgets.Options{}))
//	row, _ := b.Push(widgets.TagRow)
//	b.Leaf(widgets.TagBox)
//	b.Leaf(widgets.TagBox)
//	b.Pop()
//	root, err := b.Finish()
//
// Nodes created by the context are scheduled on its pipeline, so the first
// Layout call measures the whole tree.
package core
