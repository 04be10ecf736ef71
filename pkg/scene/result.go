package scene

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
)

// Result is the geometry of a scene after a pass.
type Result struct {
	Stats Stats       `yaml:"stats"`
	Root  *NodeResult `yaml:"root"`
}

// Stats counts the work done by the pass.
type Stats struct {
	Measured int `yaml:"measured"`
	LaidOut  int `yaml:"laidOut"`
	Skipped  int `yaml:"skipped"`
}

// NodeResult is the geometry of one node. Offsets are relative to the
// parent's frame.
type NodeResult struct {
	ID       string        `yaml:"id,omitempty"`
	Tag      string        `yaml:"tag"`
	Offset   [2]float64    `yaml:"offset,flow"`
	Size     [2]float64    `yaml:"size,flow"`
	Baseline float64       `yaml:"baseline,omitempty"`
	Gone     bool          `yaml:"gone,omitempty"`
	Culled   bool          `yaml:"culled,omitempty"`
	Children []*NodeResult `yaml:"children,omitempty"`
}

// Rect returns the node's frame in its parent's coordinates.
func (n *NodeResult) Rect() graphics.Rect {
	return graphics.RectFromLTWH(n.Offset[0], n.Offset[1], n.Size[0], n.Size[1])
}

func newResult(root *layout.LayoutWrapperNode, ids map[layout.NodeID]string, stats layout.PassStats) *Result {
	return &Result{
		Stats: Stats{Measured: stats.Measured, LaidOut: stats.LaidOut, Skipped: stats.Skipped},
		Root:  collect(root, ids),
	}
}

func collect(node *layout.LayoutWrapperNode, ids map[layout.NodeID]string) *NodeResult {
	g := node.Geometry()
	off, size := g.FrameOffset(), g.FrameSize()
	out := &NodeResult{
		ID:       ids[node.ID()],
		Tag:      node.Tag(),
		Offset:   [2]float64{off.X, off.Y},
		Size:     [2]float64{size.Width, size.Height},
		Baseline: g.Baseline(),
		Gone:     node.IsGone(),
		Culled:   !node.IsGone() && !node.IsActive(),
	}
	for _, child := range node.Children() {
		out.Children = append(out.Children, collect(child, ids))
	}
	return out
}

// Find returns the first node declared with id in depth-first order.
func (r *Result) Find(id string) *NodeResult {
	var walk func(n *NodeResult) *NodeResult
	walk = func(n *NodeResult) *NodeResult {
		if n == nil {
			return nil
		}
		if n.ID == id {
			return n
		}
		for _, c := range n.Children {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(r.Root)
}

// Encode writes the result as YAML.
func (r *Result) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// YAML returns the encoded result.
func (r *Result) YAML() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
