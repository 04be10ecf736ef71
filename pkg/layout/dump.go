package layout

import (
	"fmt"
	"io"
	"strings"
)

// DumpTree writes one line per node with its frame offset and size, indented
// by depth. Inactive nodes are marked.
func DumpTree(w io.Writer, root *LayoutWrapperNode) error {
	if root == nil {
		return nil
	}
	return dumpNode(w, root, 0)
}

// DumpString returns DumpTree output as a string.
func DumpString(root *LayoutWrapperNode) string {
	var sb strings.Builder
	_ = DumpTree(&sb, root)
	return sb.String()
}

func dumpNode(w io.Writer, n *LayoutWrapperNode, depth int) error {
	g := n.Geometry()
	state := ""
	switch {
	case n.IsGone():
		state = " gone"
	case !n.IsActive():
		state = " inactive"
	}
	if _, err := fmt.Fprintf(w, "%s%s offset=%s size=%s%s\n",
		strings.Repeat("  ", depth), n, g.FrameOffset(), g.FrameSize(), state); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := dumpNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
