package cmd

import (
	"fmt"
	"io"

	"github.com/go-drift/flexlayout/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tags",
		Short: "List the node tags a scene can use",
		Long:  `List the node tags understood by scene documents.`,
		Usage: "flexlayout tags",
		Run:   runTags,
	})
}

func runTags(out io.Writer, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("tags takes no arguments")
	}
	for _, tag := range widgets.NewRegistry(widgets.Options{}).Tags() {
		fmt.Fprintln(out, tag)
	}
	return nil
}
