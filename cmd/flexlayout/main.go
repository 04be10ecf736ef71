// Command flexlayout measures YAML layout scenes.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/flexlayout/cmd/flexlayout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
