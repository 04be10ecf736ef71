// Package cmd implements the flexlayout CLI commands.
//
// The root command dispatches to subcommands (measure, tags); each
// subcommand registers itself from an init function.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/flexlayout/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(out io.Writer, args []string) error
}

var rootCmd = &Command{
	Name:  "flexlayout",
	Short: "flexlayout - flex and wrap layout engine",
	Long: `flexlayout measures declarative layout scenes with the flex and wrap
layout algorithms and prints the resulting geometry.

Use "flexlayout <command> --help" for more information about a command.`,
	Usage: "flexlayout <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands    = make(map[string]*Command)
	subCommands []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	subCommands = append(subCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run runs the CLI with args, writing command output to out and usage
// errors to errOut.
func Run(args []string, out, errOut io.Writer) error {
	if len(args) == 0 {
		printHelp(out)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(out)
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(out, "flexlayout version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(errOut, "Error: unknown command %q\n\n", args[0])
		printHelp(errOut)
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(out, cmd)
			return nil
		}
	}
	return runCommand(cmd, out, cmdArgs)
}

func runCommand(cmd *Command, out io.Writer, args []string) (err error) {
	defer errors.RecoverWithCallback("cmd."+cmd.Name, func(r any) {
		err = fmt.Errorf("%s: internal error: %v", cmd.Name, r)
	})
	return cmd.Run(out, args)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range subCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  flexlayout measure scene.yaml              Print the geometry as YAML")
	fmt.Fprintln(w, "  flexlayout measure --tree scene.yaml       Print an indented tree dump")
	fmt.Fprintln(w, "  flexlayout measure --width 360 scene.yaml  Measure against a narrower root")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
