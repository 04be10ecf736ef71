package cmd

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/flexlayout/pkg/config"
	"github.com/go-drift/flexlayout/pkg/errors"
	"github.com/go-drift/flexlayout/pkg/layout"
	"github.com/go-drift/flexlayout/pkg/scene"
	"github.com/go-drift/flexlayout/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "measure",
		Short: "Lay out a scene and print its geometry",
		Long: `Load a YAML scene, run one measure and layout pass, and print the frame
offset and size of every node.

Settings are read from flexlayout.yaml next to the scene unless --config
names another file. The scene's own constraint block overrides the
configured root size, and --width/--height override both.

Flags:
  --config PATH    Configuration file
  --width PX       Root max width
  --height PX      Root max height
  --tree           Print an indented tree instead of YAML
  --verbose        Log errors with kinds, nodes and stack traces`,
		Usage: "flexlayout measure [flags] <scene.yaml>",
		Run:   runMeasure,
	})
}

type measureOptions struct {
	scene   string
	config  string
	width   float64
	height  float64
	tree    bool
	verbose bool
}

func parseMeasureArgs(args []string) (measureOptions, error) {
	var opts measureOptions
	value := func(i int, name string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		return args[i+1], nil
	}
	number := func(i int, name string) (float64, error) {
		s, err := value(i, name)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return 0, fmt.Errorf("%s must be a positive number (got %q)", name, s)
		}
		return v, nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch arg := args[i]; arg {
		case "--config":
			opts.config, err = value(i, arg)
			i++
		case "--width":
			opts.width, err = number(i, arg)
			i++
		case "--height":
			opts.height, err = number(i, arg)
			i++
		case "--tree":
			opts.tree = true
		case "--verbose":
			opts.verbose = true
		default:
			if strings.HasPrefix(arg, "--") {
				return opts, fmt.Errorf("unknown flag %s", arg)
			}
			if opts.scene != "" {
				return opts, fmt.Errorf("only one scene can be measured at a time")
			}
			opts.scene = arg
		}
		if err != nil {
			return opts, err
		}
	}
	if opts.scene == "" {
		return opts, fmt.Errorf("scene file is required\n\nUsage: flexlayout measure [flags] <scene.yaml>")
	}
	return opts, nil
}

func runMeasure(out io.Writer, args []string) error {
	opts, err := parseMeasureArgs(args)
	if err != nil {
		return err
	}

	resolved, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.verbose {
		resolved.Verbose = true
	}
	errors.SetHandler(resolved.Handler())
	defer errors.SetHandler(nil)

	doc, err := scene.LoadFile(opts.scene)
	if err != nil {
		return err
	}
	s, err := scene.Build(doc, widgets.NewRegistry(resolved.RegistryOptions()))
	if err != nil {
		return err
	}

	res, err := s.Measure(rootConstraint(s.Constraint(resolved.RootConstraint()), opts))
	if err != nil {
		return err
	}
	if opts.tree {
		return layout.DumpTree(out, s.Root())
	}
	return res.Encode(out)
}

func loadConfig(opts measureOptions) (*config.Resolved, error) {
	if opts.config == "" {
		return config.Resolve(filepath.Dir(opts.scene))
	}
	cfg, err := config.LoadFile(opts.config)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	resolved.Path = opts.config
	return resolved, nil
}

// rootConstraint applies the --width and --height flags on top of the
// configured and scene-declared root constraint.
func rootConstraint(c layout.LayoutConstraint, opts measureOptions) layout.LayoutConstraint {
	if opts.width > 0 {
		c.MaxSize.Width = opts.width
		c.PercentReference.Width = opts.width
	}
	if opts.height > 0 {
		c.MaxSize.Height = opts.height
		c.PercentReference.Height = opts.height
	}
	return c
}
