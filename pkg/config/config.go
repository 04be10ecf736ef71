// Package config loads the optional flexlayout.yaml engine configuration.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/flexlayout/pkg/errors"
	"github.com/go-drift/flexlayout/pkg/flex"
	"github.com/go-drift/flexlayout/pkg/graphics"
	"github.com/go-drift/flexlayout/pkg/layout"
	"github.com/go-drift/flexlayout/pkg/widgets"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "flexlayout.yaml"

// Defaults applied by Resolve.
const (
	DefaultMinVersion = "v10"
	DefaultRootWidth  = 720
	DefaultRootHeight = 1280
)

// Reverse mode names accepted in wrap.reverseMode.
const (
	ReverseModeAuto    = "auto"
	ReverseModeCurrent = "current"
	ReverseModeLegacy  = "legacy"
)

// legacyCeiling is the newest platform version that still lays out reverse
// wrap directions the legacy way.
const legacyCeiling = "v9"

// Config represents the optional flexlayout.yaml configuration.
type Config struct {
	Platform PlatformConfig `yaml:"platform"`
	Wrap     WrapConfig     `yaml:"wrap"`
	Log      LogConfig      `yaml:"log"`
	Root     RootConfig     `yaml:"root"`
}

// PlatformConfig describes the oldest platform the layouts must match.
type PlatformConfig struct {
	MinVersion string `yaml:"minVersion,omitempty"`
}

// WrapConfig contains wrap container settings.
type WrapConfig struct {
	ReverseMode string `yaml:"reverseMode,omitempty"`
}

// LogConfig contains error logging settings.
type LogConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// RootConfig is the default constraint handed to scene roots. Zero means
// the default; a negative value is rejected.
type RootConfig struct {
	MaxWidth  float64 `yaml:"maxWidth,omitempty"`
	MaxHeight float64 `yaml:"maxHeight,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Path is the file the values were read from, empty for defaults.
	Path            string
	MinVersion      string
	WrapReverseMode flex.WrapReverseMode
	Verbose         bool
	RootSize        graphics.Size
}

// LoadOptional reads flexlayout.yaml from dir if present.
func LoadOptional(dir string) (*Config, string, error) {
	path := filepath.Join(dir, FileName)
	cfg, err := LoadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}

// LoadFile reads the configuration at path. A missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a configuration document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, configError("config.Parse", err)
	}
	return &cfg, nil
}

// Resolve loads flexlayout.yaml from dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, path, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	r, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	r.Path = path
	return r, nil
}

// Resolve validates the configuration and fills in defaults.
func (c *Config) Resolve() (*Resolved, error) {
	version, err := canonicalVersion(c.Platform.MinVersion)
	if err != nil {
		return nil, err
	}
	mode, err := reverseMode(c.Wrap.ReverseMode, version)
	if err != nil {
		return nil, err
	}
	size, err := c.Root.size()
	if err != nil {
		return nil, err
	}
	return &Resolved{
		MinVersion:      version,
		WrapReverseMode: mode,
		Verbose:         c.Log.Verbose,
		RootSize:        size,
	}, nil
}

// Handler returns the error handler the configuration asks for.
func (r *Resolved) Handler() errors.ErrorHandler {
	return &errors.LogHandler{Verbose: r.Verbose}
}

// RegistryOptions returns the pattern options for a widgets.Registry.
func (r *Resolved) RegistryOptions() widgets.Options {
	return widgets.Options{WrapReverseMode: r.WrapReverseMode}
}

// RootConstraint returns the loose constraint for scene roots.
func (r *Resolved) RootConstraint() layout.LayoutConstraint {
	return layout.Loose(r.RootSize)
}

func canonicalVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		v = DefaultMinVersion
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", configError("config.Resolve", fmt.Errorf("platform.minVersion %q is not a valid version", v))
	}
	return semver.Canonical(v), nil
}

func reverseMode(name, version string) (flex.WrapReverseMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ReverseModeAuto:
		if semver.Compare(version, legacyCeiling) > 0 {
			return flex.WrapReverseCurrent, nil
		}
		return flex.WrapReverseLegacy, nil
	case ReverseModeCurrent:
		return flex.WrapReverseCurrent, nil
	case ReverseModeLegacy:
		return flex.WrapReverseLegacy, nil
	default:
		return 0, configError("config.Resolve", fmt.Errorf("wrap.reverseMode must be %s, %s or %s (got %q)",
			ReverseModeCurrent, ReverseModeLegacy, ReverseModeAuto, name))
	}
}

func (r RootConfig) size() (graphics.Size, error) {
	if r.MaxWidth < 0 || r.MaxHeight < 0 {
		return graphics.Size{}, configError("config.Resolve",
			fmt.Errorf("root size cannot be negative (got %v x %v)", r.MaxWidth, r.MaxHeight))
	}
	size := graphics.Size{Width: r.MaxWidth, Height: r.MaxHeight}
	if size.Width == 0 {
		size.Width = DefaultRootWidth
	}
	if size.Height == 0 {
		size.Height = DefaultRootHeight
	}
	return size, nil
}

func configError(op string, err error) *errors.LayoutError {
	return &errors.LayoutError{Op: op, Kind: errors.KindConfig, Err: err}
}
