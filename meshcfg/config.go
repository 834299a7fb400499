package meshcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nodemesh/router/mesh"
	"github.com/nodemesh/router/unravel"
)

// Config is the on-disk shape cmd/meshctl reads before driving a build.
// Zero values fall back to each package's own defaults, except MutableHops:
// section.BuildSection takes it as given, so zero makes only the root cell
// mutable.
type Config struct {
	// MaxDepth is mesh.Config.MaxDepth (spec.md's MAX_DEPTH).
	MaxDepth int `yaml:"maxDepth"`

	// MutableHops is section.BuildSection's mutableHops radius.
	MutableHops int `yaml:"mutableHops"`

	// MinTraceWidth feeds unravel's cost model (tunedTotalCapacity).
	MinTraceWidth float64 `yaml:"minTraceWidth"`

	// MaxIterations bounds the Unravel Solver's search. Zero means unbounded.
	MaxIterations int `yaml:"maxIterations"`

	// QueueMode selects the solver's expansion order: "fifo" (default) or
	// "priority".
	QueueMode string `yaml:"queueMode"`

	// Colors maps a debug role ("obstacle", "target", "free", "segment") to
	// a viz.Scene color string, looked up through ColorOf. cmd/meshctl's
	// --viz-out snapshots do not read it: the Visualize methods of mesh,
	// section and unravel use fixed colors.
	Colors map[string]string `yaml:"colors"`
}

// Default returns the configuration cmd/meshctl uses when no --config flag
// is given.
func Default() *Config {
	return &Config{
		MaxDepth:      mesh.DefaultMaxDepth,
		MutableHops:   1,
		MinTraceWidth: 1,
		MaxIterations: unravel.DefaultMaxIterations,
		QueueMode:     "fifo",
		Colors: map[string]string{
			"free":     "green",
			"target":   "blue",
			"obstacle": "red",
			"segment":  "black",
		},
	}
}

// Load reads and parses a YAML config file at path on top of Default, so
// anything the file omits keeps its default value; a value the file sets
// explicitly, zero included, replaces it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("meshcfg: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("meshcfg: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects negative depth/hop counts before they reach mesh or
// section, which would otherwise surface a less specific error.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return ErrInvalidMaxDepth
	}
	if c.MutableHops < 0 {
		return ErrInvalidMutableHops
	}

	return nil
}

// MeshConfig projects c onto mesh.Config.
func (c *Config) MeshConfig() mesh.Config {
	return mesh.Config{MaxDepth: c.MaxDepth}
}

// SolverOptions projects c onto unravel.Options.
func (c *Config) SolverOptions() unravel.Options {
	mode := unravel.FIFOQueueMode
	if c.QueueMode == "priority" {
		mode = unravel.PriorityQueueMode
	}

	return unravel.Options{
		MinTraceWidth: c.MinTraceWidth,
		QueueMode:     mode,
		MaxIterations: c.MaxIterations,
	}
}

// ColorOf returns the configured color for role, falling back to a neutral
// gray when role is not in the map.
func (c *Config) ColorOf(role string) string {
	if color, ok := c.Colors[role]; ok {
		return color
	}

	return "gray"
}
