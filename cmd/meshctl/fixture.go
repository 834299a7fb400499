package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nodemesh/router/meshcfg"
	"github.com/nodemesh/router/routejson"
	"github.com/nodemesh/router/viz"
)

// loadFixture decodes a SimpleRouteJson document from path.
func loadFixture(path string) (*routejson.SimpleRouteJson, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshctl: open fixture %s: %w", path, err)
	}
	defer f.Close()

	return routejson.Decode(f)
}

// loadConfig returns meshcfg.Default() when path is empty, or the parsed
// file at path otherwise.
func loadConfig(path string) (*meshcfg.Config, error) {
	if path == "" {
		return meshcfg.Default(), nil
	}

	return meshcfg.Load(path)
}

// writeViz JSON-encodes scene to path, skipping the write entirely when
// path is empty (the flag was not given).
func writeViz(path string, scene *viz.Scene) error {
	if path == "" {
		return nil
	}
	data, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return fmt.Errorf("meshctl: encode viz scene: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
