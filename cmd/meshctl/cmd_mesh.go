package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodemesh/router/mesh"
)

var meshBuildCmd = &cobra.Command{
	Use:   "build <fixture.json>",
	Short: "Build the capacity mesh for a SimpleRouteJson fixture and derive its edges",
	Args:  cobra.ExactArgs(1),
	RunE:  runMeshBuild,
}

func runMeshBuild(cmd *cobra.Command, args []string) error {
	input, err := loadFixture(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	b, err := mesh.NewBuilder(input, cfg.MeshConfig())
	if err != nil {
		return fmt.Errorf("meshctl: new builder: %w", err)
	}
	if err := b.Run(context.Background()); err != nil {
		return fmt.Errorf("meshctl: build mesh: %w", err)
	}

	cells := b.Finished()
	es := mesh.BuildEdges(cells)

	fmt.Fprintf(cmd.OutOrStdout(), "cells=%d segments=%d warnings=%d\n", len(cells), len(es.Segments), len(b.Warnings()))
	for _, w := range b.Warnings() {
		fmt.Fprintln(cmd.OutOrStdout(), "warning:", w)
	}

	return writeViz(vizOutPath, b.Visualize(es))
}
