package main

import (
	"github.com/spf13/cobra"
)

// rootCmd is the meshctl entry point: a thin debug shell over the mesh,
// section, and unravel packages.
var rootCmd = &cobra.Command{
	Use:   "meshctl",
	Short: "Debug driver for the capacity-mesh autorouter core",
}

// meshCmd groups mesh-construction subcommands.
var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Capacity Mesh Builder commands",
}

// unravelCmd groups Section/Unravel subcommands.
var unravelCmd = &cobra.Command{
	Use:   "unravel",
	Short: "Section Builder and Unravel Solver commands",
}

func init() {
	rootCmd.AddCommand(meshCmd)
	rootCmd.AddCommand(unravelCmd)

	meshCmd.AddCommand(meshBuildCmd)
	unravelCmd.AddCommand(unravelSolveCmd)

	meshBuildCmd.Flags().StringVar(&configPath, "config", "", "path to a meshcfg YAML file (defaults applied if omitted)")
	meshBuildCmd.Flags().StringVar(&vizOutPath, "viz-out", "", "path to write a viz.Scene JSON snapshot")

	unravelSolveCmd.Flags().StringVar(&configPath, "config", "", "path to a meshcfg YAML file (defaults applied if omitted)")
	unravelSolveCmd.Flags().StringVar(&vizOutPath, "viz-out", "", "path to write a viz.Scene JSON snapshot")
}

// configPath and vizOutPath back each subcommand's own --config/--viz-out
// flag instances (Cobra binds a fresh string per Flags() call above, these
// just name the shared Go variables the flag values land in).
var (
	configPath string
	vizOutPath string
)
