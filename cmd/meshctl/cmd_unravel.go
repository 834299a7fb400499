package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodemesh/router/mesh"
	"github.com/nodemesh/router/section"
	"github.com/nodemesh/router/unravel"
)

var unravelSolveCmd = &cobra.Command{
	Use:   "solve <fixture.json> <section-root>",
	Short: "Build a section rooted at section-root and run the Unravel Solver over it",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnravelSolve,
}

func runUnravelSolve(cmd *cobra.Command, args []string) error {
	fixturePath, rootArg := args[0], args[1]

	input, err := loadFixture(fixturePath)
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

	finished := b.Finished()
	es := mesh.BuildEdges(finished)

	cells := make(map[mesh.CellID]*mesh.Cell, len(finished))
	for _, c := range finished {
		cells[c.ID] = c
	}

	root := mesh.CellID(rootArg)
	sec, err := section.BuildSection(root, es.Segments, es, cfg.MutableHops)
	if err != nil {
		return fmt.Errorf("meshctl: build section: %w", err)
	}

	solver, err := unravel.NewSolver(sec, cells, cfg.SolverOptions())
	if err != nil {
		return fmt.Errorf("meshctl: new solver: %w", err)
	}
	if err := solver.Run(context.Background()); err != nil {
		return fmt.Errorf("meshctl: run solver: %w", err)
	}

	best := solver.BestCandidate()
	fmt.Fprintf(cmd.OutOrStdout(), "root=%s nodes=%d issues=%d g=%.4g ops=%d\n",
		root, len(sec.AllNodeIDs), len(best.Issues), best.G, best.OperationsPerformed)

	return writeViz(vizOutPath, best.Visualize(sec, cells))
}
