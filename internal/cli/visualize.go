package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ordbench/layerheur/pkg/visualize"
)

// visualizeCommand renders a graph's current ordering to SVG — a debug
// aid over an already-computed order snapshot, not a layout engine
// (SPEC_FULL.md's Non-goals), adapted from the teacher's visualizeCommand
// in internal/cli/cli.go which plays the analogous role for its own
// layout format.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		ordPath       string
		output        string
		showCrossings bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [graph.sgf|graph.dot]",
		Short: "Render a layered graph's current ordering to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(cmd.Context(), args[0], ordPath, output, showCrossings)
		},
	}

	cmd.Flags().StringVar(&ordPath, "ord", "", "path to the paired .ord file (required when the input is DOT)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output SVG path (default: <input>.svg)")
	cmd.Flags().BoolVar(&showCrossings, "show-crossings", false, "label each edge with its current crossing count")

	return cmd
}

func (c *CLI) runVisualize(ctx context.Context, input, ordPath, output string, showCrossings bool) error {
	g, err := c.loadGraph(input, ordPath)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	}

	spinner := newSpinnerWithContext(ctx, "rendering "+output)
	spinner.Start()
	svg, err := visualize.RenderSVG(ctx, g, visualize.Options{ShowCrossings: showCrossings})
	if err != nil {
		spinner.StopWithError(err.Error())
		return fmt.Errorf("render svg: %w", err)
	}
	spinner.Stop()

	if err := os.WriteFile(output, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Rendered %d nodes, %d edges", g.NumNodes(), g.NumEdges())
	printFile(output)
	return nil
}
