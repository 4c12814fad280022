package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pinwall/pinwall/pkg/board"
	"github.com/pinwall/pinwall/pkg/layout"
	"github.com/pinwall/pinwall/pkg/pipeline"
)

// arrangeOpts holds the command-line flags for the arrange command.
type arrangeOpts struct {
	output      string // output file path; "-" writes JSON to stdout
	strategy    string // arrangement strategy name
	width       float64
	height      float64
	seed        uint64
	orientation string // chain direction for structured: "rows" or "columns"
	noCache     bool   // skip the arrangement cache entirely
	refresh     bool   // recompute even when a cached arrangement exists
	interactive bool   // pick the strategy with the TUI list
}

// arrangeCommand creates the arrange command. Flag defaults come from the
// user's config file, so a bare "pinwall arrange board.json" uses the
// configured strategy and canvas size.
func (c *CLI) arrangeCommand() *cobra.Command {
	opts := arrangeOpts{
		strategy:    c.Config.Strategy,
		seed:        c.Config.Seed,
		orientation: c.Config.Orientation,
	}

	cmd := &cobra.Command{
		Use:   "arrange [file]",
		Short: "Compute positions for every note on a board",
		Long: `Arrange reads a board file, resolves which ideas attach to which
anchor, computes canvas positions with the chosen strategy, and writes
the arranged board back out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArrange(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: overwrite input, '-' for stdout)")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", opts.strategy, "arrangement strategy: messy, organized, structured, diamond, cornered")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width (0: board's own, then the configured default)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height (0: board's own, then the configured default)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed for the messy, diamond, and cornered strategies")
	cmd.Flags().StringVar(&opts.orientation, "orientation", opts.orientation, "chain direction for structured: rows or columns")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the arrangement cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached arrangement exists")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the strategy interactively")

	return cmd
}

// runArrange loads the board, runs the pipeline, and writes the result.
func (c *CLI) runArrange(ctx context.Context, input string, opts *arrangeOpts) error {
	if opts.interactive {
		initial, err := layout.ParseStrategy(opts.strategy)
		if err != nil {
			initial = layout.StrategyOrganized
		}
		picked, ok, err := pickStrategy(initial)
		if err != nil {
			return err
		}
		if !ok {
			printInfo("No strategy selected")
			return nil
		}
		opts.strategy = string(picked)
	}

	b, err := board.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	c.Logger.Debug("loaded board", "file", input, "items", len(b.Items))

	// Zero means the board's own canvas size, then the configured default.
	width, height := opts.width, opts.height
	if width == 0 {
		if width = b.Width; width == 0 {
			width = c.Config.Width
		}
	}
	if height == 0 {
		if height = b.Height; height == 0 {
			height = c.Config.Height
		}
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Arranging %d notes (%s)", len(b.Items), opts.strategy))
	spinner.Start()

	prog := newProgress(c.Logger)
	result, err := runner.Arrange(ctx, b, pipeline.Options{
		Strategy:    opts.strategy,
		Width:       width,
		Height:      height,
		Seed:        opts.seed,
		Orientation: opts.orientation,
		Refresh:     opts.refresh,
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Arrangement failed: %v", err))
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Arranged %d notes", result.Stats.ItemCount))

	printSuccess("Arranged %s with the %s strategy", input, opts.strategy)
	printStats(result.Stats.AnchorCount, result.Stats.IdeaCount, result.CacheInfo.LayoutHit)

	output := opts.output
	if output == "" {
		output = input
	}
	if output == "-" {
		return board.Write(result.Board, os.Stdout)
	}
	if err := board.WriteFile(result.Board, output); err != nil {
		return fmt.Errorf("write board: %w", err)
	}
	printFile(output)
	printNextStep("Try another look", fmt.Sprintf("pinwall arrange %s -s diamond", output))
	return nil
}
