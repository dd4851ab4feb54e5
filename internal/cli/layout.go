package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjustable/pkg/errors"
	"github.com/matzehuels/adjustable/pkg/linear"
	"github.com/matzehuels/adjustable/pkg/scene"
)

// layoutFlags holds the overrides accepted by the layout and preview commands.
// Only flags the user actually set are applied to the scene.
type layoutFlags struct {
	viewport string
	minSize  int
	minRatio float64
	adjType  int
	position int
	maxCount int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.viewport, "viewport", "", "viewport size as WIDTHxHEIGHT (e.g. 40x24)")
	cmd.Flags().IntVar(&f.minSize, "min-size", 0, "minimum main-axis size of the adjustable item")
	cmd.Flags().Float64Var(&f.minRatio, "min-ratio", 0, "minimum size as a ratio of the item's cross size")
	cmd.Flags().IntVar(&f.adjType, "type", 0, "type tag of the adjustable item")
	cmd.Flags().IntVar(&f.position, "position", -1, "position of the adjustable item (-1 for any)")
	cmd.Flags().IntVar(&f.maxCount, "max-count", 0, "skip adjustment above this many items (0 disables)")
}

// apply copies the set flags onto s and revalidates it.
func (f *layoutFlags) apply(s *scene.Scene, changed func(name string) bool) error {
	if changed("viewport") {
		size, err := parseViewport(f.viewport)
		if err != nil {
			return err
		}
		s.Viewport = size
	}
	if changed("min-size") {
		s.Adjust.MinSize = f.minSize
	}
	if changed("min-ratio") {
		s.Adjust.MinRatio = f.minRatio
	}
	if changed("type") {
		s.Adjust.AdjustableType = f.adjType
	}
	if changed("position") {
		s.Adjust.AdjustablePosition = f.position
	}
	if changed("max-count") {
		s.Adjust.MaxCount = f.maxCount
	}
	return s.Validate()
}

// parseViewport parses "WIDTHxHEIGHT".
func parseViewport(v string) (linear.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(v), "x")
	if !ok {
		return linear.Size{}, errors.New(errors.ErrCodeInvalidInput, "viewport %q must be WIDTHxHEIGHT", v)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width <= 0 {
		return linear.Size{}, errors.New(errors.ErrCodeInvalidInput, "viewport width %q must be a positive integer", w)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height <= 0 {
		return linear.Size{}, errors.New(errors.ErrCodeInvalidInput, "viewport height %q must be a positive integer", h)
	}
	return linear.Size{Width: width, Height: height}, nil
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		flags   layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [scene.toml|scene.json]",
		Short: "Compute the layout of a scene",
		Long: `Compute the layout of a scene.

The layout command reads a scene file, runs the two-pass adjustable layout and
writes the placed items to <scene>.layout.json. Flags override the scene's
viewport and adjustment settings for this run only.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, noCache, &flags, cmd.Flags().Changed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <scene>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.register(cmd)

	return cmd
}

// runLayout loads the scene, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output string, noCache bool, flags *layoutFlags, changed func(string) bool) error {
	s, err := scene.Load(input)
	if err != nil {
		return err
	}
	if err := flags.apply(s, changed); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	res, cacheHit, err := runner.Layout(ctx, s)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	prog.done("layout complete", "scene", s.Name, "items", len(res.Items), "passes", res.Passes, "cached", cacheHit)

	outputPath := output
	if outputPath == "" {
		outputPath = layoutPath(input)
	}
	if err := scene.WriteResultFile(res, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	c.ui.success("Layout complete")
	c.ui.file(outputPath)
	c.ui.stats(res, cacheHit)
	c.ui.nextStep("Render", appName+" render "+outputPath)
	return nil
}

// layoutPath returns the default output path for a scene file.
func layoutPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
}
