package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjustable/pkg/pipeline"
	"github.com/matzehuels/adjustable/pkg/scene"
)

// renderCommand creates the render command for printing computed layouts.
func (c *CLI) renderCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a computed layout as a text diagram or JSON",
		Long: `Render a computed layout as a text diagram or JSON.

The render command reads a layout.json file (produced by 'layout') and prints
it. The text format draws the list proportionally with the adjusted item
highlighted, followed by a table of item bounds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = c.config().Output.Format
			}
			if err := pipeline.ValidateFormat(format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], format, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json (default from config)")

	return cmd
}

// runRender reads a layout result and writes it in format to output or w.
func (c *CLI) runRender(ctx context.Context, input, format, output string, w io.Writer) error {
	res, err := scene.ReadResultFile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	data, err := runner.Render(ctx, res, format)
	if err != nil {
		return err
	}

	if output == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	c.ui.success("Rendered %s", format)
	c.ui.file(output)
	return nil
}
