package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/adjustable/pkg/adjust"
	"github.com/matzehuels/adjustable/pkg/linear"
	"github.com/matzehuels/adjustable/pkg/render"
	"github.com/matzehuels/adjustable/pkg/scene"
)

var (
	previewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	previewErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// previewSteps is how many key presses it takes to move the viewport by its
// initial main extent.
const previewSteps = 20

// =============================================================================
// PreviewModel - Interactive layout preview
// =============================================================================

// PreviewModel is the bubbletea model for the interactive layout preview.
// Every change relays the scene through a long-lived adjust.Manager, so
// configuration changes go through its setters.
type PreviewModel struct {
	Scene  *scene.Scene
	Result scene.Result
	Err    error

	manager *adjust.Manager
	cells   int
	step    int
}

// NewPreviewModel creates a preview of s and computes its first layout.
func NewPreviewModel(s *scene.Scene, cells int, opts ...adjust.Option) PreviewModel {
	m := PreviewModel{
		Scene:   s,
		manager: adjust.NewManager(append([]adjust.Option{adjust.WithConfig(s.Adjust)}, opts...)...),
		cells:   cells,
	}
	m.step = max(1, m.mainExtent()/previewSteps)
	m.relayout()
	return m
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	changed := false
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "+", "=":
		m.resize(m.step)
		changed = true
	case "-", "_":
		m.resize(-m.step)
		changed = true
	case "t":
		if m.Scene.Options().Orientation == linear.Vertical {
			m.Scene.Orientation = linear.Horizontal.String()
		} else {
			m.Scene.Orientation = linear.Vertical.String()
		}
		changed = true
	case "m":
		m.manager.SetMinSize(m.manager.Config().MinSize + m.step)
	case "M":
		m.manager.SetMinSize(max(0, m.manager.Config().MinSize-m.step))
	}

	if changed || m.manager.NeedsLayout() {
		m.relayout()
	}
	return m, nil
}

// mainExtent returns the viewport size along the list's main axis.
func (m PreviewModel) mainExtent() int {
	return m.Scene.Viewport.Main(m.Scene.Options().Orientation)
}

// resize grows or shrinks the viewport along the main axis, keeping it
// at least one unit long.
func (m *PreviewModel) resize(delta int) {
	if m.Scene.Options().Orientation == linear.Vertical {
		m.Scene.Viewport.Height = max(1, m.Scene.Viewport.Height+delta)
	} else {
		m.Scene.Viewport.Width = max(1, m.Scene.Viewport.Width+delta)
	}
}

func (m *PreviewModel) relayout() {
	host := m.Scene.Host()
	res, err := m.manager.Layout(host)
	if err != nil {
		m.Err = err
		return
	}
	m.Err = nil
	m.Scene.Adjust = m.manager.Config()
	m.Result = scene.NewResult(m.Scene, host, m.Scene.Adjust, res)
}

func (m PreviewModel) View() string {
	var b strings.Builder

	title := "Preview"
	if m.Scene.Name != "" {
		title += " " + m.Scene.Name
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("+/- resize  t orientation  m/M min size  q quit"))
	b.WriteString("\n\n")

	b.WriteString(render.Text(m.Result, render.WithCells(m.cells), render.WithoutTable()))
	b.WriteString("\n\n")

	cfg := m.manager.Config()
	minLabel := "natural"
	switch {
	case cfg.MinSize > 0:
		minLabel = fmt.Sprint(cfg.MinSize)
	case cfg.MinRatio > 0:
		minLabel = fmt.Sprintf("%.2f × cross", cfg.MinRatio)
	}
	b.WriteString(previewHelpStyle.Render(fmt.Sprintf("  viewport %dx%d · %s · min size %s",
		m.Scene.Viewport.Width, m.Scene.Viewport.Height, m.Result.Orientation, minLabel)))

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(previewErrorStyle.Render("  " + m.Err.Error()))
	}
	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "preview [scene.toml|scene.json]",
		Short: "Interactively resize a scene and watch the adjustable item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			if err := flags.apply(s, cmd.Flags().Changed); err != nil {
				return err
			}

			model := NewPreviewModel(s, c.config().Output.Cells, adjust.WithLogger(c.Logger))
			if model.Err != nil {
				return model.Err
			}
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
