package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/adjustable/pkg/linear"
	"github.com/matzehuels/adjustable/pkg/scene"
)

const (
	// DefaultCells is the number of terminal cells the viewport extent is
	// scaled to along the main axis.
	DefaultCells = 20

	// DefaultCross is the number of cells used for the cross axis.
	DefaultCross = 28
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleItem     = lipgloss.NewStyle().Foreground(colorGray).Background(lipgloss.Color("236"))
	styleAdjusted = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(colorCyan)
	styleSlack    = lipgloss.NewStyle().Foreground(colorDim)
	styleFrame    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleSummary  = lipgloss.NewStyle().Foreground(colorDim)
)

type textConfig struct {
	cells int
	cross int
	table bool
}

// TextOption configures Text.
type TextOption func(*textConfig)

// WithCells scales the viewport extent to n cells along the main axis.
func WithCells(n int) TextOption {
	return func(c *textConfig) {
		if n > 0 {
			c.cells = n
		}
	}
}

// WithCross sets the diagram size along the cross axis.
func WithCross(n int) TextOption {
	return func(c *textConfig) {
		if n > 0 {
			c.cross = n
		}
	}
}

// WithoutTable omits the bounds table.
func WithoutTable() TextOption {
	return func(c *textConfig) { c.table = false }
}

// Text renders r as a diagram, a bounds table, and a one-line summary.
func Text(r scene.Result, opts ...TextOption) string {
	cfg := textConfig{cells: DefaultCells, cross: DefaultCross, table: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	b.WriteString(styleFrame.Render(diagram(r, cfg)))
	b.WriteString("\n")
	if cfg.table {
		b.WriteString(boundsTable(r))
		b.WriteString("\n")
	}
	b.WriteString(styleSummary.Render(Summary(r)))
	return b.String()
}

// Summary describes the layout decision in one line.
func Summary(r scene.Result) string {
	parts := []string{
		fmt.Sprintf("%d items", len(r.Items)),
		fmt.Sprintf("%d/%d used", r.Consumed, r.Extent),
		fmt.Sprintf("%d pass", r.Passes),
	}
	if r.Passes != 1 {
		parts[2] += "es"
	}
	switch {
	case r.Resolved > 0:
		parts = append(parts, fmt.Sprintf("adjusted to %d", r.Resolved))
	case r.Qualifying > 1:
		parts = append(parts, fmt.Sprintf("%d adjustable items", r.Qualifying))
	}
	return strings.Join(parts, " · ")
}

// diagram draws one block per item, sized proportionally to its main-axis
// extent. Blocks keep at least one cell so every item stays visible.
func diagram(r scene.Result, cfg textConfig) string {
	o, _ := linear.ParseOrientation(r.Orientation)
	if len(r.Items) == 0 || r.Extent <= 0 {
		return block(o, styleSlack, "empty", cfg.cells, cfg.cross)
	}

	blocks := make([]string, 0, len(r.Items)+1)
	used := 0
	for _, it := range r.Items {
		main := linear.Size{Width: it.Width, Height: it.Height}.Main(o)
		n := max(1, scale(main, r.Extent, cfg.cells))
		used += n

		style := styleItem
		if it.Adjusted {
			style = styleAdjusted
		}
		blocks = append(blocks, block(o, style, label(it), n, cfg.cross))
	}
	if rest := cfg.cells - used; rest > 0 && r.Consumed < r.Extent {
		blocks = append(blocks, block(o, styleSlack, "", rest, cfg.cross))
	}

	if o == linear.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func block(o linear.Orientation, style lipgloss.Style, text string, main, cross int) string {
	w, h := cross, main
	if o == linear.Horizontal {
		w, h = main, cross
	}
	text = truncate(text, w)
	return style.Width(w).Height(h).MaxWidth(w).MaxHeight(h).Render(text)
}

func label(it scene.PlacedItem) string {
	if it.Label != "" {
		return it.Label
	}
	return "#" + strconv.Itoa(it.Position)
}

func scale(v, extent, cells int) int {
	return int(math.Round(float64(v) * float64(cells) / float64(extent)))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func boundsTable(r scene.Result) string {
	rows := make([][]string, len(r.Items))
	for i, it := range r.Items {
		mark := ""
		if it.Adjusted {
			mark = "adjusted"
		}
		rows[i] = []string{
			strconv.Itoa(it.Position),
			strconv.Itoa(it.Type),
			it.Label,
			strconv.Itoa(it.X),
			strconv.Itoa(it.Y),
			strconv.Itoa(it.Width),
			strconv.Itoa(it.Height),
			mark,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Type", "Label", "X", "Y", "W", "H", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row >= 0 && row < len(r.Items) && r.Items[row].Adjusted {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}
