package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/adjustable/pkg/render"
	"github.com/matzehuels/adjustable/pkg/scene"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - titles
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorBlue  = lipgloss.Color("75")  // Light blue - commands
	colorWhite = lipgloss.Color("255") // Bright white - paths
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleOK      = lipgloss.NewStyle().Foreground(colorGreen)
	styleNote    = lipgloss.NewStyle().Foreground(colorGray)
	stylePath    = lipgloss.NewStyle().Foreground(colorWhite)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconArrow   = "→"
)

// printer writes human-facing status lines. Results that other tools may
// consume (rendered layouts, paths) go to the command's output instead.
type printer struct {
	w io.Writer
}

func (p printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

// success prints a check-marked message.
func (p printer) success(format string, args ...any) {
	p.line(styleOK.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// info prints a status message.
func (p printer) info(format string, args ...any) {
	p.line(styleNote.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// detail prints an indented muted line.
func (p printer) detail(format string, args ...any) {
	p.line("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// file prints a written output path.
func (p printer) file(path string) {
	p.line("  " + StyleDim.Render(iconArrow) + " " + stylePath.Render(path))
}

// stats prints the layout summary followed by where the result came from.
func (p printer) stats(res scene.Result, cached bool) {
	source := styleNote.Render("fresh")
	if cached {
		source = styleOK.Render("cached")
	}
	p.line("  " + StyleDim.Render(render.Summary(res)+" · ") + source)
}

// nextStep prints a suggested follow-up command after a blank line.
func (p printer) nextStep(description, cmd string) {
	p.line("")
	p.line(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
