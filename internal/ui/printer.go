package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detail is one key/value line in a header or result box.
type Detail struct {
	Key   string
	Value string
}

// Printer provides methods for printing UI components to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// WithWidth fixes the render width, mainly for tests.
func (p *Printer) WithWidth(width int) *Printer {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	p.width = width
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params []Detail) {
	p.Println(RenderHeader(title, command, params, p.width))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details []Detail) {
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintError prints an error result box with optional hints
func (p *Printer) PrintError(title string, err error, hints []string) {
	p.Println(RenderErrorBox(title, err, hints, p.width))
}

// RenderHeader renders a command header box
func RenderHeader(title, command string, params []Detail, width int) string {
	titleLine := HeaderTitleStyle.Render(strings.ToUpper(title))
	commandLine := HeaderCommandStyle.Render(command)
	sections := []string{titleLine, commandLine}

	if len(params) > 0 {
		dividerWidth := width - 6
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		divider := lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Render(strings.Repeat("─", dividerWidth))
		sections = append(sections, divider)

		for _, param := range params {
			keyStyled := HeaderParamKeyStyle.Render(param.Key + ":")
			valueStyled := HeaderParamValueStyle.Render(param.Value)
			sections = append(sections, keyStyled+" "+valueStyled)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return HeaderBorderStyle(width).Render(content)
}

// RenderSuccessBox renders a success result box
func RenderSuccessBox(title string, details []Detail, width int) string {
	lines := []string{
		SuccessTitleStyle.Render(SuccessMarker + "  " + title),
		"",
	}

	for _, d := range details {
		keyStyled := ResultKeyStyle.Render(d.Key + ":")
		valueStyled := ResultValueStyle.Render(d.Value)
		lines = append(lines, keyStyled+" "+valueStyled)
	}

	return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error result box
func RenderErrorBox(title string, err error, hints []string, width int) string {
	lines := []string{
		ErrorTitleStyle.Render(FailureMarker + "  " + title),
	}

	if err != nil {
		lines = append(lines, "", ErrorMessageStyle.Render(err.Error()))
	}

	if len(hints) > 0 {
		lines = append(lines, "")
		for _, hint := range hints {
			lines = append(lines, HintStyle.Render("• "+hint))
		}
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}
