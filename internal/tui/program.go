package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/orderchat/internal/session"
)

// Options controls how the interactive program is started.
type Options struct {
	AltScreen bool
	Styles    Styles
	Input     io.Reader // Defaults to stdin
	Output    io.Writer // Defaults to stdout
}

// Run starts the interactive UI for sess and blocks until the user quits.
func Run(sess *session.Session, opts Options) error {
	model := NewAppModel(sess, opts.Styles)

	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return fmt.Errorf("orderchat UI failed: %w", err)
	}
	return nil
}
