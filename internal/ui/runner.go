package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neur0map/tinybombe/internal/scanner"
)

// Runner manages the TUI lifecycle
type Runner struct {
	model     Model
	altScreen bool
	extra     []tea.ProgramOption
}

// NewRunner creates a watch view runner over sc. The view logs through
// opts.Logger; stdout belongs to the TUI, so callers point it at a file.
func NewRunner(sc *scanner.Scanner, opts Options, altScreen bool, extra ...tea.ProgramOption) *Runner {
	return &Runner{model: NewModel(sc, opts), altScreen: altScreen, extra: extra}
}

// Run starts the TUI and blocks until it exits, returning what was swept
func (r *Runner) Run(ctx context.Context) (scanner.Result, error) {
	r.model.logger.Info("TUI starting", "window", r.model.start.Window(), "links", len(r.model.scanner.Menu()))

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, r.extra...)

	final, err := tea.NewProgram(r.model, opts...).Run()
	if m, ok := final.(Model); ok {
		r.model = m
	}
	if err != nil {
		return r.model.Result(), fmt.Errorf("watch view: %w", err)
	}
	r.model.logger.Info("TUI stopped", "steps", r.model.steps, "stops", len(r.model.stops))
	return r.model.Result(), nil
}
