package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/service"
	"todo/internal/todo"
)

// Run starts the interactive UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, svc service.Service, tpl todo.Template, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctx, svc, tpl),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
