package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/YelzhanWeb/aquave/internal/app/scheduler"
	"github.com/YelzhanWeb/aquave/internal/app/storefront"
)

// Run blocks until the visitor quits or ctx is canceled. queue must be the
// scheduler the session was built on.
func Run(ctx context.Context, session *storefront.Session, queue *scheduler.Queued) error {
	defer queue.Close()

	p := tea.NewProgram(New(session, queue), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal storefront: %w", err)
	}
	return nil
}
