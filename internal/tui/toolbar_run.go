package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/testrunner/toolbar/internal/app"
)

// RunToolbar starts the toolbar TUI for cfg. cfgPath, when set, is watched and
// reloaded on change. overrides, when set, is applied to cfg and again to
// every reloaded config so command-line flags keep winning over the file.
func RunToolbar(cfg app.Config, cfgPath string, overrides func(*app.Config), logger *slog.Logger) error {
	m := newModel(cfg, cfgPath, overrides, logger)
	if err := m.watchConfig(); err != nil {
		m.log.Warn("config hot reload disabled", "path", cfgPath, "err", err)
	}
	defer m.close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
