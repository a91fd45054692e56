package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/testrunner/toolbar/internal/app"
)

// urlLoadDelay is how long the runner pretends to load a visited URL.
const urlLoadDelay = 600 * time.Millisecond

// urlLoadedMsg ends the URL loading indicator.
type urlLoadedMsg struct{}

// specLoadedMsg ends spec loading and starts the run.
type specLoadedMsg struct{}

// clearStatusMsg is sent after a delay to clear the status message.
type clearStatusMsg struct{}

// configReloadedMsg carries a reloaded config file.
type configReloadedMsg struct {
	reload app.ConfigReload
}

// configWatchEndedMsg is sent when the watcher channel closes.
type configWatchEndedMsg struct{}

// clearStatusAfter returns a command that clears the status after duration.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func urlLoadedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return urlLoadedMsg{}
	})
}

func specLoadedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return specLoadedMsg{}
	})
}

// listenConfigCmd waits for the next config reload.
func listenConfigCmd(ch <-chan app.ConfigReload) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return configWatchEndedMsg{}
		}
		return configReloadedMsg{reload: r}
	}
}

// Update handles one event and then runs the settling point, so resize and
// focus checks see the state the event left behind.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if settle := m.settle(); settle != nil {
		cmd = tea.Batch(cmd, settle)
	}
	return m, cmd
}

func (m *model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.runner.SetWindowHeight(msg.Height, m.measureHeader)
		return nil

	case urlLoadedMsg:
		m.runner.SetLoadingURL(false)
		m.runner.SetHighlightURL(false)
		return nil

	case specLoadedMsg:
		m.runner.SetLoading(false)
		m.runner.SetRunning(true)
		m.addActivity("run started")
		return nil

	case clearStatusMsg:
		m.statusMsg = ""
		return nil

	case configReloadedMsg:
		return m.handleConfigReload(msg.reload)

	case configWatchEndedMsg:
		m.reloads = nil
		return nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return nil
}

func (m *model) handleConfigReload(r app.ConfigReload) tea.Cmd {
	var next tea.Cmd
	if m.reloads != nil {
		next = listenConfigCmd(m.reloads)
	}
	if r.Err != nil {
		m.log.Warn("config reload failed", "path", m.cfgPath, "err", r.Err)
		m.statusMsg = "Config error: " + r.Err.Error()
		return tea.Batch(next, clearStatusAfter(3*time.Second))
	}
	cfg := r.Config
	if m.overrides != nil {
		m.overrides(&cfg)
	}
	m.header.ApplyConfig(cfg)
	m.runner.SetDefaults(cfg.Viewport)
	if cfg.Browser != m.opener.Command {
		m.opener = app.NewBrowserOpener(cfg.Browser)
		m.header.SetOpener(m.opener)
	}
	m.addActivity("config reloaded")
	m.statusMsg = "Config reloaded"
	return tea.Batch(next, clearStatusAfter(2*time.Second))
}

// settle reports height changes to the runner and keeps the URL input focused
// while the studio needs a URL.
func (m *model) settle() tea.Cmd {
	res := m.header.Settle(m.measureHeader)
	m.syncViewport()
	switch {
	case res.FocusURL && !m.urlInput.Focused():
		m.urlInput.SetValue(m.header.URLInput())
		m.urlInput.CursorEnd()
		return m.urlInput.Focus()
	case !res.FocusURL && m.urlInput.Focused():
		m.urlInput.Blur()
		m.urlInput.SetValue("")
	}
	return nil
}

// measureHeader is the rendered height of the toolbar.
func (m *model) measureHeader() int {
	return lipgloss.Height(m.viewHeader())
}

// syncViewport sizes the body to what the runner leaves below the header and
// follows the end of the activity log whenever the content changes.
func (m *model) syncViewport() {
	footerLines := lipgloss.Height(m.viewFooter(m.width))
	m.viewport.Width = clampMin(m.width, 0)
	m.viewport.Height = clampMin(m.runner.BodyHeight()-footerLines, 1)
	content := m.viewBody()
	if content != m.bodyContent {
		m.bodyContent = content
		m.viewport.SetContent(content)
		m.viewport.GotoBottom()
	}
}
