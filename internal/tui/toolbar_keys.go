package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if m.header.NeedsURL() {
		return m.handleURLEntryKeys(msg)
	}
	return m.handleToolbarKeys(msg)
}

// handleURLEntryKeys handles keyboard input while the studio waits for a URL.
// Enter is consumed here and never reaches anything else.
func (m *model) handleURLEntryKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if !m.header.CanSubmit() {
			return nil
		}
		if _, ok := m.header.SubmitURL(); ok {
			m.urlInput.SetValue("")
			return urlLoadedAfter(urlLoadDelay)
		}
		return nil
	case "esc", "ctrl+g":
		m.header.CancelStudio()
		return nil
	case "ctrl+u":
		m.urlInput.SetValue("")
		m.header.SetURLInput("")
		return nil
	case "ctrl+c":
		return tea.Quit
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	m.header.SetURLInput(m.urlInput.Value())
	return cmd
}

// handleToolbarKeys handles keyboard shortcuts outside URL entry.
func (m *model) handleToolbarKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "p":
		if !m.header.TogglePlayground() {
			m.statusMsg = "Playground unavailable while running or recording"
			return clearStatusAfter(2 * time.Second)
		}
		return nil
	case "s":
		if m.studio.IsActive() {
			return nil
		}
		m.studio.Start()
		m.addActivity("studio started (session " + m.studio.SessionID().String()[:8] + ")")
		return nil
	case "esc":
		if m.studio.IsActive() {
			m.header.CancelStudio()
		}
		return nil
	case "v":
		m.header.ToggleViewportMenu()
		return nil
	case "o":
		if err := m.header.OpenCurrentURL(); err != nil {
			m.statusMsg = "Open failed: " + err.Error()
			return clearStatusAfter(3 * time.Second)
		}
		return nil
	case "y":
		u := m.runner.State().URL
		if u == "" {
			return nil
		}
		if err := clipboard.WriteAll(u); err == nil {
			m.statusMsg = "Copied!"
		} else {
			m.statusMsg = "Copy failed: " + err.Error()
		}
		return clearStatusAfter(2 * time.Second)
	case "r":
		st := m.runner.State()
		switch {
		case st.IsLoading:
			return nil
		case st.IsRunning:
			m.runner.SetRunning(false)
			m.addActivity("run finished")
			return nil
		}
		m.runner.SetLoading(true)
		m.addActivity("loading spec")
		return specLoadedAfter(urlLoadDelay)
	case "x":
		m.runner.SetURL("")
		m.addActivity("page cleared")
		return nil
	}

	// Everything else scrolls the activity log.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}
