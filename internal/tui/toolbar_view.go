package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

func clampMin(n, min int) int {
	if n < min {
		return min
	}
	return n
}

func (m *model) View() string {
	// Wait until we get an initial window size.
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	return m.viewHeader() + "\n" + m.viewport.View() + "\n" + m.viewFooter(m.width)
}

// viewHeader renders the toolbar: controls line, overlay panels, divider.
func (m *model) viewHeader() string {
	pg := m.viewPlaygroundButton()
	vp := m.viewViewportButton()
	avail := clampMin(m.width-lipgloss.Width(pg)-lipgloss.Width(vp)-2, 1)
	line := pg + " " + m.viewURLBar(avail) + " " + vp

	parts := []string{line}
	if m.playground.IsOpen() {
		parts = append(parts, m.viewPlaygroundPanel())
	}
	if m.studio.IsOpen() {
		parts = append(parts, m.viewStudioPanel())
	}
	parts = append(parts, mutedStyle.Render(strings.Repeat("─", clampMin(m.width, 1))))
	return strings.Join(parts, "\n")
}

func (m *model) viewPlaygroundButton() string {
	ctl := m.header.PlaygroundControl()
	switch {
	case ctl.Disabled:
		return mutedStyle.Render("[⌖]")
	case ctl.Open:
		return accentStyle.Bold(true).Render("[⌖]")
	}
	return textStyle.Render("[⌖]")
}

func (m *model) viewViewportButton() string {
	info := m.header.ViewportInfo()
	s := info.Summary() + " ⓘ"
	if info.MenuOpen {
		return accentStyle.Render(s)
	}
	return mutedStyle.Render(s)
}

// viewURLBar renders the URL form in avail cells: prefix, then either the
// editable input or the read-only runner URL, then the loading addon.
func (m *model) viewURLBar(avail int) string {
	bar := m.header.URLBar()

	var b strings.Builder
	if bar.Prefix != "" {
		b.WriteString(mutedStyle.Render(bar.Prefix))
	}
	loading := ""
	if bar.Loading {
		loading = warnStyle.Render(" ...loading")
	}

	if !bar.ReadOnly {
		fixed := lipgloss.Width(b.String()) + lipgloss.Width("❯ ") + lipgloss.Width(loading)
		m.urlInput.Width = clampMin(avail-fixed-1, 1)
		b.WriteString(accentStyle.Render("❯ ") + m.urlInput.View())
	} else if bar.Value == "" {
		b.WriteString(mutedStyle.Render("no page loaded"))
	} else if bar.Highlighted {
		b.WriteString(accentStyle.Underline(true).Render(bar.Value))
	} else {
		b.WriteString(textStyle.Render(bar.Value))
	}
	b.WriteString(loading)

	line := b.String()
	if pad := avail - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return lipgloss.NewStyle().MaxWidth(avail).Render(line)
}

func (m *model) viewPlaygroundPanel() string {
	return panelStyle.Width(clampMin(m.width-2, 1)).Render(
		accentStyle.Render("Selector Playground") + "\n" +
			mutedStyle.Render("hover an element in the page to build a selector"))
}

func (m *model) viewStudioPanel() string {
	title := accentStyle.Render("Studio")
	var detail string
	switch u := m.studio.URL(); {
	case !m.studio.IsActive():
		detail = mutedStyle.Render("idle")
	case u == "":
		detail = warnStyle.Render("waiting for a URL to visit")
	default:
		detail = textStyle.Render("recording on " + u)
	}
	return panelStyle.Width(clampMin(m.width-2, 1)).Render(title + "  " + detail)
}

// viewBody is the content of the area below the toolbar. Popups from the
// toolbar draw over the top of it.
func (m *model) viewBody() string {
	var sections []string
	if bar := m.header.URLBar(); bar.MenuOpen {
		sections = append(sections, m.viewURLMenu(bar.SubmitEnabled))
	}
	if m.header.ShowingViewportMenu() {
		sections = append(sections, m.viewViewportMenu())
	}
	if len(m.activity) == 0 {
		sections = append(sections, mutedStyle.Render("no activity yet"))
	} else {
		sections = append(sections, textStyle.Render(strings.Join(m.activity, "\n")))
	}
	return strings.Join(sections, "\n")
}

func (m *model) viewURLMenu(submitEnabled bool) string {
	goBtn := mutedStyle.Render("[enter] Go →")
	if submitEnabled {
		goBtn = accentStyle.Render("[enter] Go →")
	}
	return panelStyle.Render(
		lipgloss.NewStyle().Bold(true).Render("Please enter a valid URL to visit.") + "\n" +
			mutedStyle.Render("[esc] Cancel") + "   " + goBtn)
}

func (m *model) viewViewportMenu() string {
	info := m.header.ViewportInfo()
	text := fmt.Sprintf(
		"The viewport determines the width and height of your application.\n"+
			"By default the viewport will be %dpx by %dpx unless specified by a viewport command.\n\n"+
			"Additionally you can override the default viewport dimensions by specifying\n"+
			"these values in your %s.",
		info.Defaults.Width, info.Defaults.Height, accentStyle.Render(info.ConfigFile))
	return panelStyle.Render(text + "\n" + highlightOutput(info.ConfigSnippet()))
}

func (m *model) viewFooter(width int) string {
	mode := accentStyle.Render(m.header.Mode().Label())
	help := mode + "   " + mutedStyle.Render(keyHelp(m.contextualKeyHelp()...))
	if m.statusMsg != "" {
		help += "   " + statusStyle.Render(m.statusMsg)
	}
	divider := mutedStyle.Render(strings.Repeat("─", clampMin(width, 1)))
	return divider + "\n" + lipgloss.NewStyle().MaxWidth(clampMin(width, 1)).Render(help)
}
