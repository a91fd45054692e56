package tui

import (
	"strings"
)

type keyHelpEntry struct {
	key   string
	label string
}

func keyHelp(keys ...keyHelpEntry) string {
	var parts []string
	for _, k := range keys {
		parts = append(parts, k.key+": "+k.label)
	}
	return strings.Join(parts, "   ")
}

var keyHelpURLEntry = []keyHelpEntry{
	{key: "enter", label: "go"},
	{key: "esc", label: "cancel studio"},
	{key: "ctrl+u", label: "clear"},
}

var keyHelpStudio = []keyHelpEntry{
	{key: "esc", label: "cancel studio"},
	{key: "o", label: "open url"},
	{key: "y", label: "copy url"},
	{key: "v", label: "viewport"},
	{key: "q", label: "quit"},
}

var keyHelpIdle = []keyHelpEntry{
	{key: "p", label: "playground"},
	{key: "s", label: "studio"},
	{key: "r", label: "run/stop"},
	{key: "o", label: "open url"},
	{key: "y", label: "copy url"},
	{key: "v", label: "viewport"},
	{key: "q", label: "quit"},
}

// contextualKeyHelp returns key help entries for the current mode.
func (m *model) contextualKeyHelp() []keyHelpEntry {
	switch {
	case m.header.NeedsURL():
		return keyHelpURLEntry
	case m.studio.IsActive():
		return keyHelpStudio
	}
	return keyHelpIdle
}
