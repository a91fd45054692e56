package tui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// chromaStyle is the color scheme for syntax highlighting.
// Using "dracula" for good contrast on dark terminals.
var chromaStyle = styles.Get("dracula")

// chromaFormatter outputs 256-color ANSI codes for terminal display.
var chromaFormatter = formatters.Get("terminal256")

func init() {
	if chromaStyle == nil {
		chromaStyle = styles.Fallback
	}
	if chromaFormatter == nil {
		chromaFormatter = formatters.Fallback
	}
}

// highlightOutput highlights JSON or YAML config snippets. Anything else is
// rendered plain.
func highlightOutput(input string) string {
	if input == "" {
		return input
	}
	plain := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	trimmed := strings.TrimSpace(input)
	var lexer chroma.Lexer
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		lexer = lexers.Get("json")
	} else if strings.Contains(trimmed, ": ") {
		lexer = lexers.Get("yaml")
	}
	if lexer == nil {
		return plain.Render(input)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, input)
	if err != nil {
		return plain.Render(input)
	}
	var buf bytes.Buffer
	if err := chromaFormatter.Format(&buf, chromaStyle, iterator); err != nil {
		return plain.Render(input)
	}
	return buf.String()
}
