package app

import (
	"encoding/json"
	"fmt"
)

// URLBar describes the URL form for the current instant.
type URLBar struct {
	Value         string // urlInput while the studio needs a URL, else the runner URL
	ReadOnly      bool
	Loading       bool
	Highlighted   bool
	MenuOpen      bool   // "enter a URL" prompt with cancel/submit
	Prefix        string // "<origin>/" when typed paths are resolved against a base
	SubmitEnabled bool
}

// URLBar derives the URL form state.
func (h *Header) URLBar() URLBar {
	st := h.runner.State()
	needs := h.NeedsURL()
	bar := URLBar{
		Value:       st.URL,
		ReadOnly:    !needs,
		Loading:     st.IsLoadingURL,
		Highlighted: st.HighlightURL,
		MenuOpen:    needs,
	}
	if needs {
		bar.Value = h.urlInput
		bar.SubmitEnabled = h.urlInput != ""
		if base := h.BaseOrigin(); base != "" {
			bar.Prefix = base + "/"
		}
	}
	return bar
}

// PlaygroundControl describes the selector playground button.
type PlaygroundControl struct {
	Disabled       bool
	TooltipVisible bool
	Open           bool
}

// PlaygroundControl derives the playground button state.
func (h *Header) PlaygroundControl() PlaygroundControl {
	open := h.playground.IsOpen()
	return PlaygroundControl{
		Disabled:       !h.CanTogglePlayground(),
		TooltipVisible: !open && !h.studio.IsActive(),
		Open:           open,
	}
}

// ViewportInfo is the content of the viewport indicator and its popup.
type ViewportInfo struct {
	Width        int
	Height       int
	DisplayScale int
	Defaults     ViewportSize
	ConfigFile   string
	MenuOpen     bool
}

// Summary renders "W x H (S%)".
func (v ViewportInfo) Summary() string {
	return fmt.Sprintf("%d x %d (%d%%)", v.Width, v.Height, v.DisplayScale)
}

// ConfigSnippet is the config fragment that overrides the default viewport.
func (v ViewportInfo) ConfigSnippet() string {
	b, _ := json.MarshalIndent(struct {
		Width  int `json:"viewportWidth"`
		Height int `json:"viewportHeight"`
	}{v.Defaults.Width, v.Defaults.Height}, "", "  ")
	return string(b)
}

// ViewportInfo derives the viewport indicator state.
func (h *Header) ViewportInfo() ViewportInfo {
	st := h.runner.State()
	return ViewportInfo{
		Width:        st.Width,
		Height:       st.Height,
		DisplayScale: st.DisplayScale,
		Defaults:     st.Defaults,
		ConfigFile:   h.configFile,
		MenuOpen:     h.showingViewportMenu,
	}
}
