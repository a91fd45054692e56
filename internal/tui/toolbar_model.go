package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/testrunner/toolbar/internal/app"
)

// maxActivity bounds the activity log shown in the body.
const maxActivity = 200

type model struct {
	width  int
	height int

	cfgPath string

	header     *app.Header
	runner     *app.Runner
	studio     *app.Studio
	playground *app.Playground
	bus        *app.Bus
	opener     *app.BrowserOpener

	// overrides re-applies command-line settings on top of every config,
	// including reloaded ones.
	overrides func(*app.Config)

	urlInput    textinput.Model
	viewport    viewport.Model
	bodyContent string // last content handed to the viewport

	// Activity log rendered in the body, oldest first.
	activity []string

	// Status message (e.g., "Copied!")
	statusMsg string

	// Config hot reload; nil when no config file is in use.
	reloads     <-chan app.ConfigReload
	stopWatcher context.CancelFunc

	log *slog.Logger
}

// newModel wires the in-process collaborators to a header. overrides may be
// nil.
func newModel(cfg app.Config, cfgPath string, overrides func(*app.Config), logger *slog.Logger) *model {
	if logger == nil {
		logger = slog.Default()
	}
	if overrides != nil {
		overrides(&cfg)
	}
	ti := textinput.New()
	ti.Placeholder = "enter a URL to visit"
	ti.Prompt = ""
	ti.CharLimit = 2048
	ti.Width = 40

	m := &model{
		cfgPath:    cfgPath,
		runner:     app.NewRunner(cfg),
		playground: &app.Playground{},
		bus:        app.NewBus(),
		opener:     app.NewBrowserOpener(cfg.Browser),
		overrides:  overrides,
		urlInput:   ti,
		viewport:   viewport.New(0, 0),
		log:        logger,
	}
	m.studio = app.NewStudio(m.bus, m.onStudioVisit, logger)
	m.bus.Subscribe(app.EventStudioCancel, func() {
		m.addActivity("studio cancelled")
	})
	m.header = app.NewHeader(app.HeaderDeps{
		Runner:     m.runner,
		Studio:     m.studio,
		Playground: m.playground,
		Bus:        m.bus,
		Opener:     m.opener,
		Logger:     logger,
	}, cfg)
	if cfg.BaseURL != "" {
		m.addActivity("loaded " + cfg.BaseURL)
	}
	return m
}

func (m *model) Init() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	return listenConfigCmd(m.reloads)
}

// onStudioVisit is the studio's hook into the runner: the visited URL becomes
// the runner URL and starts loading.
func (m *model) onStudioVisit(url string) {
	m.runner.SetURL(url)
	m.runner.SetLoadingURL(true)
	m.runner.SetHighlightURL(true)
	m.addActivity("visit " + url)
}

func (m *model) addActivity(line string) {
	m.activity = append(m.activity, line)
	if over := len(m.activity) - maxActivity; over > 0 {
		m.activity = m.activity[over:]
	}
}

// watchConfig starts hot reload for the config file, if there is one.
func (m *model) watchConfig() error {
	if m.cfgPath == "" {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := app.WatchConfig(ctx, m.cfgPath)
	if err != nil {
		cancel()
		return err
	}
	m.reloads = ch
	m.stopWatcher = cancel
	return nil
}

func (m *model) close() {
	if m.stopWatcher != nil {
		m.stopWatcher()
	}
}
