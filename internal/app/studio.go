package app

import (
	"log/slog"

	"github.com/google/uuid"
)

// Studio is the in-process recording session. It stops when a studio cancel
// event is published on the bus.
type Studio struct {
	open    bool
	active  bool
	url     string
	session uuid.UUID

	onVisit func(url string)
	log     *slog.Logger
}

// NewStudio creates an idle studio subscribed to cancel events on bus. onVisit
// is called with every URL the studio is asked to visit and may be nil.
func NewStudio(bus *Bus, onVisit func(url string), logger *slog.Logger) *Studio {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Studio{onVisit: onVisit, log: logger}
	bus.Subscribe(EventStudioCancel, s.Cancel)
	return s
}

func (s *Studio) IsOpen() bool   { return s.open }
func (s *Studio) IsActive() bool { return s.active }
func (s *Studio) URL() string    { return s.url }

// SessionID identifies the current recording session; it is the zero UUID
// while idle.
func (s *Studio) SessionID() uuid.UUID { return s.session }

// Start opens a new recording session that has not visited anything yet.
func (s *Studio) Start() {
	if s.active {
		return
	}
	s.open = true
	s.active = true
	s.url = ""
	s.session = uuid.New()
	s.log.Debug("studio started", "session", s.session)
}

// VisitURL records url as the session start page.
func (s *Studio) VisitURL(url string) {
	if !s.active {
		return
	}
	s.url = url
	s.log.Debug("studio visit", "session", s.session, "url", url)
	if s.onVisit != nil {
		s.onVisit(url)
	}
}

// Cancel ends the session and closes the studio panel.
func (s *Studio) Cancel() {
	if !s.open && !s.active {
		return
	}
	s.log.Debug("studio cancelled", "session", s.session)
	s.open = false
	s.active = false
	s.url = ""
	s.session = uuid.Nil
}
