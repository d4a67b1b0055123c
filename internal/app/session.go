package app

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dshills/plotdoc/internal/config"
	"github.com/dshills/plotdoc/internal/event"
	"github.com/dshills/plotdoc/internal/history"
	"github.com/dshills/plotdoc/internal/logging"
)

// Session wires one application run: configuration, logging, the event
// bus, project state and command history.
type Session struct {
	cfg     config.Config
	ui      UIController
	log     *logrus.Entry
	bus     *event.Bus
	state   *State
	history *history.History
}

var _ Context = (*Session)(nil)

// NewSession builds a session. A nil ui discards feedback and a nil logger
// discards logs.
func NewSession(cfg config.Config, ui UIController, logger *logrus.Entry) *Session {
	if ui == nil {
		ui = NopUI{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	bus := event.NewBus(event.WithLogger(logger))
	return &Session{
		cfg:     cfg,
		ui:      ui,
		log:     logger,
		bus:     bus,
		state:   NewState(bus),
		history: history.NewHistory(cfg.History.MaxEntries, history.WithLogger(logger)),
	}
}

// AppState implements Context.
func (s *Session) AppState() *State { return s.state }

// UI implements Context.
func (s *Session) UI() UIController { return s.ui }

// Executor implements Context.
func (s *Session) Executor() Executor { return s.history }

// Logger implements Context.
func (s *Session) Logger() *logrus.Entry { return s.log }

// Config implements Context.
func (s *Session) Config() config.Config { return s.cfg }

// Bus returns the session event bus.
func (s *Session) Bus() *event.Bus { return s.bus }

// History returns the command history.
func (s *Session) History() *history.History { return s.history }

// ExecuteGrouped runs cmds as one undo unit named name. When one of them
// fails, the ones already run are undone and nothing is pushed; the failing
// command has reported its own error.
func (s *Session) ExecuteGrouped(name string, cmds ...history.Command) bool {
	if err := s.history.ExecuteGrouped(name, cmds...); err != nil {
		s.log.WithError(err).WithField("group", name).Warn("grouped commands rolled back")
		return false
	}
	return true
}

// Undo reverses the most recent command. Failures are reported on the UI.
func (s *Session) Undo() bool {
	return s.step(s.history.Undo, "Undo")
}

// Redo replays the most recently undone command.
func (s *Session) Redo() bool {
	return s.step(s.history.Redo, "Redo")
}

func (s *Session) step(fn func() error, title string) bool {
	err := fn()
	switch {
	case err == nil:
		return true
	case errors.Is(err, history.ErrNothingToUndo), errors.Is(err, history.ErrNothingToRedo):
		s.ui.ShowInfo(title, err.Error())
	default:
		s.log.WithError(err).Warn(title + " failed")
	}
	return false
}
