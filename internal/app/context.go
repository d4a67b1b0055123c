package app

import (
	"github.com/sirupsen/logrus"

	"github.com/dshills/plotdoc/internal/config"
	"github.com/dshills/plotdoc/internal/history"
)

// Context is everything a command needs from the running application.
type Context interface {
	AppState() *State
	UI() UIController
	Executor() Executor
	Logger() *logrus.Entry
	Config() config.Config
}

// UIController is the user feedback surface.
type UIController interface {
	ShowError(title, message string)
	ShowWarning(title, message string)
	ShowInfo(title, message string)

	// ShowQuestion asks a yes/no question and returns the answer.
	ShowQuestion(title, message string) bool
}

// Executor runs commands and records them for undo.
type Executor interface {
	ExecuteCommand(cmd history.Command) bool
}

// Report shows err on ui according to its kind. Cancellations are silent.
// An empty title uses the kind's heading.
func Report(ui UIController, title string, err error) {
	if ui == nil || err == nil {
		return
	}
	kind := KindOf(err)
	switch {
	case kind == KindCancelled:
	case title == "":
		show(ui, kind, kind.Title(), err)
	case kind == KindUnexpected:
		show(ui, kind, title+" Error", err)
	default:
		show(ui, kind, title, err)
	}
}

func show(ui UIController, kind ErrorKind, title string, err error) {
	if kind == KindUnexpected {
		ui.ShowError(title, err.Error())
		return
	}
	ui.ShowWarning(title, err.Error())
}
