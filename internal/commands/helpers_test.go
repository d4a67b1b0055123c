package commands

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/plotdoc/internal/app"
	"github.com/dshills/plotdoc/internal/config"
	"github.com/dshills/plotdoc/internal/event"
	"github.com/dshills/plotdoc/internal/event/topic"
	"github.com/dshills/plotdoc/internal/history"
	"github.com/dshills/plotdoc/internal/project"
)

type message struct {
	title string
	text  string
}

// recordingUI records feedback and answers questions with answer.
type recordingUI struct {
	answer    bool
	panics    bool
	errors    []message
	warnings  []message
	infos     []message
	questions []message
}

func (u *recordingUI) ShowError(title, text string)   { u.errors = append(u.errors, message{title, text}) }
func (u *recordingUI) ShowWarning(title, text string) { u.warnings = append(u.warnings, message{title, text}) }
func (u *recordingUI) ShowInfo(title, text string)    { u.infos = append(u.infos, message{title, text}) }

func (u *recordingUI) ShowQuestion(title, text string) bool {
	if u.panics {
		panic("dialog crashed")
	}
	u.questions = append(u.questions, message{title, text})
	return u.answer
}

func (u *recordingUI) silent() bool {
	return len(u.errors) == 0 && len(u.warnings) == 0
}

// eventLog records every emitted event once, at its own level.
type eventLog struct {
	names []topic.Topic
	data  []event.Data
}

func (l *eventLog) last() event.Data {
	if len(l.data) == 0 {
		return nil
	}
	return l.data[len(l.data)-1]
}

func (l *eventLog) reset() {
	l.names = nil
	l.data = nil
}

type fixture struct {
	session *app.Session
	ui      *recordingUI
	events  *eventLog
	project *project.Project
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, config.Default())
}

func newFixtureWith(t *testing.T, cfg config.Config) *fixture {
	t.Helper()
	f := newSession(t, cfg)
	f.project = f.session.AppState().NewProject("Test", "")
	f.events.reset()
	return f
}

// newEmptyFixture returns a session with no project loaded.
func newEmptyFixture(t *testing.T) *fixture {
	t.Helper()
	return newSession(t, config.Default())
}

func newSession(t *testing.T, cfg config.Config) *fixture {
	t.Helper()
	ui := &recordingUI{answer: true}
	s := app.NewSession(cfg, ui, nil)
	log := &eventLog{}
	_, err := s.Bus().SubscribeFunc("*", func(d event.Data) error {
		if d.EventType() == d.OriginalEvent() {
			log.names = append(log.names, topic.Topic(d.EventType()))
			log.data = append(log.data, d)
		}
		return nil
	})
	require.NoError(t, err)
	return &fixture{session: s, ui: ui, events: log}
}

func (f *fixture) exec(t *testing.T, cmd history.Command) {
	t.Helper()
	require.True(t, f.session.Executor().ExecuteCommand(cmd), "execute %s: %v %v", cmd.Description(), f.ui.warnings, f.ui.errors)
}

func (f *fixture) addFolder(name, parentID string) *project.Folder {
	folder := project.NewFolder("", name)
	f.project.AddItem(folder, parentID)
	return folder
}

func (f *fixture) addNote(name, content, parentID string) *project.Note {
	note := project.NewNote("", name, content)
	f.project.AddItem(note, parentID)
	return note
}

func childIDs(c project.Collection) []string {
	var ids []string
	for _, it := range c.Items() {
		ids = append(ids, it.ID())
	}
	return ids
}
