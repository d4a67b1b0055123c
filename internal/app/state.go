package app

import (
	"fmt"
	"io"

	"github.com/dshills/plotdoc/internal/event"
	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/project"
	"github.com/dshills/plotdoc/internal/project/codec"
)

// State holds the current project and announces changes to it.
type State struct {
	bus      *event.Bus
	current  *project.Project
	filePath string
}

// NewState creates an empty state publishing on bus. A nil bus gets a
// private one.
func NewState(bus *event.Bus) *State {
	if bus == nil {
		bus = event.NewBus()
	}
	return &State{bus: bus}
}

// EventBus returns the bus the state and commands publish on.
func (s *State) EventBus() *event.Bus { return s.bus }

// HasProject reports whether a project is loaded.
func (s *State) HasProject() bool { return s.current != nil }

// CurrentProject returns the loaded project, or nil.
func (s *State) CurrentProject() *project.Project { return s.current }

// ProjectFilePath returns the path the project was loaded from or saved to.
func (s *State) ProjectFilePath() string { return s.filePath }

// NewProject creates, loads and returns an empty project.
func (s *State) NewProject(name, description string) *project.Project {
	p := project.New(name, description)
	s.bus.Emit(events.ProjectCreated, event.Data{events.KeyProject: p})
	s.LoadProject(p, "")
	return p
}

// LoadProject makes p current. The first load of a session also emits
// first_project_loaded.
func (s *State) LoadProject(p *project.Project, filePath string) {
	previous := s.current
	s.current = p
	s.filePath = filePath

	s.bus.Emit(events.ProjectLoaded, event.Data{
		events.KeyProject:         p,
		events.KeyFilePath:        filePath,
		events.KeyPreviousProject: previous,
	})
	if previous == nil {
		s.bus.Emit(events.FirstProjectLoaded, event.Data{
			events.KeyProject:  p,
			events.KeyFilePath: filePath,
		})
	}
}

// CloseProject unloads the current project, if any.
func (s *State) CloseProject() {
	if s.current == nil {
		return
	}
	old, oldPath := s.current, s.filePath
	s.current = nil
	s.filePath = ""

	s.bus.Emit(events.ProjectClosed, event.Data{
		events.KeyProject:  old,
		events.KeyFilePath: oldPath,
	})
}

// SaveProject writes the current project as YAML to w. filePath is only
// recorded and reported; an empty one keeps the current path.
func (s *State) SaveProject(w io.Writer, filePath string) error {
	if s.current == nil {
		return ErrNoProject
	}
	if filePath != "" {
		s.filePath = filePath
	}
	data := event.Data{
		events.KeyProject:  s.current,
		events.KeyFilePath: s.filePath,
	}
	s.bus.Emit(events.ProjectSaving, data)
	if err := codec.EncodeYAML(w, s.current); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	s.bus.Emit(events.ProjectSaved, data)
	return nil
}
