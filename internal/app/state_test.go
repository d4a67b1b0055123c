package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/plotdoc/internal/event"
	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/event/topic"
	"github.com/dshills/plotdoc/internal/project"
	"github.com/dshills/plotdoc/internal/project/codec"
)

type lifecycleLog struct {
	names []topic.Topic
	data  []event.Data
}

func watch(t *testing.T, bus *event.Bus) *lifecycleLog {
	t.Helper()
	l := &lifecycleLog{}
	_, err := bus.SubscribeFunc("*", func(d event.Data) error {
		if d.EventType() == d.OriginalEvent() {
			l.names = append(l.names, topic.Topic(d.EventType()))
			l.data = append(l.data, d)
		}
		return nil
	})
	require.NoError(t, err)
	return l
}

func TestStateNewProject(t *testing.T) {
	s := NewState(nil)
	log := watch(t, s.EventBus())
	assert.False(t, s.HasProject())

	p := s.NewProject("Lab", "notes")
	require.NotNil(t, p)
	assert.True(t, s.HasProject())
	assert.Same(t, p, s.CurrentProject())
	assert.Equal(t, "Lab", p.Name)

	assert.Equal(t, []topic.Topic{
		events.ProjectCreated,
		events.ProjectLoaded,
		events.FirstProjectLoaded,
	}, log.names)
	assert.Nil(t, log.data[1][events.KeyPreviousProject])
}

func TestStateLoadProjectTwice(t *testing.T) {
	s := NewState(nil)
	log := watch(t, s.EventBus())

	first := project.New("one", "")
	second := project.New("two", "")
	s.LoadProject(first, "one.yaml")
	s.LoadProject(second, "two.yaml")

	assert.Equal(t, []topic.Topic{
		events.ProjectLoaded,
		events.FirstProjectLoaded,
		events.ProjectLoaded,
	}, log.names)
	assert.Same(t, first, log.data[2][events.KeyPreviousProject])
	assert.Equal(t, "two.yaml", s.ProjectFilePath())
}

func TestStateCloseProject(t *testing.T) {
	s := NewState(nil)
	log := watch(t, s.EventBus())

	s.CloseProject()
	assert.Empty(t, log.names)

	p := project.New("p", "")
	s.LoadProject(p, "p.yaml")
	s.CloseProject()

	assert.False(t, s.HasProject())
	assert.Nil(t, s.CurrentProject())
	assert.Equal(t, "", s.ProjectFilePath())
	assert.Equal(t, events.ProjectClosed, log.names[len(log.names)-1])
	assert.Equal(t, "p.yaml", log.data[len(log.data)-1][events.KeyFilePath])
}

func TestStateSaveProject(t *testing.T) {
	s := NewState(nil)
	var buf bytes.Buffer
	assert.ErrorIs(t, s.SaveProject(&buf, "x.yaml"), ErrNoProject)

	p := s.NewProject("Saved", "")
	p.AddItem(project.NewNote("", "n", "hello"), "")
	log := watch(t, s.EventBus())

	require.NoError(t, s.SaveProject(&buf, "saved.yaml"))
	assert.Equal(t, []topic.Topic{events.ProjectSaving, events.ProjectSaved}, log.names)
	assert.Equal(t, "saved.yaml", s.ProjectFilePath())

	decoded, err := codec.DecodeYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Saved", decoded.Name)
	assert.Equal(t, 1, decoded.Len())
}
