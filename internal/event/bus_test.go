package event

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/event/topic"
)

// recorder collects deliveries as "subscriber:eventType" strings.
type recorder struct {
	got  []string
	data []Data
}

func (r *recorder) handler(name string) HandlerFunc {
	return func(d Data) error {
		r.got = append(r.got, name+":"+d.EventType())
		r.data = append(r.data, d)
		return nil
	}
}

func mustSubscribe(t *testing.T, b *Bus, name topic.Topic, h HandlerFunc, opts ...SubscriptionOption) *Subscription {
	t.Helper()
	sub, err := b.SubscribeFunc(name, h, opts...)
	require.NoError(t, err)
	return sub
}

func TestSubscribeValidation(t *testing.T) {
	b := NewBus()
	_, err := b.Subscribe("folder.created", nil)
	assert.ErrorIs(t, err, ErrNilHandler)

	_, err = b.SubscribeFunc("", func(Data) error { return nil })
	assert.ErrorIs(t, err, ErrInvalidTopic)
}

func TestEmitFansOutOncePerLevel(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	mustSubscribe(t, b, events.FolderCreated, r.handler("folder"))
	mustSubscribe(t, b, events.ProjectItemAdded, r.handler("added"))
	mustSubscribe(t, b, events.ProjectChanged, r.handler("changed"))

	b.Emit(events.FolderCreated, Data{events.KeyItemID: "f1"})

	assert.Equal(t, []string{
		"folder:folder.created",
		"added:project.item_added",
		"changed:project.changed",
	}, r.got)
	for _, d := range r.data {
		assert.Equal(t, "folder.created", d.OriginalEvent())
		assert.Equal(t, "f1", d.String(events.KeyItemID))
	}
}

func TestEmitCopiesDataPerLevel(t *testing.T) {
	b := NewBus()
	var seen []Data
	mutate := func(d Data) error {
		seen = append(seen, d)
		d["scribble"] = true
		return nil
	}
	mustSubscribe(t, b, events.NoteCreated, mutate)
	mustSubscribe(t, b, events.ProjectItemAdded, mutate)

	in := Data{"k": "v"}
	b.Emit(events.NoteCreated, in)

	require.Len(t, seen, 2)
	assert.NotContains(t, in, "scribble")
	assert.NotContains(t, in, events.KeyEventType)
	assert.Equal(t, "project.item_added", seen[1].EventType())
	assert.Equal(t, "v", seen[1]["k"])
}

func TestEmitNilData(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	mustSubscribe(t, b, "custom.thing", r.handler("c"))
	b.Emit("custom.thing", nil)
	assert.Equal(t, []string{"c:custom.thing"}, r.got)
}

func TestPatternSubscription(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	mustSubscribe(t, b, "dataset.*", r.handler("ds"))

	b.Emit(events.DatasetColumnAdded, nil)
	b.Emit(events.UITabChanged, nil)

	assert.Equal(t, []string{
		"ds:dataset.column_added",
		"ds:dataset.structure_changed",
		"ds:dataset.changed",
	}, r.got)
}

func TestPatternOrdering(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	mustSubscribe(t, b, "*.created", r.handler("p1"))
	mustSubscribe(t, b, events.FolderCreated, r.handler("exact"))
	mustSubscribe(t, b, "folder.*", r.handler("p2"))
	mustSubscribe(t, b, "*.created", r.handler("p1b"))

	b.Emit(events.FolderCreated, nil)

	require.GreaterOrEqual(t, len(r.got), 4)
	assert.Equal(t, []string{
		"exact:folder.created",
		"p1:folder.created",
		"p1b:folder.created",
		"p2:folder.created",
	}, r.got[:4])
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	exact := mustSubscribe(t, b, events.NoteCreated, r.handler("exact"))
	pattern := mustSubscribe(t, b, "note.*", r.handler("pattern"))

	assert.True(t, b.Unsubscribe(exact))
	assert.False(t, b.Unsubscribe(exact))
	assert.True(t, b.Unsubscribe(pattern))
	assert.False(t, b.Unsubscribe(nil))
	assert.False(t, exact.IsActive())

	b.Emit(events.NoteCreated, nil)
	assert.Empty(t, r.got)
	assert.Zero(t, b.Stats().ActiveSubscriptions)
}

func TestHandlerFailuresAreIsolated(t *testing.T) {
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	b := NewBus(WithLogger(logrus.NewEntry(logger)))

	r := &recorder{}
	mustSubscribe(t, b, events.FolderCreated, func(Data) error { return errors.New("boom") })
	mustSubscribe(t, b, events.FolderCreated, func(Data) error { panic("kaboom") })
	mustSubscribe(t, b, events.FolderCreated, r.handler("after"))
	mustSubscribe(t, b, events.ProjectChanged, r.handler("changed"))

	assert.NotPanics(t, func() { b.Emit(events.FolderCreated, nil) })
	assert.Equal(t, []string{"after:folder.created", "changed:project.changed"}, r.got)

	stats := b.Stats()
	assert.Equal(t, uint64(1), stats.HandlerErrors)
	assert.Equal(t, uint64(1), stats.HandlerPanics)
	assert.Equal(t, uint64(1), stats.EventsEmitted)
	assert.Equal(t, uint64(3), stats.LevelsDelivered)
	assert.Contains(t, logs.String(), "event handler failed")
	assert.Contains(t, logs.String(), "kaboom")
}

func TestReentrantEmit(t *testing.T) {
	b := NewBus()
	var order []string
	mustSubscribe(t, b, events.FolderCreated, func(Data) error {
		order = append(order, "outer-1")
		b.Emit("custom.nested", nil)
		return nil
	})
	mustSubscribe(t, b, events.FolderCreated, func(Data) error {
		order = append(order, "outer-2")
		return nil
	})
	mustSubscribe(t, b, "custom.nested", func(Data) error {
		order = append(order, "nested")
		return nil
	})

	b.Emit(events.FolderCreated, nil)
	assert.Equal(t, []string{"outer-1", "nested", "outer-2"}, order)
}

func TestSubscribeDuringDelivery(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	var late *Subscription
	mustSubscribe(t, b, events.FolderCreated, func(Data) error {
		if late == nil {
			late = mustSubscribe(t, b, events.FolderCreated, r.handler("late"))
		}
		return nil
	})

	b.Emit(events.FolderCreated, nil)
	assert.Empty(t, r.got)

	b.Emit(events.FolderCreated, nil)
	assert.Equal(t, []string{"late:folder.created"}, r.got)
}

func TestUnsubscribeDuringDelivery(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	var second *Subscription
	mustSubscribe(t, b, events.FolderCreated, func(Data) error {
		b.Unsubscribe(second)
		return nil
	})
	second = mustSubscribe(t, b, events.FolderCreated, r.handler("second"))

	b.Emit(events.FolderCreated, nil)
	assert.Empty(t, r.got)
}

func TestWithOnce(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	mustSubscribe(t, b, "project.*", r.handler("once"), WithOnce())

	b.Emit(events.FolderCreated, nil)
	b.Emit(events.FolderCreated, nil)
	assert.Equal(t, []string{"once:project.item_added"}, r.got)
	assert.Zero(t, b.SubscriberCount("project.*"))
}

func TestWithFilter(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	onlyUndo := func(d Data) bool { return d[events.KeyUndo] == true }
	mustSubscribe(t, b, events.FolderDeleted, r.handler("undo"), WithFilter(onlyUndo))

	b.Emit(events.FolderDeleted, Data{events.KeyUndo: false})
	b.Emit(events.FolderDeleted, Data{events.KeyUndo: true})
	assert.Equal(t, []string{"undo:folder.deleted"}, r.got)
}

func TestCustomHierarchy(t *testing.T) {
	h := topic.MustHierarchy(map[topic.Topic]topic.Topic{"a.b": "a"})
	b := NewBus(WithHierarchy(h))
	r := &recorder{}
	mustSubscribe(t, b, "a", r.handler("a"))

	b.Emit("a.b", nil)
	assert.Equal(t, []string{"a:a"}, r.got)
	assert.Equal(t, []topic.Topic{events.FolderCreated}, b.Levels(events.FolderCreated))
}

func TestClear(t *testing.T) {
	b := NewBus()
	r := &recorder{}
	sub := mustSubscribe(t, b, events.NoteCreated, r.handler("n"))
	mustSubscribe(t, b, "*", r.handler("all"))
	assert.Equal(t, 2, b.Stats().ActiveSubscriptions)

	b.Clear()
	b.Emit(events.NoteCreated, nil)
	assert.Empty(t, r.got)
	assert.False(t, sub.IsActive())
	assert.False(t, b.Unsubscribe(sub))
}
