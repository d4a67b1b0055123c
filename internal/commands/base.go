package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/dshills/plotdoc/internal/app"
	"github.com/dshills/plotdoc/internal/event"
	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/event/topic"
	"github.com/dshills/plotdoc/internal/logging"
	"github.com/dshills/plotdoc/internal/project"
	"github.com/dshills/plotdoc/internal/project/snapshot"
)

// lifecycle tracks where a command is between execute, undo and redo.
type lifecycle int

const (
	stateCreated lifecycle = iota
	stateExecuted
	stateUndone
)

func (l lifecycle) String() string {
	switch l {
	case stateExecuted:
		return "executed"
	case stateUndone:
		return "undone"
	default:
		return "created"
	}
}

// base carries the context plumbing shared by all commands.
type base struct {
	ctx   app.Context
	title string
	log   *logrus.Entry
	state lifecycle
}

func newBase(ctx app.Context, title string) base {
	return base{
		ctx:   ctx,
		title: title,
		log:   logging.Component(ctx.Logger(), "commands").WithField("command", title),
	}
}

// run calls fn, converting a returned error or a panic into user feedback.
func (b *base) run(phase string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.log.WithField("stack", string(debug.Stack())).Errorf("panic during %s: %v", phase, r)
			b.report(phase, app.Unexpected(b.title, "", fmt.Errorf("panic: %v", r)))
			ok = false
		}
	}()
	if err := fn(); err != nil {
		b.report(phase, err)
		return false
	}
	return true
}

func (b *base) report(phase string, err error) {
	entry := b.log.WithError(err).WithField("phase", phase)
	switch app.KindOf(err) {
	case app.KindCancelled:
		entry.Debug("command cancelled")
	case app.KindUnexpected:
		entry.Error("command failed")
	default:
		entry.Warn("command rejected")
	}

	title := b.title
	if phase != "execute" {
		title = titleCase(phase)
	}
	app.Report(b.ctx.UI(), title, err)
}

// expect reports whether the command is in state s. Out-of-order undo and
// redo calls are silent no-ops.
func (b *base) expect(s lifecycle, phase string) bool {
	if b.state == s {
		return true
	}
	b.log.WithFields(logrus.Fields{
		"phase": phase,
		"state": b.state.String(),
	}).Debug("ignored: ", app.ErrInvalidState)
	return false
}

func (b *base) project() (*project.Project, error) {
	st := b.ctx.AppState()
	if st == nil || !st.HasProject() {
		return nil, app.Validation(b.title, "", app.ErrNoProject)
	}
	return st.CurrentProject(), nil
}

// lookup resolves id to an item of kind want. An empty want accepts any kind.
func (b *base) lookup(p *project.Project, id string, want project.Kind) (project.Item, error) {
	if id == "" {
		return nil, app.Validation(b.title, "", fmt.Errorf("%w: no item id", app.ErrEmptyInput))
	}
	item, ok := p.FindItem(id)
	if !ok {
		return nil, app.NotFound(b.title, id)
	}
	if want != "" && item.Kind() != want {
		return nil, app.Validation(b.title, id,
			fmt.Errorf("%w: %q is a %s, not a %s", app.ErrWrongKind, item.Name(), item.Kind(), want))
	}
	return item, nil
}

// parent resolves a parent id for insertion. Empty and root ids resolve to
// the root.
func (b *base) parent(p *project.Project, id string) (project.Collection, error) {
	c, ok := p.Collection(id)
	if ok {
		return c, nil
	}
	if _, found := p.FindItem(id); !found {
		return nil, app.NotFound(b.title, id)
	}
	return nil, app.Validation(b.title, id, project.ErrNotCollection)
}

func (b *base) emit(name topic.Topic, p *project.Project, data event.Data) {
	data[events.KeyProject] = p
	b.ctx.AppState().EventBus().Emit(name, data)
}

// restore rebuilds a captured subtree under parentID at index. A parent
// that no longer resolves falls back to the root.
func (b *base) restore(p *project.Project, snap snapshot.Snapshot, parentID string, index int, payloads map[string]any) (project.Item, error) {
	target, ok := p.Collection(parentID)
	if !ok {
		b.log.WithField("parent", parentID).Warn("original parent is gone, restoring under root")
		target = p.Root()
		index = -1
	}
	item, err := snap.Restore()
	if err != nil {
		return nil, app.Unexpected(b.title, snap.ID(), err)
	}
	reattach(item, payloads)
	p.AddItemAt(item, target.ID(), index)
	return item, nil
}

// position returns the normalized parent id and sibling index of id.
func position(p *project.Project, id string) (string, int) {
	parent, ok := p.Parent(id)
	if !ok {
		return project.RootToken, -1
	}
	return parentKey(p, parent.ID()), parent.IndexOf(id)
}

// parentKey normalizes root addressing to RootToken.
func parentKey(p *project.Project, id string) string {
	if id == "" || p.IsRoot(id) {
		return project.RootToken
	}
	return id
}

// payloads collects the opaque dataset payloads below item. Snapshots
// never carry them.
func payloads(item project.Item) map[string]any {
	out := make(map[string]any)
	_ = project.WalkItem(item, func(it project.Item, _ int) error {
		if ds, ok := it.(*project.Dataset); ok && ds.HasData() {
			out[ds.ID()] = ds.Payload()
		}
		return nil
	})
	return out
}

func reattach(item project.Item, payloads map[string]any) {
	if len(payloads) == 0 {
		return
	}
	_ = project.WalkItem(item, func(it project.Item, _ int) error {
		if ds, ok := it.(*project.Dataset); ok {
			if data, found := payloads[ds.ID()]; found {
				ds.Reattach(data)
			}
		}
		return nil
	})
}

func itemData(item project.Item) event.Data {
	return event.Data{
		events.KeyItemID:   item.ID(),
		events.KeyItemName: item.Name(),
		events.KeyItemType: string(item.Kind()),
		events.KeyItem:     item,
	}
}
