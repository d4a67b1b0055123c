package commands

import (
	"strings"

	"github.com/dshills/plotdoc/internal/app"
	"github.com/dshills/plotdoc/internal/event"
	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/project"
	"github.com/dshills/plotdoc/internal/project/snapshot"
)

// buildFunc constructs the item to insert under parent.
type buildFunc func(p *project.Project, parent project.Collection) (project.Item, error)

// creator is the shared execute/undo/redo path of the create commands.
// Undo removes the item after snapshotting it and redo reinserts the
// snapshot, so the item keeps its id across the cycle.
type creator struct {
	base
	parentID string
	build    buildFunc
	extra    event.Data

	itemID   string
	itemName string
	kind     project.Kind
	at       string
	index    int
	snap     snapshot.Snapshot
	payloads map[string]any
}

func newCreator(ctx app.Context, title, parentID string, build buildFunc) creator {
	return creator{
		base:     newBase(ctx, title),
		parentID: parentID,
		build:    build,
		index:    -1,
	}
}

// Execute implements history.Command. A create runs at most once; use
// Clone for another.
func (c *creator) Execute() bool {
	if c.state != stateCreated {
		c.log.WithField("item", c.itemID).Warn("create already executed")
		return false
	}
	return c.run("execute", func() error {
		p, err := c.project()
		if err != nil {
			return err
		}
		parent, err := c.parent(p, c.parentID)
		if err != nil {
			return err
		}
		item, err := c.build(p, parent)
		if err != nil {
			return err
		}

		p.AddItem(item, parent.ID())
		c.itemID = item.ID()
		c.itemName = item.Name()
		c.kind = item.Kind()
		c.at, c.index = position(p, item.ID())
		c.state = stateExecuted

		c.emitCreated(p, item, "")
		c.log.WithField("item", c.itemID).Debug("created")
		return nil
	})
}

// Undo implements history.Command.
func (c *creator) Undo() bool {
	if !c.expect(stateExecuted, "undo") {
		return false
	}
	return c.run("undo", func() error {
		p, err := c.project()
		if err != nil {
			return err
		}
		item, err := c.lookup(p, c.itemID, c.kind)
		if err != nil {
			return err
		}
		c.snap = snapshot.Capture(item)
		c.payloads = payloads(item)
		c.at, c.index = position(p, c.itemID)
		c.itemName = item.Name()

		removed := p.RemoveItemByID(c.itemID)
		c.state = stateUndone

		data := itemData(item)
		data[events.KeyParentID] = c.at
		data[events.KeyRemovedIDs] = removed
		data[events.KeyUndo] = true
		c.emit(events.ForKind(c.kind).Deleted, p, data)
		return nil
	})
}

// Redo implements history.Command.
func (c *creator) Redo() bool {
	if !c.expect(stateUndone, "redo") {
		return false
	}
	return c.run("redo", func() error {
		p, err := c.project()
		if err != nil {
			return err
		}
		item, err := c.restore(p, c.snap, c.at, c.index, c.payloads)
		if err != nil {
			return err
		}
		c.state = stateExecuted
		c.emitCreated(p, item, events.KeyRedo)
		return nil
	})
}

func (c *creator) emitCreated(p *project.Project, item project.Item, flag string) {
	data := itemData(item)
	data[events.KeyParentID] = parentKey(p, item.ParentID())
	for k, v := range c.extra {
		data[k] = v
	}
	if flag != "" {
		data[flag] = true
	}
	c.emit(events.ForKind(item.Kind()).Created, p, data)
}

// ItemID returns the id of the created item, or "" before a successful
// execute.
func (c *creator) ItemID() string { return c.itemID }

func (c *creator) describe(name string) string {
	if c.itemName != "" {
		name = c.itemName
	}
	if name == "" {
		return c.title
	}
	return c.title + " " + quote(name)
}

// createName applies the naming rule shared by the create commands: an
// empty name gets a default, anything else is trimmed and must stay
// non-empty.
func (c *creator) createName(name string, parent project.Collection, kind project.Kind) (string, error) {
	if name == "" {
		return defaultName(parent, kind), nil
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", app.Validation(c.title, "", app.ErrEmptyInput)
	}
	return trimmed, nil
}
