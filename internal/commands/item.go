package commands

import (
	"fmt"
	"strings"

	"github.com/dshills/plotdoc/internal/app"
	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/history"
	"github.com/dshills/plotdoc/internal/project"
	"github.com/dshills/plotdoc/internal/project/snapshot"
)

// RenameItem renames an item. Constructed through NewRenameItem it accepts
// any kind; the kind-specific constructors reject other kinds.
type RenameItem struct {
	base
	id      string
	newName string
	want    project.Kind

	oldName  string
	captured bool
}

// NewRenameItem returns a command renaming item id of any kind.
func NewRenameItem(ctx app.Context, id, newName string) *RenameItem {
	return newRename(ctx, id, newName, "")
}

func newRename(ctx app.Context, id, newName string, want project.Kind) *RenameItem {
	return &RenameItem{
		base:    newBase(ctx, "Rename "+kindLabel(want)),
		id:      id,
		newName: newName,
		want:    want,
	}
}

// Execute implements history.Command. The previous name is captured on
// the first successful execute only.
func (c *RenameItem) Execute() bool {
	return c.run("execute", func() error {
		name := strings.TrimSpace(c.newName)
		if name == "" {
			return app.Validation(c.title, c.id, app.ErrEmptyInput)
		}
		return c.apply(name, "")
	})
}

// Undo implements history.Command.
func (c *RenameItem) Undo() bool {
	if !c.expect(stateExecuted, "undo") {
		return false
	}
	return c.run("undo", func() error {
		return c.apply(c.oldName, events.KeyUndo)
	})
}

// Redo implements history.Command.
func (c *RenameItem) Redo() bool {
	if !c.expect(stateUndone, "redo") {
		return false
	}
	return c.run("redo", func() error {
		return c.apply(strings.TrimSpace(c.newName), events.KeyRedo)
	})
}

func (c *RenameItem) apply(name, flag string) error {
	p, err := c.project()
	if err != nil {
		return err
	}
	item, err := c.lookup(p, c.id, c.want)
	if err != nil {
		return err
	}
	if !c.captured {
		c.oldName = item.Name()
		c.captured = true
	}

	previous := item.Name()
	item.SetName(name)
	if flag == events.KeyUndo {
		c.state = stateUndone
	} else {
		c.state = stateExecuted
	}

	data := itemData(item)
	data[events.KeyOldName] = previous
	data[events.KeyNewName] = name
	if flag != "" {
		data[flag] = true
	}
	c.emit(events.ForItem(item).Renamed, p, data)
	c.log.WithField("item", c.id).Debugf("renamed %q to %q", previous, name)
	return nil
}

// Description implements history.Command.
func (c *RenameItem) Description() string {
	if c.captured {
		return fmt.Sprintf("%s %s to %s", c.title, quote(c.oldName), quote(strings.TrimSpace(c.newName)))
	}
	return c.title + " to " + quote(strings.TrimSpace(c.newName))
}

// Clone implements history.Cloner.
func (c *RenameItem) Clone() history.Command {
	return newRename(c.ctx, c.id, c.newName, c.want)
}

// DeleteItem removes an item with its subtree. Undo rebuilds the subtree
// from a snapshot at the same parent and position, keeping every id.
type DeleteItem struct {
	base
	id   string
	want project.Kind

	name     string
	kind     project.Kind
	snap     snapshot.Snapshot
	payloads map[string]any
	at       string
	index    int
}

// NewDeleteItem returns a command deleting item id of any kind.
func NewDeleteItem(ctx app.Context, id string) *DeleteItem {
	return newDelete(ctx, id, "")
}

func newDelete(ctx app.Context, id string, want project.Kind) *DeleteItem {
	return &DeleteItem{
		base:  newBase(ctx, "Delete "+kindLabel(want)),
		id:    id,
		want:  want,
		index: -1,
	}
}

// Execute implements history.Command. When deletes need confirmation the
// user is asked first; declining changes nothing.
func (c *DeleteItem) Execute() bool {
	return c.run("execute", func() error {
		p, err := c.project()
		if err != nil {
			return err
		}
		if p.IsRoot(c.id) {
			return app.Validation(c.title, c.id, project.ErrRemoveRoot)
		}
		item, err := c.lookup(p, c.id, c.want)
		if err != nil {
			return err
		}

		if c.ctx.Config().Commands.ConfirmDelete {
			question := fmt.Sprintf("Are you sure you want to delete the %s %s?", item.Kind(), quote(item.Name()))
			if !c.ctx.UI().ShowQuestion(c.title, question) {
				return app.Cancelled(c.title, c.id)
			}
		}
		return c.remove(p, item, "")
	})
}

// Undo implements history.Command.
func (c *DeleteItem) Undo() bool {
	if !c.expect(stateExecuted, "undo") {
		return false
	}
	return c.run("undo", func() error {
		p, err := c.project()
		if err != nil {
			return err
		}
		item, err := c.restore(p, c.snap, c.at, c.index, c.payloads)
		if err != nil {
			return err
		}
		c.state = stateUndone

		data := itemData(item)
		data[events.KeyParentID] = parentKey(p, item.ParentID())
		data[events.KeyUndo] = true
		c.emit(events.ForKind(c.kind).Restored, p, data)
		c.log.WithField("item", c.id).Debug("restored")
		return nil
	})
}

// Redo implements history.Command. The item is resolved again by id and
// deleted without asking.
func (c *DeleteItem) Redo() bool {
	if !c.expect(stateUndone, "redo") {
		return false
	}
	return c.run("redo", func() error {
		p, err := c.project()
		if err != nil {
			return err
		}
		item, err := c.lookup(p, c.id, c.want)
		if err != nil {
			return err
		}
		return c.remove(p, item, events.KeyRedo)
	})
}

func (c *DeleteItem) remove(p *project.Project, item project.Item, flag string) error {
	c.snap = snapshot.Capture(item)
	c.payloads = payloads(item)
	c.name = item.Name()
	c.kind = item.Kind()
	c.at, c.index = position(p, c.id)

	data := itemData(item)
	data[events.KeyItemData] = item.ToDict()
	data[events.KeyParentID] = c.at
	data[events.KeyRemovedIDs] = p.RemoveItemByID(c.id)
	if flag != "" {
		data[flag] = true
	}
	c.state = stateExecuted

	c.emit(events.ForKind(c.kind).Deleted, p, data)
	c.log.WithField("item", c.id).Debug("deleted")
	return nil
}

// Description implements history.Command.
func (c *DeleteItem) Description() string {
	if c.name == "" {
		return c.title
	}
	return c.title + " " + quote(c.name)
}

// Clone implements history.Cloner.
func (c *DeleteItem) Clone() history.Command {
	return newDelete(c.ctx, c.id, c.want)
}

// MoveItem reparents an item. Undo puts it back at its exact source
// position.
type MoveItem struct {
	base
	id     string
	target string
	want   project.Kind

	name   string
	source string
	index  int
}

// NewMoveItem returns a command moving item id of any kind under target.
// An empty target or RootToken is the root.
func NewMoveItem(ctx app.Context, id, target string) *MoveItem {
	return newMove(ctx, id, target, "")
}

func newMove(ctx app.Context, id, target string, want project.Kind) *MoveItem {
	return &MoveItem{
		base:   newBase(ctx, "Move "+kindLabel(want)),
		id:     id,
		target: target,
		want:   want,
		index:  -1,
	}
}

// Execute implements history.Command.
func (c *MoveItem) Execute() bool {
	return c.run("execute", func() error {
		p, err := c.project()
		if err != nil {
			return err
		}
		item, target, err := c.validate(p)
		if err != nil {
			return err
		}
		source, index := position(p, c.id)
		if source == target {
			return app.Validation(c.title, c.id, fmt.Errorf("%s is already in %s", quote(item.Name()), target))
		}
		if err := c.move(p, item, source, target, -1, ""); err != nil {
			return err
		}
		c.source, c.index = source, index
		return nil
	})
}

// Undo implements history.Command.
func (c *MoveItem) Undo() bool {
	if !c.expect(stateExecuted, "undo") {
		return false
	}
	return c.run("undo", func() error {
		p, err := c.project()
		if err != nil {
			return err
		}
		item, err := c.lookup(p, c.id, c.want)
		if err != nil {
			return err
		}
		from, _ := position(p, c.id)
		if err := c.move(p, item, from, c.source, c.index, events.KeyUndo); err != nil {
			return err
		}
		c.state = stateUndone
		return nil
	})
}

// Redo implements history.Command.
func (c *MoveItem) Redo() bool {
	if !c.expect(stateUndone, "redo") {
		return false
	}
	return c.run("redo", func() error {
		p, err := c.project()
		if err != nil {
			return err
		}
		item, target, err := c.validate(p)
		if err != nil {
			return err
		}
		from, _ := position(p, c.id)
		return c.move(p, item, from, target, -1, events.KeyRedo)
	})
}

// validate resolves the item and the normalized target collection id.
func (c *MoveItem) validate(p *project.Project) (project.Item, string, error) {
	if p.IsRoot(c.id) {
		return nil, "", app.Validation(c.title, c.id, project.ErrRemoveRoot)
	}
	item, err := c.lookup(p, c.id, c.want)
	if err != nil {
		return nil, "", err
	}
	target := parentKey(p, c.target)
	if target == project.RootToken {
		return item, target, nil
	}

	dest, ok := p.FindItem(target)
	if !ok {
		return nil, "", app.NotFound(c.title, target)
	}
	if dest.ID() == item.ID() {
		return nil, "", app.Validation(c.title, c.id, project.ErrMoveIntoSelf)
	}
	coll, ok := dest.(project.Collection)
	if !ok {
		return nil, "", app.Validation(c.title, target, project.ErrNotCollection)
	}
	if own, ok := item.(project.Collection); ok && own.Contains(coll.ID()) {
		return nil, "", app.Validation(c.title, c.id, project.ErrMoveIntoSelf)
	}
	return item, target, nil
}

func (c *MoveItem) move(p *project.Project, item project.Item, from, to string, index int, flag string) error {
	if err := p.MoveItem(c.id, to, index); err != nil {
		return app.Unexpected(c.title, c.id, err)
	}
	c.name = item.Name()
	if flag != events.KeyUndo {
		c.state = stateExecuted
	}

	data := itemData(item)
	data[events.KeySourceParentID] = from
	data[events.KeyTargetParentID] = to
	if flag != "" {
		data[flag] = true
	}
	c.emit(events.ForItem(item).Moved, p, data)
	c.log.WithField("item", c.id).Debugf("moved from %s to %s", from, to)
	return nil
}

// Description implements history.Command.
func (c *MoveItem) Description() string {
	if c.name == "" {
		return c.title
	}
	return c.title + " " + quote(c.name)
}

// Clone implements history.Cloner.
func (c *MoveItem) Clone() history.Command {
	return newMove(c.ctx, c.id, c.target, c.want)
}
