package commands

import (
	"github.com/dshills/plotdoc/internal/app"
	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/history"
	"github.com/dshills/plotdoc/internal/project"
)

// CreateNote adds a note to the project tree.
type CreateNote struct {
	creator
	name     string
	content  string
	folderID string
}

// NewCreateNote returns a command creating a note under folderID. An empty
// name picks "New Note N".
func NewCreateNote(ctx app.Context, name, content, folderID string) *CreateNote {
	c := &CreateNote{name: name, content: content, folderID: folderID}
	c.creator = newCreator(ctx, "Create Note", folderID, c.build)
	return c
}

func (c *CreateNote) build(_ *project.Project, parent project.Collection) (project.Item, error) {
	name, err := c.createName(c.name, parent, project.KindNote)
	if err != nil {
		return nil, err
	}
	return project.NewNote("", name, c.content), nil
}

// Description implements history.Command.
func (c *CreateNote) Description() string { return c.describe(c.name) }

// Clone implements history.Cloner.
func (c *CreateNote) Clone() history.Command {
	return NewCreateNote(c.ctx, c.name, c.content, c.folderID)
}

// NewRenameNote returns a command renaming the note id.
func NewRenameNote(ctx app.Context, id, newName string) *RenameItem {
	return newRename(ctx, id, newName, project.KindNote)
}

// NewDeleteNote returns a command deleting the note id.
func NewDeleteNote(ctx app.Context, id string) *DeleteItem {
	return newDelete(ctx, id, project.KindNote)
}

// NewMoveNote returns a command moving the note id under target.
func NewMoveNote(ctx app.Context, id, target string) *MoveItem {
	return newMove(ctx, id, target, project.KindNote)
}

// EditNote replaces the content of a note.
type EditNote struct {
	base
	id         string
	newContent string

	oldContent string
	captured   bool
	name       string
}

// NewEditNote returns a command setting the content of note id.
func NewEditNote(ctx app.Context, id, newContent string) *EditNote {
	return &EditNote{
		base:       newBase(ctx, "Edit Note"),
		id:         id,
		newContent: newContent,
	}
}

// Execute implements history.Command. The previous content is captured on
// the first successful execute only.
func (c *EditNote) Execute() bool {
	return c.run("execute", func() error {
		return c.apply(c.newContent, "")
	})
}

// Undo implements history.Command.
func (c *EditNote) Undo() bool {
	if !c.expect(stateExecuted, "undo") {
		return false
	}
	return c.run("undo", func() error {
		return c.apply(c.oldContent, events.KeyUndo)
	})
}

// Redo implements history.Command.
func (c *EditNote) Redo() bool {
	if !c.expect(stateUndone, "redo") {
		return false
	}
	return c.run("redo", func() error {
		return c.apply(c.newContent, events.KeyRedo)
	})
}

func (c *EditNote) apply(content, flag string) error {
	p, err := c.project()
	if err != nil {
		return err
	}
	item, err := c.lookup(p, c.id, project.KindNote)
	if err != nil {
		return err
	}
	note := item.(*project.Note)
	if !c.captured {
		c.oldContent = note.Content()
		c.captured = true
	}
	c.name = note.Name()

	previous := note.Content()
	note.SetContent(content)
	if flag == events.KeyUndo {
		c.state = stateUndone
	} else {
		c.state = stateExecuted
	}

	data := itemData(note)
	data[events.KeyOldContent] = previous
	data[events.KeyNewContent] = content
	if flag != "" {
		data[flag] = true
	}
	c.emit(events.NoteContentChanged, p, data)
	return nil
}

// Description implements history.Command.
func (c *EditNote) Description() string {
	if c.name == "" {
		return c.title
	}
	return c.title + " " + quote(c.name)
}

// Clone implements history.Cloner.
func (c *EditNote) Clone() history.Command {
	return NewEditNote(c.ctx, c.id, c.newContent)
}

