package commands

import (
	"github.com/dshills/plotdoc/internal/app"
	"github.com/dshills/plotdoc/internal/history"
	"github.com/dshills/plotdoc/internal/project"
)

// CreateFolder adds a folder to the project tree.
type CreateFolder struct {
	creator
	name     string
	parentID string
}

// NewCreateFolder returns a command creating a folder named name under
// parentID. An empty name picks "New Folder N"; an empty parentID is the
// root.
func NewCreateFolder(ctx app.Context, name, parentID string) *CreateFolder {
	c := &CreateFolder{name: name, parentID: parentID}
	c.creator = newCreator(ctx, "Create Folder", parentID, c.build)
	return c
}

func (c *CreateFolder) build(_ *project.Project, parent project.Collection) (project.Item, error) {
	name, err := c.createName(c.name, parent, project.KindFolder)
	if err != nil {
		return nil, err
	}
	return project.NewFolder("", name), nil
}

// Description implements history.Command.
func (c *CreateFolder) Description() string { return c.describe(c.name) }

// Clone implements history.Cloner.
func (c *CreateFolder) Clone() history.Command {
	return NewCreateFolder(c.ctx, c.name, c.parentID)
}

// NewRenameFolder returns a command renaming the folder id.
func NewRenameFolder(ctx app.Context, id, newName string) *RenameItem {
	return newRename(ctx, id, newName, project.KindFolder)
}

// NewDeleteFolder returns a command deleting the folder id and everything
// inside it.
func NewDeleteFolder(ctx app.Context, id string) *DeleteItem {
	return newDelete(ctx, id, project.KindFolder)
}

// NewMoveFolder returns a command moving the folder id under target.
func NewMoveFolder(ctx app.Context, id, target string) *MoveItem {
	return newMove(ctx, id, target, project.KindFolder)
}
