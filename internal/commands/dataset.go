package commands

import (
	"slices"

	"github.com/dshills/plotdoc/internal/app"
	"github.com/dshills/plotdoc/internal/history"
	"github.com/dshills/plotdoc/internal/project"
)

// CreateDataset adds an empty dataset node. The tabular payload is attached
// later by the data engine.
type CreateDataset struct {
	creator
	name       string
	parentID   string
	columns    []string
	sourceFile string
}

// NewCreateDataset returns a command creating a dataset under parentID with
// the given column names. An empty name picks "New Dataset N".
func NewCreateDataset(ctx app.Context, name, parentID string, columns []string, sourceFile string) *CreateDataset {
	c := &CreateDataset{
		name:       name,
		parentID:   parentID,
		columns:    slices.Clone(columns),
		sourceFile: sourceFile,
	}
	c.creator = newCreator(ctx, "Create Dataset", parentID, c.build)
	return c
}

func (c *CreateDataset) build(_ *project.Project, parent project.Collection) (project.Item, error) {
	name, err := c.createName(c.name, parent, project.KindDataset)
	if err != nil {
		return nil, err
	}
	ds := project.NewDataset("", name, c.sourceFile)
	if len(c.columns) > 0 {
		ds.SetColumns(c.columns)
	}
	return ds, nil
}

// Description implements history.Command.
func (c *CreateDataset) Description() string { return c.describe(c.name) }

// Clone implements history.Cloner.
func (c *CreateDataset) Clone() history.Command {
	return NewCreateDataset(c.ctx, c.name, c.parentID, c.columns, c.sourceFile)
}
