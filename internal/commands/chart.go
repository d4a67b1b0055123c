package commands

import (
	"strings"

	"github.com/dshills/plotdoc/internal/app"
	"github.com/dshills/plotdoc/internal/event"
	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/history"
	"github.com/dshills/plotdoc/internal/project"
)

// CreateChart adds a line chart plotting a dataset.
type CreateChart struct {
	creator
	datasetID string
	name      string
	parentID  string
}

// NewCreateChart returns a command creating a chart of datasetID under
// parentID. An empty name picks "Chart from <dataset name>".
func NewCreateChart(ctx app.Context, datasetID, name, parentID string) *CreateChart {
	c := &CreateChart{datasetID: datasetID, name: name, parentID: parentID}
	c.creator = newCreator(ctx, "Create Chart", parentID, c.build)
	c.extra = event.Data{events.KeyDatasetID: datasetID}
	return c
}

// build adds one default series: the first two columns as x and y, or the
// row index against the only column.
func (c *CreateChart) build(p *project.Project, _ project.Collection) (project.Item, error) {
	item, err := c.lookup(p, c.datasetID, project.KindDataset)
	if err != nil {
		return nil, err
	}
	ds := item.(*project.Dataset)

	name := c.name
	if name == "" {
		name = "Chart from " + ds.Name()
	} else if name = strings.TrimSpace(name); name == "" {
		return nil, app.Validation(c.title, "", app.ErrEmptyInput)
	}

	chart := project.NewChart("", name, "line")
	switch cols := ds.Columns(); {
	case len(cols) >= 2:
		chart.AddSeries(project.NewDataSeries(ds.ID(), cols[0], cols[1], ds.Name()+":"+cols[1]))
	case len(cols) == 1:
		chart.AddSeries(project.NewDataSeries(ds.ID(), "", cols[0], ds.Name()+":"+cols[0]))
	}
	return chart, nil
}

// Description implements history.Command.
func (c *CreateChart) Description() string { return c.describe(c.name) }

// Clone implements history.Cloner.
func (c *CreateChart) Clone() history.Command {
	return NewCreateChart(c.ctx, c.datasetID, c.name, c.parentID)
}
