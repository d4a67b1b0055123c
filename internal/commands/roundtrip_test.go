package commands

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/plotdoc/internal/history"
	"github.com/dshills/plotdoc/internal/project"
)

// stripModified drops modifiedAt at every depth of a serialized tree and
// replaces NaN with a marker so that trees compare equal.
func stripModified(v any) any {
	switch t := v.(type) {
	case project.Dict:
		return stripMap(t)
	case map[string]any:
		return stripMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = stripModified(e)
		}
		return out
	case float64:
		if math.IsNaN(t) {
			return "NaN"
		}
		return t
	default:
		return v
	}
}

func stripMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, val := range m {
		if k != project.KeyModifiedAt {
			out[k] = stripModified(val)
		}
	}
	return out
}

func allIDs(p *project.Project) []string {
	var ids []string
	for _, it := range p.AllItems() {
		ids = append(ids, it.ID())
	}
	return ids
}

// seedRoundTrip builds root: [Data folder: [Fit chart, Sub folder: [Inner note]], Loose note].
func seedRoundTrip(f *fixture) (folder *project.Folder, note *project.Note) {
	folder = f.addFolder("Data", "")
	chart := project.NewChart("", "Fit", "scatter")
	fit := project.NewFitData("d", "x", "y", "exp", []float64{0, 1}, []float64{math.NaN(), math.Inf(1)})
	fit.FitStats["chi2"] = math.NaN()
	chart.AddFit(fit)
	chart.SetMetadata("bins", 12)
	f.project.AddItem(chart, folder.ID())
	sub := f.addFolder("Sub", folder.ID())
	inner := f.addNote("Inner", "inside", sub.ID())
	inner.SetMetadata("count", 3)
	note = f.addNote("Loose", "text", "")
	note.SetMetadata("rating", 2.0)
	return folder, note
}

func TestExecuteThenUndoRestoresSerializedState(t *testing.T) {
	tests := []struct {
		name  string
		build func(f *fixture, folder *project.Folder, note *project.Note) history.Command
	}{
		{"rename note", func(f *fixture, _ *project.Folder, n *project.Note) history.Command {
			return NewRenameNote(f.session, n.ID(), "Renamed")
		}},
		{"rename folder", func(f *fixture, d *project.Folder, _ *project.Note) history.Command {
			return NewRenameFolder(f.session, d.ID(), "Archive")
		}},
		{"edit note", func(f *fixture, _ *project.Folder, n *project.Note) history.Command {
			return NewEditNote(f.session, n.ID(), "rewritten")
		}},
		{"move note into folder", func(f *fixture, d *project.Folder, n *project.Note) history.Command {
			return NewMoveNote(f.session, n.ID(), d.ID())
		}},
		{"move folder to root end", func(f *fixture, d *project.Folder, _ *project.Note) history.Command {
			sub := d.Items()[1]
			return NewMoveFolder(f.session, sub.ID(), project.RootToken)
		}},
		{"delete note", func(f *fixture, _ *project.Folder, n *project.Note) history.Command {
			return NewDeleteNote(f.session, n.ID())
		}},
		{"delete folder with non-finite fit", func(f *fixture, d *project.Folder, _ *project.Note) history.Command {
			return NewDeleteFolder(f.session, d.ID())
		}},
		{"create note", func(f *fixture, d *project.Folder, _ *project.Note) history.Command {
			return NewCreateNote(f.session, "", "new", d.ID())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			folder, note := seedRoundTrip(f)
			ids := allIDs(f.project)
			before := stripModified(f.project.ToDict())

			f.exec(t, tt.build(f, folder, note))
			require.True(t, f.session.Undo())

			assert.Equal(t, ids, allIDs(f.project))
			assert.Equal(t, before, stripModified(f.project.ToDict()))
			assert.True(t, f.ui.silent(), "%v %v", f.ui.warnings, f.ui.errors)
		})
	}
}

func TestFailedMoveReexecuteKeepsUndoPosition(t *testing.T) {
	f := newFixture(t)
	note := f.addNote("N", "", "")
	folder := f.addFolder("F", "")

	cmd := NewMoveNote(f.session, note.ID(), folder.ID())
	require.True(t, cmd.Execute())
	assert.False(t, cmd.Execute())
	require.Len(t, f.ui.warnings, 1)

	require.True(t, cmd.Undo())
	assert.Equal(t, []string{note.ID(), folder.ID()}, childIDs(f.project.Root()))
	assert.Empty(t, childIDs(folder))
}
