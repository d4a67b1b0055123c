package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/plotdoc/internal/event/topic"
	"github.com/dshills/plotdoc/internal/project"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name topic.Topic
		want []topic.Topic
	}{
		{FolderCreated, []topic.Topic{FolderCreated, ProjectItemAdded, ProjectChanged}},
		{NoteRenamed, []topic.Topic{NoteRenamed, ProjectItemRenamed, ProjectChanged}},
		{DatasetItemRemoved, []topic.Topic{DatasetItemRemoved, ProjectItemRemoved, ProjectChanged}},
		{ChartMoved, []topic.Topic{ChartMoved, ProjectItemMoved, ProjectChanged}},
		{NoteContentChanged, []topic.Topic{NoteContentChanged, ProjectChanged}},
		{DatasetItemImported, []topic.Topic{DatasetItemImported, ProjectItemAdded, ProjectChanged}},
		{DatasetColumnAdded, []topic.Topic{DatasetColumnAdded, DatasetStructureChanged, DatasetChanged}},
		{DatasetBulkUpdate, []topic.Topic{DatasetBulkUpdate, DatasetDataChanged, DatasetChanged}},
		{DatasetImported, []topic.Topic{DatasetImported, DatasetChanged}},
		{AnalysisCompleted, []topic.Topic{AnalysisCompleted, DatasetColumnAdded, DatasetStructureChanged, DatasetChanged}},
		{ProjectStructureChanged, []topic.Topic{ProjectStructureChanged, ProjectChanged}},
		{ProjectChanged, []topic.Topic{ProjectChanged}},
		{UITabChanged, []topic.Topic{UITabChanged}},
		{"plugin.custom", []topic.Topic{"plugin.custom"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			assert.Equal(t, tt.want, Levels(tt.name))
		})
	}
}

func TestEveryChainEndsAtARoot(t *testing.T) {
	roots := map[topic.Topic]bool{ProjectChanged: true, DatasetChanged: true}
	for _, name := range All {
		levels := Levels(name)
		assert.Equal(t, name, levels[0])
		if len(levels) > 1 {
			assert.True(t, roots[levels[len(levels)-1]], "%s ends at %s", name, levels[len(levels)-1])
		}
		seen := map[topic.Topic]bool{}
		for _, l := range levels {
			assert.False(t, seen[l], "%s repeats %s", name, l)
			seen[l] = true
		}
	}
}

func TestAllIsValidAndUnique(t *testing.T) {
	seen := map[topic.Topic]bool{}
	for _, name := range All {
		assert.True(t, name.IsValid(), name)
		assert.False(t, seen[name], "duplicate %s", name)
		seen[name] = true
	}
	for _, name := range Hierarchy.Topics() {
		assert.True(t, seen[name], "%s missing from All", name)
	}
}

func TestForKind(t *testing.T) {
	assert.Equal(t, FolderDeleted, ForKind(project.KindFolder).Deleted)
	assert.Equal(t, NoteMoved, ForKind(project.KindNote).Moved)
	assert.Equal(t, DatasetItemRemoved, ForKind(project.KindDataset).Deleted)
	assert.Equal(t, ChartRestored, ForKind(project.KindChart).Restored)
	assert.Equal(t, ItemRenamed, ForKind(project.KindCollection).Renamed)
	assert.Equal(t, ItemCreated, ForItem(nil).Created)
	assert.Equal(t, NoteCreated, ForItem(project.NewNote("", "n", "")).Created)
}
