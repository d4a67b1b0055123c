package events

import (
	"github.com/dshills/plotdoc/internal/event/topic"
	"github.com/dshills/plotdoc/internal/project"
)

// Folder topics.
const (
	FolderCreated  topic.Topic = "folder.created"
	FolderRestored topic.Topic = "folder.restored"
	FolderRenamed  topic.Topic = "folder.renamed"
	FolderDeleted  topic.Topic = "folder.deleted"
	FolderMoved    topic.Topic = "folder.moved"
)

// Note topics.
const (
	NoteCreated        topic.Topic = "note.created"
	NoteRestored       topic.Topic = "note.restored"
	NoteRenamed        topic.Topic = "note.renamed"
	NoteDeleted        topic.Topic = "note.deleted"
	NoteMoved          topic.Topic = "note.moved"
	NoteContentChanged topic.Topic = "note.content_changed"
)

// Dataset item topics describe datasets as nodes of the project tree.
// Operations on the tabular data itself use the dataset.* topics.
const (
	DatasetItemCreated  topic.Topic = "dataset_item.created"
	DatasetItemImported topic.Topic = "dataset_item.imported"
	DatasetItemRestored topic.Topic = "dataset_item.restored"
	DatasetItemRenamed  topic.Topic = "dataset_item.renamed"
	DatasetItemRemoved  topic.Topic = "dataset_item.removed"
	DatasetItemMoved    topic.Topic = "dataset_item.moved"
)

// Chart item topics.
const (
	ChartCreated  topic.Topic = "chart.created"
	ChartRestored topic.Topic = "chart.restored"
	ChartRenamed  topic.Topic = "chart.renamed"
	ChartDeleted  topic.Topic = "chart.deleted"
	ChartMoved    topic.Topic = "chart.moved"
)

// Generic item topics, used for kinds without their own set.
const (
	ItemCreated  topic.Topic = "item.created"
	ItemRestored topic.Topic = "item.restored"
	ItemRenamed  topic.Topic = "item.renamed"
	ItemDeleted  topic.Topic = "item.deleted"
	ItemMoved    topic.Topic = "item.moved"
)

// ItemTopics is the set of lifecycle topics for one item kind.
type ItemTopics struct {
	Created  topic.Topic
	Restored topic.Topic
	Renamed  topic.Topic
	Deleted  topic.Topic
	Moved    topic.Topic
}

var (
	folderTopics  = ItemTopics{FolderCreated, FolderRestored, FolderRenamed, FolderDeleted, FolderMoved}
	noteTopics    = ItemTopics{NoteCreated, NoteRestored, NoteRenamed, NoteDeleted, NoteMoved}
	datasetTopics = ItemTopics{DatasetItemCreated, DatasetItemRestored, DatasetItemRenamed, DatasetItemRemoved, DatasetItemMoved}
	chartTopics   = ItemTopics{ChartCreated, ChartRestored, ChartRenamed, ChartDeleted, ChartMoved}
	itemTopics    = ItemTopics{ItemCreated, ItemRestored, ItemRenamed, ItemDeleted, ItemMoved}
)

// ForKind returns the topic set for an item kind. Unknown kinds get the
// generic item.* set.
func ForKind(kind project.Kind) ItemTopics {
	switch kind {
	case project.KindFolder:
		return folderTopics
	case project.KindNote:
		return noteTopics
	case project.KindDataset:
		return datasetTopics
	case project.KindChart:
		return chartTopics
	default:
		return itemTopics
	}
}

// ForItem returns the topic set for item's kind.
func ForItem(item project.Item) ItemTopics {
	if item == nil {
		return itemTopics
	}
	return ForKind(item.Kind())
}
