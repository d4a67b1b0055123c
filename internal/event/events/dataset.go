package events

import "github.com/dshills/plotdoc/internal/event/topic"

// Dataset topics. Structural and data edits roll up into DatasetChanged.
const (
	DatasetChanged          topic.Topic = "dataset.changed"
	DatasetStructureChanged topic.Topic = "dataset.structure_changed"
	DatasetDataChanged      topic.Topic = "dataset.data_changed"
	DatasetSelected         topic.Topic = "dataset.selected"

	DatasetCreated topic.Topic = "dataset.created"
	DatasetUpdated topic.Topic = "dataset.updated"
	DatasetDeleted topic.Topic = "dataset.deleted"

	DatasetColumnAdded     topic.Topic = "dataset.column_added"
	DatasetColumnRemoved   topic.Topic = "dataset.column_removed"
	DatasetColumnRenamed   topic.Topic = "dataset.column_renamed"
	DatasetColumnReordered topic.Topic = "dataset.column_reordered"

	DatasetRowAdded   topic.Topic = "dataset.row_added"
	DatasetRowRemoved topic.Topic = "dataset.row_removed"
	DatasetRowUpdated topic.Topic = "dataset.row_updated"

	DatasetBulkUpdate topic.Topic = "dataset.bulk_update"
	DatasetImported   topic.Topic = "dataset.imported"
	DatasetExported   topic.Topic = "dataset.exported"
)
