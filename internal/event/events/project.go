package events

import "github.com/dshills/plotdoc/internal/event/topic"

// Project lifecycle topics.
const (
	ProjectCreated     topic.Topic = "project.created"
	ProjectLoaded      topic.Topic = "project.loaded"
	ProjectSaved       topic.Topic = "project.saved"
	ProjectSaving      topic.Topic = "project.saving"
	ProjectClosed      topic.Topic = "project.closed"
	FirstProjectLoaded topic.Topic = "first_project_loaded"
)

// Generic project structure topics. Subscribe to these when the item kind
// does not matter.
const (
	// ProjectChanged is the most generic structural event.
	ProjectChanged topic.Topic = "project.changed"

	ProjectItemAdded        topic.Topic = "project.item_added"
	ProjectItemRemoved      topic.Topic = "project.item_removed"
	ProjectItemRenamed      topic.Topic = "project.item_renamed"
	ProjectItemMoved        topic.Topic = "project.item_moved"
	ProjectStructureChanged topic.Topic = "project.structure_changed"
)
