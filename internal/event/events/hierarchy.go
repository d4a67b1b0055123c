package events

import "github.com/dshills/plotdoc/internal/event/topic"

// parents links each specific topic to the next broader one.
var parents = map[topic.Topic]topic.Topic{
	ProjectItemAdded:        ProjectChanged,
	ProjectItemRemoved:      ProjectChanged,
	ProjectItemRenamed:      ProjectChanged,
	ProjectItemMoved:        ProjectChanged,
	ProjectStructureChanged: ProjectChanged,

	FolderCreated:  ProjectItemAdded,
	FolderRestored: ProjectItemAdded,
	FolderRenamed:  ProjectItemRenamed,
	FolderDeleted:  ProjectItemRemoved,
	FolderMoved:    ProjectItemMoved,

	NoteCreated:        ProjectItemAdded,
	NoteRestored:       ProjectItemAdded,
	NoteRenamed:        ProjectItemRenamed,
	NoteDeleted:        ProjectItemRemoved,
	NoteMoved:          ProjectItemMoved,
	NoteContentChanged: ProjectChanged,

	DatasetItemCreated:  ProjectItemAdded,
	DatasetItemImported: ProjectItemAdded,
	DatasetItemRestored: ProjectItemAdded,
	DatasetItemRenamed:  ProjectItemRenamed,
	DatasetItemRemoved:  ProjectItemRemoved,
	DatasetItemMoved:    ProjectItemMoved,

	ChartCreated:  ProjectItemAdded,
	ChartRestored: ProjectItemAdded,
	ChartRenamed:  ProjectItemRenamed,
	ChartDeleted:  ProjectItemRemoved,
	ChartMoved:    ProjectItemMoved,

	ItemCreated:  ProjectItemAdded,
	ItemRestored: ProjectItemAdded,
	ItemRenamed:  ProjectItemRenamed,
	ItemDeleted:  ProjectItemRemoved,
	ItemMoved:    ProjectItemMoved,

	DatasetStructureChanged: DatasetChanged,
	DatasetDataChanged:      DatasetChanged,
	DatasetColumnAdded:      DatasetStructureChanged,
	DatasetColumnRemoved:    DatasetStructureChanged,
	DatasetColumnRenamed:    DatasetStructureChanged,
	DatasetColumnReordered:  DatasetStructureChanged,
	DatasetRowAdded:         DatasetStructureChanged,
	DatasetRowRemoved:       DatasetStructureChanged,
	DatasetRowUpdated:       DatasetDataChanged,
	DatasetBulkUpdate:       DatasetDataChanged,
	DatasetImported:         DatasetChanged,

	AnalysisCompleted: DatasetColumnAdded,
}

// Hierarchy is the static event hierarchy. It is verified acyclic at init.
var Hierarchy = topic.MustHierarchy(parents)

// All lists every topic defined by this package in a stable order.
var All = []topic.Topic{
	ProjectCreated, ProjectLoaded, ProjectSaved, ProjectSaving, ProjectClosed, FirstProjectLoaded,
	ProjectChanged, ProjectItemAdded, ProjectItemRemoved, ProjectItemRenamed, ProjectItemMoved,
	ProjectStructureChanged,

	FolderCreated, FolderRestored, FolderRenamed, FolderDeleted, FolderMoved,
	NoteCreated, NoteRestored, NoteRenamed, NoteDeleted, NoteMoved, NoteContentChanged,
	DatasetItemCreated, DatasetItemImported, DatasetItemRestored, DatasetItemRenamed,
	DatasetItemRemoved, DatasetItemMoved,
	ChartCreated, ChartRestored, ChartRenamed, ChartDeleted, ChartMoved,
	ItemCreated, ItemRestored, ItemRenamed, ItemDeleted, ItemMoved,

	DatasetChanged, DatasetStructureChanged, DatasetDataChanged, DatasetSelected,
	DatasetCreated, DatasetUpdated, DatasetDeleted,
	DatasetColumnAdded, DatasetColumnRemoved, DatasetColumnRenamed, DatasetColumnReordered,
	DatasetRowAdded, DatasetRowRemoved, DatasetRowUpdated,
	DatasetBulkUpdate, DatasetImported, DatasetExported,

	AppClosing,
	UITabChanged, UITabCreated, UITabClosed, UITabTitleChanged, UIPanelVisibilityChanged,
	UISidebarPanelSelected,
	AnalysisStarted, AnalysisCompleted, AnalysisFailed, AnalysisColumnAdded, AnalysisConfigChanged,
	FitStarted, FitCompleted, FitApplied, FitFailed,
	ChartUpdated, ChartStyleChanged, ChartDataUpdated, ChartSelected, ChartPreviewRequested,
}

// Levels returns name followed by its ancestors in the static hierarchy.
func Levels(name topic.Topic) []topic.Topic {
	return Hierarchy.Levels(name)
}
