package events

// Keys added to every delivered payload by the bus.
const (
	// KeyEventType is the hierarchy level being delivered.
	KeyEventType = "eventType"

	// KeyOriginalEvent is the name passed to Emit.
	KeyOriginalEvent = "originalEvent"
)

// Payload keys set by commands and the application state.
const (
	KeyProject        = "project"
	KeyItemID         = "itemId"
	KeyItemName       = "itemName"
	KeyItemType       = "itemType"
	KeyParentID       = "parentId"
	KeyItem           = "item"
	KeyItemData       = "itemData"
	KeyRemovedIDs     = "removedIds"
	KeyOldName        = "oldName"
	KeyNewName        = "newName"
	KeyOldContent     = "oldContent"
	KeyNewContent     = "newContent"
	KeySourceParentID = "sourceParentId"
	KeyTargetParentID = "targetParentId"
	KeyDatasetID      = "datasetId"
	KeyUndo           = "undo"
	KeyRedo           = "redo"
)

// Payload keys set by project lifecycle events.
const (
	KeyFilePath        = "filePath"
	KeyPreviousProject = "previousProject"
)
