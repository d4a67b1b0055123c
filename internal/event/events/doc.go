// Package events defines the event names published on the plotdoc event bus,
// the static hierarchy that links specific events to broader ones, and the
// keys used in event payloads.
//
// Events are grouped by their source:
//
//   - Project events: document lifecycle and generic structure changes
//   - Item events: per-kind create/rename/delete/move for folders, notes,
//     dataset items, charts and generic items
//   - Dataset events: column, row and bulk operations on tabular data
//   - Application events: app, UI, analysis, fit and chart presentation
//
// # Usage
//
//	bus.Subscribe(events.ProjectItemAdded, event.HandlerFunc(func(d event.Data) error {
//	    fmt.Println("added", d[events.KeyItemID])
//	    return nil
//	}))
//	bus.Emit(events.FolderCreated, event.Data{events.KeyItemID: id})
//
// # Topic Naming Convention
//
// Topics follow "<source>.<action>" with past-tense actions. The hierarchy
// maps, for example, folder.created to project.item_added and that to
// project.changed, so a subscriber of project.changed hears about every
// structural edit.
package events
