// Package event provides the synchronous event bus that connects document
// mutations to their observers.
//
// # Event Topics
//
// Events use dot-notation topics defined in the events package:
//
//	folder.created        - a folder was added to the project
//	project.item_added    - any item was added
//	project.changed       - anything in the project structure changed
//
// # Hierarchy
//
// Emitting a specific event also delivers it at every broader level of the
// event hierarchy. Emit("folder.created", d) reaches subscribers of
// folder.created, then project.item_added, then project.changed. Each level
// receives its own shallow copy of d with:
//
//	eventType      the level being delivered
//	originalEvent  the name passed to Emit
//
// A subscriber is therefore called once per level it subscribed to, never
// more.
//
// # Patterns
//
// A subscription topic containing "*" is a glob pattern matched against each
// level. "*" matches any character sequence, including dots:
//
//	dataset.*    - every dataset event and its dataset.* ancestors
//	*.created    - folder.created, note.created, ...
//
// # Delivery
//
// Delivery is synchronous on the caller's stack. For every level, exact
// subscribers run first in registration order, then pattern subscribers in
// order of their pattern's first registration. A handler that returns an
// error or panics is logged and counted; delivery to the remaining handlers
// and levels continues. Handlers may emit, subscribe and unsubscribe; a nested
// Emit completes before the outer one resumes.
//
// # Basic Usage
//
//	bus := event.NewBus(event.WithLogger(logger))
//
//	sub, err := bus.SubscribeFunc(events.ProjectChanged, func(d event.Data) error {
//	    refreshTree()
//	    return nil
//	})
//	if err != nil {
//	    return err
//	}
//	defer bus.Unsubscribe(sub)
//
//	bus.Emit(events.FolderCreated, event.Data{events.KeyItemID: id})
package event
