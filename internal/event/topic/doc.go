// Package topic provides event names, glob patterns and the event hierarchy.
//
// # Topic Format
//
// Topics use dot-notation:
//
//	folder.created
//	project.item_added
//	dataset.column_added
//
// # Patterns
//
// A topic containing "*" is a pattern. "*" matches any character sequence,
// separators included, and every other character is literal. A pattern must
// match the whole topic:
//
//	dataset.*     matches dataset.column_added, dataset.structure_changed
//	*.created     matches folder.created, note.created
//	project*      matches project.changed, project.item_added
//	dataset.*     does not match ui.tab_changed
//
// # Hierarchy
//
// A Hierarchy maps a topic to its broader parent. Levels returns the chain
// from the topic itself up to the most generic ancestor:
//
//	h := topic.MustHierarchy(map[topic.Topic]topic.Topic{
//		"folder.created":     "project.item_added",
//		"project.item_added": "project.changed",
//	})
//	h.Levels("folder.created")
//	// [folder.created project.item_added project.changed]
package topic
