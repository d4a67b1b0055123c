// Package history provides the reversible command contract and the executor
// that owns the undo and redo stacks.
//
// # Commands
//
// A Command binds all of its inputs at construction and implements:
//   - Execute: validate, capture undo state, mutate, report success
//   - Undo: reverse the captured mutation
//   - Redo: replay the mutation through the same path as Execute
//
// Undo and Redo return false before a successful Execute. Commands that can
// be replayed as a brand-new operation implement Cloner.
//
// # History Stack
//
// The History type manages undo/redo stacks and command grouping:
//
//	h := history.NewHistory(10) // Max 10 undo entries
//
//	// Execute commands
//	if !h.ExecuteCommand(cmd) {
//	    // nothing was pushed
//	}
//
//	// Undo/redo
//	h.Undo()
//	h.Redo()
//
// Executing a new command clears the redo stack. When the undo stack exceeds
// its limit the oldest entry is dropped. A command that fails or panics is
// never pushed, and a failed undo or redo leaves its entry where it was.
//
// # Command Grouping
//
// Multiple commands can be grouped as a single undo unit:
//
//	h.BeginGroup("Reorganize")
//	h.ExecuteCommand(move1)
//	h.ExecuteCommand(move2)
//	h.EndGroup()
//
// Now both moves undo together. CancelGroup undoes the commands executed
// since BeginGroup and pushes nothing.
package history
