// Package commands implements the reversible document operations.
//
// Every command binds its inputs at construction and implements
// history.Command. Execute validates, captures what undo needs, mutates the
// current project and emits one event on the application bus. Undo and Redo
// are no-ops that return false until Execute has succeeded.
//
// Commands never panic. Validation problems are shown as warnings through
// the application's UIController; unexpected failures are shown as errors.
//
//	cmd := commands.NewCreateFolder(ctx, "Reports", "")
//	ctx.Executor().ExecuteCommand(cmd)
package commands
