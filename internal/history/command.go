package history

import "fmt"

// Command is a reversible operation with all inputs bound at construction.
type Command interface {
	// Execute performs the command and reports whether it took effect.
	Execute() bool

	// Undo reverses a successful Execute or Redo.
	Undo() bool

	// Redo replays the command after Undo.
	Redo() bool

	// Description returns a human-readable description of the command.
	Description() string
}

// Cloner is implemented by commands that can produce a fresh, unexecuted
// copy of themselves with the same construction parameters.
type Cloner interface {
	Clone() Command
}

// CompoundCommand groups multiple commands as one undo unit.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a new compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		Name:     name,
		Commands: commands,
	}
}

// Execute runs all commands in order. If one fails, the ones already run
// are undone in reverse order.
func (c *CompoundCommand) Execute() bool {
	for i, cmd := range c.Commands {
		if !cmd.Execute() {
			c.rollback(i)
			return false
		}
	}
	return true
}

// Undo reverses all commands in reverse order. If one fails, the ones
// already undone are redone so the group stays applied.
func (c *CompoundCommand) Undo() bool {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if !c.Commands[i].Undo() {
			for j := i + 1; j < len(c.Commands); j++ {
				c.Commands[j].Redo()
			}
			return false
		}
	}
	return true
}

// Redo replays all commands in order. If one fails, the ones already
// redone are undone again.
func (c *CompoundCommand) Redo() bool {
	for i, cmd := range c.Commands {
		if !cmd.Redo() {
			c.rollback(i)
			return false
		}
	}
	return true
}

func (c *CompoundCommand) rollback(n int) {
	for j := n - 1; j >= 0; j-- {
		c.Commands[j].Undo()
	}
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Clone returns a compound of fresh copies. Children that do not implement
// Cloner are shared with the original.
func (c *CompoundCommand) Clone() Command {
	cmds := make([]Command, len(c.Commands))
	for i, cmd := range c.Commands {
		if cl, ok := cmd.(Cloner); ok {
			cmds[i] = cl.Clone()
		} else {
			cmds[i] = cmd
		}
	}
	return NewCompoundCommand(c.Name, cmds...)
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}
