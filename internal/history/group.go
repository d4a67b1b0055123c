package history

// GroupScope provides a convenient way to group commands using defer.
// Usage:
//
//	func reorganize(h *History, cmds []Command) {
//	    defer h.GroupScope("Reorganize").End()
//	    for _, cmd := range cmds {
//	        h.ExecuteCommand(cmd)
//	    }
//	}
type GroupScope struct {
	history *History
	active  bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (h *History) GroupScope(name string) *GroupScope {
	h.BeginGroup(name)
	return &GroupScope{
		history: h,
		active:  true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}

// Cancel cancels the group scope, rolling back its commands.
func (g *GroupScope) Cancel() {
	if g.active {
		g.history.CancelGroup()
		g.active = false
	}
}

// Transaction executes a function within a grouped undo context.
// If the function returns an error, the group is cancelled.
// Otherwise, the group is ended normally.
func (h *History) Transaction(name string, fn func() error) error {
	scope := h.GroupScope(name)
	defer scope.End()

	if err := fn(); err != nil {
		scope.Cancel()
		return err
	}
	return nil
}

// ExecuteGrouped executes multiple commands as a single undo unit.
// If any command fails, those already executed are rolled back.
func (h *History) ExecuteGrouped(name string, cmds ...Command) error {
	if len(cmds) == 0 {
		return nil
	}

	if len(cmds) == 1 {
		// Single command doesn't need grouping
		return h.Execute(cmds[0])
	}

	return h.Transaction(name, func() error {
		for _, cmd := range cmds {
			if err := h.Execute(cmd); err != nil {
				return err
			}
		}
		return nil
	})
}
