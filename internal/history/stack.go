package history

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/plotdoc/internal/logging"
)

// DefaultMaxEntries is the undo depth used when none is configured.
const DefaultMaxEntries = 10

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrCommandFailed = errors.New("command failed")
)

// OperationInfo describes a stacked command.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
}

// undoEntry wraps a command with metadata.
type undoEntry struct {
	command   Command
	timestamp time.Time
}

func (e *undoEntry) info() OperationInfo {
	return OperationInfo{
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
	}
}

// Option configures a History.
type Option func(*History)

// WithLogger sets the logger for failures and dropped entries.
func WithLogger(l *logrus.Entry) Option {
	return func(h *History) {
		h.log = logging.Component(l, "history")
	}
}

// History executes commands and manages the undo/redo stacks.
type History struct {
	mu sync.Mutex

	undoStack []*undoEntry
	redoStack []*undoEntry

	// Grouping state
	grouping  bool
	groupName string
	groupCmds []Command

	// Configuration
	maxEntries int

	log *logrus.Entry
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int, opts ...Option) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	h := &History{
		maxEntries: maxEntries,
		log:        logging.Component(nil, "history"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute runs cmd and pushes it on success. While grouping, the command
// joins the current group instead.
func (h *History) Execute(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: nil command", ErrCommandFailed)
	}
	if !h.run(cmd, "execute", cmd.Execute) {
		return fmt.Errorf("%w: %s", ErrCommandFailed, cmd.Description())
	}
	h.Push(cmd)
	return nil
}

// ExecuteCommand runs cmd and reports whether it succeeded.
func (h *History) ExecuteCommand(cmd Command) bool {
	return h.Execute(cmd) == nil
}

// run calls fn, converting a panic into failure.
func (h *History) run(cmd Command, op string, fn func() bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			h.log.WithFields(logrus.Fields{
				"op":      op,
				"command": cmd.Description(),
			}).Errorf("command panicked: %v", r)
			ok = false
		}
	}()
	return fn()
}

// Push adds an already executed command to the undo stack and clears the
// redo stack.
func (h *History) Push(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.redoStack = nil
	if h.grouping {
		h.groupCmds = append(h.groupCmds, cmd)
		return
	}

	h.pushLocked(cmd)
}

// pushLocked adds a command without acquiring the lock.
func (h *History) pushLocked(cmd Command) {
	h.undoStack = append(h.undoStack, &undoEntry{
		command:   cmd,
		timestamp: time.Now(),
	})

	h.redoStack = nil
	h.trimLocked()
}

func (h *History) trimLocked() {
	if len(h.undoStack) <= h.maxEntries {
		return
	}
	excess := len(h.undoStack) - h.maxEntries
	for _, e := range h.undoStack[:excess] {
		h.log.WithField("command", e.command.Description()).Debug("dropping oldest undo entry")
	}
	h.undoStack = h.undoStack[excess:]
}

// Undo undoes the last command.
// The lock is released while the command runs so that it may emit events
// whose handlers use the history.
func (h *History) Undo() error {
	h.mu.Lock()
	if len(h.undoStack) == 0 {
		h.mu.Unlock()
		return ErrNothingToUndo
	}

	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.mu.Unlock()

	if !h.run(entry.command, "undo", entry.command.Undo) {
		// Restore entry on failure
		h.mu.Lock()
		h.undoStack = append(h.undoStack, entry)
		h.mu.Unlock()
		return fmt.Errorf("%w: undo %s", ErrCommandFailed, entry.command.Description())
	}

	h.mu.Lock()
	h.redoStack = append(h.redoStack, entry)
	h.mu.Unlock()
	return nil
}

// Redo redoes the last undone command.
func (h *History) Redo() error {
	h.mu.Lock()
	if len(h.redoStack) == 0 {
		h.mu.Unlock()
		return ErrNothingToRedo
	}

	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.mu.Unlock()

	if !h.run(entry.command, "redo", entry.command.Redo) {
		// Restore entry on failure
		h.mu.Lock()
		h.redoStack = append(h.redoStack, entry)
		h.mu.Unlock()
		return fmt.Errorf("%w: redo %s", ErrCommandFailed, entry.command.Description())
	}

	h.mu.Lock()
	h.undoStack = append(h.undoStack, entry)
	h.trimLocked()
	h.mu.Unlock()
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// UndoDescription describes the command Undo would reverse, or "".
func (h *History) UndoDescription() string {
	info, _ := h.PeekUndo()
	return info.Description
}

// RedoDescription describes the command Redo would replay, or "".
func (h *History) RedoDescription() string {
	info, _ := h.PeekRedo()
	return info.Description
}

// BeginGroup starts a command group.
// Commands executed while grouping will be combined into a single undo unit.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		// Already grouping, ignore nested calls
		return
	}

	h.grouping = true
	h.groupName = name
	h.groupCmds = nil
}

// EndGroup finishes a command group.
// All commands since BeginGroup are combined into a CompoundCommand.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}

	h.grouping = false

	if len(h.groupCmds) == 0 {
		h.groupCmds = nil
		return
	}

	compound := &CompoundCommand{
		Name:     h.groupName,
		Commands: h.groupCmds,
	}

	h.pushLocked(compound)
	h.groupCmds = nil
}

// CancelGroup ends a command group without adding to history and undoes
// the commands it collected, most recent first.
func (h *History) CancelGroup() {
	h.mu.Lock()
	if !h.grouping {
		h.mu.Unlock()
		return
	}
	cmds := h.groupCmds
	h.grouping = false
	h.groupCmds = nil
	h.mu.Unlock()

	for i := len(cmds) - 1; i >= 0; i-- {
		if !h.run(cmds[i], "cancel", cmds[i].Undo) {
			h.log.WithField("command", cmds[i].Description()).Warn("could not roll back grouped command")
		}
	}
}

// IsGrouping returns true if currently in a command group.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupCmds = nil
}

// UndoInfo returns info about available undo operations, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, len(h.undoStack))
	for i, entry := range h.undoStack {
		result[i] = entry.info()
	}
	return result
}

// RedoInfo returns info about available redo operations, oldest first.
func (h *History) RedoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, len(h.redoStack))
	for i, entry := range h.redoStack {
		result[i] = entry.info()
	}
	return result
}

// PeekUndo returns info about the next undo operation without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// PeekRedo returns info about the next redo operation without removing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info(), true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max
	h.trimLocked()
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
