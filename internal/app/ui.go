package app

import (
	"fmt"
	"io"
	"sync"
)

// NopUI discards feedback and answers every question with yes.
type NopUI struct{}

func (NopUI) ShowError(string, string)         {}
func (NopUI) ShowWarning(string, string)       {}
func (NopUI) ShowInfo(string, string)          {}
func (NopUI) ShowQuestion(string, string) bool { return true }

// ConsoleUI writes feedback as lines of text and answers questions with a
// fixed answer.
type ConsoleUI struct {
	mu     sync.Mutex
	w      io.Writer
	answer bool
}

// NewConsoleUI returns a ConsoleUI writing to w.
func NewConsoleUI(w io.Writer, answer bool) *ConsoleUI {
	return &ConsoleUI{w: w, answer: answer}
}

// ShowError implements UIController.
func (c *ConsoleUI) ShowError(title, message string) { c.line("error", title, message) }

// ShowWarning implements UIController.
func (c *ConsoleUI) ShowWarning(title, message string) { c.line("warning", title, message) }

// ShowInfo implements UIController.
func (c *ConsoleUI) ShowInfo(title, message string) { c.line("info", title, message) }

// ShowQuestion implements UIController.
func (c *ConsoleUI) ShowQuestion(title, message string) bool {
	answer := "no"
	if c.answer {
		answer = "yes"
	}
	c.line("question", title, message+" -> "+answer)
	return c.answer
}

func (c *ConsoleUI) line(level, title, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "[%s] %s: %s\n", level, title, message)
}
