package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandErrorMessage(t *testing.T) {
	tests := []struct {
		err  *CommandError
		want string
	}{
		{NewCommandError(KindValidation, "Create Folder", "", ErrEmptyInput), "Create Folder: input cannot be empty"},
		{NotFound("Delete Note", "n1"), "Delete Note n1: item not found: n1"},
		{NewCommandError(KindUnexpected, "Undo", "", nil), "Undo"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}

	var nilErr *CommandError
	assert.Equal(t, "", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}

func TestCommandErrorIs(t *testing.T) {
	err := Validation("Move Item", "n1", ErrWrongKind)
	wrapped := fmt.Errorf("outer: %w", err)

	assert.ErrorIs(t, wrapped, ErrWrongKind)
	assert.ErrorIs(t, wrapped, err)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.NotErrorIs(t, err, Validation("Move Item", "n1", ErrWrongKind))
	assert.ErrorIs(t, Cancelled("Delete", "x"), ErrCancelled)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(fmt.Errorf("wrap: %w", Validation("op", "", ErrNoProject))))
	assert.Equal(t, KindNotFound, KindOf(NotFound("op", "id")))
	assert.Equal(t, KindCancelled, KindOf(Cancelled("op", "id")))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("boom")))
	assert.Equal(t, "not found", KindNotFound.String())
}

type capture struct {
	errors, warnings []string
}

func (c *capture) ShowError(title, msg string)      { c.errors = append(c.errors, title+"|"+msg) }
func (c *capture) ShowWarning(title, msg string)    { c.warnings = append(c.warnings, title+"|"+msg) }
func (c *capture) ShowInfo(string, string)          {}
func (c *capture) ShowQuestion(string, string) bool { return false }

func TestReport(t *testing.T) {
	ui := &capture{}

	Report(ui, "Create Folder", Validation("Create Folder", "", ErrEmptyInput))
	Report(ui, "Create Folder", errors.New("disk on fire"))
	Report(ui, "", NotFound("Move", "x"))
	Report(ui, "", errors.New("boom"))
	Report(ui, "Delete", Cancelled("Delete", "x"))
	Report(ui, "Delete", nil)
	Report(nil, "Delete", errors.New("ignored"))

	assert.Equal(t, []string{
		"Create Folder|Create Folder: input cannot be empty",
		"Not Found|Move x: item not found: x",
	}, ui.warnings)
	assert.Equal(t, []string{
		"Create Folder Error|disk on fire",
		"Error|boom",
	}, ui.errors)
}
