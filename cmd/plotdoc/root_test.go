package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootRegistersSubcommands(t *testing.T) {
	root := NewRootCmd()
	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
		assert.NotNil(t, sub.RunE, sub.Name())
	}
	assert.Subset(t, names, []string{"demo", "events", "tree"})
}

func TestEventsCommand(t *testing.T) {
	out, err := execute(t, "events", "folder.created")
	require.NoError(t, err)
	assert.Equal(t, "folder.created -> project.item_added -> project.changed\n", out)

	_, err = execute(t, "events", "folder.*")
	assert.Error(t, err)

	out, err = execute(t, "events")
	require.NoError(t, err)
	assert.Contains(t, out, "note.content_changed")
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "event folder.created")
	assert.Contains(t, out, "  -> project.changed")
	assert.Contains(t, out, "> undo Delete Item 'Chart from Measurements'")
	assert.Contains(t, out, "[question] Delete Item:")
	assert.Contains(t, out, "event chart.restored")
	assert.Contains(t, out, "- Results [folder]")
	assert.Contains(t, out, "- Chart from Measurements [chart] line, 1 series")
	assert.Contains(t, out, "> Organize Results\n")
	assert.Contains(t, out, "event folder.renamed")
	assert.Contains(t, out, "event note.moved")
	assert.Contains(t, out, "  undo Organize Results\n")
	assert.Contains(t, out, "  redo Delete Item 'Chart from Measurements'\n")
	assert.NotContains(t, out, "[error]")
}

func TestDemoYAMLRoundTripsThroughTree(t *testing.T) {
	out, err := execute(t, "demo", "--yaml")
	require.NoError(t, err)

	// The YAML document follows the first blank line.
	doc := out[strings.Index(out, "\n\n")+2:]
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	tree, err := execute(t, "tree", path)
	require.NoError(t, err)
	assert.Contains(t, tree, "Untitled Project (4 items)")
	assert.Contains(t, tree, "  - Readme [note]")
}

func TestTreeMissingFile(t *testing.T) {
	_, err := execute(t, "tree", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plotdoc.toml")
	require.NoError(t, os.WriteFile(path, []byte("[project]\ndefault_name = \"Bench\"\n"), 0o600))

	out, err := execute(t, "--config", path, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Bench (4 items)")
}
