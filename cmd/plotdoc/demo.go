package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/plotdoc/internal/app"
	"github.com/dshills/plotdoc/internal/commands"
	"github.com/dshills/plotdoc/internal/event"
	"github.com/dshills/plotdoc/internal/history"
	"github.com/dshills/plotdoc/internal/project/codec"
)

func newDemoCmd(opts *options) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted editing session and print the events it produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), opts, asYAML)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the final project as YAML")
	return cmd
}

func runDemo(out io.Writer, opts *options, asYAML bool) error {
	s := app.NewSession(opts.cfg, app.NewConsoleUI(out, true), opts.log)
	if _, err := s.Bus().SubscribeFunc("*", func(d event.Data) error {
		if d.EventType() == d.OriginalEvent() {
			fmt.Fprintf(out, "event %s\n", d.EventType())
		} else {
			fmt.Fprintf(out, "  -> %s\n", d.EventType())
		}
		return nil
	}); err != nil {
		return err
	}

	p := s.AppState().NewProject(opts.cfg.Project.DefaultName, "Scripted demo session")

	exec := func(cmd history.Command) error {
		fmt.Fprintf(out, "> %s\n", cmd.Description())
		if !s.Executor().ExecuteCommand(cmd) {
			return fmt.Errorf("demo step failed: %s", cmd.Description())
		}
		return nil
	}

	folder := commands.NewCreateFolder(s, "Analysis", "")
	if err := exec(folder); err != nil {
		return err
	}
	note := commands.NewCreateNote(s, "Readme", "Measurements from the bench run.", "")
	if err := exec(note); err != nil {
		return err
	}
	dataset := commands.NewCreateDataset(s, "Measurements", folder.ItemID(), []string{"time", "voltage"}, "bench.csv")
	if err := exec(dataset); err != nil {
		return err
	}
	chart := commands.NewCreateChart(s, dataset.ItemID(), "", folder.ItemID())
	if err := exec(chart); err != nil {
		return err
	}

	const organize = "Organize Results"
	fmt.Fprintf(out, "> %s\n", organize)
	if !s.ExecuteGrouped(organize,
		commands.NewRenameFolder(s, folder.ItemID(), "Results"),
		commands.NewMoveNote(s, note.ItemID(), folder.ItemID()),
	) {
		return fmt.Errorf("demo step failed: %s", organize)
	}
	if err := exec(commands.NewEditNote(s, note.ItemID(), "Bench run, corrected.")); err != nil {
		return err
	}
	if err := exec(commands.NewDeleteItem(s, chart.ItemID())); err != nil {
		return err
	}

	fmt.Fprintf(out, "> undo %s\n", s.History().UndoDescription())
	s.Undo()
	fmt.Fprintf(out, "> redo %s\n", s.History().RedoDescription())
	s.Redo()
	fmt.Fprintf(out, "> undo %s\n", s.History().UndoDescription())
	s.Undo()
	printHistory(out, s.History())

	fmt.Fprintln(out)
	if asYAML {
		return codec.EncodeYAML(out, p)
	}
	return printTree(out, p)
}

// printHistory lists the undo stack oldest first, then the redo stack with
// the next entry to replay last.
func printHistory(out io.Writer, h *history.History) {
	fmt.Fprintln(out, "history:")
	for _, op := range h.UndoInfo() {
		fmt.Fprintf(out, "  undo %s\n", op.Description)
	}
	for _, op := range h.RedoInfo() {
		fmt.Fprintf(out, "  redo %s\n", op.Description)
	}
}
