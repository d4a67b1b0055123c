package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/plotdoc/internal/project"
	"github.com/dshills/plotdoc/internal/project/codec"
)

func newTreeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the item tree of a YAML project document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			p, err := codec.DecodeYAML(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			opts.log.WithField("items", p.Len()).Debug("decoded project")
			return printTree(cmd.OutOrStdout(), p)
		},
	}
}

func printTree(w io.Writer, p *project.Project) error {
	if _, err := fmt.Fprintf(w, "%s (%d items)\n", p.Name, p.Len()); err != nil {
		return err
	}
	return p.Walk(func(item project.Item, depth int) error {
		_, err := fmt.Fprintf(w, "%s- %s [%s]%s\n", strings.Repeat("  ", depth), item.Name(), item.Kind(), detail(item))
		return err
	})
}

func detail(item project.Item) string {
	switch it := item.(type) {
	case *project.Note:
		return fmt.Sprintf(" %d chars", len(it.Content()))
	case *project.Dataset:
		return " columns=" + strings.Join(it.Columns(), ",")
	case *project.Chart:
		return fmt.Sprintf(" %s, %d series", it.ChartType(), len(it.Series()))
	default:
		return ""
	}
}
