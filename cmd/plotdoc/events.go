package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/plotdoc/internal/event/events"
	"github.com/dshills/plotdoc/internal/event/topic"
)

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events [name...]",
		Short: "Show the hierarchy levels an event is delivered at",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := events.All
			if len(args) > 0 {
				names = make([]topic.Topic, 0, len(args))
				for _, a := range args {
					t := topic.Topic(a)
					if !t.IsValid() || t.IsPattern() {
						return fmt.Errorf("invalid event name %q", a)
					}
					names = append(names, t)
				}
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				levels := events.Levels(name)
				parts := make([]string, len(levels))
				for i, l := range levels {
					parts[i] = l.String()
				}
				fmt.Fprintln(out, strings.Join(parts, " -> "))
			}
			return nil
		},
	}
}
