package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/plotdoc/internal/config"
	"github.com/dshills/plotdoc/internal/logging"
)

// options holds the persistent flags and what they resolve to.
type options struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *logrus.Entry
}

// NewRootCmd creates the root plotdoc command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "plotdoc",
		Short:         "plotdoc - project documents with undoable commands and hierarchical events",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newDemoCmd(opts))
	root.AddCommand(newEventsCmd())
	root.AddCommand(newTreeCmd(opts))
	return root
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cfg, err = config.FromEnv(cfg); err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	o.cfg = cfg

	lc := logging.DefaultConfig()
	lc.Level = cfg.Log.Level
	lc.Format = logging.Format(cfg.Log.Format)
	lc.Output = cmd.ErrOrStderr()
	o.log = logging.Component(logging.New(lc), "cli")
	return nil
}
