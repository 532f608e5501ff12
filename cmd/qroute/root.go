// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qubitmap/internal/config"
	"github.com/katalvlaran/qubitmap/internal/document"
)

// app carries what every subcommand needs after flag parsing.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "qroute",
		Short:         "Map quantum circuits onto device connectivity graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(newTopologyCmd(), newPlaceCmd(a), newRouteCmd(a))

	return root
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
		if err := a.cfg.Validate(); err != nil {
			return err
		}
	}
	a.logger = a.cfg.Logger(cmd.ErrOrStderr())

	return nil
}

// job loads the input document named by the -i flag.
func (a *app) job(path string) (*document.Document, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("job loaded",
		slog.String("path", path),
		slog.Int("qubits", doc.Circuit.Qubits),
		slog.Int("ops", len(doc.Circuit.Ops)),
	)

	return doc, nil
}
