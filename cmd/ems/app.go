package main

import (
	"github.com/jacksmith/ems/internal/cli"
	"github.com/jacksmith/ems/internal/logging"
	"github.com/jacksmith/ems/internal/ops"
	"github.com/jacksmith/ems/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// openStore resolves configuration for the current directory, applies
// command-line overrides and opens the record store.
func openStore(cmd *cobra.Command) (*ops.Store, error) {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return nil, err
	}
	if flagFile != "" {
		cfg.DataFile = flagFile
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagNoColor {
		cfg.Color = false
	}

	cli.SetColorEnabled(cfg.Color && cli.IsTerminal(cmd.OutOrStdout()))

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	log := logrus.NewEntry(logger).WithField("path", cfg.DataFile)

	return ops.Open(storage.NewFile(cfg.DataFile), log), nil
}
