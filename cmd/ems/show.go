package main

import (
	"github.com/jacksmith/ems/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show employee details",
	Long:  `Show every field of the first employee with the given id, one per line.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := cli.ParseID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	e, err := s.Find(id)
	if err != nil {
		return err
	}

	renderDetails(cmd.OutOrStdout(), e)
	return nil
}
