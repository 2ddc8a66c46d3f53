package main

import (
	"fmt"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:     "find <id>",
	Aliases: []string{"search"},
	Short:   "Find an employee by id",
	Long: `Print the first employee with the given id on one line.

Exits with an error if no employee has that id.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
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

	fmt.Fprintln(cmd.OutOrStdout(), e)
	return nil
}
