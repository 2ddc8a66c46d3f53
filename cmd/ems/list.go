package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/ems/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all employees",
	Long: `List all employees in the order they were added.

Use --plain for one line per employee instead of a table.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listPlain bool

func init() {
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "one line per employee, no table")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	employees, err := s.List()
	if errors.Is(err, ops.ErrNoEmployees) {
		fmt.Fprintln(out, "No employees found.")
		return nil
	}
	if err != nil {
		return err
	}

	if listPlain {
		for _, e := range employees {
			fmt.Fprintln(out, e)
		}
		return nil
	}
	renderTable(out, employees)
	return nil
}
