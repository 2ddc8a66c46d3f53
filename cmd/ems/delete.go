package main

import (
	"fmt"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an employee",
	Long: `Delete the first employee with the given id.

If several employees share the id, only the one added first is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := cli.ParseID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	if err := s.Delete(id); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.Green(fmt.Sprintf("Employee with ID %d deleted successfully.", id)))
	return nil
}
