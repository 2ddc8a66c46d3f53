package main

import (
	"fmt"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <id> <name> <salary> <position>",
	Short: "Add an employee",
	Long: `Add an employee to the end of the list.

Ids are not checked for uniqueness. When several employees share an id,
find, update and delete act on the one added first.

Examples:
  ems add 7 "Ada Lovelace" 125000 Engineer
  ems add 8 Grace '$99,000' "Rear Admiral"`,
	Args: cobra.ExactArgs(4),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	id, err := cli.ParseID(args[0])
	if err != nil {
		return err
	}
	salary, err := cli.ParseSalary(args[2])
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	if _, err := s.Create(id, args[1], salary, args[3]); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.Green("Employee added successfully."))
	return nil
}
