package main

import (
	"bytes"
	"fmt"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/jacksmith/ems/internal/model"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:     "update <id>",
	Aliases: []string{"edit"},
	Short:   "Update an employee",
	Long: `Replace the fields of the first employee with the given id.

Fields not given as flags keep their current value. The id never changes.
Use -i to edit the record as YAML in $EDITOR instead.

Examples:
  ems update 7 --salary=130000
  ems update 7 --name="Ada King" --position="Principal Engineer"
  ems update 7 -i`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateName        string
	updateSalary      string
	updatePosition    string
	updateInteractive bool
)

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "new name")
	updateCmd.Flags().StringVar(&updateSalary, "salary", "", "new salary")
	updateCmd.Flags().StringVar(&updatePosition, "position", "", "new position")
	updateCmd.Flags().BoolVarP(&updateInteractive, "interactive", "i", false, "edit in $EDITOR")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := cli.ParseID(args[0])
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	current, err := s.Find(id)
	if err != nil {
		return err
	}

	var next model.Employee
	if updateInteractive {
		next, err = editEmployee(current)
		if err != nil {
			return err
		}
	} else {
		next, err = applyUpdateFlags(cmd, current)
		if err != nil {
			return err
		}
	}

	if next == current {
		fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
		return nil
	}

	if _, err := s.Update(id, next.Name, next.Salary, next.Position); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.Green("Employee updated successfully."))
	return nil
}

// applyUpdateFlags overlays the flags that were set on current.
func applyUpdateFlags(cmd *cobra.Command, current model.Employee) (model.Employee, error) {
	next := current
	changed := false

	if cmd.Flags().Changed("name") {
		next.Name = updateName
		changed = true
	}
	if cmd.Flags().Changed("salary") {
		salary, err := cli.ParseSalary(updateSalary)
		if err != nil {
			return model.Employee{}, err
		}
		next.Salary = salary
		changed = true
	}
	if cmd.Flags().Changed("position") {
		next.Position = updatePosition
		changed = true
	}

	if !changed {
		return model.Employee{}, &cli.ValidationError{Message: "nothing to update: use --name, --salary, --position or -i"}
	}
	return next, nil
}

// editEmployee opens current as YAML in $EDITOR and parses the result.
func editEmployee(current model.Employee) (model.Employee, error) {
	content, err := model.EncodeEmployee(current)
	if err != nil {
		return model.Employee{}, err
	}

	edited, err := cli.EditInEditor(content, ".yaml")
	if err != nil {
		return model.Employee{}, err
	}
	if bytes.Equal(content, edited) {
		return current, nil
	}

	next, err := model.DecodeEmployee(edited)
	if err != nil {
		return model.Employee{}, err
	}
	if next.ID != current.ID {
		return model.Employee{}, &cli.ValidationError{Field: "id", Message: fmt.Sprintf("cannot change id %d to %d", current.ID, next.ID)}
	}
	return next, nil
}
