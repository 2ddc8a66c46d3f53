package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/jacksmith/ems/internal/model"
	"github.com/jacksmith/ems/internal/ops"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start the interactive menu. This is also what ems does with no subcommand.

At the prompt, enter a number or the start of a command name
(e.g. "a" for add, "det" for details). End of input exits.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

type menuAction string

const (
	actionAdd     menuAction = "add"
	actionList    menuAction = "list"
	actionUpdate  menuAction = "update"
	actionSearch  menuAction = "search"
	actionDelete  menuAction = "delete"
	actionDetails menuAction = "details"
	actionExit    menuAction = "exit"
)

type menuItem struct {
	action menuAction
	label  string
}

// menuItems are listed in display order; an item's number is its index + 1.
var menuItems = []menuItem{
	{actionAdd, "Add Employee"},
	{actionList, "View All Employees"},
	{actionUpdate, "Update Employee"},
	{actionSearch, "Search Employee"},
	{actionDelete, "Delete Employee"},
	{actionDetails, "View Employee Details"},
	{actionExit, "Exit"},
}

func runMenu(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	return newMenu(s, cmd.InOrStdin(), cmd.OutOrStdout()).run()
}

// menu drives the store from line-oriented user input.
type menu struct {
	store *ops.Store
	in    *cli.Prompter
	out   io.Writer
}

func newMenu(s *ops.Store, r io.Reader, w io.Writer) *menu {
	return &menu{store: s, in: cli.NewPrompter(r, w), out: w}
}

// run loops until the user exits or input ends.
func (m *menu) run() error {
	for {
		m.printMenu()

		line, err := m.in.Line("Enter your choice: ")
		if err != nil {
			return m.finish(err)
		}

		action, err := parseChoice(line)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid choice. Please enter a valid option.")
			continue
		}
		if action == actionExit {
			return m.finish(nil)
		}

		if err := m.dispatch(action); err != nil {
			return m.finish(err)
		}
	}
}

// finish prints the goodbye line. End of input is a normal exit.
func (m *menu) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if err != nil {
		fmt.Fprintln(m.out)
	}
	fmt.Fprintln(m.out, "Exiting Employee Management System. Goodbye!")
	return nil
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, cli.Bold("Employee Management System"))
	for i, item := range menuItems {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, item.label)
	}
}

// parseChoice accepts a menu number or a unique prefix of an action name,
// ignoring case and surrounding space.
func parseChoice(line string) (menuAction, error) {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "" {
		return "", fmt.Errorf("no choice given")
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(menuItems) {
			return "", fmt.Errorf("no menu item %d", n)
		}
		return menuItems[n-1].action, nil
	}

	var matches []menuAction
	for _, item := range menuItems {
		if string(item.action) == line {
			return item.action, nil
		}
		if strings.HasPrefix(string(item.action), line) {
			matches = append(matches, item.action)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown choice %q", line)
	case 1:
		return matches[0], nil
	}
	names := make([]string, len(matches))
	for i, a := range matches {
		names[i] = string(a)
	}
	return "", fmt.Errorf("ambiguous choice %q matches: %s", line, strings.Join(names, ", "))
}

// dispatch runs one action. Only input errors are returned; store errors
// are reported to the user and the loop continues.
func (m *menu) dispatch(action menuAction) error {
	switch action {
	case actionAdd:
		return m.add()
	case actionList:
		m.list()
		return nil
	case actionUpdate:
		return m.update()
	case actionSearch:
		return m.search()
	case actionDelete:
		return m.delete()
	case actionDetails:
		return m.details()
	}
	return fmt.Errorf("unhandled menu action %q", action)
}

// readFields prompts for the name, salary and position of an employee.
func (m *menu) readFields(prefix string) (name string, salary float64, position string, err error) {
	if name, err = m.in.Line("Enter " + prefix + "Employee Name: "); err != nil {
		return
	}
	if salary, err = m.in.Float("Enter "+prefix+"Employee Salary: ", prefix+"Employee Salary"); err != nil {
		return
	}
	position, err = m.in.Line("Enter " + prefix + "Employee Position: ")
	return
}

func (m *menu) add() error {
	id, err := m.in.Int("Enter Employee ID: ", "Employee ID")
	if err != nil {
		return err
	}
	name, salary, position, err := m.readFields("")
	if err != nil {
		return err
	}

	if _, err := m.store.Create(id, name, salary, position); err != nil {
		m.report(id, err)
		return nil
	}
	fmt.Fprintln(m.out, cli.Green("Employee added successfully."))
	return nil
}

func (m *menu) list() {
	employees, err := m.store.List()
	if err != nil {
		if errors.Is(err, ops.ErrNoEmployees) {
			fmt.Fprintln(m.out, "No employees found.")
			return
		}
		fmt.Fprintln(m.out, cli.Red(cli.FormatError(err)))
		return
	}
	for _, e := range employees {
		fmt.Fprintln(m.out, e)
	}
}

func (m *menu) update() error {
	id, err := m.in.Int("Enter Employee ID to update: ", "Employee ID")
	if err != nil {
		return err
	}
	name, salary, position, err := m.readFields("New ")
	if err != nil {
		return err
	}

	if _, err := m.store.Update(id, name, salary, position); err != nil {
		m.report(id, err)
		return nil
	}
	fmt.Fprintln(m.out, cli.Green("Employee updated successfully."))
	return nil
}

func (m *menu) search() error {
	return m.lookup("Enter Employee ID to search: ", func(e model.Employee) {
		fmt.Fprintln(m.out, "Employee found:")
		fmt.Fprintln(m.out, e)
	})
}

func (m *menu) details() error {
	return m.lookup("Enter Employee ID to view details: ", func(e model.Employee) {
		renderDetails(m.out, e)
	})
}

func (m *menu) lookup(prompt string, show func(model.Employee)) error {
	id, err := m.in.Int(prompt, "Employee ID")
	if err != nil {
		return err
	}

	e, err := m.store.Find(id)
	if err != nil {
		m.report(id, err)
		return nil
	}
	show(e)
	return nil
}

func (m *menu) delete() error {
	id, err := m.in.Int("Enter Employee ID to delete: ", "Employee ID")
	if err != nil {
		return err
	}

	if err := m.store.Delete(id); err != nil {
		m.report(id, err)
		return nil
	}
	fmt.Fprintln(m.out, cli.Green(fmt.Sprintf("Employee with ID %d deleted successfully.", id)))
	return nil
}

// report renders a store error for the operator.
func (m *menu) report(id int, err error) {
	if ops.IsNotFound(err) {
		fmt.Fprintln(m.out, cli.Yellow(fmt.Sprintf("Employee with ID %d not found.", id)))
		return
	}
	fmt.Fprintln(m.out, cli.Red(cli.FormatError(err)))
}
