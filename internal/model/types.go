// Package model defines the core data structures for ems.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// RosterVersion is the current version of the employees file format.
const RosterVersion = 1

// Employee is a single employee record.
// Values are never modified in place; an update replaces the whole record.
type Employee struct {
	ID       int     `yaml:"id"`
	Name     string  `yaml:"name"`
	Salary   float64 `yaml:"salary"`
	Position string  `yaml:"position"`
}

// NewEmployee builds an Employee, replacing invalid UTF-8 in the text fields.
func NewEmployee(id int, name string, salary float64, position string) Employee {
	return Employee{ID: id, Name: CleanText(name), Salary: salary, Position: CleanText(position)}
}

// CleanText replaces each invalid UTF-8 sequence in s with U+FFFD.
func CleanText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// Roster is the on-disk document holding the whole employee collection.
type Roster struct {
	Version   int        `yaml:"version"`
	Employees []Employee `yaml:"employees,omitempty"`
}

// FormatSalary renders a salary with a dollar sign and the shortest
// representation that round-trips (e.g. "$50000", "$1234.5").
func FormatSalary(salary float64) string {
	return "$" + strconv.FormatFloat(salary, 'f', -1, 64)
}

// String returns the one-line form used by list and search output.
func (e Employee) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Salary: %s, Position: %s",
		e.ID, e.Name, FormatSalary(e.Salary), e.Position)
}
