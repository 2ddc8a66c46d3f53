package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/jacksmith/ems/internal/model"
)

// renderTable writes employees as an aligned table with a header row.
func renderTable(w io.Writer, employees []model.Employee) {
	table := cli.NewTable()
	table.SetHeader("ID", "NAME", "SALARY", "POSITION")
	table.SetAlignRight(0)
	table.SetAlignRight(2)
	table.SetMaxWidth(1, cli.DefaultMaxNameWidth)
	table.SetMaxWidth(3, cli.DefaultMaxNameWidth)
	for _, e := range employees {
		table.AddRow(strconv.Itoa(e.ID), e.Name, model.FormatSalary(e.Salary), e.Position)
	}
	table.Render(w)
}

// renderDetails writes one field per line.
func renderDetails(w io.Writer, e model.Employee) {
	fmt.Fprintf(w, "ID:       %d\n", e.ID)
	fmt.Fprintf(w, "Name:     %s\n", e.Name)
	fmt.Fprintf(w, "Salary:   %s\n", model.FormatSalary(e.Salary))
	fmt.Fprintf(w, "Position: %s\n", e.Position)
}
