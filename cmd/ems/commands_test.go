package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/jacksmith/ems/internal/model"
	"github.com/jacksmith/ems/internal/ops"
	"github.com/jacksmith/ems/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cli.SetColorEnabled(false)
	os.Exit(m.Run())
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args against the employees file at
// path and returns stdout.
func execute(t *testing.T, path, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--file=" + path}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

// setupDataFile writes employees to a temp employees file.
func setupDataFile(t *testing.T, employees ...model.Employee) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.yaml")
	if len(employees) > 0 {
		require.NoError(t, storage.NewFile(path).Save(employees))
	}
	return path
}

func loadDataFile(t *testing.T, path string) []model.Employee {
	t.Helper()
	employees, err := storage.NewFile(path).Load()
	require.NoError(t, err)
	return employees
}

func sampleData() []model.Employee {
	return []model.Employee{
		{ID: 1, Name: "Alice", Salary: 50000, Position: "Clerk"},
		{ID: 2, Name: "Bob", Salary: 65000.5, Position: "Engineer"},
	}
}

func TestAddCommand(t *testing.T) {
	t.Run("adds and persists", func(t *testing.T) {
		path := setupDataFile(t)

		out, err := execute(t, path, "", "add", "7", "Ada Lovelace", "$125,000.50", "Engineer")
		require.NoError(t, err)
		assert.Contains(t, out, "Employee added successfully.")

		assert.Equal(t, []model.Employee{
			{ID: 7, Name: "Ada Lovelace", Salary: 125000.5, Position: "Engineer"},
		}, loadDataFile(t, path))
	})

	t.Run("appends after existing records", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)

		_, err := execute(t, path, "", "add", "1", "Duplicate", "1", "Twin")
		require.NoError(t, err)

		loaded := loadDataFile(t, path)
		require.Len(t, loaded, 3)
		assert.Equal(t, "Duplicate", loaded[2].Name)
	})

	t.Run("names with line breaks survive a restart", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)

		_, err := execute(t, path, "", "add", "4", " Ada\nLovelace", "1", "p")
		require.NoError(t, err)

		out, err := execute(t, path, "", "find", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Name: Alice")

		loaded := loadDataFile(t, path)
		require.Len(t, loaded, 3)
		assert.Equal(t, " Ada\nLovelace", loaded[2].Name)
	})

	t.Run("invalid id", func(t *testing.T) {
		path := setupDataFile(t)

		_, err := execute(t, path, "", "add", "seven", "Ada", "1", "X")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid employee ID")
	})

	t.Run("invalid salary", func(t *testing.T) {
		path := setupDataFile(t)

		_, err := execute(t, path, "", "add", "7", "Ada", "lots", "X")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid salary")

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("wrong argument count", func(t *testing.T) {
		_, err := execute(t, setupDataFile(t), "", "add", "7", "Ada")
		require.Error(t, err)
	})
}

func TestListCommand(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out, err := execute(t, setupDataFile(t), "", "list")
		require.NoError(t, err)
		assert.Equal(t, "No employees found.\n", out)
	})

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, setupDataFile(t, sampleData()...), "", "list")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "ID  NAME     SALARY  POSITION", lines[0])
		assert.Equal(t, " 1  Alice    $50000  Clerk", lines[1])
		assert.Equal(t, " 2  Bob    $65000.5  Engineer", lines[2])
	})

	t.Run("plain", func(t *testing.T) {
		out, err := execute(t, setupDataFile(t, sampleData()...), "", "list", "--plain")
		require.NoError(t, err)
		assert.Equal(t,
			"ID: 1, Name: Alice, Salary: $50000, Position: Clerk\n"+
				"ID: 2, Name: Bob, Salary: $65000.5, Position: Engineer\n",
			out)
	})

	t.Run("corrupt file lists as empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "employees.yaml")
		require.NoError(t, os.WriteFile(path, []byte("::: not yaml :::\n\t-"), 0644))

		out, err := execute(t, path, "", "list")
		require.NoError(t, err)
		assert.Equal(t, "No employees found.\n", out)
	})
}

func TestFindCommand(t *testing.T) {
	path := setupDataFile(t, sampleData()...)

	out, err := execute(t, path, "", "find", "2")
	require.NoError(t, err)
	assert.Equal(t, "ID: 2, Name: Bob, Salary: $65000.5, Position: Engineer\n", out)

	_, err = execute(t, path, "", "find", "99")
	require.Error(t, err)
	assert.True(t, ops.IsNotFound(err))
	assert.Equal(t, "error: employee 99 not found", cli.FormatError(err))
}

func TestShowCommand(t *testing.T) {
	path := setupDataFile(t, sampleData()...)

	out, err := execute(t, path, "", "show", "1")
	require.NoError(t, err)
	assert.Equal(t,
		"ID:       1\n"+
			"Name:     Alice\n"+
			"Salary:   $50000\n"+
			"Position: Clerk\n",
		out)

	_, err = execute(t, path, "", "show", "5")
	assert.True(t, ops.IsNotFound(err))
}

func TestUpdateCommand(t *testing.T) {
	t.Run("partial update keeps other fields", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)

		out, err := execute(t, path, "", "update", "1", "--salary", "55000")
		require.NoError(t, err)
		assert.Contains(t, out, "Employee updated successfully.")

		loaded := loadDataFile(t, path)
		assert.Equal(t, model.Employee{ID: 1, Name: "Alice", Salary: 55000, Position: "Clerk"}, loaded[0])
		assert.Equal(t, sampleData()[1], loaded[1])
	})

	t.Run("all fields", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)

		_, err := execute(t, path, "", "update", "2", "--name", "Robert", "--salary", "1", "--position", "CTO")
		require.NoError(t, err)

		loaded := loadDataFile(t, path)
		assert.Equal(t, model.Employee{ID: 2, Name: "Robert", Salary: 1, Position: "CTO"}, loaded[1])
	})

	t.Run("no flags is an error", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)

		_, err := execute(t, path, "", "update", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to update")
	})

	t.Run("same values report no changes", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		out, err := execute(t, path, "", "update", "1", "--name", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "No changes.\n", out)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("not found", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)

		_, err := execute(t, path, "", "update", "42", "--name", "X")
		assert.True(t, ops.IsNotFound(err))
	})

	t.Run("bad salary", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)

		_, err := execute(t, path, "", "update", "1", "--salary", "much")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid salary")
	})

	t.Run("interactive edit", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)
		script := filepath.Join(t.TempDir(), "editor.sh")
		require.NoError(t, os.WriteFile(script, []byte(
			"#!/bin/sh\nprintf 'id: 1\\nname: Alice Smith\\nsalary: 51000.0\\nposition: Lead\\n' > \"$1\"\n"), 0755))
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", script)

		_, err := execute(t, path, "", "update", "1", "-i")
		require.NoError(t, err)

		loaded := loadDataFile(t, path)
		assert.Equal(t, model.Employee{ID: 1, Name: "Alice Smith", Salary: 51000, Position: "Lead"}, loaded[0])
	})

	t.Run("interactive edit cannot change id", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)
		script := filepath.Join(t.TempDir(), "editor.sh")
		require.NoError(t, os.WriteFile(script, []byte(
			"#!/bin/sh\nprintf 'id: 9\\nname: Alice\\nsalary: 1.0\\nposition: X\\n' > \"$1\"\n"), 0755))
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", script)

		_, err := execute(t, path, "", "update", "1", "-i")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot change id")
	})
}

func TestDeleteCommand(t *testing.T) {
	t.Run("removes first match only", func(t *testing.T) {
		path := setupDataFile(t,
			model.Employee{ID: 1, Name: "First"},
			model.Employee{ID: 1, Name: "Second"},
		)

		out, err := execute(t, path, "", "delete", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Employee with ID 1 deleted successfully.")

		loaded := loadDataFile(t, path)
		require.Len(t, loaded, 1)
		assert.Equal(t, "Second", loaded[0].Name)
	})

	t.Run("not found leaves file untouched", func(t *testing.T) {
		path := setupDataFile(t, sampleData()...)
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		_, err = execute(t, path, "", "delete", "99")
		assert.True(t, ops.IsNotFound(err))

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestRootRunsMenu(t *testing.T) {
	path := setupDataFile(t, sampleData()...)

	out, err := execute(t, path, "2\n7\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Employee Management System")
	assert.Contains(t, out, "ID: 2, Name: Bob")
	assert.Contains(t, out, "Goodbye!")

	out, err = execute(t, path, "exit\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Goodbye!")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, setupDataFile(t), "", "--log-level", "chatty", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
