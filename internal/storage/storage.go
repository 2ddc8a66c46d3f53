// Package storage provides file system persistence for the employee roster.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/ems/internal/model"
	"github.com/kjk/common/atomicfile"
)

// DefaultDataFile is the employees file used when no path is configured.
const DefaultDataFile = "employees.yaml"

// defaultFileMode applies to newly created employees files.
const defaultFileMode os.FileMode = 0644

// ErrNoDataFile is returned by Load when the employees file does not exist yet.
var ErrNoDataFile = errors.New("employees file does not exist")

// File stores the whole roster in a single YAML file.
type File struct {
	path string
}

// NewFile returns a File for the given path.
// The file is not touched until Load or Save is called.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultDataFile
	}
	return &File{path: path}
}

// Path returns the path of the employees file.
func (f *File) Path() string {
	return f.path
}

// Load reads and decodes the employees file.
// Returns ErrNoDataFile if the file is absent.
func (f *File) Load() ([]model.Employee, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoDataFile, f.path)
		}
		return nil, fmt.Errorf("failed to read employees file %s: %w", f.path, err)
	}

	employees, err := model.DecodeRoster(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return employees, nil
}

// Save encodes all employees and replaces the employees file.
// The data is written to a temporary file in the same directory and renamed
// over the destination, so a failed save leaves the previous file intact.
// An existing file keeps its permissions; a new one is created 0644.
func (f *File) Save(employees []model.Employee) error {
	data, err := model.EncodeRoster(employees)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	mode := defaultFileMode
	if info, err := os.Stat(f.path); err == nil {
		mode = info.Mode().Perm()
	}

	w, err := atomicfile.New(f.path)
	if err != nil {
		return fmt.Errorf("failed to create employees file %s: %w", f.path, err)
	}
	defer w.RemoveIfNotClosed()

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write employees file %s: %w", f.path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to write employees file %s: %w", f.path, err)
	}

	// The temp file is created 0600; restore the previous mode.
	if err := os.Chmod(f.path, mode); err != nil {
		return fmt.Errorf("failed to set mode of employees file %s: %w", f.path, err)
	}
	return nil
}
