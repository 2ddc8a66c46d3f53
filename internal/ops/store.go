package ops

import (
	"errors"
	"fmt"

	"github.com/jacksmith/ems/internal/logging"
	"github.com/jacksmith/ems/internal/model"
	"github.com/jacksmith/ems/internal/storage"
	"github.com/sirupsen/logrus"
)

// Persister defines the persistence interface required by the record store.
// The concrete implementation is storage.File, but this interface allows
// alternative backends (in-memory, failing, etc.) for testing.
type Persister interface {
	Load() ([]model.Employee, error)
	Save(employees []model.Employee) error
}

// ErrNoEmployees is returned by List when the roster is empty.
var ErrNoEmployees = errors.New("no employees found")

// NotFoundError indicates no employee has the requested id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee %d not found", e.ID)
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// SaveError indicates the roster could not be written after a mutation.
// The in-memory change is kept; memory and disk stay out of sync until the
// next successful save.
type SaveError struct {
	Op  string // the mutation that triggered the save
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save employees after %s: %v", e.Op, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Store owns the employee collection and keeps it in sync with a Persister.
// Records keep insertion order. Ids are not required to be unique; lookups
// always resolve to the first record with a matching id.
// A Store is not safe for concurrent use.
type Store struct {
	p         Persister
	log       *logrus.Entry
	employees []model.Employee
}

// Open creates a Store and loads the persisted roster.
// Any load failure (missing file, unreadable, corrupt, unknown version)
// results in an empty store; the failure is logged, never returned.
func Open(p Persister, log *logrus.Entry) *Store {
	if log == nil {
		log = logrus.NewEntry(logging.Discard())
	}
	log = log.WithField("component", "store")

	s := &Store{p: p, log: log}

	employees, err := p.Load()
	switch {
	case err == nil:
		s.employees = employees
		log.WithField("count", len(employees)).Debug("loaded employees")
	case errors.Is(err, storage.ErrNoDataFile):
		log.WithError(err).Debug("no employees file, starting empty")
	default:
		log.WithError(err).Warn("failed to load employees, starting empty")
	}
	if s.employees == nil {
		s.employees = []model.Employee{}
	}

	return s
}

// Create appends a new employee and saves the roster.
// Duplicate ids are accepted. Invalid UTF-8 in name or position is replaced
// with U+FFFD so the roster can always be encoded. The returned error, if any, is a *SaveError;
// the employee is added either way.
func (s *Store) Create(id int, name string, salary float64, position string) (model.Employee, error) {
	e := model.NewEmployee(id, name, salary, position)
	s.employees = append(s.employees, e)

	return e, s.save("create")
}

// List returns all employees in insertion order.
// Returns ErrNoEmployees if there are none.
func (s *Store) List() ([]model.Employee, error) {
	if len(s.employees) == 0 {
		return nil, ErrNoEmployees
	}
	out := make([]model.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

// Update replaces the first employee with the given id and saves the roster.
// The id is preserved; every other field takes the new value.
func (s *Store) Update(id int, name string, salary float64, position string) (model.Employee, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Employee{}, notFound(id)
	}

	e := model.NewEmployee(id, name, salary, position)
	s.employees[i] = e

	return e, s.save("update")
}

// Find returns the first employee with the given id.
func (s *Store) Find(id int) (model.Employee, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Employee{}, notFound(id)
	}
	return s.employees[i], nil
}

// Delete removes the first employee with the given id and saves the roster.
// Later records sharing the id are left in place.
func (s *Store) Delete(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}

	s.employees = append(s.employees[:i], s.employees[i+1:]...)

	return s.save("delete")
}

// Len returns the number of employees.
func (s *Store) Len() int {
	return len(s.employees)
}

func (s *Store) indexOf(id int) int {
	for i, e := range s.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) save(op string) error {
	log := s.log.WithFields(logrus.Fields{"op": op, "count": len(s.employees)})
	if err := s.p.Save(s.employees); err != nil {
		log.WithError(err).Debug("save failed, memory and disk now differ")
		return &SaveError{Op: op, Err: err}
	}
	log.Info("data saved")
	return nil
}

func notFound(id int) error {
	return &NotFoundError{ID: id}
}
