package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
)

// LoadState is the data-loading state of one resource.
type LoadState int

const (
	Idle LoadState = iota
	Loading
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

func (s LoadState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *LoadState) UnmarshalText(text []byte) error {
	for _, state := range []LoadState{Idle, Loading, Loaded, Failed} {
		if state.String() == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown load state %q", text)
}

// Snapshot is an immutable copy of the store contents handed to renderers.
type Snapshot struct {
	Employees        []employee.Employee
	Departments      []department.Department
	EmployeesState   LoadState
	DepartmentsState LoadState
	Error            string
	Message          string
	Version          uint64
	LoadedAt         time.Time
}

// Loaded reports whether both resources are loaded, the only state rollups may be computed from.
func (s Snapshot) Loaded() bool {
	return s.EmployeesState == Loaded && s.DepartmentsState == Loaded
}

// FindEmployee looks an employee up by id.
func (s Snapshot) FindEmployee(id string) (employee.Employee, bool) {
	for _, e := range s.Employees {
		if e.ID.String() == id {
			return e, true
		}
	}
	return employee.Employee{}, false
}

func (s Snapshot) FindDepartment(id string) (department.Department, bool) {
	for _, d := range s.Departments {
		if d.ID.String() == id {
			return d, true
		}
	}
	return department.Department{}, false
}

func (s Snapshot) clone() Snapshot {
	s.Employees = slices.Clone(s.Employees)
	for i, e := range s.Employees {
		if e.Attendance != nil {
			att := *e.Attendance
			s.Employees[i].Attendance = &att
		}
	}
	s.Departments = slices.Clone(s.Departments)
	return s
}

// StateView is the JSON form of the store state.
type StateView struct {
	Employees   ResourceView `json:"employees"`
	Departments ResourceView `json:"departments"`
	Error       string       `json:"error,omitempty"`
	Message     string       `json:"message,omitempty"`
	Version     uint64       `json:"version"`
	LoadedAt    *time.Time   `json:"loaded_at,omitempty"`
}

type ResourceView struct {
	State LoadState `json:"state"`
	Count int       `json:"count"`
}

func (s Snapshot) View() StateView {
	view := StateView{
		Employees:   ResourceView{State: s.EmployeesState, Count: len(s.Employees)},
		Departments: ResourceView{State: s.DepartmentsState, Count: len(s.Departments)},
		Error:       s.Error,
		Message:     s.Message,
		Version:     s.Version,
	}
	if !s.LoadedAt.IsZero() {
		loadedAt := s.LoadedAt
		view.LoadedAt = &loadedAt
	}
	return view
}
