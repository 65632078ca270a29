// Package storetest provides in-memory repositories for exercising the store
// and the services built on it without a Data Store.
package storetest

import (
	"context"
	"strconv"
	"sync"

	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/domain/record"
	"github.com/cmlabs-hris/hris-console/internal/pkg/datastore"
)

// Backend holds both collections. Set Err to make every call fail with it.
type Backend struct {
	mu          sync.Mutex
	seq         int
	employees   []employee.Employee
	departments []department.Department

	Err   error
	Calls int
}

func NewBackend(employees []employee.Employee, departments []department.Department) *Backend {
	b := &Backend{}
	for _, e := range employees {
		if e.ID == "" {
			e.ID = b.nextID()
		}
		b.employees = append(b.employees, e)
	}
	for _, d := range departments {
		if d.ID == "" {
			d.ID = b.nextID()
		}
		b.departments = append(b.departments, d)
	}
	return b
}

// Unreachable is the error a dead Data Store produces.
func Unreachable() error {
	return &datastore.NetworkError{Method: "GET", URL: "http://localhost:3001", Message: "Network Error"}
}

func (b *Backend) SetErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Err = err
}

func (b *Backend) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Calls
}

func (b *Backend) Employees() employee.EmployeeRepository {
	return &employeeRepo{b: b}
}

func (b *Backend) Departments() department.DepartmentRepository {
	return &departmentRepo{b: b}
}

func (b *Backend) nextID() record.ID {
	b.seq++
	return record.ID(strconv.Itoa(b.seq))
}

func (b *Backend) begin() error {
	b.mu.Lock()
	b.Calls++
	return b.Err
}

type employeeRepo struct {
	b *Backend
}

func (r *employeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return append([]employee.Employee{}, r.b.employees...), nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return employee.Employee{}, err
	}
	for _, e := range r.b.employees {
		if e.ID.String() == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return employee.Employee{}, err
	}
	e.ID = r.b.nextID()
	r.b.employees = append(r.b.employees, e)
	return e, nil
}

func (r *employeeRepo) Update(ctx context.Context, id string, e employee.Employee) (employee.Employee, error) {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return employee.Employee{}, err
	}
	for i := range r.b.employees {
		if r.b.employees[i].ID.String() == id {
			e.ID = record.ID(id)
			r.b.employees[i] = e
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepo) Patch(ctx context.Context, id string, fields map[string]any) (employee.Employee, error) {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return employee.Employee{}, err
	}
	for i := range r.b.employees {
		if r.b.employees[i].ID.String() != id {
			continue
		}
		if status, ok := fields["status"].(employee.Status); ok {
			r.b.employees[i].Status = status
		}
		return r.b.employees[i], nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepo) Delete(ctx context.Context, id string) error {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return err
	}
	for i := range r.b.employees {
		if r.b.employees[i].ID.String() == id {
			r.b.employees = append(r.b.employees[:i], r.b.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type departmentRepo struct {
	b *Backend
}

func (r *departmentRepo) List(ctx context.Context) ([]department.Department, error) {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return append([]department.Department{}, r.b.departments...), nil
}

func (r *departmentRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return department.Department{}, err
	}
	for _, d := range r.b.departments {
		if d.ID.String() == id {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (r *departmentRepo) Create(ctx context.Context, d department.Department) (department.Department, error) {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return department.Department{}, err
	}
	d.ID = r.b.nextID()
	r.b.departments = append(r.b.departments, d)
	return d, nil
}

func (r *departmentRepo) Update(ctx context.Context, id string, d department.Department) (department.Department, error) {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return department.Department{}, err
	}
	for i := range r.b.departments {
		if r.b.departments[i].ID.String() == id {
			d.ID = record.ID(id)
			r.b.departments[i] = d
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (r *departmentRepo) Delete(ctx context.Context, id string) error {
	err := r.b.begin()
	defer r.b.mu.Unlock()
	if err != nil {
		return err
	}
	for i := range r.b.departments {
		if r.b.departments[i].ID.String() == id {
			r.b.departments = append(r.b.departments[:i], r.b.departments[i+1:]...)
			return nil
		}
	}
	return department.ErrDepartmentNotFound
}
