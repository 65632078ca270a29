package rest

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/pkg/datastore"
)

const employeesCollection = "employees"

type employeeRepositoryImpl struct {
	collection *datastore.Collection[employee.Employee]
}

func NewEmployeeRepository(client *datastore.Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{
		collection: datastore.NewCollection[employee.Employee](client, employeesCollection),
	}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	employees, err := r.collection.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	result, err := r.collection.Get(ctx, id)
	if err != nil {
		return employee.Employee{}, employeeError("get", err)
	}
	return result, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = ""
	result, err := r.collection.Create(ctx, e)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return result, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, e employee.Employee) (employee.Employee, error) {
	result, err := r.collection.Update(ctx, id, e)
	if err != nil {
		return employee.Employee{}, employeeError("update", err)
	}
	return result, nil
}

// Patch implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Patch(ctx context.Context, id string, fields map[string]any) (employee.Employee, error) {
	result, err := r.collection.Patch(ctx, id, fields)
	if err != nil {
		return employee.Employee{}, employeeError("patch", err)
	}
	return result, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.collection.Delete(ctx, id); err != nil {
		return employeeError("delete", err)
	}
	return nil
}

// employeeError keeps the transport error in the chain and adds the not-found sentinel on 404.
func employeeError(op string, err error) error {
	if datastore.IsNotFound(err) {
		return fmt.Errorf("failed to %s employee: %w: %w", op, employee.ErrEmployeeNotFound, err)
	}
	return fmt.Errorf("failed to %s employee: %w", op, err)
}
