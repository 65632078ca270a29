package rest

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/pkg/datastore"
)

const departmentsCollection = "departments"

type departmentRepositoryImpl struct {
	collection *datastore.Collection[department.Department]
}

func NewDepartmentRepository(client *datastore.Client) department.DepartmentRepository {
	return &departmentRepositoryImpl{
		collection: datastore.NewCollection[department.Department](client, departmentsCollection),
	}
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	departments, err := r.collection.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	result, err := r.collection.Get(ctx, id)
	if err != nil {
		return department.Department{}, departmentError("get", err)
	}
	return result, nil
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	d.ID = ""
	result, err := r.collection.Create(ctx, d)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return result, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, id string, d department.Department) (department.Department, error) {
	result, err := r.collection.Update(ctx, id, d)
	if err != nil {
		return department.Department{}, departmentError("update", err)
	}
	return result, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.collection.Delete(ctx, id); err != nil {
		return departmentError("delete", err)
	}
	return nil
}

func departmentError(op string, err error) error {
	if datastore.IsNotFound(err) {
		return fmt.Errorf("failed to %s department: %w: %w", op, department.ErrDepartmentNotFound, err)
	}
	return fmt.Errorf("failed to %s department: %w", op, err)
}
