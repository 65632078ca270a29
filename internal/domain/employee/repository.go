package employee

import "context"

// EmployeeRepository is backed by the remote Data Store. Every call is one round trip.
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, employee Employee) (Employee, error)
	Update(ctx context.Context, id string, employee Employee) (Employee, error)
	Patch(ctx context.Context, id string, fields map[string]any) (Employee, error)
	Delete(ctx context.Context, id string) error
}
