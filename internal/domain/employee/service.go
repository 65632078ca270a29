package employee

import "context"

type EmployeeService interface {
	// Board returns the employee table with its stat cards
	Board(ctx context.Context) (EmployeeBoard, error)
	Get(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, req EmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req EmployeeRequest) (Employee, error)
	// ToggleStatus flips Active <-> On Leave and returns the persisted status
	ToggleStatus(ctx context.Context, id string) (Status, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}
