package department

import "context"

type DepartmentService interface {
	Board(ctx context.Context) (DepartmentBoard, error)
	// Detail returns the department with its rollup and member employees
	Detail(ctx context.Context, id string) (DepartmentDetail, error)
	Create(ctx context.Context, req DepartmentRequest) (Department, error)
	Update(ctx context.Context, id string, req DepartmentRequest) (Department, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}
