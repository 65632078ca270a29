package department

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	reportservice "github.com/cmlabs-hris/hris-console/internal/service/report"
	"github.com/cmlabs-hris/hris-console/internal/store"
)

type DepartmentServiceImpl struct {
	store      *store.Store
	aggregator *reportservice.Aggregator
}

func NewDepartmentService(st *store.Store, aggregator *reportservice.Aggregator) department.DepartmentService {
	return &DepartmentServiceImpl{
		store:      st,
		aggregator: aggregator,
	}
}

// Board implements department.DepartmentService.
func (s *DepartmentServiceImpl) Board(ctx context.Context) (department.DepartmentBoard, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return department.DepartmentBoard{}, err
	}

	rollups := s.aggregator.DepartmentRollups(snap.Employees, snap.Departments)

	rows := make([]department.DepartmentRow, 0, len(snap.Departments))
	for _, d := range snap.Departments {
		r := rollups[d.Name]
		rows = append(rows, department.DepartmentRow{
			Department:       d,
			EmployeeCount:    r.EmployeeCount,
			ActiveEmployees:  r.ActiveEmployees,
			OnLeaveEmployees: r.OnLeaveEmployees,
		})
	}

	return department.DepartmentBoard{
		Departments: rows,
		Stats: department.BoardStats{
			TotalDepartments:      len(snap.Departments),
			TotalEmployees:        len(snap.Employees),
			AverageDepartmentSize: reportservice.AverageDepartmentSize(snap.Employees, snap.Departments),
			AverageSalary:         reportservice.Global(snap.Employees).AverageSalary,
			TotalBudget:           reportservice.TotalBudget(snap.Departments),
		},
	}, nil
}

// Detail implements department.DepartmentService.
func (s *DepartmentServiceImpl) Detail(ctx context.Context, id string) (department.DepartmentDetail, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return department.DepartmentDetail{}, err
	}

	d, ok := snap.FindDepartment(id)
	if !ok {
		return department.DepartmentDetail{}, fmt.Errorf("%w: %s", department.ErrDepartmentNotFound, id)
	}

	members := make([]employee.Employee, 0)
	for _, e := range snap.Employees {
		if e.Department == d.Name {
			members = append(members, e)
		}
	}
	r := s.aggregator.DepartmentRollups(members, []department.Department{d})[d.Name]

	return department.DepartmentDetail{
		Department:       d,
		EmployeeCount:    r.EmployeeCount,
		ActiveEmployees:  r.ActiveEmployees,
		OnLeaveEmployees: r.OnLeaveEmployees,
		TotalSalary:      r.TotalSalary,
		AverageSalary:    r.AverageSalary,
		Utilization:      r.BudgetUtilization,
		Employees:        members,
	}, nil
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.DepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	cmd := &store.CreateDepartment{Department: req.ToDepartment()}
	if err := s.store.Dispatch(ctx, cmd); err != nil {
		return department.Department{}, err
	}
	return cmd.Result, nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, id string, req department.DepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	cmd := &store.UpdateDepartment{ID: id, Department: req.ToDepartment()}
	if err := s.store.Dispatch(ctx, cmd); err != nil {
		return department.Department{}, err
	}
	return cmd.Result, nil
}

// Delete implements department.DepartmentService. Employees referencing the
// department keep its name.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string, confirmed bool) error {
	return s.store.Dispatch(ctx, &store.DeleteDepartment{ID: id, Confirm: confirmed})
}
