package employee

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	reportservice "github.com/cmlabs-hris/hris-console/internal/service/report"
	"github.com/cmlabs-hris/hris-console/internal/store"
)

type EmployeeServiceImpl struct {
	store        *store.Store
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewEmployeeService(st *store.Store, employeeRepo employee.EmployeeRepository, now func() time.Time) employee.EmployeeService {
	if now == nil {
		now = time.Now
	}
	return &EmployeeServiceImpl{
		store:        st,
		employeeRepo: employeeRepo,
		now:          now,
	}
}

// Board implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Board(ctx context.Context) (employee.EmployeeBoard, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return employee.EmployeeBoard{}, err
	}

	global := reportservice.Global(snap.Employees)

	averages := make([]employee.DepartmentAverage, 0)
	for _, avg := range reportservice.DepartmentAverages(snap.Employees) {
		averages = append(averages, employee.DepartmentAverage{
			Department: avg.Department,
			Average:    avg.Average,
		})
	}

	employees := snap.Employees
	if employees == nil {
		employees = []employee.Employee{}
	}

	return employee.EmployeeBoard{
		Employees: employees,
		Stats: employee.BoardStats{
			TotalEmployees:    global.TotalEmployees,
			ActiveEmployees:   global.ActiveEmployees,
			OnLeaveEmployees:  global.OnLeaveEmployees,
			Departments:       reportservice.DistinctDepartments(snap.Employees),
			AverageSalary:     global.AverageSalary,
			TotalDaysWorked:   global.TotalDaysWorked,
			TotalDaysAbsent:   global.TotalDaysAbsent,
			TotalDaysOnLeave:  global.TotalDaysOnLeave,
			AverageDaysWorked: int(math.Round(global.AverageDaysWorked)),
		},
		DepartmentAverages: averages,
	}, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.EmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	cmd := &store.CreateEmployee{Employee: req.ToEmployee(s.now())}
	if err := s.store.Dispatch(ctx, cmd); err != nil {
		return employee.Employee{}, err
	}

	return cmd.Result, nil
}

// Update implements employee.EmployeeService. The record is replaced whole;
// the id is kept from the path.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.EmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	cmd := &store.UpdateEmployee{ID: id, Employee: req.ToEmployee(s.now())}
	if err := s.store.Dispatch(ctx, cmd); err != nil {
		return employee.Employee{}, err
	}

	return cmd.Result, nil
}

// ToggleStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ToggleStatus(ctx context.Context, id string) (employee.Status, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return "", err
	}

	current, ok := snap.FindEmployee(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, id)
	}

	cmd := &store.ToggleStatus{ID: id, Current: current.Status}
	if err := s.store.Dispatch(ctx, cmd); err != nil {
		return "", err
	}

	return cmd.Result, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string, confirmed bool) error {
	return s.store.Dispatch(ctx, &store.DeleteEmployee{ID: id, Confirm: confirmed})
}
