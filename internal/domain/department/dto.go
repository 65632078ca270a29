package department

import (
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/domain/record"
	"github.com/cmlabs-hris/hris-console/internal/pkg/validator"
)

type DepartmentRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Manager     string        `json:"manager"`
	Budget      record.Amount `json:"budget"`
}

func (r *DepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Budget < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "budget",
			Message: ErrNegativeBudget.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *DepartmentRequest) ToDepartment() Department {
	return Department{
		Name:        r.Name,
		Description: r.Description,
		Manager:     r.Manager,
		Budget:      r.Budget,
	}
}

// DepartmentBoard is the department management view.
type DepartmentBoard struct {
	Departments []DepartmentRow `json:"departments"`
	Stats       BoardStats      `json:"stats"`
}

type DepartmentRow struct {
	Department
	EmployeeCount    int `json:"employee_count"`
	ActiveEmployees  int `json:"active_employees"`
	OnLeaveEmployees int `json:"on_leave_employees"`
}

type BoardStats struct {
	TotalDepartments      int     `json:"total_departments"`
	TotalEmployees        int     `json:"total_employees"`
	AverageDepartmentSize int     `json:"average_department_size"`
	AverageSalary         float64 `json:"average_salary"`
	TotalBudget           float64 `json:"total_budget"`
}

type DepartmentDetail struct {
	Department       Department          `json:"department"`
	EmployeeCount    int                 `json:"employee_count"`
	ActiveEmployees  int                 `json:"active_employees"`
	OnLeaveEmployees int                 `json:"on_leave_employees"`
	TotalSalary      int64               `json:"total_salary"`
	AverageSalary    float64             `json:"average_salary"`
	Utilization      int                 `json:"budget_utilization"`
	Employees        []employee.Employee `json:"employees"`
}
