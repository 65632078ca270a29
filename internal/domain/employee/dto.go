package employee

import (
	"time"

	"github.com/cmlabs-hris/hris-console/internal/pkg/validator"
)

// EmployeeRequest is the add/edit form payload.
type EmployeeRequest struct {
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Department string             `json:"department"`
	Position   string             `json:"position"`
	Status     Status             `json:"status,omitempty"`
	Salary     *int64             `json:"salary"`
	Attendance *AttendanceRequest `json:"attendance,omitempty"`
}

type AttendanceRequest struct {
	DaysWorked     int    `json:"daysWorked"`
	DaysAbsent     int    `json:"daysAbsent"`
	DaysOnLeave    int    `json:"daysOnLeave"`
	LastAttendance string `json:"lastAttendance"`
}

func (r *EmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: ErrInvalidEmail.Error(),
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if r.Status != "" && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if r.Salary == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary is required",
		})
	} else if *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: ErrNegativeSalary.Error(),
		})
	}

	if a := r.Attendance; a != nil {
		counters := []struct {
			field string
			value int
		}{
			{"attendance.daysWorked", a.DaysWorked},
			{"attendance.daysAbsent", a.DaysAbsent},
			{"attendance.daysOnLeave", a.DaysOnLeave},
		}
		for _, c := range counters {
			if c.value < 0 {
				errs = append(errs, validator.ValidationError{
					Field:   c.field,
					Message: c.field + " must not be negative",
				})
			}
		}
		if a.LastAttendance != "" {
			if _, ok := validator.IsValidDate(a.LastAttendance); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "attendance.lastAttendance",
					Message: "lastAttendance must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEmployee applies the form defaults: status Active, zero attendance
// counters and today's date as lastAttendance.
func (r *EmployeeRequest) ToEmployee(now time.Time) Employee {
	status := r.Status
	if status == "" {
		status = StatusActive
	}

	var salary int64
	if r.Salary != nil {
		salary = *r.Salary
	}

	attendance := Attendance{}
	if r.Attendance != nil {
		attendance = Attendance{
			DaysWorked:     r.Attendance.DaysWorked,
			DaysAbsent:     r.Attendance.DaysAbsent,
			DaysOnLeave:    r.Attendance.DaysOnLeave,
			LastAttendance: r.Attendance.LastAttendance,
		}
	}
	if attendance.LastAttendance == "" {
		attendance.LastAttendance = now.Format(validator.DateLayout)
	}

	return Employee{
		Name:       r.Name,
		Email:      r.Email,
		Department: r.Department,
		Position:   r.Position,
		Status:     status,
		Salary:     salary,
		Attendance: &attendance,
	}
}

// EmployeeBoard is the employee management view.
type EmployeeBoard struct {
	Employees          []Employee          `json:"employees"`
	Stats              BoardStats          `json:"stats"`
	DepartmentAverages []DepartmentAverage `json:"department_averages"`
}

type BoardStats struct {
	TotalEmployees    int     `json:"total_employees"`
	ActiveEmployees   int     `json:"active_employees"`
	OnLeaveEmployees  int     `json:"on_leave_employees"`
	Departments       int     `json:"departments"`
	AverageSalary     float64 `json:"average_salary"`
	TotalDaysWorked   int     `json:"total_days_worked"`
	TotalDaysAbsent   int     `json:"total_days_absent"`
	TotalDaysOnLeave  int     `json:"total_days_on_leave"`
	AverageDaysWorked int     `json:"average_days_worked"` // rounded
}

type DepartmentAverage struct {
	Department string `json:"department"`
	Average    int64  `json:"average"`
}
