package report

import "github.com/cmlabs-hris/hris-console/internal/domain/employee"

// AllDepartments selects every department in a report filter.
const AllDepartments = "all"

// OrphanPolicy decides what happens to employees whose department name
// matches no Department record.
type OrphanPolicy string

const (
	KeepOrphans OrphanPolicy = "keep"
	DropOrphans OrphanPolicy = "drop"
)

func (p OrphanPolicy) IsValid() bool {
	return p == KeepOrphans || p == DropOrphans
}

// DepartmentRollup holds the statistics of one department name bucket.
type DepartmentRollup struct {
	Name              string  `json:"name"`
	EmployeeCount     int     `json:"employee_count"`
	ActiveEmployees   int     `json:"active_employees"`
	OnLeaveEmployees  int     `json:"on_leave_employees"`
	TotalSalary       int64   `json:"total_salary"`
	AverageSalary     float64 `json:"average_salary"`
	Budget            float64 `json:"budget"`
	BudgetUtilization int     `json:"budget_utilization"` // percent, rounded
	Orphaned          bool    `json:"orphaned"`
}

// GlobalRollup holds company wide statistics.
type GlobalRollup struct {
	TotalEmployees    int     `json:"total_employees"`
	ActiveEmployees   int     `json:"active_employees"`
	OnLeaveEmployees  int     `json:"on_leave_employees"`
	TotalSalary       int64   `json:"total_salary"`
	AverageSalary     float64 `json:"average_salary"`
	TotalDaysWorked   int     `json:"total_days_worked"`
	TotalDaysAbsent   int     `json:"total_days_absent"`
	TotalDaysOnLeave  int     `json:"total_days_on_leave"`
	AverageDaysWorked float64 `json:"average_days_worked"`
}

type DepartmentAverage struct {
	Department string `json:"department"`
	Average    int64  `json:"average"`
}

type ReportRequest struct {
	Department string `json:"department"`
}

// ========================================
// REPORTS & ANALYTICS
// ========================================

type Report struct {
	Department            string             `json:"department"`
	QuickStats            GlobalRollup       `json:"quick_stats"`
	DepartmentPerformance []DepartmentRollup `json:"department_performance"`
	Attendance            AttendanceReport   `json:"attendance"`
	Salary                []SalaryRow        `json:"salary"`
	GeneratedAt           string             `json:"generated_at"`
}

type AttendanceReport struct {
	TotalDaysWorked  int             `json:"total_days_worked"`
	TotalDaysAbsent  int             `json:"total_days_absent"`
	TotalDaysOnLeave int             `json:"total_days_on_leave"`
	Rows             []AttendanceRow `json:"rows"`
}

type AttendanceRow struct {
	EmployeeID     string `json:"employee_id"`
	Name           string `json:"name"`
	Department     string `json:"department"`
	DaysWorked     int    `json:"days_worked"`
	DaysAbsent     int    `json:"days_absent"`
	DaysOnLeave    int    `json:"days_on_leave"`
	LastAttendance string `json:"last_attendance"`
}

type SalaryRow struct {
	EmployeeID        string          `json:"employee_id"`
	Name              string          `json:"name"`
	Department        string          `json:"department"`
	Position          string          `json:"position"`
	Status            employee.Status `json:"status"`
	Salary            int64           `json:"salary"`
	DepartmentAverage float64         `json:"department_average"`
	CompanyAverage    float64         `json:"company_average"`
}
