package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/cmlabs-hris/hris-console/internal/store"
)

type ReportServiceImpl struct {
	store      *store.Store
	aggregator *Aggregator
	now        func() time.Time
}

func NewReportService(st *store.Store, aggregator *Aggregator, now func() time.Time) report.ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportServiceImpl{
		store:      st,
		aggregator: aggregator,
		now:        now,
	}
}

// Generate implements report.ReportService. Quick stats and the company
// average always cover everyone; the department filter narrows the tables.
func (s *ReportServiceImpl) Generate(ctx context.Context, req report.ReportRequest) (report.Report, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return report.Report{}, err
	}

	filter := req.Department
	if filter == "" {
		filter = report.AllDepartments
	}

	rollups := s.aggregator.OrderedRollups(snap.Employees, snap.Departments)
	if filter != report.AllDepartments {
		rollups = selectRollup(rollups, filter)
		if len(rollups) == 0 {
			return report.Report{}, fmt.Errorf("%w: %s", report.ErrUnknownDepartment, filter)
		}
	}

	global := Global(snap.Employees)
	selected := FilterByDepartment(snap.Employees, filter)

	deptAverage := make(map[string]float64, len(rollups))
	for _, r := range s.aggregator.DepartmentRollups(snap.Employees, snap.Departments) {
		deptAverage[r.Name] = r.AverageSalary
	}

	return report.Report{
		Department:            filter,
		QuickStats:            global,
		DepartmentPerformance: rollups,
		Attendance:            attendanceReport(selected),
		Salary:                salaryRows(selected, deptAverage, global.AverageSalary),
		GeneratedAt:           s.now().Format(time.RFC3339),
	}, nil
}

func selectRollup(rollups []report.DepartmentRollup, name string) []report.DepartmentRollup {
	for _, r := range rollups {
		if r.Name == name {
			return []report.DepartmentRollup{r}
		}
	}
	return nil
}

func attendanceReport(employees []employee.Employee) report.AttendanceReport {
	out := report.AttendanceReport{Rows: make([]report.AttendanceRow, 0, len(employees))}
	for _, e := range employees {
		att := e.AttendanceOrZero()
		out.TotalDaysWorked += att.DaysWorked
		out.TotalDaysAbsent += att.DaysAbsent
		out.TotalDaysOnLeave += att.DaysOnLeave
		out.Rows = append(out.Rows, report.AttendanceRow{
			EmployeeID:     e.ID.String(),
			Name:           e.Name,
			Department:     e.Department,
			DaysWorked:     att.DaysWorked,
			DaysAbsent:     att.DaysAbsent,
			DaysOnLeave:    att.DaysOnLeave,
			LastAttendance: lastAttendance(att),
		})
	}
	return out
}

func lastAttendance(att employee.Attendance) string {
	if att.LastAttendance == "" {
		return "N/A"
	}
	return att.LastAttendance
}

func salaryRows(employees []employee.Employee, deptAverage map[string]float64, companyAverage float64) []report.SalaryRow {
	rows := make([]report.SalaryRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, report.SalaryRow{
			EmployeeID:        e.ID.String(),
			Name:              e.Name,
			Department:        e.Department,
			Position:          e.Position,
			Status:            e.Status,
			Salary:            e.Salary,
			DepartmentAverage: deptAverage[e.Department],
			CompanyAverage:    companyAverage,
		})
	}
	return rows
}
