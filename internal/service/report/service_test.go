package report

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/cmlabs-hris/hris-console/internal/store"
	"github.com/cmlabs-hris/hris-console/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newReportService(t *testing.T, b *storetest.Backend) report.ReportService {
	t.Helper()
	st := store.New(b.Employees(), b.Departments())
	return NewReportService(st, NewAggregator(report.KeepOrphans), func() time.Time { return generatedAt })
}

func reportBackend() *storetest.Backend {
	return storetest.NewBackend(
		[]employee.Employee{
			{Name: "Alice", Department: "Eng", Position: "Dev", Status: employee.StatusActive, Salary: 50000,
				Attendance: &employee.Attendance{DaysWorked: 20, DaysAbsent: 1, DaysOnLeave: 2, LastAttendance: "2024-02-29"}},
			{Name: "Bob", Department: "Eng", Position: "Dev", Status: employee.StatusOnLeave, Salary: 70000},
			{Name: "Carol", Department: "Ops", Position: "Lead", Status: employee.StatusActive, Salary: 30000,
				Attendance: &employee.Attendance{DaysWorked: 10}},
		},
		[]department.Department{
			{Name: "Eng", Budget: 100000},
			{Name: "Ops", Budget: 60000},
		},
	)
}

func TestReportService_GenerateAll(t *testing.T) {
	svc := newReportService(t, reportBackend())

	r, err := svc.Generate(context.Background(), report.ReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, report.AllDepartments, r.Department)
	assert.Equal(t, 3, r.QuickStats.TotalEmployees)
	assert.Equal(t, 50000.0, r.QuickStats.AverageSalary)
	require.Len(t, r.DepartmentPerformance, 2)
	assert.Equal(t, "Eng", r.DepartmentPerformance[0].Name)
	assert.Equal(t, 120, r.DepartmentPerformance[0].BudgetUtilization)
	assert.Equal(t, 50, r.DepartmentPerformance[1].BudgetUtilization)
	assert.Equal(t, 30, r.Attendance.TotalDaysWorked)
	require.Len(t, r.Attendance.Rows, 3)
	assert.Equal(t, "2024-02-29", r.Attendance.Rows[0].LastAttendance)
	assert.Equal(t, "N/A", r.Attendance.Rows[1].LastAttendance, "no attendance block")
	assert.Equal(t, "N/A", r.Attendance.Rows[2].LastAttendance, "empty last attendance")
	require.Len(t, r.Salary, 3)
	assert.Equal(t, 60000.0, r.Salary[0].DepartmentAverage)
	assert.Equal(t, 50000.0, r.Salary[0].CompanyAverage)
	assert.Equal(t, "2024-03-01T09:00:00Z", r.GeneratedAt)
}

func TestReportService_GenerateFiltered(t *testing.T) {
	svc := newReportService(t, reportBackend())

	r, err := svc.Generate(context.Background(), report.ReportRequest{Department: "Ops"})
	require.NoError(t, err)

	assert.Equal(t, "Ops", r.Department)
	assert.Equal(t, 3, r.QuickStats.TotalEmployees)
	require.Len(t, r.DepartmentPerformance, 1)
	assert.Equal(t, "Ops", r.DepartmentPerformance[0].Name)
	require.Len(t, r.Attendance.Rows, 1)
	assert.Equal(t, "Carol", r.Attendance.Rows[0].Name)
	require.Len(t, r.Salary, 1)
	assert.Equal(t, 30000.0, r.Salary[0].DepartmentAverage)
}

func TestReportService_UnknownDepartment(t *testing.T) {
	svc := newReportService(t, reportBackend())

	_, err := svc.Generate(context.Background(), report.ReportRequest{Department: "Sales"})
	assert.ErrorIs(t, err, report.ErrUnknownDepartment)
}

func TestReportService_EmptyEmployees(t *testing.T) {
	b := storetest.NewBackend(nil, []department.Department{{Name: "Eng", Budget: 100000}})
	svc := newReportService(t, b)

	r, err := svc.Generate(context.Background(), report.ReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, r.QuickStats.TotalEmployees)
	assert.Equal(t, 0.0, r.QuickStats.AverageSalary)
	require.Len(t, r.DepartmentPerformance, 1)
	assert.Equal(t, 0.0, r.DepartmentPerformance[0].AverageSalary)
	assert.Empty(t, r.Salary)
}

func TestReportService_NotLoaded(t *testing.T) {
	b := reportBackend()
	b.SetErr(storetest.Unreachable())
	svc := newReportService(t, b)

	_, err := svc.Generate(context.Background(), report.ReportRequest{})
	assert.ErrorIs(t, err, store.ErrNotLoaded)
}
