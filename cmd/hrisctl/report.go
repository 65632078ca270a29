package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app func() *console) *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print quick stats, department performance, attendance and salary reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app().reports.Generate(cmd.Context(), report.ReportRequest{Department: department})
			if err != nil {
				banner(cmd.ErrOrStderr(), app().store)
				return err
			}
			printReport(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().StringVarP(&department, "department", "d", report.AllDepartments, "Department name, or all")
	return cmd
}

func printReport(out io.Writer, r report.Report) {
	q := r.QuickStats
	fmt.Fprintf(out, "Report for %s (generated %s)\n\n", r.Department, r.GeneratedAt)
	fmt.Fprintln(out, "QUICK STATS")
	fmt.Fprintf(out, "  Total employees:   %d\n", q.TotalEmployees)
	fmt.Fprintf(out, "  Active / on leave: %d / %d\n", q.ActiveEmployees, q.OnLeaveEmployees)
	fmt.Fprintf(out, "  Average salary:    %s\n", money(q.AverageSalary))
	fmt.Fprintf(out, "  Avg days worked:   %.1f\n\n", q.AverageDaysWorked)

	fmt.Fprintln(out, "DEPARTMENT PERFORMANCE")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DEPARTMENT\tEMPLOYEES\tACTIVE\tON LEAVE\tTOTAL SALARY\tAVG SALARY\tBUDGET\tUTILIZATION")
	for _, d := range r.DepartmentPerformance {
		name := d.Name
		if d.Orphaned {
			name += " (no record)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\t%d%%\n",
			name, d.EmployeeCount, d.ActiveEmployees, d.OnLeaveEmployees,
			money(float64(d.TotalSalary)), money(d.AverageSalary), money(d.Budget), d.BudgetUtilization)
	}
	tw.Flush()

	a := r.Attendance
	fmt.Fprintf(out, "\nATTENDANCE (worked %d, absent %d, on leave %d)\n", a.TotalDaysWorked, a.TotalDaysAbsent, a.TotalDaysOnLeave)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE\tDEPARTMENT\tWORKED\tABSENT\tON LEAVE\tLAST ATTENDANCE")
	for _, row := range a.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			row.Name, row.Department, row.DaysWorked, row.DaysAbsent, row.DaysOnLeave, row.LastAttendance)
	}
	tw.Flush()

	fmt.Fprintln(out, "\nSALARY")
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE\tDEPARTMENT\tPOSITION\tSALARY\tDEPT AVG\tCOMPANY AVG")
	for _, row := range r.Salary {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Name, row.Department, row.Position,
			money(float64(row.Salary)), money(row.DepartmentAverage), money(row.CompanyAverage))
	}
	tw.Flush()
}

// money renders whole dollars with thousands separators.
func money(v float64) string {
	n := int64(v + 0.5)
	if v < 0 {
		n = int64(v - 0.5)
	}
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return sign + "$" + string(out)
}
