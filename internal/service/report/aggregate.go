package report

import (
	"math"
	"sort"

	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/domain/report"
)

// Aggregator turns employee and department lists into rollups. It holds no
// state besides the orphan policy and never fails; divisions by zero yield 0.
type Aggregator struct {
	policy report.OrphanPolicy
}

func NewAggregator(policy report.OrphanPolicy) *Aggregator {
	if !policy.IsValid() {
		policy = report.KeepOrphans
	}
	return &Aggregator{policy: policy}
}

func (a *Aggregator) Policy() report.OrphanPolicy {
	return a.policy
}

// DepartmentRollups groups employees by department name. Every department
// record gets a bucket even when empty; names with no matching record get an
// orphaned bucket with zero budget unless the policy drops them.
func (a *Aggregator) DepartmentRollups(employees []employee.Employee, departments []department.Department) map[string]report.DepartmentRollup {
	rollups := make(map[string]report.DepartmentRollup, len(departments))

	for _, d := range departments {
		if _, seen := rollups[d.Name]; seen {
			continue
		}
		rollups[d.Name] = report.DepartmentRollup{
			Name:   d.Name,
			Budget: d.Budget.Float64(),
		}
	}

	for _, e := range employees {
		r, ok := rollups[e.Department]
		if !ok {
			if a.policy == report.DropOrphans {
				continue
			}
			r = report.DepartmentRollup{Name: e.Department, Orphaned: true}
		}

		r.EmployeeCount++
		r.TotalSalary += e.Salary
		switch e.Status {
		case employee.StatusActive:
			r.ActiveEmployees++
		case employee.StatusOnLeave:
			r.OnLeaveEmployees++
		}
		rollups[e.Department] = r
	}

	for name, r := range rollups {
		r.AverageSalary = average(float64(r.TotalSalary), r.EmployeeCount)
		r.BudgetUtilization = Utilization(r.TotalSalary, r.Budget)
		rollups[name] = r
	}

	return rollups
}

// OrderedRollups returns the rollups in display order: department table
// order first, then orphaned buckets sorted by name.
func (a *Aggregator) OrderedRollups(employees []employee.Employee, departments []department.Department) []report.DepartmentRollup {
	rollups := a.DepartmentRollups(employees, departments)
	ordered := make([]report.DepartmentRollup, 0, len(rollups))

	placed := make(map[string]struct{}, len(rollups))
	for _, d := range departments {
		if _, ok := placed[d.Name]; ok {
			continue
		}
		placed[d.Name] = struct{}{}
		ordered = append(ordered, rollups[d.Name])
	}

	var orphans []report.DepartmentRollup
	for name, r := range rollups {
		if _, ok := placed[name]; !ok {
			orphans = append(orphans, r)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].Name < orphans[j].Name })

	return append(ordered, orphans...)
}

// Global computes company wide totals. A missing attendance block counts as zero.
func Global(employees []employee.Employee) report.GlobalRollup {
	var g report.GlobalRollup

	for _, e := range employees {
		g.TotalEmployees++
		g.TotalSalary += e.Salary
		switch e.Status {
		case employee.StatusActive:
			g.ActiveEmployees++
		case employee.StatusOnLeave:
			g.OnLeaveEmployees++
		}

		att := e.AttendanceOrZero()
		g.TotalDaysWorked += att.DaysWorked
		g.TotalDaysAbsent += att.DaysAbsent
		g.TotalDaysOnLeave += att.DaysOnLeave
	}

	g.AverageSalary = average(float64(g.TotalSalary), g.TotalEmployees)
	g.AverageDaysWorked = average(float64(g.TotalDaysWorked), g.TotalEmployees)

	return g
}

// FilterByDepartment keeps the employees of one department. An empty name or
// "all" keeps everyone.
func FilterByDepartment(employees []employee.Employee, name string) []employee.Employee {
	if name == "" || name == report.AllDepartments {
		return employees
	}

	filtered := make([]employee.Employee, 0)
	for _, e := range employees {
		if e.Department == name {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// DepartmentAverages returns the rounded average salary per department name
// in first-seen order.
func DepartmentAverages(employees []employee.Employee) []report.DepartmentAverage {
	type bucket struct {
		total int64
		count int
	}

	var order []string
	buckets := make(map[string]*bucket)
	for _, e := range employees {
		b, ok := buckets[e.Department]
		if !ok {
			b = &bucket{}
			buckets[e.Department] = b
			order = append(order, e.Department)
		}
		b.total += e.Salary
		b.count++
	}

	averages := make([]report.DepartmentAverage, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		averages = append(averages, report.DepartmentAverage{
			Department: name,
			Average:    int64(math.Round(average(float64(b.total), b.count))),
		})
	}
	return averages
}

// DistinctDepartments counts the department names referenced by employees.
func DistinctDepartments(employees []employee.Employee) int {
	names := make(map[string]struct{})
	for _, e := range employees {
		names[e.Department] = struct{}{}
	}
	return len(names)
}

// AverageDepartmentSize is round(employees / departments), 0 without departments.
func AverageDepartmentSize(employees []employee.Employee, departments []department.Department) int {
	return int(math.Round(average(float64(len(employees)), len(departments))))
}

func TotalBudget(departments []department.Department) float64 {
	var total float64
	for _, d := range departments {
		total += d.Budget.Float64()
	}
	return total
}

// Utilization is round(totalSalary / budget * 100); 0 when there is no budget.
func Utilization(totalSalary int64, budget float64) int {
	if budget <= 0 {
		return 0
	}
	return int(math.Round(float64(totalSalary) / budget * 100))
}

func average(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
