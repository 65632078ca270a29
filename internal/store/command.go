package store

import (
	"context"

	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
)

// Command is a mutation of a remote collection.
type Command interface {
	Execute(ctx context.Context, repos Repositories) error
	// Failure completes "Error <Failure>: <message>" for the error banner.
	Failure() string
	// Success is the success banner text.
	Success() string
}

// Confirmable commands are destructive and only run once confirmed.
type Confirmable interface {
	Confirmed() bool
}

// ==================== EMPLOYEE COMMANDS ====================

type CreateEmployee struct {
	Employee employee.Employee
	Result   employee.Employee
}

func (c *CreateEmployee) Execute(ctx context.Context, repos Repositories) error {
	created, err := repos.Employees.Create(ctx, c.Employee)
	if err != nil {
		return err
	}
	c.Result = created
	return nil
}

func (c *CreateEmployee) Failure() string { return "adding employee" }
func (c *CreateEmployee) Success() string { return "Employee added successfully!" }

type UpdateEmployee struct {
	ID       string
	Employee employee.Employee
	Result   employee.Employee
}

func (c *UpdateEmployee) Execute(ctx context.Context, repos Repositories) error {
	updated, err := repos.Employees.Update(ctx, c.ID, c.Employee)
	if err != nil {
		return err
	}
	c.Result = updated
	return nil
}

func (c *UpdateEmployee) Failure() string { return "updating employee" }
func (c *UpdateEmployee) Success() string { return "Employee updated successfully!" }

type DeleteEmployee struct {
	ID      string
	Confirm bool
}

func (c *DeleteEmployee) Execute(ctx context.Context, repos Repositories) error {
	return repos.Employees.Delete(ctx, c.ID)
}

func (c *DeleteEmployee) Confirmed() bool { return c.Confirm }
func (c *DeleteEmployee) Failure() string { return "deleting employee" }
func (c *DeleteEmployee) Success() string { return "Employee deleted successfully!" }

// ToggleStatus persists Current.Toggle() with a partial update. Result holds
// the status the Data Store answered with.
type ToggleStatus struct {
	ID      string
	Current employee.Status
	Result  employee.Status
}

func (c *ToggleStatus) Execute(ctx context.Context, repos Repositories) error {
	next := c.Current.Toggle()
	patched, err := repos.Employees.Patch(ctx, c.ID, map[string]any{"status": next})
	if err != nil {
		return err
	}
	c.Result = patched.Status
	if c.Result == "" {
		c.Result = next
	}
	return nil
}

func (c *ToggleStatus) Failure() string { return "updating employee status" }
func (c *ToggleStatus) Success() string { return "Employee status updated successfully!" }

// ==================== DEPARTMENT COMMANDS ====================

type CreateDepartment struct {
	Department department.Department
	Result     department.Department
}

func (c *CreateDepartment) Execute(ctx context.Context, repos Repositories) error {
	created, err := repos.Departments.Create(ctx, c.Department)
	if err != nil {
		return err
	}
	c.Result = created
	return nil
}

func (c *CreateDepartment) Failure() string { return "creating department" }
func (c *CreateDepartment) Success() string { return "Department created successfully!" }

type UpdateDepartment struct {
	ID         string
	Department department.Department
	Result     department.Department
}

func (c *UpdateDepartment) Execute(ctx context.Context, repos Repositories) error {
	updated, err := repos.Departments.Update(ctx, c.ID, c.Department)
	if err != nil {
		return err
	}
	c.Result = updated
	return nil
}

func (c *UpdateDepartment) Failure() string { return "updating department" }
func (c *UpdateDepartment) Success() string { return "Department updated successfully!" }

// DeleteDepartment removes the department record only; employees keep the
// now orphaned department name.
type DeleteDepartment struct {
	ID      string
	Confirm bool
}

func (c *DeleteDepartment) Execute(ctx context.Context, repos Repositories) error {
	return repos.Departments.Delete(ctx, c.ID)
}

func (c *DeleteDepartment) Confirmed() bool { return c.Confirm }
func (c *DeleteDepartment) Failure() string { return "deleting department" }
func (c *DeleteDepartment) Success() string { return "Department deleted successfully!" }
