package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNegativeBudget     = errors.New("budget must not be negative")
)
