package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidStatus    = errors.New("status must be Active or On Leave")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrNegativeSalary   = errors.New("salary must not be negative")
)
