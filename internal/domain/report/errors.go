package report

import "errors"

var (
	ErrUnknownDepartment = errors.New("unknown department filter")
)
