package employee

import "github.com/cmlabs-hris/hris-console/internal/domain/record"

type Employee struct {
	ID         record.ID   `json:"id,omitempty"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Department string      `json:"department"`
	Position   string      `json:"position"`
	Status     Status      `json:"status"`
	Salary     int64       `json:"salary"`
	Attendance *Attendance `json:"attendance,omitempty"`
}

// AttendanceOrZero returns the attendance block, treating a missing one as all zero.
func (e Employee) AttendanceOrZero() Attendance {
	if e.Attendance == nil {
		return Attendance{}
	}
	return *e.Attendance
}

type Attendance struct {
	DaysWorked     int    `json:"daysWorked"`
	DaysAbsent     int    `json:"daysAbsent"`
	DaysOnLeave    int    `json:"daysOnLeave"`
	LastAttendance string `json:"lastAttendance"`
}

type Status string

const (
	StatusActive  Status = "Active"
	StatusOnLeave Status = "On Leave"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusOnLeave
}

// Toggle flips Active to On Leave; every other value goes back to Active.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusOnLeave
	}
	return StatusActive
}
