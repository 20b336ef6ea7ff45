package registration

import "errors"

// Sentinel errors mapped onto HTTP statuses by the handler layer.
var (
	ErrStudentNotFound   = errors.New("student record not found")
	ErrNoActiveProgramme = errors.New("no active program found")
	ErrCourseNotFound    = errors.New("one or more selected courses do not exist")
)
