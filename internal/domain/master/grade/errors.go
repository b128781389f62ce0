package grade

import "errors"

var (
	ErrGradeNotFound  = errors.New("salary grade not found")
	ErrGradesNotFound = errors.New("no salary grades configured")
)
