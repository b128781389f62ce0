package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeIDExists   = errors.New("employee ID already exists")
	ErrNoLinkedUser       = errors.New("this employee does not have a linked user account")
	ErrEmployeeArchived   = errors.New("employee is archived")
	ErrEmployeeNotArchive = errors.New("employee is not archived")
)
