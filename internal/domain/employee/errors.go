package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeIDRequired = errors.New("employee ID is required")
	ErrEmployeeIDExists   = errors.New("employee ID already exists")
)
