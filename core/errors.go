package core

import "errors"

var (
	ErrAuth             = errors.New("authentication failed")
	ErrDepartmentExists = errors.New("a department with this name already exists")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUserExists       = errors.New("a user with this name or mail address already exists")
)
