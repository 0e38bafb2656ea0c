package core

// A department groups works. Any authenticated user may manage
// departments, there is no ownership.
type DBDepartment interface {
	ID() int
	Name() string
}

type DepartmentDB interface {
	DeleteDepartment(d DBDepartment) error // clears the department reference of its works
	GetDepartment(id int) (DBDepartment, error)
	GetAllDepartments(limit, offset int) ([]DBDepartment, error)
	InsertDepartment(name string) (DBDepartment, error)
	UpdateDepartment(d DBDepartment, name string) error
	Writeable() bool
}
