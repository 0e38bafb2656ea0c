package core

// A work is a titled text document with exactly one author
// and an optional department.
type DBWork interface {
	ID() int
	Title() string
	Content() string // CommonMark markdown
	AuthorID() int
	DepartmentID() int // 0 means no department
	TsCreated() int64
	TsChanged() int64
}

type WorkDB interface {
	DeleteWork(w DBWork) error
	GetWork(id int) (DBWork, error)
	GetAllWorks(limit, offset int) ([]DBWork, error) // newest first
	InsertWork(title, content string, authorID, departmentID int) (DBWork, error)
	UpdateWork(w DBWork, title, content string, departmentID int) error
	Writeable() bool
}

// RequireWorkOwner returns ErrUnauthorized unless the user
// authored the work or is an admin.
func RequireWorkOwner(w DBWork, u DBUser) error {
	if u == nil {
		return ErrUnauthorized
	}
	if u.Admin() || w.AuthorID() == u.ID() {
		return nil
	}
	return ErrUnauthorized
}
