package core

import (
	"errors"
)

type DBUser interface {
	ID() int
	Name() string
	Mail() string
	Admin() bool // admins may edit and delete any work
}

type UserDB interface {
	ChangePassword(u DBUser, old, new string) error
	GetUser(id int) (DBUser, error)
	GetUserByMail(mail string) (DBUser, error)
	GetAllUsers(limit, offset int) ([]DBUser, error)
	InsertUser(name, mail, password string, admin bool) (DBUser, error)
	LoginUser(mail, password string) (DBUser, error)
	SetPassword(u DBUser, password string) error
	Writeable() bool
}

var ErrEmptyPassword = errors.New("refusing to set empty password")

// InsertUser shadows UserDB.InsertUser.
func (a *App) InsertUser(name, mail, password string, admin bool) (DBUser, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	return a.UserDB.InsertUser(name, mail, password, admin)
}

// SetPassword shadows UserDB.SetPassword.
func (a *App) SetPassword(u DBUser, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return a.UserDB.SetPassword(u, password)
}
