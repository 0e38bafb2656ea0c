package sqldb

import (
	"database/sql"
	"strings"

	"github.com/wansing/werk/core"
	"golang.org/x/crypto/bcrypt"
)

func clean(mail string) string {
	mail = strings.TrimSpace(mail)
	mail = strings.ToLower(mail)
	return mail
}

type user struct {
	id    int
	name  string
	mail  string
	pass  string // bcrypt hash
	admin bool
}

func (u *user) ID() int {
	return u.id
}

func (u *user) Name() string {
	return u.name
}

func (u *user) Mail() string {
	return u.mail
}

func (u *user) Admin() bool {
	return u.admin
}

type UserDB struct {
	*sql.DB
	exists      *sql.Stmt
	get         *sql.Stmt
	getByMail   *sql.Stmt
	getAll      *sql.Stmt
	getPass     *sql.Stmt
	insert      *sql.Stmt
	login       *sql.Stmt
	setPassword *sql.Stmt
}

func NewUserDB(db *sql.DB) *UserDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS usr (
			id INTEGER PRIMARY KEY,
			name varchar(64) NOT NULL,
			mail varchar(128) NOT NULL,
			password varchar(64) NOT NULL,
			admin int(1) NOT NULL DEFAULT 0,
			UNIQUE(name),
			UNIQUE(mail)
		);`)

	var userDB = &UserDB{}
	userDB.DB = db
	userDB.exists = mustPrepare(db, "SELECT COUNT(1) FROM usr WHERE name = ? OR mail = ?")
	userDB.get = mustPrepare(db, "SELECT name, mail, admin FROM usr WHERE id = ? LIMIT 1")
	userDB.getByMail = mustPrepare(db, "SELECT id, name, admin FROM usr WHERE mail = ? LIMIT 1")
	userDB.getAll = mustPrepare(db, "SELECT id, name, mail, admin FROM usr ORDER BY name LIMIT ? OFFSET ?")
	userDB.getPass = mustPrepare(db, "SELECT password FROM usr WHERE id = ? LIMIT 1")
	userDB.insert = mustPrepare(db, "INSERT INTO usr (name, mail, password, admin) VALUES (?, ?, ?, ?)")
	userDB.login = mustPrepare(db, "SELECT id, name, password, admin FROM usr WHERE mail = ?")
	userDB.setPassword = mustPrepare(db, "UPDATE usr SET password = ? WHERE id = ?")
	return userDB
}

func (db *UserDB) Writeable() bool {
	return true
}

func (db *UserDB) ChangePassword(u core.DBUser, old, newPass string) error {

	var pass string
	if err := db.getPass.QueryRow(u.ID()).Scan(&pass); err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(pass), []byte(old)) != nil {
		return core.ErrAuth
	}
	return db.SetPassword(u, newPass)
}

func (db *UserDB) GetUser(id int) (core.DBUser, error) {
	var u = &user{
		id: id,
	}
	err := db.get.QueryRow(id).Scan(&u.name, &u.mail, &u.admin)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (db *UserDB) GetUserByMail(mail string) (core.DBUser, error) {
	var u = &user{
		mail: clean(mail),
	}
	err := db.getByMail.QueryRow(u.mail).Scan(&u.id, &u.name, &u.admin)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (db *UserDB) GetAllUsers(limit, offset int) ([]core.DBUser, error) {

	var all = []core.DBUser{}

	rows, err := db.getAll.Query(limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u = &user{}
		err = rows.Scan(&u.id, &u.name, &u.mail, &u.admin)
		if err != nil {
			return nil, err
		}
		all = append(all, u)
	}

	return all, nil
}

// InsertUser hashes the password with bcrypt and stores the new user.
// Duplicate names and mail addresses are checked beforehand, the unique
// constraints remain the backstop for concurrent inserts.
func (db *UserDB) InsertUser(name, mail, password string, admin bool) (core.DBUser, error) {

	name = strings.TrimSpace(name)
	mail = clean(mail)

	var count int
	if err := db.exists.QueryRow(name, mail).Scan(&count); err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, core.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	result, err := db.insert.Exec(name, mail, string(hash), admin)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &user{
		id:    int(id),
		name:  name,
		mail:  mail,
		pass:  string(hash),
		admin: admin,
	}, nil
}

// LoginUser returns core.ErrAuth both if the mail address is unknown
// and if the password is wrong.
func (db *UserDB) LoginUser(mail, password string) (core.DBUser, error) {

	mail = clean(mail)

	var u = &user{
		mail: mail,
	}

	err := db.login.QueryRow(mail).Scan(&u.id, &u.name, &u.pass, &u.admin)
	if err == sql.ErrNoRows {
		return nil, core.ErrAuth // user not found
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.pass), []byte(password)) != nil {
		return nil, core.ErrAuth // wrong password
	}

	return u, nil
}

func (db *UserDB) SetPassword(u core.DBUser, password string) error {

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.setPassword.Exec(string(hash), u.ID())
	return err
}
