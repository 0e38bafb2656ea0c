package sqldb

import (
	"database/sql"
	"strings"

	"github.com/wansing/werk/core"
)

type department struct {
	id   int
	name string
}

func (d *department) ID() int {
	return d.id
}

func (d *department) Name() string {
	return d.name
}

type DepartmentDB struct {
	*sql.DB
	delete      *sql.Stmt
	detachWorks *sql.Stmt
	exists      *sql.Stmt
	get         *sql.Stmt
	getAll      *sql.Stmt
	insert      *sql.Stmt
	update      *sql.Stmt
}

// NewDepartmentDB prepares a statement against the work table,
// so the WorkDB must be created first.
func NewDepartmentDB(db *sql.DB) *DepartmentDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS department (
			id INTEGER PRIMARY KEY,
			name varchar(128) NOT NULL,
			UNIQUE(name)
		);`)

	var departmentDB = &DepartmentDB{}
	departmentDB.DB = db
	departmentDB.delete = mustPrepare(db, "DELETE FROM department WHERE id = ?")
	departmentDB.detachWorks = mustPrepare(db, "UPDATE work SET department = NULL WHERE department = ?")
	departmentDB.exists = mustPrepare(db, "SELECT COUNT(1) FROM department WHERE name = ? AND id != ?")
	departmentDB.get = mustPrepare(db, "SELECT name FROM department WHERE id = ? LIMIT 1")
	departmentDB.getAll = mustPrepare(db, "SELECT id, name FROM department ORDER BY name LIMIT ? OFFSET ?")
	departmentDB.insert = mustPrepare(db, "INSERT INTO department (name) VALUES (?)")
	departmentDB.update = mustPrepare(db, "UPDATE department SET name = ? WHERE id = ?")
	return departmentDB
}

func (db *DepartmentDB) Writeable() bool {
	return true
}

// DeleteDepartment clears the department reference of its works,
// then removes the department, in one transaction.
func (db *DepartmentDB) DeleteDepartment(d core.DBDepartment) error {

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Stmt(db.detachWorks).Exec(d.ID())
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Stmt(db.delete).Exec(d.ID())
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (db *DepartmentDB) GetDepartment(id int) (core.DBDepartment, error) {
	var d = &department{
		id: id,
	}
	err := db.get.QueryRow(id).Scan(&d.name)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (db *DepartmentDB) GetAllDepartments(limit, offset int) ([]core.DBDepartment, error) {

	var all = []core.DBDepartment{}

	rows, err := db.getAll.Query(limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d = &department{}
		err = rows.Scan(&d.id, &d.name)
		if err != nil {
			return nil, err
		}
		all = append(all, d)
	}

	return all, nil
}

// InsertDepartment checks for a duplicate name beforehand, the unique
// constraint remains the backstop for concurrent inserts.
func (db *DepartmentDB) InsertDepartment(name string) (core.DBDepartment, error) {

	name = strings.TrimSpace(name)

	var count int
	if err := db.exists.QueryRow(name, 0).Scan(&count); err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, core.ErrDepartmentExists
	}

	result, err := db.insert.Exec(name)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &department{
		id:   int(id),
		name: name,
	}, nil
}

func (db *DepartmentDB) UpdateDepartment(d core.DBDepartment, name string) error {

	name = strings.TrimSpace(name)

	var count int
	if err := db.exists.QueryRow(name, d.ID()).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return core.ErrDepartmentExists
	}

	_, err := db.update.Exec(name, d.ID())
	return err
}
