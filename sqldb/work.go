package sqldb

import (
	"database/sql"
	"time"

	"github.com/wansing/werk/core"
)

type work struct {
	id         int
	title      string
	content    string
	author     int
	department int // 0 means no department
	tsCreated  int64
	tsChanged  int64
}

func (w *work) ID() int {
	return w.id
}

func (w *work) Title() string {
	return w.title
}

func (w *work) Content() string {
	return w.content
}

func (w *work) AuthorID() int {
	return w.author
}

func (w *work) DepartmentID() int {
	return w.department
}

func (w *work) TsCreated() int64 {
	return w.tsCreated
}

func (w *work) TsChanged() int64 {
	return w.tsChanged
}

// scans a nullable department column
func (w *work) scanDepartment(d sql.NullInt64) {
	if d.Valid {
		w.department = int(d.Int64)
	}
}

type WorkDB struct {
	*sql.DB
	delete *sql.Stmt
	get    *sql.Stmt
	getAll *sql.Stmt
	insert *sql.Stmt
	update *sql.Stmt
}

func NewWorkDB(db *sql.DB) *WorkDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS work (
			id INTEGER PRIMARY KEY,
			title varchar(128) NOT NULL,
			content text NOT NULL,
			author int(11) NOT NULL,
			department int(11),
			ts_created INTEGER NOT NULL,
			ts_changed INTEGER NOT NULL
		);`)

	var workDB = &WorkDB{}
	workDB.DB = db
	workDB.delete = mustPrepare(db, "DELETE FROM work WHERE id = ?")
	workDB.get = mustPrepare(db, "SELECT title, content, author, department, ts_created, ts_changed FROM work WHERE id = ? LIMIT 1")
	workDB.getAll = mustPrepare(db, "SELECT id, title, content, author, department, ts_created, ts_changed FROM work ORDER BY ts_created DESC, id DESC LIMIT ? OFFSET ?")
	workDB.insert = mustPrepare(db, "INSERT INTO work (title, content, author, department, ts_created, ts_changed) VALUES (?, ?, ?, ?, ?, ?)")
	workDB.update = mustPrepare(db, "UPDATE work SET title = ?, content = ?, department = ?, ts_changed = ? WHERE id = ?")
	return workDB
}

func (db *WorkDB) Writeable() bool {
	return true
}

func (db *WorkDB) DeleteWork(w core.DBWork) error {
	_, err := db.delete.Exec(w.ID())
	return err
}

func (db *WorkDB) GetWork(id int) (core.DBWork, error) {
	var w = &work{
		id: id,
	}
	var department sql.NullInt64
	err := db.get.QueryRow(id).Scan(&w.title, &w.content, &w.author, &department, &w.tsCreated, &w.tsChanged)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	w.scanDepartment(department)
	return w, nil
}

func (db *WorkDB) GetAllWorks(limit, offset int) ([]core.DBWork, error) {

	var all = []core.DBWork{}

	rows, err := db.getAll.Query(limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var w = &work{}
		var department sql.NullInt64
		err = rows.Scan(&w.id, &w.title, &w.content, &w.author, &department, &w.tsCreated, &w.tsChanged)
		if err != nil {
			return nil, err
		}
		w.scanDepartment(department)
		all = append(all, w)
	}

	return all, nil
}

func (db *WorkDB) InsertWork(title, content string, authorID, departmentID int) (core.DBWork, error) {

	var now = time.Now().Unix()

	result, err := db.insert.Exec(title, content, authorID, nullableID(departmentID), now, now)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &work{
		id:         int(id),
		title:      title,
		content:    content,
		author:     authorID,
		department: departmentID,
		tsCreated:  now,
		tsChanged:  now,
	}, nil
}

func (db *WorkDB) UpdateWork(w core.DBWork, title, content string, departmentID int) error {
	_, err := db.update.Exec(title, content, nullableID(departmentID), time.Now().Unix(), w.ID())
	return err
}

func nullableID(id int) sql.NullInt64 {
	return sql.NullInt64{
		Int64: int64(id),
		Valid: id != 0,
	}
}
