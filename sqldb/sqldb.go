// Package sqldb implements the core store interfaces on top of database/sql.
// Tables are created ad hoc if they don't exist.
package sqldb

import (
	"database/sql"
)

func mustPrepare(db *sql.DB, query string) *sql.Stmt {
	stmt, err := db.Prepare(query)
	if err != nil {
		panic(err)
	}
	return stmt
}
