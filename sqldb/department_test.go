package sqldb

import (
	"testing"

	"github.com/wansing/werk/core"
)

func TestInsertDepartmentDuplicate(t *testing.T) {

	sqlDB := testDB(t)
	NewWorkDB(sqlDB) // creates the work table which DepartmentDB prepares against
	departments := NewDepartmentDB(sqlDB)

	if _, err := departments.InsertDepartment("Math"); err != nil {
		t.Fatal(err)
	}
	if _, err := departments.InsertDepartment("Math"); err != core.ErrDepartmentExists {
		t.Fatalf("duplicate name: got %v, want %v", err, core.ErrDepartmentExists)
	}

	all, err := departments.GetAllDepartments(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d departments, want 1", len(all))
	}
}

func TestUpdateDepartment(t *testing.T) {

	sqlDB := testDB(t)
	NewWorkDB(sqlDB)
	departments := NewDepartmentDB(sqlDB)

	math, err := departments.InsertDepartment("Math")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := departments.InsertDepartment("Physics"); err != nil {
		t.Fatal(err)
	}

	if err := departments.UpdateDepartment(math, "Physics"); err != core.ErrDepartmentExists {
		t.Fatalf("rename to existing name: got %v, want %v", err, core.ErrDepartmentExists)
	}

	if err := departments.UpdateDepartment(math, "Mathematics"); err != nil {
		t.Fatal(err)
	}
	renamed, err := departments.GetDepartment(math.ID())
	if err != nil {
		t.Fatal(err)
	}
	if renamed.Name() != "Mathematics" {
		t.Fatalf("got %q", renamed.Name())
	}
}

func TestDeleteDepartmentDetachesWorks(t *testing.T) {

	sqlDB := testDB(t)
	users := NewUserDB(sqlDB)
	works := NewWorkDB(sqlDB)
	departments := NewDepartmentDB(sqlDB)

	alice, err := users.InsertUser("alice", "a@x.com", "pw1", false)
	if err != nil {
		t.Fatal(err)
	}
	math, err := departments.InsertDepartment("Math")
	if err != nil {
		t.Fatal(err)
	}
	work, err := works.InsertWork("Essay", "body", alice.ID(), math.ID())
	if err != nil {
		t.Fatal(err)
	}

	if err := departments.DeleteDepartment(math); err != nil {
		t.Fatal(err)
	}

	if _, err := departments.GetDepartment(math.ID()); err != core.ErrNotFound {
		t.Fatalf("deleted department: got %v, want %v", err, core.ErrNotFound)
	}

	// the work survives without a department
	work, err = works.GetWork(work.ID())
	if err != nil {
		t.Fatal(err)
	}
	if work.DepartmentID() != 0 {
		t.Fatalf("got department %d, want 0", work.DepartmentID())
	}
}
