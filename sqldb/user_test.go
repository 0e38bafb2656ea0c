package sqldb

import (
	"testing"

	"github.com/wansing/werk/core"
)

func TestInsertUserDuplicate(t *testing.T) {

	db := NewUserDB(testDB(t))

	if _, err := db.InsertUser("alice", "a@x.com", "pw1", false); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, err := db.InsertUser("bob", "a@x.com", "pw2", false); err != core.ErrUserExists {
		t.Fatalf("duplicate mail: got %v, want %v", err, core.ErrUserExists)
	}

	if _, err := db.InsertUser("alice", "b@x.com", "pw2", false); err != core.ErrUserExists {
		t.Fatalf("duplicate name: got %v, want %v", err, core.ErrUserExists)
	}

	users, err := db.GetAllUsers(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
}

func TestLoginUser(t *testing.T) {

	db := NewUserDB(testDB(t))

	inserted, err := db.InsertUser("alice", "a@x.com", "pw1", false)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := db.LoginUser("a@x.com", "wrong"); err != core.ErrAuth {
		t.Fatalf("wrong password: got %v, want %v", err, core.ErrAuth)
	}

	if _, err := db.LoginUser("nobody@x.com", "pw1"); err != core.ErrAuth {
		t.Fatalf("unknown mail: got %v, want %v", err, core.ErrAuth)
	}

	u, err := db.LoginUser("A@X.com", "pw1") // mail addresses are case-insensitive
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID() != inserted.ID() || u.Name() != "alice" {
		t.Fatalf("got user %d %s, want %d alice", u.ID(), u.Name(), inserted.ID())
	}
}

func TestChangePassword(t *testing.T) {

	db := NewUserDB(testDB(t))

	u, err := db.InsertUser("alice", "a@x.com", "pw1", false)
	if err != nil {
		t.Fatal(err)
	}

	if err := db.ChangePassword(u, "wrong", "pw2"); err != core.ErrAuth {
		t.Fatalf("wrong old password: got %v, want %v", err, core.ErrAuth)
	}

	if err := db.ChangePassword(u, "pw1", "pw2"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, err := db.LoginUser("a@x.com", "pw1"); err != core.ErrAuth {
		t.Fatal("old password still works")
	}
	if _, err := db.LoginUser("a@x.com", "pw2"); err != nil {
		t.Fatalf("new password: %v", err)
	}
}

func TestGetUser(t *testing.T) {

	db := NewUserDB(testDB(t))

	inserted, err := db.InsertUser("alice", "a@x.com", "pw1", true)
	if err != nil {
		t.Fatal(err)
	}

	u, err := db.GetUser(inserted.ID())
	if err != nil {
		t.Fatal(err)
	}
	if u.Name() != "alice" || u.Mail() != "a@x.com" || !u.Admin() {
		t.Fatalf("got %s %s admin=%v", u.Name(), u.Mail(), u.Admin())
	}

	if _, err := db.GetUser(42); err != core.ErrNotFound {
		t.Fatalf("missing user: got %v, want %v", err, core.ErrNotFound)
	}
}
