package core

import (
	"testing"
)

type testUser struct {
	id    int
	admin bool
}

func (u *testUser) ID() int { return u.id }

func (u *testUser) Name() string { return "test" }

func (u *testUser) Mail() string { return "test@example.com" }

func (u *testUser) Admin() bool { return u.admin }

type testWork struct {
	author int
}

func (w *testWork) ID() int { return 1 }

func (w *testWork) Title() string { return "test" }

func (w *testWork) Content() string { return "test" }

func (w *testWork) AuthorID() int { return w.author }

func (w *testWork) DepartmentID() int { return 0 }

func (w *testWork) TsCreated() int64 { return 0 }

func (w *testWork) TsChanged() int64 { return 0 }

func TestRequireWorkOwner(t *testing.T) {

	var work = &testWork{author: 1}

	tests := []struct {
		user *testUser
		want error
	}{
		{nil, ErrUnauthorized},
		{&testUser{id: 1}, nil},
		{&testUser{id: 2}, ErrUnauthorized},
		{&testUser{id: 2, admin: true}, nil},
	}

	for _, test := range tests {
		var u DBUser
		if test.user != nil {
			u = test.user
		}
		if got := RequireWorkOwner(work, u); got != test.want {
			t.Errorf("RequireWorkOwner(author %d, user %+v) = %v, want %v", work.author, test.user, got, test.want)
		}
	}
}
