package site

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

var registerTmpl = tmpl(`<h1>Register</h1>
	<form method="post" style="max-width: 20rem; margin: auto;">
		<div class="form-group">
			<label>Name</label>
			<input type="text" class="form-control" name="name" value="{{ .Name }}" required autofocus>
		</div>
		<div class="form-group">
			<label>E-Mail</label>
			<input type="email" class="form-control" name="mail" value="{{ .Mail }}" required>
		</div>
		<div class="form-group">
			<label>Password</label>
			<input type="password" class="form-control" name="password" required>
		</div>
		<div class="form-group">
			<label>Repeat password</label>
			<input type="password" class="form-control" name="repeat" required>
		</div>
		<div class="form-group">
			<button type="submit" class="btn btn-primary" name="register">Register</button>
		</div>
	</form>`)

type registerData struct {
	*Route
	Name string
	Mail string
}

func register(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	var name, mail string

	if req.Method == http.MethodPost {

		name = strings.TrimSpace(req.PostFormValue("name"))
		mail = strings.TrimSpace(req.PostFormValue("mail"))
		password := req.PostFormValue("password")
		repeat := req.PostFormValue("repeat")

		err := func() error {
			if name == "" {
				return errors.New("missing name")
			}
			if mail == "" {
				return errors.New("missing mail address")
			}
			if password == "" {
				return errors.New("missing password")
			}
			if password != repeat {
				return errors.New("passwords don't match")
			}
			_, err := r.app.InsertUser(name, mail, password, false)
			return err
		}()

		if err == nil {
			r.Success("You are registered and can log in now.")
			r.SeeOther("/login")
			return nil
		}

		r.Danger(err)
		// keep POST data for name and mail fields
	}

	return registerTmpl.Execute(w, &registerData{
		Route: r,
		Name:  name,
		Mail:  mail,
	})
}
