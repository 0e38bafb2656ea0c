// Package site contains the HTTP handlers and their templates.
package site

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/werk/core"
)

// Route is the context which is passed to every handler.
type Route struct {
	*core.Request
	Prefix string // with trailing slash
	app    *core.App
}

// CanManage returns true if the logged-in user may edit and delete the work.
func (r *Route) CanManage(w core.DBWork) bool {
	return core.RequireWorkOwner(w, r.User) == nil
}

func middleware(app *core.App, prefix string, requireLoggedIn bool, f func(http.ResponseWriter, *http.Request, *Route, httprouter.Params) error) func(http.ResponseWriter, *http.Request, httprouter.Params) {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {

		var r = &Route{
			Prefix:  prefix + "/",
			Request: app.NewRequest(w, req),
			app:     app,
		}
		defer r.Cleanup()

		if requireLoggedIn && !r.LoggedIn() {
			r.SeeOther("/login")
			return
		}

		if err := f(w, req, r, params); err != nil {
			switch {
			case errors.Is(err, core.ErrNotFound):
				http.NotFound(w, req)
			case errors.Is(err, core.ErrUnauthorized):
				http.Error(w, "403 forbidden", http.StatusForbidden)
			default:
				// probably no template has been executed, so execute the error template
				errorTmpl.Execute(w, struct {
					*Route
					Err error
				}{
					Route: r,
					Err:   err,
				})
			}
		}
	}
}

// idParam parses the :id parameter. A malformed id behaves like a missing record.
func idParam(params httprouter.Params) (int, error) {
	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		return 0, core.ErrNotFound
	}
	return id, nil
}

func NewRouter(app *core.App, prefix string) http.Handler {

	var router = httprouter.New()

	var GETAndPOST = func(path string, handle httprouter.Handle) {
		router.GET(path, handle)
		router.POST(path, handle)
	}

	// public
	router.GET("/", middleware(app, prefix, false, home))
	router.GET("/home", middleware(app, prefix, false, home))
	router.GET("/departments", middleware(app, prefix, false, departments))
	GETAndPOST("/login", middleware(app, prefix, false, login))
	GETAndPOST("/register", middleware(app, prefix, false, register))

	// private
	GETAndPOST("/add_department", middleware(app, prefix, true, addDepartment))
	GETAndPOST("/add_work", middleware(app, prefix, true, addWork))
	router.POST("/delete_department/:id", middleware(app, prefix, true, deleteDepartment))
	router.POST("/delete_work/:id", middleware(app, prefix, true, deleteWork))
	GETAndPOST("/edit_department/:id", middleware(app, prefix, true, editDepartment))
	GETAndPOST("/edit_work/:id", middleware(app, prefix, true, editWork))
	router.GET("/logout", middleware(app, prefix, true, logout))

	return router
}

func tmpl(text string) *template.Template {
	t := template.Must(siteTmpl.Clone())
	t = template.Must(t.Parse(`{{ define "content" }}` + text + `{{ end }}`))
	return t
}

var errorTmpl = tmpl(`
	<div class="alert alert-danger" role="alert">
		{{ .Err }}
	</div>`)

var siteTmpl = template.Must(template.New("site").Parse(`
<!DOCTYPE html>
<html>
	<head>
		<base href="{{ .Prefix }}">
		<link rel="stylesheet" type="text/css" href="static/bootstrap-4.4.1.min.css">
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">
		<title>Werk</title>
	</head>
	<body>

		<nav class="navbar navbar-expand-md bg-light">
			<ul class="navbar-nav">
				<li class="nav-item">
					<a class="nav-link" href="home">Works</a>
				</li>
				<li class="nav-item">
					<a class="nav-link" href="departments">Departments</a>
				</li>

				{{ if .LoggedIn }}

					<li class="nav-item">
						<a class="nav-link" href="add_work">Add work</a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="add_department">Add department</a>
					</li>
					<li class="nav-item">
						<span class="navbar-text">{{ .User.Name }}</span>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="logout">Logout</a>
					</li>

				{{ else }}

					<li class="nav-item">
						<a class="nav-link" href="login">Login</a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="register">Register</a>
					</li>

				{{ end }}
			</ul>
		</nav>

		<div class="container pt-3">
			{{ .RenderNotifications }}
			{{ template "content" . }}
		</div>
	</body>
</html>`))
