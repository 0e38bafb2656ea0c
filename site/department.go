package site

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/werk/core"
)

var departmentsTmpl = tmpl(`<h1>Departments</h1>

	{{ if not .Departments }}
		<p>No departments yet.</p>
	{{ end }}

	<ul>
		{{ range .Departments }}
			<li>
				{{ .Name }}
				{{ if $.LoggedIn }}
					&middot; <a href="edit_department/{{ .ID }}">Edit</a>
					<form style="display: inline;" method="post" action="delete_department/{{ .ID }}">
						<button type="submit" class="btn btn-link p-0 align-baseline">Delete</button>
					</form>
				{{ end }}
			</li>
		{{ end }}
	</ul>`)

type departmentsData struct {
	*Route
}

func (data *departmentsData) Departments() ([]core.DBDepartment, error) {
	return data.app.GetAllDepartments(10000, 0) // assuming there are not more than 10k departments
}

func departments(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {
	return departmentsTmpl.Execute(w, &departmentsData{
		Route: r,
	})
}

var departmentFormTmpl = tmpl(`<h1>{{ if .Edit }}Edit department{{ else }}Add department{{ end }}</h1>

	<form method="post" class="form-inline">
		<div class="form-group">
			<input class="form-control" name="name" placeholder="Department name" value="{{ .Name }}" required autofocus>
			<button type="submit" class="btn btn-primary mx-sm-3" name="save">Save</button>
		</div>
	</form>`)

type departmentFormData struct {
	*Route
	Edit bool
	Name string
}

func addDepartment(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	var data = &departmentFormData{
		Route: r,
	}

	if req.Method == http.MethodPost {

		data.Name = strings.TrimSpace(req.PostFormValue("name"))

		var err error
		if data.Name == "" {
			err = errors.New("missing name")
		} else {
			_, err = r.app.InsertDepartment(data.Name)
		}

		if err == nil {
			r.Success("The department has been added.")
			r.SeeOther("/departments")
			return nil
		}

		r.Danger(err)
	}

	return departmentFormTmpl.Execute(w, data)
}

// Any authenticated user may edit any department, there is no ownership.
func editDepartment(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	id, err := idParam(params)
	if err != nil {
		return err
	}

	department, err := r.app.GetDepartment(id)
	if err != nil {
		return err // 404 if the department does not exist
	}

	var data = &departmentFormData{
		Route: r,
		Edit:  true,
		Name:  department.Name(),
	}

	if req.Method == http.MethodPost {

		data.Name = strings.TrimSpace(req.PostFormValue("name"))

		var err error
		if data.Name == "" {
			err = errors.New("missing name")
		} else {
			err = r.app.UpdateDepartment(department, data.Name)
		}

		if err == nil {
			r.Success("The department has been updated.")
			r.SeeOther("/departments")
			return nil
		}

		r.Danger(err)
	}

	return departmentFormTmpl.Execute(w, data)
}

func deleteDepartment(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	id, err := idParam(params)
	if err != nil {
		return err
	}

	department, err := r.app.GetDepartment(id)
	if err != nil {
		return err
	}

	// works keep existing without a department
	if err := r.app.DeleteDepartment(department); err != nil {
		return err
	}

	r.Success("The department has been deleted.")
	r.SeeOther("/departments")
	return nil
}
