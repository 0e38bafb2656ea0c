package site

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/werk/core"
)

var workFormTmpl = tmpl(`<h1>{{ if .Edit }}Edit work{{ else }}Add work{{ end }}</h1>

	<form method="post">

		<div class="form-group">
			<label>Title</label>
			<input class="form-control" name="title" value="{{ .Title }}" required autofocus>
		</div>

		<div class="form-group">
			<label>Department</label>
			<select class="form-control" name="department">
				<option value="0">No department</option>
				{{ range .Departments }}
					<option value="{{ .ID }}"{{ if eq .ID $.DepartmentID }} selected{{ end }}>{{ .Name }}</option>
				{{ end }}
			</select>
		</div>

		<div class="form-group">
			<label>Content (markdown)</label>
			<textarea class="form-control" name="content" rows="12" required>{{ .Content }}</textarea>
		</div>

		<button type="submit" class="btn btn-primary" name="save">Save</button>
	</form>`)

type workFormData struct {
	*Route
	Edit         bool
	Title        string
	Content      string
	DepartmentID int
}

func (data *workFormData) Departments() ([]core.DBDepartment, error) {
	return data.app.GetAllDepartments(10000, 0) // assuming there are not more than 10k departments
}

// readForm populates the form fields from the POST data.
func (data *workFormData) readForm(req *http.Request) {
	data.Title = strings.TrimSpace(req.PostFormValue("title"))
	data.Content = strings.TrimSpace(req.PostFormValue("content"))
	data.DepartmentID, _ = strconv.Atoi(req.PostFormValue("department"))
}

// validate checks that the required fields are filled and
// that the chosen department exists.
func (data *workFormData) validate() error {
	if data.Title == "" {
		return errors.New("missing title")
	}
	if data.Content == "" {
		return errors.New("missing content")
	}
	if data.DepartmentID != 0 {
		if _, err := data.app.GetDepartment(data.DepartmentID); err != nil {
			return errors.New("department not found")
		}
	}
	return nil
}

func addWork(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	var data = &workFormData{
		Route: r,
	}

	if req.Method == http.MethodPost {

		data.readForm(req)

		err := data.validate()
		if err == nil {
			_, err = r.app.InsertWork(data.Title, data.Content, r.User.ID(), data.DepartmentID)
		}

		if err == nil {
			r.Success("Your work has been added.")
			r.SeeOther("/")
			return nil
		}

		r.Danger(err)
	}

	return workFormTmpl.Execute(w, data)
}

func editWork(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	id, err := idParam(params)
	if err != nil {
		return err
	}

	work, err := r.app.GetWork(id)
	if err != nil {
		return err // 404 if the work does not exist
	}

	if err := core.RequireWorkOwner(work, r.User); err != nil {
		return err // 403 unless author or admin
	}

	var data = &workFormData{
		Route:        r,
		Edit:         true,
		Title:        work.Title(),
		Content:      work.Content(),
		DepartmentID: work.DepartmentID(),
	}

	if req.Method == http.MethodPost {

		data.readForm(req)

		err := data.validate()
		if err == nil {
			err = r.app.UpdateWork(work, data.Title, data.Content, data.DepartmentID)
		}

		if err == nil {
			r.Success("Your work has been updated.")
			r.SeeOther("/")
			return nil
		}

		r.Danger(err)
	}

	return workFormTmpl.Execute(w, data)
}

func deleteWork(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	id, err := idParam(params)
	if err != nil {
		return err
	}

	work, err := r.app.GetWork(id)
	if err != nil {
		return err
	}

	if err := core.RequireWorkOwner(work, r.User); err != nil {
		return err
	}

	if err := r.app.DeleteWork(work); err != nil {
		return err
	}

	r.Success("The work has been deleted.")
	r.SeeOther("/")
	return nil
}
