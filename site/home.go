package site

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/werk/core"
	"github.com/wansing/werk/util"
	"gitlab.com/golang-commonmark/markdown"
)

// HTML is off because work content is user-provided
var markdownParser = markdown.New(markdown.HTML(false), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

var homeTmpl = tmpl(`<h1>Works</h1>

	{{ if not .Works }}
		<p>No works yet.</p>
	{{ end }}

	{{ range .Works }}
		<div class="card mb-3">
			<div class="card-body">
				<h2 class="card-title">{{ .Title }}</h2>
				<h6 class="card-subtitle mb-2 text-muted">
					{{ .AuthorName }}
					{{- with .DepartmentName }} &middot; {{ . }}{{ end }}
					&middot; {{ $.FormatDateTime .TsChanged }}
				</h6>
				<p class="card-text">{{ .Preview }}</p>
				{{ if $.CanManage .DBWork }}
					<a class="card-link" href="edit_work/{{ .ID }}">Edit</a>
					<form style="display: inline;" method="post" action="delete_work/{{ .ID }}">
						<button type="submit" class="btn btn-link card-link p-0 align-baseline">Delete</button>
					</form>
				{{ end }}
			</div>
		</div>
	{{ end }}`)

type workView struct {
	core.DBWork
	AuthorName     string
	DepartmentName string
	Preview        string
}

type homeData struct {
	*Route
	Works []workView
}

func home(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	works, err := r.app.GetAllWorks(10000, 0) // assuming there are not more than 10k works
	if err != nil {
		return err
	}

	var authorNames = map[int]string{}
	var departmentNames = map[int]string{}

	var views = make([]workView, 0, len(works))
	for _, work := range works {

		var view = workView{DBWork: work}

		if name, ok := authorNames[work.AuthorID()]; ok {
			view.AuthorName = name
		} else if author, err := r.app.GetUser(work.AuthorID()); err == nil {
			view.AuthorName = author.Name()
			authorNames[work.AuthorID()] = author.Name()
		}

		if id := work.DepartmentID(); id != 0 {
			if name, ok := departmentNames[id]; ok {
				view.DepartmentName = name
			} else if department, err := r.app.GetDepartment(id); err == nil {
				view.DepartmentName = department.Name()
				departmentNames[id] = department.Name()
			}
		}

		view.Preview = preview(work.Content())
		views = append(views, view)
	}

	return homeTmpl.Execute(w, &homeData{
		Route: r,
		Works: views,
	})
}

// preview renders the markdown content, strips the tags and truncates the result.
func preview(content string) string {
	content, _ = util.CutMore(content)
	rendered := markdownParser.RenderToString([]byte(content))
	return util.Trunc(util.StripTags(strings.NewReader(rendered)), 300)
}
