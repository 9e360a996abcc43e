package http

import (
	"html/template"
	"io"

	"github.com/lDirtyl/goit-final-aws-email-db/domain/model"
)

// PageData carries everything the index page needs to render
type PageData struct {
	Title    string
	Feedback string
	Keyword  string
	Contacts []*model.Contact
}

// indexTemplate renders the add form, the search form and the contact table.
// All user-supplied values pass through html/template's contextual escaping.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
</head>
<body>
  <h1>{{.Title}}</h1>

  {{if .Feedback}}<p class="feedback">{{.Feedback}}</p>{{end}}

  <h2>Add contact</h2>
  <form method="post" action="/">
    <label>Name <input type="text" name="name"></label>
    <label>Email <input type="text" name="email"></label>
    <button type="submit">Add</button>
  </form>

  <h2>Find contact</h2>
  <form method="post" action="/search">
    <label>Keyword <input type="text" name="keyword" value="{{.Keyword}}"></label>
    <button type="submit">Find</button>
  </form>

  <h2>Contacts</h2>
  {{if .Contacts}}
  <table>
    <tr><th>ID</th><th>Name</th><th>Email</th></tr>
    {{range .Contacts}}
    <tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Email}}</td></tr>
    {{end}}
  </table>
  {{else}}
  <p>No contacts yet.</p>
  {{end}}
</body>
</html>
`

// pageRenderer renders the index page
type pageRenderer struct {
	tmpl *template.Template
}

// newPageRenderer parses the index template once at construction
func newPageRenderer() *pageRenderer {
	return &pageRenderer{
		tmpl: template.Must(template.New("index").Parse(indexTemplate)),
	}
}

// Render writes the index page for the given data
func (p *pageRenderer) Render(w io.Writer, data PageData) error {
	return p.tmpl.Execute(w, data)
}
