package app

import "html/template"

type link struct {
	Href  string
	Label string
}

type pageData struct {
	Title   string
	Heading string
	Lines   []string
	Links   []link
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
  </head>
  <body>
    <nav>
      <a href="/">Workspaces</a>
      <a href="/roadmap">Roadmap</a>
      <a href="/settings">Settings</a>
    </nav>
    <main>
      <h1>{{.Heading}}</h1>
{{- range .Lines}}
      <p>{{.}}</p>
{{- end}}
{{- if .Links}}
      <ul>
{{- range .Links}}
        <li><a href="{{.Href}}">{{.Label}}</a></li>
{{- end}}
      </ul>
{{- end}}
    </main>
  </body>
</html>
`))
