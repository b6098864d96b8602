package handlers

import (
	"bytes"
	"html/template"
	nethttp "net/http"

	domainteams "github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/presenter"
)

type option struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	SortOptions   []option
	FilterOptions []option
	Cards         []presenter.Card
	Error         string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AFL Teams</title>
</head>
<body>
<form method="get" action="/">
  <label>Sort
    <select name="sort" onchange="this.form.submit()">
      {{- range .SortOptions}}
      <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
      {{- end}}
    </select>
  </label>
  <label>Debut
    <select name="filter" onchange="this.form.submit()">
      {{- range .FilterOptions}}
      <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
      {{- end}}
    </select>
  </label>
  <noscript><button type="submit">Apply</button></noscript>
</form>
{{- if .Error}}
<div class="error" role="alert">{{.Error}}</div>
{{- else}}
<div id="app">
  {{- range .Cards}}
  <div class="team">
    <h2>{{.Name}}</h2>
    <img src="{{.LogoURL}}" alt="{{.Name}} logo">
    <p>{{.DebutCaption}}</p>
    <table>
      <tr><th>Season</th><th>Played</th><th>Won</th><th>Lost</th></tr>
      {{- range .Seasons}}
      <tr><td>{{.Season}}</td><td>{{.Played}}</td><td>{{.Won}}</td><td>{{.Lost}}</td></tr>
      {{- end}}
    </table>
  </div>
  {{- else}}
  <p>No teams match the current selection.</p>
  {{- end}}
</div>
{{- end}}
</body>
</html>
`))

// Page renders the team cards with sort and filter selectors.
func (h *Handler) Page(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	q := r.URL.Query()
	data := pageData{
		SortOptions:   sortOptions(q.Get("sort")),
		FilterOptions: filterOptions(q.Get("filter")),
	}

	sel, err := selectionFrom(r)
	if err != nil {
		data.Error = err.Error()
		writeHTML(w, nethttp.StatusBadRequest, data, h.logger)
		return
	}

	cards, err := h.cards(r.Context(), sel)
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		if logger != nil {
			logger.Warn("team page failed", "error", err)
		}
		data.Error = "Could not load teams right now. Please try again."
		writeHTML(w, statusForLoadError(err), data, h.logger)
		return
	}

	data.Cards = cards
	writeHTML(w, nethttp.StatusOK, data, h.logger)
}

func sortOptions(current string) []option {
	if current == "" {
		current = string(domainteams.Ascending)
	}
	return []option{
		{Value: string(domainteams.Ascending), Label: "A-Z", Selected: current == string(domainteams.Ascending)},
		{Value: string(domainteams.Descending), Label: "Z-A", Selected: current == string(domainteams.Descending)},
	}
}

func filterOptions(current string) []option {
	if current == "" {
		current = domainteams.FilterAll
	}
	return []option{
		{Value: domainteams.FilterAll, Label: "All", Selected: current == domainteams.FilterAll},
		{Value: domainteams.FilterPre, Label: "Before 1980", Selected: current == domainteams.FilterPre},
		{Value: domainteams.FilterPost, Label: "After 1980", Selected: current == domainteams.FilterPost},
	}
}

func renderPage(data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
