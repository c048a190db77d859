// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/polls/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// IndexPage is the context of the index template
type IndexPage struct {
	LatestQuestionList []models.Question
	Now                time.Time
}

// DetailPage is the context of the detail template
type DetailPage struct {
	Question         models.Question
	Choices          []models.Choice
	NoChoiceSelected bool
}

// ResultsPage is the context of the results template
type ResultsPage struct {
	Question   models.Question
	Choices    []models.Choice
	TotalVotes string
}

type errorPage struct {
	Title   string
	Message string
}

// parsePages loads the embedded templates. Dates render in loc.
func parsePages(loc *time.Location) *template.Template {
	funcs := template.FuncMap{
		"indexURL":   IndexURL,
		"detailURL":  DetailURL,
		"resultsURL": ResultsURL,
		"voteURL":    VoteURL,
		"relTime": func(then, now time.Time) string {
			return humanize.RelTime(then, now, "ago", "from now")
		},
		"localTime": func(t time.Time) string {
			return t.In(loc).Format("Jan 2, 2006, 15:04 MST")
		},
	}
	return template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// render executes the template into a buffer first so a template error
// never leaves a half-written page behind.
func render(w http.ResponseWriter, pages *template.Template, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func renderError(w http.ResponseWriter, pages *template.Template, status int, message string) {
	render(w, pages, status, "error", errorPage{
		Title:   http.StatusText(status),
		Message: message,
	})
}

func totalVotes(choices []models.Choice) string {
	total := 0
	for _, c := range choices {
		total += c.Votes
	}
	return humanize.Comma(int64(total)) + " " + plural(total, "vote", "votes")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
