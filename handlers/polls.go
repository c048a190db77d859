// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/store"
)

type PollHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	metrics *middleware.Metrics
	pages   *template.Template
	now     func() time.Time
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config, metrics *middleware.Metrics) *PollHandler {
	return &PollHandler{
		db:      db,
		cfg:     cfg,
		metrics: metrics,
		pages:   parsePages(cfg.Location()),
		now:     time.Now,
	}
}

// indexContext collects the questions shown on the index page
func (h *PollHandler) indexContext(ctx context.Context) (IndexPage, error) {
	now := h.now()
	questions, err := store.ListPublished(ctx, h.db, now)
	if err != nil {
		return IndexPage{}, err
	}
	return IndexPage{LatestQuestionList: questions, Now: now}, nil
}

// Index handles GET /polls/
// Lists published questions, most recent first
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.indexContext(r.Context())
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		renderError(w, h.pages, http.StatusInternalServerError, "Database error")
		return
	}

	render(w, h.pages, http.StatusOK, "index", page)
}

// detailContext loads a visible question and its choices
func (h *PollHandler) detailContext(ctx context.Context, id int64) (DetailPage, error) {
	question, err := store.GetPublished(ctx, h.db, id, h.now())
	if err != nil {
		return DetailPage{}, err
	}

	choices, err := store.ListChoices(ctx, h.db, question.ID)
	if err != nil {
		return DetailPage{}, err
	}

	return DetailPage{Question: question, Choices: choices}, nil
}

// writeLookupError answers 404 for missing or unpublished questions and 500
// for anything else
func (h *PollHandler) writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		renderError(w, h.pages, http.StatusNotFound, "No question matches the given query.")
		return
	}
	slog.Error("failed to load question", "error", err)
	renderError(w, h.pages, http.StatusInternalServerError, "Database error")
}

// Detail handles GET /polls/{id}/
// Future questions are reported as not found
func (h *PollHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		renderError(w, h.pages, http.StatusNotFound, "No question matches the given query.")
		return
	}

	page, err := h.detailContext(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	render(w, h.pages, http.StatusOK, "detail", page)
}

// Results handles GET /polls/{id}/results/
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		renderError(w, h.pages, http.StatusNotFound, "No question matches the given query.")
		return
	}

	page, err := h.detailContext(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	render(w, h.pages, http.StatusOK, "results", ResultsPage{
		Question:   page.Question,
		Choices:    page.Choices,
		TotalVotes: totalVotes(page.Choices),
	})
}

// Vote handles POST /polls/{id}/vote/
// Redisplays the form when no valid choice was submitted, otherwise
// redirects to the results page
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		renderError(w, h.pages, http.StatusNotFound, "No question matches the given query.")
		return
	}

	page, err := h.detailContext(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	choiceID, err := strconv.ParseInt(r.PostFormValue("choice"), 10, 64)
	if err != nil {
		h.redisplay(w, page)
		return
	}

	err = store.Vote(r.Context(), h.db, id, choiceID)
	if errors.Is(err, store.ErrNotFound) {
		h.redisplay(w, page)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "question_id", id, "error", err)
		renderError(w, h.pages, http.StatusInternalServerError, "Database error")
		return
	}

	h.metrics.RecordVote()
	slog.Info("vote recorded", "question_id", id, "choice_id", choiceID)

	http.Redirect(w, r, ResultsURL(id), http.StatusSeeOther)
}

// redisplay shows the voting form again with an error message
func (h *PollHandler) redisplay(w http.ResponseWriter, page DetailPage) {
	page.NoChoiceSelected = true
	render(w, h.pages, http.StatusOK, "detail", page)
}
