// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()
	metrics := middleware.NewMetrics()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(db, cfg, metrics)
	questionHandler := handlers.NewQuestionHandler(db, cfg)

	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(metrics.Instrument(h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Pages (public)
	route(handlers.IndexPattern, pollHandler.Index)
	route(handlers.DetailPattern, pollHandler.Detail)
	route(handlers.ResultsPattern, pollHandler.Results)
	route(handlers.VotePattern, pollHandler.Vote)

	// JSON API (public reads, admin writes)
	route("GET /api/questions", questionHandler.ListQuestions)
	route("GET /api/questions/{id}", questionHandler.GetQuestion)
	route("POST /api/questions", questionHandler.CreateQuestion)
	route("POST /api/questions/{id}/choices", questionHandler.AddChoice)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, handlers.IndexURL(), http.StatusFound)
	})

	return mux
}
