// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets an id (google/uuid unless the client sent
X-Request-ID) that is logged, echoed in the response header and available
through RequestID(r.Context()).

# Metrics

	m := middleware.NewMetrics()
	mux.HandleFunc("GET /polls/{$}", m.Instrument(handler))
	mux.Handle("GET /metrics", m.Handler())

Counts requests by method, route pattern and status, and records their
duration. Each Metrics owns its own Prometheus registry.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := middleware.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

Validate runs go-playground/validator and reports fields by their JSON
names.
*/
package middleware
