// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Service:

	GET /          - Redirect to /polls/
	GET /health    - Database ping
	GET /metrics   - Prometheus metrics

Pages (public):

	GET  /polls/              - index
	GET  /polls/{id}/         - detail
	GET  /polls/{id}/results/ - results
	POST /polls/{id}/vote/    - vote

JSON API:

	GET  /api/questions              - Published questions
	GET  /api/questions/{id}         - Question with choices
	POST /api/questions              - Create question (X-Admin-Key)
	POST /api/questions/{id}/choices - Add choice (X-Admin-Key)

Every page and API route is wrapped with request logging and metrics.
*/
package router
