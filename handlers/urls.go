// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
)

// Route patterns, registered by the router
const (
	IndexPattern   = "GET /polls/{$}"
	DetailPattern  = "GET /polls/{id}/{$}"
	ResultsPattern = "GET /polls/{id}/results/{$}"
	VotePattern    = "POST /polls/{id}/vote/{$}"
)

// IndexURL is the path of the index route
func IndexURL() string {
	return "/polls/"
}

// DetailURL is the path of the detail route for a question
func DetailURL(id int64) string {
	return "/polls/" + strconv.FormatInt(id, 10) + "/"
}

// ResultsURL is the path of the results route for a question
func ResultsURL(id int64) string {
	return DetailURL(id) + "results/"
}

// VoteURL is the path of the vote route for a question
func VoteURL(id int64) string {
	return DetailURL(id) + "vote/"
}

// pathID parses the {id} wildcard. Non-numeric ids are treated as missing.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
