// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Types

  - PollHandler: HTML pages (index, detail, results) and the vote form
  - QuestionHandler: JSON API, including the admin endpoints

	pollHandler := handlers.NewPollHandler(db, cfg, metrics)
	questionHandler := handlers.NewQuestionHandler(db, cfg)

# Pages

	GET  /polls/              → Index
	GET  /polls/{id}/         → Detail
	GET  /polls/{id}/results/ → Results
	POST /polls/{id}/vote/    → Vote (303 to results)

Only published questions (pub_date not after now) are shown. Detail,
results and vote answer 404 for questions that are missing or not published
yet. When nothing is published the index says "No polls are available."

Build paths with IndexURL, DetailURL, ResultsURL and VoteURL rather than by
hand; the templates use the same helpers.

# JSON API

	GET  /api/questions              → ListQuestions
	GET  /api/questions/{id}         → GetQuestion
	POST /api/questions              → CreateQuestion (admin)
	POST /api/questions/{id}/choices → AddChoice (admin)

Admin operations require the X-Admin-Key header.
*/
package handlers
