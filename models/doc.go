// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types.

# Domain Types

  - Question: question text and publication date
  - Choice: an answer to a question with its vote count
  - QuestionWithChoices: a question together with its choices

# Recency

A question counts as recently published when its pub_date falls in the
24 hours before now. The window excludes its lower edge and never includes
the future:

	q.WasPublishedRecently(now)  // now-24h < pub_date <= now

# Request Types

  - CreateQuestionRequest: question_text, optional pub_date
  - AddChoiceRequest: choice_text

Both carry go-playground/validator tags.

# Response Types

  - CreateQuestionResponse: id, pub_date
  - AddChoiceResponse: id
  - QuestionListResponse: questions with was_published_recently
  - ErrorResponse: error, message
*/
package models
