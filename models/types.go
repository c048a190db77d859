// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// RecentWindow is how far back a publication date still counts as recent.
const RecentWindow = 24 * time.Hour

// Text limits shared by validation and the schema
const (
	MaxQuestionTextLen = 200
	MaxChoiceTextLen   = 200
)

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

// WasPublishedRecently reports whether the question was published within the
// day before now. The lower bound is exclusive and future dates never count.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return q.PubDate.After(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

// WasPublishedRecentlyNow is WasPublishedRecently against the wall clock.
func (q Question) WasPublishedRecentlyNow() bool {
	return q.WasPublishedRecently(time.Now())
}

// IsPublished reports whether the question is visible at now.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// Request types

type CreateQuestionRequest struct {
	QuestionText string     `json:"question_text" validate:"required,max=200"`
	PubDate      *time.Time `json:"pub_date,omitempty"`
}

type AddChoiceRequest struct {
	ChoiceText string `json:"choice_text" validate:"required,max=200"`
}

// Response types

type CreateQuestionResponse struct {
	ID      int64     `json:"id"`
	PubDate time.Time `json:"pub_date"`
}

type AddChoiceResponse struct {
	ID int64 `json:"id"`
}

type QuestionSummary struct {
	Question
	WasPublishedRecently bool `json:"was_published_recently"`
}

type QuestionListResponse struct {
	Questions []QuestionSummary `json:"questions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
