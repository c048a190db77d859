// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fixtures

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/store"
)

var ErrNoPubDate = errors.New("pub_date or days required")

type File struct {
	Questions []Question `yaml:"questions"`
}

type Question struct {
	QuestionText string     `yaml:"question_text" validate:"required,max=200"`
	PubDate      *time.Time `yaml:"pub_date"`
	Days         *int       `yaml:"days"`
	Choices      []Choice   `yaml:"choices" validate:"dive"`
}

type Choice struct {
	ChoiceText string `yaml:"choice_text" validate:"required,max=200"`
	Votes      int    `yaml:"votes" validate:"min=0"`
}

// pubDate resolves an absolute pub_date, or days relative to now
func (q Question) pubDate(now time.Time) (time.Time, error) {
	switch {
	case q.PubDate != nil:
		return *q.PubDate, nil
	case q.Days != nil:
		return now.AddDate(0, 0, *q.Days), nil
	default:
		return time.Time{}, ErrNoPubDate
	}
}

// Parse decodes and validates a fixtures document
func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	for i, q := range f.Questions {
		if err := middleware.Validate(q); err != nil {
			return File{}, fmt.Errorf("question %d: %w", i+1, err)
		}
		if q.PubDate == nil && q.Days == nil {
			return File{}, fmt.Errorf("question %d: %w", i+1, ErrNoPubDate)
		}
	}

	return f, nil
}

// Load inserts every question and choice in one transaction. Nothing is
// stored if any row fails.
func Load(ctx context.Context, db *sql.DB, f File, now time.Time) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range f.Questions {
		pubDate, err := q.pubDate(now)
		if err != nil {
			return 0, err
		}

		questionID, err := store.InsertQuestion(ctx, tx, q.QuestionText, pubDate)
		if err != nil {
			return 0, err
		}

		for _, c := range q.Choices {
			if _, err := store.InsertChoice(ctx, tx, questionID, c.ChoiceText, c.Votes); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit fixtures: %w", err)
	}

	return len(f.Questions), nil
}

// LoadFile parses path and loads it
func LoadFile(ctx context.Context, db *sql.DB, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer file.Close()

	f, err := Parse(file)
	if err != nil {
		return err
	}

	n, err := Load(ctx, db, f, time.Now())
	if err != nil {
		return err
	}

	slog.Info("fixtures loaded", "path", path, "questions", n)
	return nil
}
