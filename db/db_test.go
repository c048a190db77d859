// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"bare path", "file:polls.db", "file:polls.db?_pragma=foreign_keys(1)&_time_format=sqlite"},
		{"existing query", "file:polls.db?cache=shared", "file:polls.db?cache=shared&_pragma=foreign_keys(1)&_time_format=sqlite"},
		{"already configured", "x.db?_pragma=foreign_keys(1)&_time_format=sqlite", "x.db?_pragma=foreign_keys(1)&_time_format=sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.url))
		})
	}
}

func TestOpen_UnknownType(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestCreateSchema_UnknownType(t *testing.T) {
	conn, err := Open(TypeSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	assert.ErrorIs(t, CreateSchema(conn, "oracle"), ErrUnknownType)
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn, err := Open(TypeSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, CreateSchema(conn, TypeSQLite))
	require.NoError(t, CreateSchema(conn, TypeSQLite))

	var count int
	err = conn.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name IN ('question', 'choice')
	`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCreateSchema_CascadeDelete(t *testing.T) {
	conn, err := Open(TypeSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, CreateSchema(conn, TypeSQLite))

	var questionID int64
	err = conn.QueryRow(`
		INSERT INTO question (question_text, pub_date) VALUES ($1, $2) RETURNING id
	`, "What's new?", time.Now().UTC()).Scan(&questionID)
	require.NoError(t, err)

	_, err = conn.Exec(`INSERT INTO choice (question_id, choice_text) VALUES ($1, $2)`, questionID, "Not much")
	require.NoError(t, err)

	_, err = conn.Exec(`DELETE FROM question WHERE id = $1`, questionID)
	require.NoError(t, err)

	var remaining int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM choice`).Scan(&remaining))
	assert.Equal(t, 0, remaining)
}
