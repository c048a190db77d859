// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Connecting

Open selects the driver from the configured type:

	conn, err := db.Open(db.TypeSQLite, "file:polls.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite uses modernc.org/sqlite (pure Go). Foreign keys are enabled and
timestamps are written in a fixed text format so that pub_date comparisons
work on the stored text. PostgreSQL uses github.com/lib/pq.

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: question text and publication date
  - choice: answers with vote counts

	question 1──* choice

The foreign key uses ON DELETE CASCADE.
*/
package db
