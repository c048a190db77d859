// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls web server.

Polls is a small polling site. Questions carry a publication date and only
become visible once that date has passed. Visitors browse published
questions, vote on a choice and look at the results. Operators add
questions and choices through a JSON API guarded by an admin key, or seed
the database from a YAML fixture file.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=polls.db ADMIN_KEY=secret go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-key secret

A .env file in the working directory is read first; real environment
variables take precedence over it.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_KEY (-admin-key): Secret expected in the X-Admin-Key header

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - FIXTURES_PATH (-fixtures): YAML file loaded at start-up
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - LOG_FORMAT (-log-format): text or json (default: text)
  - TIME_ZONE (-tz): Zone used to display dates (default: UTC)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTML pages, vote action and JSON API
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, validation, JSON helpers
  - store: Queries, including the publication-date visibility filter
  - models: Domain and request/response types, recency rule
  - fixtures: YAML seed data
  - auth: Admin key checks
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
