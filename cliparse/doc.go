// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKey: Key expected in X-Admin-Key for the admin API (required)
  - FixturesPath: YAML file loaded at start-up (optional)
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)
  - TimeZone: IANA zone used when rendering dates (default: UTC)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-admin-key   Admin API key
	-fixtures    Fixtures file
	-log-level   Log level
	-log-format  Log format
	-tz          Display time zone
	-env-file    Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_KEY     → -admin-key
	FIXTURES_PATH → -fixtures
	LOG_LEVEL     → -log-level
	LOG_FORMAT    → -log-format
	TIME_ZONE     → -tz

CLI flags take precedence over environment variables. Before the
environment is read, the dotenv file is loaded with godotenv; variables
already set in the process are left alone and a missing file is ignored.

# Validation

ParseFlags returns an error if DATABASE_URL or ADMIN_KEY is missing, the
database type is not sqlite or postgres, or the time zone is unknown.
*/
package cliparse
