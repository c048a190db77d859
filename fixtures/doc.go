// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fixtures seeds the database from a YAML file.

	questions:
	  - question_text: What's up?
	    days: -2
	    choices:
	      - choice_text: Not much
	      - choice_text: The sky
	        votes: 3
	  - question_text: Scheduled question
	    pub_date: 2030-01-01T09:00:00Z

Each question needs either an absolute pub_date or days, an offset from
load time (negative for the past). Unknown keys are rejected.

	err := fixtures.LoadFile(ctx, db, cfg.FixturesPath)

Loading runs in a single transaction.
*/
package fixtures
