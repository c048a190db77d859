// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the SQL queries for questions and choices.

Functions take a Querier so they run the same against *sql.DB and *sql.Tx:

	questions, err := store.ListPublished(ctx, db, time.Now())
	question, err := store.GetPublished(ctx, db, id, time.Now())

# Visibility

A question is visible once its pub_date is not after now. ListPublished and
GetPublished only ever return visible questions; GetPublished reports
ErrNotFound for future questions so callers cannot tell them apart from
missing ones.

# Voting

Vote increments the counter with a single UPDATE, so two voters hitting the
same choice at once both count.
*/
package store
