// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the admin API.

# Admin Keys

Admin requests send the configured key in the X-Admin-Key header:

	if err := auth.ValidateRequest(r, cfg.AdminKey); err != nil {
		// 401
	}

Keys are compared with hmac.Equal so the comparison time does not depend
on how much of the key matched.

# Generating Keys

	key, err := auth.GenerateAdminKey()

Returns 24 random bytes, URL-safe base64 encoded without padding.
*/
package auth
