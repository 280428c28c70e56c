// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BlacklistEntry records a revoked token. Entries are never updated;
// they are removed only once the token would have expired anyway.
type BlacklistEntry struct {
	ID int64

	// Token is the exact compact token string that was revoked.
	Token string

	// BlacklistedOn is when the token was revoked.
	BlacklistedOn time.Time

	// ExpiresAt is the token's own expiry.
	ExpiresAt time.Time
}
