package token

import "time"

// EditToken is a time-limited credential authorizing edits to one member's
// record. At most one live token exists per member: issuing a new one
// replaces whatever was there before.
type EditToken struct {
	ID        int64
	MemberID  int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
// A token expiring exactly now is already expired.
func (t *EditToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
