package domain

import "time"

// OrganizerRole is the only role allowed to publish events when auth is enabled.
const OrganizerRole = "organizer"

// TokenIssuer issues tokens (e.g. JWT) for an organizer.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject. Tokens without the
// organizer role are rejected.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
