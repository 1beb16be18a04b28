package entity

import "time"

// Session is an open access-gate session
type Session struct {
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Lifetime is the span the session was issued for, zero when it never expires
func (s *Session) Lifetime() time.Duration {
	if s.ExpiresAt.IsZero() {
		return 0
	}
	return s.ExpiresAt.Sub(s.CreatedAt)
}
