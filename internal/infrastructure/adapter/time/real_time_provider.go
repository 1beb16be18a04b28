package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a time provider whose calendar day is taken in loc.
// A nil location means UTC.
func NewRealTimeProvider(loc *time.Location) core.TimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return &RealTimeProvider{location: loc}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Today returns the current local calendar date at midnight UTC
func (p *RealTimeProvider) Today() time.Time {
	y, m, d := time.Now().In(p.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
