package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
)

func TestRealTimeProvider_Today(t *testing.T) {
	provider := NewRealTimeProvider(nil)

	today := provider.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.WithinDuration(t, time.Now().UTC(), today, 24*time.Hour)
}

func TestRealTimeProvider_WithTimeout(t *testing.T) {
	provider := NewRealTimeProvider(time.UTC)

	ctx, cancel := provider.WithTimeout(context.Background(), 10*core.Millisecond)
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, time.Second)
}
