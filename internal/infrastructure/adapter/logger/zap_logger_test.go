package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]core.LogLevel{
		"debug":   core.LogLevelDebug,
		"INFO":    core.LogLevelInfo,
		"warn":    core.LogLevelWarn,
		"warning": core.LogLevelWarn,
		"error":   core.LogLevelError,
		"":        core.LogLevelInfo,
		"verbose": core.LogLevelInfo,
	}

	for input, expected := range testCases {
		assert.Equal(t, expected, ParseLevel(input), input)
	}
}

func TestZapLogger_Levels(t *testing.T) {
	observed, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(observed), core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("Transaction saved", map[string]any{"transaction_id": uint64(3)})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Transaction saved", entry.Message)
	assert.Equal(t, uint64(3), entry.ContextMap()["transaction_id"])

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("visible", nil)
	assert.Equal(t, 1, logs.FilterMessage("visible").Len())

	log.SetLevel(core.LogLevelError)
	log.Warn("suppressed", nil)
	log.Error("kept", nil)
	assert.Equal(t, 0, logs.FilterMessage("suppressed").Len())
	assert.Equal(t, 1, logs.FilterMessage("kept").Len())
}

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger(Options{Level: "warn", Format: "json", Output: "stderr"})

	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
}

func TestNewNoopLogger(t *testing.T) {
	log := NewNoopLogger()

	log.Error("ignored", map[string]any{"k": "v"})
	assert.NoError(t, log.Flush())
}
