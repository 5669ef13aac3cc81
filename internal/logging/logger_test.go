package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}

func TestNew_ParsesLevel(t *testing.T) {
	lggr, err := New("warn")
	require.NoError(t, err)
	assert.False(t, lggr.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, lggr.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestTestObserved_RecordsEntries(t *testing.T) {
	lggr, logs := TestObserved(t, zapcore.WarnLevel)

	lggr.Infow("ignored", "k", 1)
	lggr.Warnw("recorded", "key", "value")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "recorded", entries[0].Message)
	assert.Equal(t, "value", entries[0].ContextMap()["key"])
}
