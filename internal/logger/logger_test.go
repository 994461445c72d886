package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New(false, false)
	require.NoError(t, err)
	require.NotNil(t, log)

	jsonLog, err := New(true, true)
	require.NoError(t, err)
	require.NotNil(t, jsonLog)
	assert.True(t, jsonLog.Core().Enabled(-1), "debug mode enables debug level")
	assert.False(t, log.Core().Enabled(-1), "default mode stays at info")
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "abc", TruncateForLog("  abc  ", 10))
	assert.Equal(t, "abcde...", TruncateForLog("abcdefghij", 5))
	assert.Equal(t, "", TruncateForLog("anything", 0))
	assert.Equal(t, "héllo...", TruncateForLog("héllo wörld", 5), "limit counts runes, not bytes")
}
