package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerboseWritesDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	l := New(true, &buf)
	require.NotEmpty(t, l.ID())

	l.DiamondDetected("4", 1, 4)
	l.Warn("9", 25)

	out := buf.String()
	assert.Contains(t, out, "diamond detected")
	assert.Contains(t, out, "unusually large number of contributions")
	assert.Contains(t, out, l.ID())
}

func TestNewQuietProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, &buf)

	l.DiamondDetected("4", 1, 4)
	l.ConditioningStates("4", 1)
	l.Warn("9", 25)
	l.CacheStats("diamond", 1, 1, 0)

	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestEachLoggerHasDistinctID(t *testing.T) {
	a := New(true, &bytes.Buffer{})
	b := New(true, &bytes.Buffer{})
	assert.NotEqual(t, a.ID(), b.ID())
}
