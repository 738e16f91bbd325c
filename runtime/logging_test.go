package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingLogHandlerCapturesAttrsAndRespectsMaxSize(t *testing.T) {
	logger, ring := NewRingLogger(2)
	logger.Info("first", "n", 1)
	logger.Info("second", "n", 2)
	logger.Info("third", "n", 3)

	recent := ring.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Message)
	assert.Equal(t, "third", recent[1].Message)
	assert.Equal(t, "3", recent[1].Attrs["n"])
}

func TestRingLogHandlerSearchMatchesMessageAndAttrs(t *testing.T) {
	logger, ring := NewRingLogger(0)
	logger.Info("render started", "mode", "inline")
	logger.Info("exec finished", "status", "ok")

	matches := ring.Search("inline")
	require.Len(t, matches, 1)
	assert.Equal(t, "render started", matches[0].Message)
}

func TestRingLogHandlerClearEmptiesBuffer(t *testing.T) {
	logger, ring := NewRingLogger(0)
	logger.Info("hello")
	ring.Clear()
	assert.Empty(t, ring.Recent(0))
}

func TestNewAssignsAUniqueDebugIDAndUsableLogger(t *testing.T) {
	a := newTestContext(t)
	b := newTestContext(t)

	assert.NotEmpty(t, a.DebugID)
	assert.NotEqual(t, a.DebugID, b.DebugID)

	a.RequestExit()
	entries := a.LogRing.Recent(0)
	require.NotEmpty(t, entries)
	assert.Equal(t, a.DebugID, entries[len(entries)-1].Attrs["debug_id"])
}
