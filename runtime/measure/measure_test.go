package measure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/majiayu000/rnk/element"
)

func TestScanRecordsElementSize(t *testing.T) {
	c := New()
	defer c.Close()

	id := element.NextID()
	marked := c.MarkElementTracked(id, "hello")
	scanned := c.Scan(marked)

	assert.Equal(t, "hello", scanned)
	size, ok := c.ElementSize(id)
	assert.True(t, ok)
	assert.Equal(t, 5, size.Width)
	assert.Equal(t, 1, size.Height)
}

func TestScanRecordsKeySize(t *testing.T) {
	c := New()
	defer c.Close()

	marked := c.MarkKeyTracked("panel", "line one\nline two")
	scanned := c.Scan(marked)

	assert.False(t, strings.Contains(scanned, "\x1b]"))
	size, ok := c.KeySize("panel")
	assert.True(t, ok)
	assert.Equal(t, 2, size.Height)
}

func TestUnmeasuredKeyReportsNotOK(t *testing.T) {
	c := New()
	defer c.Close()

	_, ok := c.KeySize("never-marked")
	assert.False(t, ok)
}

func TestInBoundsKeyMatchesScannedRegion(t *testing.T) {
	c := New()
	defer c.Close()

	marked := c.MarkKey("btn", "[ OK ]")
	c.Scan(marked)

	assert.True(t, c.InBoundsKey("btn", 0, 0))
	assert.False(t, c.InBoundsKey("btn", 100, 100))
}

func TestNewPrefixIsUnique(t *testing.T) {
	c := New()
	defer c.Close()

	a := c.NewPrefix()
	b := c.NewPrefix()
	assert.NotEqual(t, a, b)
}

func TestResetClearsMeasurements(t *testing.T) {
	c := New()
	defer c.Close()

	key := "widget"
	c.Scan(c.MarkKeyTracked(key, "x"))
	_, ok := c.KeySize(key)
	assert.True(t, ok)

	c.Reset()
	_, ok = c.KeySize(key)
	assert.False(t, ok)
}
