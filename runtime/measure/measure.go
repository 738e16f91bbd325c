// Package measure is the measurement cache a RuntimeContext uses to
// answer "what size did this node render at" queries (spec.md §4.8),
// and to hit-test mouse events against painted regions in O(1) instead
// of a second layout traversal. It wraps github.com/lrstanley/bubblezone
// the way internal/builtin/bubblezone/bubblezone.go wrapped it for a
// scripting engine: Mark during render, Scan once per frame, Get/InBounds
// to answer queries — adapted here to a direct Go API instead of goja
// bindings, since this runtime has no embedded scripting layer.
package measure

import (
	"strconv"
	"sync"

	zone "github.com/lrstanley/bubblezone"

	"github.com/majiayu000/rnk/element"
)

// Size is a measured width/height in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Cache is one application instance's measurement cache: an
// element-id-keyed table, a user-key-keyed table, and a bubblezone
// manager for mouse hit-testing against the last scanned frame.
type Cache struct {
	mu    sync.RWMutex
	zones *zone.Manager

	byElement map[element.Id]Size
	byKey     map[string]Size
}

// New creates an empty measurement cache for one application instance.
// Per-instance, never process-global, so two application instances never
// share zone state.
func New() *Cache {
	return &Cache{
		zones:     zone.New(),
		byElement: make(map[element.Id]Size),
		byKey:     make(map[string]Size),
	}
}

// Close releases the underlying zone manager's resources.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.zones != nil {
		c.zones.Close()
		c.zones = nil
	}
}

func elementZoneID(id element.Id) string {
	return "el:" + strconv.FormatUint(uint64(id), 10)
}

// MarkElement wraps content with a zero-width zone marker keyed by id,
// called while painting a node that opted into measurement.
func (c *Cache) MarkElement(id element.Id, content string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.zones == nil {
		return content
	}
	return c.zones.Mark(elementZoneID(id), content)
}

// MarkKey wraps content with a zero-width zone marker keyed by an
// arbitrary user-chosen string, for components that measure by a
// caller-supplied handle rather than by element identity.
func (c *Cache) MarkKey(key string, content string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.zones == nil {
		return content
	}
	return c.zones.Mark(key, content)
}

// Scan must be called exactly once per frame on the fully painted root
// output: it strips zone markers and records their resolved bounds.
// Calling it also refreshes every element/key size entry accumulated
// via Mark* during this frame's paint.
func (c *Cache) Scan(content string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.zones == nil {
		return content
	}
	out := c.zones.Scan(content)
	for id, size := range c.byElement {
		if z := c.zones.Get(elementZoneID(id)); z != nil && !z.IsZero() {
			size.Width = z.EndX - z.StartX
			size.Height = z.EndY - z.StartY
			c.byElement[id] = size
		}
	}
	for key, size := range c.byKey {
		if z := c.zones.Get(key); z != nil && !z.IsZero() {
			size.Width = z.EndX - z.StartX
			size.Height = z.EndY - z.StartY
			c.byKey[key] = size
		}
	}
	return out
}

// ElementSize returns the last-scanned size for an element id marked via
// MarkElementTracked, and whether it is tracked; an id marked only with
// MarkElement is not recorded.
func (c *Cache) ElementSize(id element.Id) (Size, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byElement[id]
	return s, ok
}

// KeySize returns the last-scanned size for a user-chosen key marked via
// MarkKeyTracked, and whether it is tracked; a key marked only with
// MarkKey is not recorded.
func (c *Cache) KeySize(key string) (Size, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byKey[key]
	return s, ok
}

// touch pre-registers an id/key so the next Scan records its size even
// before a zone has ever resolved.
func (c *Cache) touchElement(id element.Id) {
	if _, ok := c.byElement[id]; !ok {
		c.byElement[id] = Size{}
	}
}

func (c *Cache) touchKey(key string) {
	if _, ok := c.byKey[key]; !ok {
		c.byKey[key] = Size{}
	}
}

// MarkElementTracked is MarkElement plus registering id for size
// tracking on the next Scan, for components that want an element's
// rendered size without separately calling ElementSize beforehand.
func (c *Cache) MarkElementTracked(id element.Id, content string) string {
	c.mu.Lock()
	c.touchElement(id)
	c.mu.Unlock()
	return c.MarkElement(id, content)
}

// MarkKeyTracked is MarkKey plus registering key for size tracking on
// the next Scan.
func (c *Cache) MarkKeyTracked(key string, content string) string {
	c.mu.Lock()
	c.touchKey(key)
	c.mu.Unlock()
	return c.MarkKey(key, content)
}

// InBoundsElement reports whether (col, row) falls within the last
// scanned bounds of the zone keyed by element id.
func (c *Cache) InBoundsElement(id element.Id, col, row int) bool {
	return c.inBounds(elementZoneID(id), col, row)
}

// InBoundsKey reports whether (col, row) falls within the last scanned
// bounds of the zone keyed by key.
func (c *Cache) InBoundsKey(key string, col, row int) bool {
	return c.inBounds(key, col, row)
}

func (c *Cache) inBounds(zoneID string, col, row int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.zones == nil {
		return false
	}
	z := c.zones.Get(zoneID)
	if z == nil || z.IsZero() {
		return false
	}
	return col >= z.StartX && col < z.EndX && row >= z.StartY && row < z.EndY
}

// NewPrefix generates a process-unique prefix suitable for namespacing
// child zone ids, delegating to the bubblezone manager's own counter.
func (c *Cache) NewPrefix() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.zones == nil {
		return ""
	}
	return c.zones.NewPrefix()
}

// Reset clears both measurement tables, keeping the zone manager alive.
// Call at application shutdown or when reusing a Cache across unrelated
// component trees (e.g. in tests).
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byElement = make(map[element.Id]Size)
	c.byKey = make(map[string]Size)
}
