package inputreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchKeyStopsAtFirstConsumer(t *testing.T) {
	r := NewRegistry()
	var calls []int
	r.RegisterKey(func(key string) bool { calls = append(calls, 1); return false })
	r.RegisterKey(func(key string) bool { calls = append(calls, 2); return true })
	r.RegisterKey(func(key string) bool { calls = append(calls, 3); return false })

	consumed := r.DispatchKey("x")
	assert.True(t, consumed)
	assert.Equal(t, []int{1, 2}, calls)
}

func TestResetClearsAllHandlerLists(t *testing.T) {
	r := NewRegistry()
	r.RegisterKey(func(string) bool { return true })
	r.RegisterMouse(func(MouseEvent) bool { return true })
	r.RegisterPaste(func(string) bool { return true })

	r.Reset()

	assert.False(t, r.DispatchKey("x"))
	assert.False(t, r.DispatchMouse(MouseEvent{}))
	assert.False(t, r.DispatchPaste("x"))
}

func TestDispatchMouseInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	var order []string
	r.RegisterMouse(func(MouseEvent) bool { order = append(order, "first"); return false })
	r.RegisterMouse(func(MouseEvent) bool { order = append(order, "second"); return false })

	r.DispatchMouse(MouseEvent{Kind: MouseMoved, Col: 1, Row: 1})
	assert.Equal(t, []string{"first", "second"}, order)
}
