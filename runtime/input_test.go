package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majiayu000/rnk/hooks"
	"github.com/majiayu000/rnk/runtime/inputreg"
)

func TestUseInputRegistersOnCurrentRuntime(t *testing.T) {
	rt := newTestContext(t)
	ctx := hooks.NewContext()
	var gotKey string

	WithRuntime(rt, func() {
		hooks.WithHooks(ctx, func() {
			UseInput(ctx, func(key string) bool { gotKey = key; return true })
		})
	})

	assert.True(t, rt.Input.DispatchKey("q"))
	assert.Equal(t, "q", gotKey)
}

func TestUseMouseAndUsePasteRegisterOnCurrentRuntime(t *testing.T) {
	rt := newTestContext(t)
	ctx := hooks.NewContext()
	mouseSeen := false
	pasteSeen := ""

	WithRuntime(rt, func() {
		hooks.WithHooks(ctx, func() {
			UseMouse(ctx, func(ev inputreg.MouseEvent) bool { mouseSeen = true; return true })
			UsePaste(ctx, func(text string) bool { pasteSeen = text; return true })
		})
	})

	assert.True(t, rt.Input.DispatchMouse(inputreg.MouseEvent{Kind: inputreg.MouseDown}))
	assert.True(t, mouseSeen)
	assert.True(t, rt.Input.DispatchPaste("clip"))
	assert.Equal(t, "clip", pasteSeen)
}

func TestUseInputWithoutActiveRuntimeIsANoOp(t *testing.T) {
	ctx := hooks.NewContext()
	require.Nil(t, Current())

	assert.NotPanics(t, func() {
		hooks.WithHooks(ctx, func() {
			UseInput(ctx, func(string) bool { return true })
		})
	})
}
