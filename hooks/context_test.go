package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseHookPersistsAcrossRenders(t *testing.T) {
	c := NewContext()

	WithHooks(c, func() {
		v := UseHook(c, func() int { return 1 })
		*v = 2
	})

	WithHooks(c, func() {
		v := UseHook(c, func() int { return 999 }) // init ignored on second render
		assert.Equal(t, 2, *v)
	})
}

func TestUseHookOrderViolationPanics(t *testing.T) {
	c := NewContext()

	WithHooks(c, func() {
		UseHook(c, func() int { return 1 })
		UseHook(c, func() string { return "x" })
	})

	assert.Panics(t, func() {
		WithHooks(c, func() {
			UseHook(c, func() int { return 1 })
			UseHook(c, func() bool { return true }) // wrong type at slot 1
		})
	})
}

func TestUseSignalTriggersRenderCallbackOnSet(t *testing.T) {
	c := NewContext()
	renders := 0
	c.SetRenderCallback(func() { renders++ })

	var sig *Signal[int]
	WithHooks(c, func() {
		sig = UseSignal(c, func() int { return 0 })
	})

	sig.Set(42)
	assert.Equal(t, 42, sig.Get())
	assert.Equal(t, 1, renders)
}

func TestUseStateSetterSchedulesRender(t *testing.T) {
	c := NewContext()
	renders := 0
	c.SetRenderCallback(func() { renders++ })

	var state State[int]
	WithHooks(c, func() {
		state = UseState(c, func() int { return 0 })
	})
	state.Set(1)
	assert.Equal(t, 1, state.Get())
	assert.Equal(t, 1, renders)
}

func TestUseRefMutationDoesNotScheduleRender(t *testing.T) {
	c := NewContext()
	renders := 0
	c.SetRenderCallback(func() { renders++ })

	var ref Ref[int]
	WithHooks(c, func() {
		ref = UseRef(c, func() int { return 0 })
	})
	ref.Set(99)
	assert.Equal(t, 99, ref.Get())
	assert.Equal(t, 0, renders)
}

func TestUseMemoRecomputesOnlyWhenDepsChange(t *testing.T) {
	c := NewContext()
	computeCount := 0
	compute := func() int {
		computeCount++
		return 7
	}

	WithHooks(c, func() {
		UseMemo(c, compute, HashDeps(1))
	})
	WithHooks(c, func() {
		UseMemo(c, compute, HashDeps(1)) // same deps: no recompute
	})
	WithHooks(c, func() {
		UseMemo(c, compute, HashDeps(2)) // changed deps: recompute
	})

	assert.Equal(t, 2, computeCount)
}

func TestUseEffectRunsOnDepsChangeAndCleansUpInReverseOrder(t *testing.T) {
	c := NewContext()
	var order []string

	render := func(dep int) {
		WithHooks(c, func() {
			UseEffect(c, func() EffectCleanup {
				order = append(order, "effect-0")
				return func() { order = append(order, "cleanup-0") }
			}, HashDeps(dep))
			UseEffect(c, func() EffectCleanup {
				order = append(order, "effect-1")
				return func() { order = append(order, "cleanup-1") }
			}, HashDeps(dep))
		})
		c.RunEffects()
	}

	render(1)
	require.Equal(t, []string{"effect-0", "effect-1"}, order)

	order = nil
	render(2) // deps changed: cleanup runs before the new effect body
	assert.Equal(t, []string{"cleanup-0", "effect-0", "cleanup-1", "effect-1"}, order)

	order = nil
	c.Unmount()
	assert.Equal(t, []string{"cleanup-1", "cleanup-0"}, order)
}

func TestUseEffectOnceFiresExactlyOnce(t *testing.T) {
	c := NewContext()
	runs := 0

	for i := 0; i < 3; i++ {
		WithHooks(c, func() {
			UseEffectOnce(c, func() EffectCleanup {
				runs++
				return nil
			})
		})
		c.RunEffects()
	}

	assert.Equal(t, 1, runs)
}

func TestUsePreviousReturnsPriorRenderValue(t *testing.T) {
	c := NewContext()
	var prev int

	WithHooks(c, func() { prev = UsePrevious(c, 1) })
	assert.Equal(t, 0, prev)

	WithHooks(c, func() { prev = UsePrevious(c, 2) })
	assert.Equal(t, 1, prev)
}

func TestUseContextReturnsNearestProvidedValue(t *testing.T) {
	c := NewContext()
	key := NewContextKey[string]("theme")

	var got string
	Provide(key, "dark", func() {
		WithHooks(c, func() {
			got = UseContext(c, key, "default")
		})
	})
	assert.Equal(t, "dark", got)

	WithHooks(c, func() {
		got = UseContext(c, key, "default")
	})
	assert.Equal(t, "default", got)
}
