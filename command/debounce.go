package command

import (
	"time"

	"github.com/majiayu000/rnk/hooks"
)

// debounceInput is one (value, delay) pair sent to a debounce worker.
type debounceInput[T any] struct {
	value T
	delay time.Duration
}

// debounceState is the worker side of UseDebounce: a single long-lived
// goroutine per hook instance, started once on mount (from the UseRef
// slot's init, which UseHook guarantees runs exactly once), that
// serializes every (value, delay) update through an inputs channel
// instead of being torn down and respawned on each change.
type debounceState[T comparable] struct {
	inputs chan debounceInput[T]
	done   chan struct{}
}

func newDebounceState[T comparable](debounced *hooks.Signal[T]) *debounceState[T] {
	d := &debounceState[T]{
		inputs: make(chan debounceInput[T], 1),
		done:   make(chan struct{}),
	}
	go runDebounceWorker(d.inputs, d.done, debounced)
	return d
}

// send delivers input to the worker, replacing any still-pending input
// rather than blocking or spawning anything — this is what lets newer
// inputs supersede older pending commits without a new thread per update.
func (d *debounceState[T]) send(input debounceInput[T]) {
	for {
		select {
		case d.inputs <- input:
			return
		default:
		}
		select {
		case <-d.inputs:
		default:
		}
	}
}

// UseDebounce returns value only after it has stayed unchanged for delay.
// A single worker goroutine is started on mount and lives for the
// component's lifetime; every value/delay change is posted to it over a
// channel rather than cancelling and respawning a goroutine, so exactly
// one worker thread exists for a given hook instance throughout (spec
// §4.6). A zero delay updates immediately, without involving the worker.
func UseDebounce[T comparable](c *hooks.Context, value T, delay time.Duration) T {
	debounced := hooks.UseSignal(c, func() T { return value })
	lastValue := hooks.UseSignal(c, func() T { return value })
	lastDelay := hooks.UseSignal(c, func() time.Duration { return delay })
	state := hooks.UseRef(c, func() *debounceState[T] {
		return newDebounceState(debounced)
	}).Get()

	// Best-effort shutdown when the component unmounts and effects are
	// actually flushed; the worker goroutine started above does not
	// depend on this running to exist or to process updates.
	hooks.UseEffectOnce(c, func() hooks.EffectCleanup {
		return func() { close(state.done) }
	})

	if delay == 0 {
		lastValue.Set(value)
		lastDelay.Set(delay)
		debounced.Set(value)
		return debounced.Get()
	}

	valueChanged := lastValue.Get() != value
	delayChanged := lastDelay.Get() != delay

	if valueChanged {
		lastValue.Set(value)
	}
	if delayChanged {
		lastDelay.Set(delay)
	}

	if valueChanged || delayChanged {
		state.send(debounceInput[T]{value: value, delay: delay})
	}

	return debounced.Get()
}

// runDebounceWorker is the body of the single per-hook debounce goroutine:
// it waits on whichever of (next input, pending timer fire, unmount) is
// ready, resetting the timer whenever a fresh input supersedes the one it
// was waiting on.
func runDebounceWorker[T comparable](inputs <-chan debounceInput[T], done <-chan struct{}, debounced *hooks.Signal[T]) {
	var timer *time.Timer
	var timerC <-chan time.Time
	var pending T
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case in := <-inputs:
			if timer != nil {
				timer.Stop()
			}
			pending = in.value
			timer = time.NewTimer(in.delay)
			timerC = timer.C
		case <-timerC:
			if debounced.Get() != pending {
				debounced.Set(pending)
			}
			timerC = nil
		case <-done:
			return
		}
	}
}

// UseThrottle returns value, but updates it at most once per interval.
func UseThrottle[T any](c *hooks.Context, value T, interval time.Duration) T {
	throttled := hooks.UseSignal(c, func() T { return value })
	lastUpdate := hooks.UseRef(c, func() time.Time { return time.Now() })

	if time.Since(lastUpdate.Get()) >= interval {
		throttled.Set(value)
		lastUpdate.Set(time.Now())
	}
	return throttled.Get()
}

// UseInterval runs callback every delay for as long as the component
// stays mounted, starting immediately; a zero delay disables it.
func UseInterval(c *hooks.Context, delay time.Duration, callback func()) {
	UseIntervalWhen(c, delay, true, callback)
}

// UseIntervalWhen is UseInterval with an enabled flag: disabling stops
// ticks without unmounting the component, and re-enabling restarts them.
func UseIntervalWhen(c *hooks.Context, delay time.Duration, enabled bool, callback func()) {
	hooks.UseEffect(c, func() hooks.EffectCleanup {
		if !enabled || delay == 0 {
			return nil
		}
		ticker := time.NewTicker(delay)
		stop := make(chan struct{})
		go func() {
			for {
				select {
				case <-stop:
					ticker.Stop()
					return
				case <-ticker.C:
					callback()
				}
			}
		}()
		return func() { close(stop) }
	}, hooks.HashDeps(delay, enabled))
}

// UseTimeout runs callback once after delay has elapsed, via the
// scheduler's own timer queue rather than a fresh goroutine per call.
func UseTimeout[M any](c *hooks.Context, s *Scheduler[M], delay time.Duration, callback func()) {
	hooks.UseEffectOnce(c, func() hooks.EffectCleanup {
		stop := make(chan struct{})
		s.scheduleAt(time.Now().Add(delay), 0, func(time.Time) {
			select {
			case <-stop:
			default:
				callback()
			}
		})
		return func() { close(stop) }
	})
}
