package command

import (
	"container/heap"
	"context"
	"errors"
	"os"
	"os/exec"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// timerJob is one pending Sleep/Tick/Every entry in the scheduler's
// priority queue, ordered by fire time.
type timerJob struct {
	fireAt time.Time
	period time.Duration // zero for one-shot Sleep/Tick; repeats for Every
	run    func(time.Time)
}

type timerQueue []*timerJob

func (q timerQueue) Len() int            { return len(q) }
func (q timerQueue) Less(i, j int) bool  { return q[i].fireAt.Before(q[j].fireAt) }
func (q timerQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *timerQueue) Push(x interface{}) { *q = append(*q, x.(*timerJob)) }
func (q *timerQueue) Pop() interface{} {
	old := *q
	n := len(old)
	job := old[n-1]
	*q = old[:n-1]
	return job
}

// Scheduler owns command execution: a timer priority queue for
// Sleep/Tick/Every served by one background goroutine, an errgroup for
// Batch fan-out, and a one-at-a-time gate for Exec. The app runner drives
// it with Dispatch, which runs on the caller's goroutine and hands each
// produced message to the deliver callback.
type Scheduler[M any] struct {
	mu      sync.Mutex
	timers  timerQueue
	wake    chan struct{}
	done    chan struct{}
	execMu  sync.Mutex

	// Suspend/Resume bracket an Exec's external process: the app runner
	// wires these to the terminal package's raw-mode enter/exit so the
	// child process gets a clean tty.
	Suspend func()
	Resume  func()
}

// NewScheduler creates a scheduler and starts its background timer loop.
func NewScheduler[M any]() *Scheduler[M] {
	s := &Scheduler[M]{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go s.timerLoop()
	return s
}

// Close stops the scheduler's background goroutine.
func (s *Scheduler[M]) Close() { close(s.done) }

func (s *Scheduler[M]) timerLoop() {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()
	for {
		s.mu.Lock()
		var next time.Time
		if len(s.timers) > 0 {
			next = s.timers[0].fireAt
		}
		s.mu.Unlock()

		var wait time.Duration
		if next.IsZero() {
			wait = time.Hour
		} else {
			wait = time.Until(next)
			if wait < 0 {
				wait = 0
			}
		}
		timer.Reset(wait)

		select {
		case <-s.done:
			return
		case <-s.wake:
			continue
		case <-timer.C:
			s.fireDue()
		}
	}
}

func (s *Scheduler[M]) fireDue() {
	now := time.Now()
	var due []*timerJob
	s.mu.Lock()
	for len(s.timers) > 0 && !s.timers[0].fireAt.After(now) {
		job := heap.Pop(&s.timers).(*timerJob)
		due = append(due, job)
		if job.period > 0 {
			job.fireAt = job.fireAt.Add(job.period)
			heap.Push(&s.timers, job)
		}
	}
	s.mu.Unlock()

	for _, job := range due {
		go job.run(now)
	}
}

func (s *Scheduler[M]) scheduleAt(at time.Time, period time.Duration, run func(time.Time)) {
	s.mu.Lock()
	heap.Push(&s.timers, &timerJob{fireAt: at, period: period, run: run})
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// alignToWallClock rounds up "now" to the next multiple of d since the
// Unix epoch, the same boundary-alignment the original's Cmd::every uses
// so periodic ticks land on :00-style marks instead of drifting from
// whenever the command happened to register.
func alignToWallClock(now time.Time, d time.Duration) time.Time {
	if d <= 0 {
		return now
	}
	rem := now.UnixNano() % int64(d)
	if rem == 0 {
		return now
	}
	return now.Add(d - time.Duration(rem))
}

// Dispatch runs cmd, delivering every message it produces to deliver.
// Batch fans its members out concurrently via an errgroup; Sequence runs
// them one after another, each waiting for the previous to fully deliver.
func (s *Scheduler[M]) Dispatch(ctx context.Context, cmd Cmd[M], deliver func(M), terminalCmd func(TerminalCmd, string)) {
	switch cmd.Kind {
	case KindNone:
		return

	case KindBatch:
		var g errgroup.Group
		for _, c := range cmd.Batch {
			c := c
			g.Go(func() error {
				s.Dispatch(ctx, c, deliver, terminalCmd)
				return nil
			})
		}
		_ = g.Wait()

	case KindSequence:
		for _, c := range cmd.Sequence {
			s.Dispatch(ctx, c, deliver, terminalCmd)
		}

	case KindPerform:
		deliver(cmd.Perform())

	case KindSleep:
		done := make(chan struct{})
		s.scheduleAt(time.Now().Add(cmd.SleepFor), 0, func(time.Time) { close(done) })
		<-done
		if cmd.Then != nil {
			s.Dispatch(ctx, *cmd.Then, deliver, terminalCmd)
		}

	case KindTick:
		done := make(chan time.Time, 1)
		s.scheduleAt(time.Now().Add(cmd.TickEvery), 0, func(t time.Time) { done <- t })
		t := <-done
		deliver(cmd.MsgFn(t))

	case KindEvery:
		first := alignToWallClock(time.Now(), cmd.TickEvery)
		done := make(chan time.Time, 1)
		s.scheduleAt(first, cmd.TickEvery, func(t time.Time) { done <- t })
		t := <-done
		deliver(cmd.MsgFn(t))

	case KindExec:
		result := s.runExec(ctx, cmd.ExecConfig)
		deliver(cmd.ExecMsgFn(result))

	case KindTerminal:
		if terminalCmd != nil {
			terminalCmd(cmd.Terminal, cmd.WindowTitle)
		}
	}
}

func (s *Scheduler[M]) runExec(ctx context.Context, cfg ExecConfig) ExecResult {
	s.execMu.Lock()
	defer s.execMu.Unlock()

	if s.Suspend != nil {
		s.Suspend()
	}
	defer func() {
		if s.Resume != nil {
			s.Resume()
		}
	}()

	c := exec.CommandContext(ctx, cfg.Command, cfg.Args...)
	if cfg.CurrentDir != "" {
		c.Dir = cfg.CurrentDir
	}
	if len(cfg.Env) > 0 {
		env := append([]string{}, c.Environ()...)
		for _, kv := range cfg.Env {
			env = append(env, kv.Key+"="+kv.Value)
		}
		c.Env = env
	}
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr

	err := c.Run()
	if err == nil {
		return ExecSuccess(c.ProcessState.ExitCode())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() < 0 {
			return ExecTerminatedBySignal()
		}
		return ExecSuccess(exitErr.ExitCode())
	}
	return ExecError(err.Error())
}
