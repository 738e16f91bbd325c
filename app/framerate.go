package app

import (
	"sync"
	"time"
)

// FrameRateConfig configures the app runner's render pacing, ported
// from original_source's renderer/frame_rate.rs FrameRateConfig.
type FrameRateConfig struct {
	TargetFPS    int
	Adaptive     bool
	MinFPS       int
	MaxFPS       int
	CollectStats bool
}

// DefaultFrameRateConfig is 60fps, non-adaptive, CollectStats unset — the
// original's Default impl.
func DefaultFrameRateConfig() FrameRateConfig {
	return FrameRateConfig{TargetFPS: 60, MinFPS: 10, MaxFPS: 120}
}

// NewFrameRateConfig clamps fps to [1, 120].
func NewFrameRateConfig(fps int) FrameRateConfig {
	c := DefaultFrameRateConfig()
	c.TargetFPS = clampInt(fps, 1, 120)
	return c
}

// WithAdaptive enables adaptive frame-rate adjustment between minFPS
// and maxFPS.
func (c FrameRateConfig) WithAdaptive(minFPS, maxFPS int) FrameRateConfig {
	c.Adaptive = true
	c.MinFPS = clampInt(minFPS, 1, 120)
	c.MaxFPS = clampInt(maxFPS, c.MinFPS, 120)
	return c
}

// WithStats sets CollectStats. RecordFrame updates the statistics
// whether or not the flag is set.
func (c FrameRateConfig) WithStats() FrameRateConfig {
	c.CollectStats = true
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FrameRateStats is a snapshot of render timing statistics.
type FrameRateStats struct {
	CurrentFPS     float64
	AvgFrameTimeMs float64
	DroppedFrames  uint64
	TotalFrames    uint64
	MinFrameTimeMs float64
	MaxFrameTimeMs float64
}

// FrameRateController manages frame timing, adaptive frame rate, and
// statistics collection, ported from FrameRateController.
type FrameRateController struct {
	mu sync.Mutex

	config           FrameRateConfig
	lastFrame        time.Time
	frameTimes       []time.Duration
	currentTargetFPS int
	stats            FrameRateStats
}

// NewFrameRateController creates a controller seeded with config.
func NewFrameRateController(config FrameRateConfig) *FrameRateController {
	return &FrameRateController{
		config:           config,
		lastFrame:        timeNow(),
		currentTargetFPS: config.TargetFPS,
	}
}

// timeNow is a seam so tests could substitute a fake clock; production
// always uses time.Now.
var timeNow = time.Now

// FrameDuration returns the current target frame period.
func (f *FrameRateController) FrameDuration() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return time.Second / time.Duration(f.currentTargetFPS)
}

// CurrentFPS returns the current target FPS (may differ from
// config.TargetFPS when adaptive).
func (f *FrameRateController) CurrentFPS() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentTargetFPS
}

// ShouldRender reports whether enough time has passed since the last
// recorded frame to render another one.
func (f *FrameRateController) ShouldRender() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return timeNow().Sub(f.lastFrame) >= time.Second/time.Duration(f.currentTargetFPS)
}

// RecordFrame records that a frame was just rendered, taking renderTime
// to build, and updates statistics (and, if adaptive, the current
// target FPS).
func (f *FrameRateController) RecordFrame(renderTime time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := timeNow()
	frameTime := now.Sub(f.lastFrame)
	f.lastFrame = now

	f.frameTimes = append(f.frameTimes, frameTime)
	if len(f.frameTimes) > 60 {
		f.frameTimes = f.frameTimes[1:]
	}

	f.stats.TotalFrames++
	frameTimeMs := float64(frameTime) / float64(time.Millisecond)
	targetFrameTimeMs := 1000.0 / float64(f.currentTargetFPS)

	if frameTimeMs > targetFrameTimeMs*1.5 {
		f.stats.DroppedFrames++
	}

	if f.stats.TotalFrames == 1 || frameTimeMs < f.stats.MinFrameTimeMs {
		f.stats.MinFrameTimeMs = frameTimeMs
	}
	if frameTimeMs > f.stats.MaxFrameTimeMs {
		f.stats.MaxFrameTimeMs = frameTimeMs
	}

	if len(f.frameTimes) > 0 {
		var total time.Duration
		for _, d := range f.frameTimes {
			total += d
		}
		avg := total / time.Duration(len(f.frameTimes))
		f.stats.AvgFrameTimeMs = float64(avg) / float64(time.Millisecond)
		f.stats.CurrentFPS = 1000.0 / f.stats.AvgFrameTimeMs
	}

	if f.config.Adaptive {
		f.adjustFrameRate(renderTime)
	}
}

func (f *FrameRateController) adjustFrameRate(renderTime time.Duration) {
	renderTimeMs := float64(renderTime) / float64(time.Millisecond)
	targetFrameTimeMs := 1000.0 / float64(f.currentTargetFPS)

	switch {
	case renderTimeMs > targetFrameTimeMs*0.8:
		f.currentTargetFPS = clampInt(int(float64(f.currentTargetFPS)*0.9), f.config.MinFPS, f.config.MaxFPS)
	case renderTimeMs < targetFrameTimeMs*0.5 && f.currentTargetFPS < f.config.TargetFPS:
		f.currentTargetFPS = clampInt(int(float64(f.currentTargetFPS)*1.1), f.config.MinFPS, f.config.MaxFPS)
	}
}

// Stats returns a snapshot of the current statistics.
func (f *FrameRateController) Stats() FrameRateStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// Reset clears accumulated statistics and frame-time history without
// changing the configured target FPS.
func (f *FrameRateController) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats = FrameRateStats{}
	f.frameTimes = nil
	f.currentTargetFPS = f.config.TargetFPS
	f.lastFrame = timeNow()
}
