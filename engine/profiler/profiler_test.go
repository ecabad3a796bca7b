package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProfilerReportsOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	var reports []Stats
	p := NewProfiler(
		WithInterval(time.Second),
		WithClock(clock.now),
		WithReporter(func(s Stats) { reports = append(reports, s) }),
	)

	for i := 0; i < 99; i++ {
		clock.advance(10 * time.Millisecond)
		assert.False(t, p.Tick())
	}
	clock.advance(10 * time.Millisecond)
	assert.True(t, p.Tick())

	require.Len(t, reports, 1)
	assert.Equal(t, 100, reports[0].Frames)
	assert.InDelta(t, 100.0, reports[0].FPS, 1e-6)
	assert.Greater(t, reports[0].HeapMB, 0.0)

	// The next interval starts from zero frames.
	clock.advance(time.Second)
	assert.True(t, p.Tick())
	require.Len(t, reports, 2)
	assert.Equal(t, 1, reports[1].Frames)
}

func TestProfilerOptions(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithReporter(nil), WithClock(nil))
	assert.Equal(t, DefaultInterval, p.Interval())
	assert.NotNil(t, p.report)
	assert.NotNil(t, p.now)
}

func TestProfilerReset(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	reported := 0
	p := NewProfiler(
		WithInterval(time.Second),
		WithClock(clock.now),
		WithReporter(func(Stats) { reported++ }),
	)

	clock.advance(900 * time.Millisecond)
	p.Tick()
	p.Reset()
	clock.advance(900 * time.Millisecond)
	assert.False(t, p.Tick())
	assert.Zero(t, reported)
}

func TestStatsString(t *testing.T) {
	s := Stats{FPS: 59.94, HeapMB: 1.5, NumGC: 3}
	assert.Contains(t, s.String(), "FPS: 59.94")
	assert.Contains(t, s.String(), "GC: 3")
}
