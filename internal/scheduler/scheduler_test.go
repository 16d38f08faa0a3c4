package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CookieClicker_Go/internal/testing/leaktest"
	"github.com/osse101/CookieClicker_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	atomic.AddInt32(&m.RunCount, 1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_Every(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	var runs int32
	sched.Every(5*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	})

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 3 }, time.Second, time.Millisecond)
	sched.Stop()
	sched.Stop()
}

func TestScheduler_StopHaltsRuns(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 100)}
	sched.Schedule(5*time.Millisecond, job)

	time.Sleep(30 * time.Millisecond)
	sched.Stop()
	pool.Stop()

	after := atomic.LoadInt32(&job.RunCount)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&job.RunCount))
}

type tickRecorder struct {
	mu        sync.Mutex
	fractions []float64
}

func (r *tickRecorder) tick(f float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fractions = append(r.fractions, f)
}

func (r *tickRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fractions)
}

func TestTicker_StartsIdle(t *testing.T) {
	rec := &tickRecorder{}
	tk := NewTicker(5*time.Millisecond, rec.tick)

	time.Sleep(20 * time.Millisecond)
	assert.False(t, tk.Active())
	assert.Equal(t, 0, rec.count())
}

func TestTicker_ActivateTicksWithFraction(t *testing.T) {
	rec := &tickRecorder{}
	tk := NewTicker(10*time.Millisecond, rec.tick)
	defer tk.Stop()

	require.True(t, tk.Activate())
	assert.False(t, tk.Activate(), "second activation is a no-op")
	assert.True(t, tk.Active())

	assert.Eventually(t, func() bool { return rec.count() >= 2 }, time.Second, time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, f := range rec.fractions {
		assert.InDelta(t, 0.01, f, 1e-12)
	}
}

func TestTicker_DefaultFraction(t *testing.T) {
	tk := NewTicker(0, func(float64) {})
	assert.Equal(t, DefaultTickInterval, tk.Interval())
	assert.InDelta(t, 0.1, tk.Fraction(), 1e-12)
}

func TestTicker_DeactivateAndReactivate(t *testing.T) {
	rec := &tickRecorder{}
	tk := NewTicker(5*time.Millisecond, rec.tick)
	defer tk.Stop()

	tk.Activate()
	assert.Eventually(t, func() bool { return rec.count() >= 1 }, time.Second, time.Millisecond)

	tk.Deactivate()
	assert.False(t, tk.Active())
	idle := rec.count()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, idle, rec.count(), "no ticks while idle")

	assert.True(t, tk.Activate())
	assert.Eventually(t, func() bool { return rec.count() > idle }, time.Second, time.Millisecond)
}

func TestTicker_StopIsFinal(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		tk := NewTicker(5*time.Millisecond, func(float64) {})
		tk.Activate()
		tk.Stop()
		tk.Stop()

		assert.False(t, tk.Activate())
		assert.False(t, tk.Active())
	})
}
