package resilience

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestBreaker(threshold int) (*Breaker, *fakeClock, *[]string) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	var transitions []string
	b := New("remote", Settings{
		Threshold: threshold,
		Cooldown:  time.Minute,
		Now:       clock.Now,
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})
	return b, clock, &transitions
}

func fail() error { return errBoom }
func succeed() error { return nil }

func TestBreakerStateTransitions(t *testing.T) {
	tests := []struct {
		name     string
		calls    []func() error
		expected State
	}{
		{"stays closed on successes", []func() error{succeed, succeed, succeed}, StateClosed},
		{"opens after consecutive failures", []func() error{fail, fail, fail}, StateOpen},
		{"success resets the failure run", []func() error{fail, fail, succeed, fail, fail}, StateClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, _ := newTestBreaker(3)
			for _, call := range tt.calls {
				_ = b.Do(call)
			}
			assert.Equal(t, tt.expected, b.State())
		})
	}
}

func TestBreakerRejectsWhileOpen(t *testing.T) {
	b, _, _ := newTestBreaker(2)
	_ = b.Do(fail)
	_ = b.Do(fail)

	called := false
	err := b.Do(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestBreakerRecovers(t *testing.T) {
	b, clock, transitions := newTestBreaker(1)
	require.ErrorIs(t, b.Do(fail), errBoom)
	require.Equal(t, StateOpen, b.State())

	clock.Advance(time.Minute)
	assert.Equal(t, StateHalfOpen, b.State())
	require.NoError(t, b.Do(succeed))
	assert.Equal(t, StateClosed, b.State())

	assert.Equal(t, []string{"closed->open", "open->half-open", "half-open->closed"}, *transitions)
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b, clock, _ := newTestBreaker(1)
	_ = b.Do(fail)
	clock.Advance(time.Minute)

	assert.ErrorIs(t, b.Do(fail), errBoom)
	assert.Equal(t, StateOpen, b.State())
}

func TestBreakerHalfOpenAdmitsLimitedProbes(t *testing.T) {
	b, clock, _ := newTestBreaker(1)
	_ = b.Do(fail)
	clock.Advance(time.Minute)

	err := b.Do(func() error {
		return b.Do(succeed)
	})
	assert.ErrorIs(t, err, ErrTooManyRequests)
}

func TestPermanentErrorsDoNotTrip(t *testing.T) {
	b, _, _ := newTestBreaker(1)
	bad := errors.New("bad request")

	err := b.Do(func() error { return Permanent(bad) })
	assert.ErrorIs(t, err, bad)
	assert.Equal(t, StateClosed, b.State())
	assert.Nil(t, Permanent(nil))
}

func TestBreakerPanicCountsAsFailure(t *testing.T) {
	b, _, _ := newTestBreaker(1)
	assert.Panics(t, func() {
		_ = b.Do(func() error { panic("boom") })
	})
	assert.Equal(t, StateOpen, b.State())
}

func TestBreakerConcurrentUse(t *testing.T) {
	b := New("concurrent", Settings{Threshold: 1000})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = b.Do(succeed)
			} else {
				_ = b.Do(fail)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, StateClosed, b.State())
}
