// File path: internal/session/registry_test.go
package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/immensecng/cylinder-retest/internal/catalog"
	"github.com/immensecng/cylinder-retest/internal/records"
	"github.com/immensecng/cylinder-retest/internal/wizard"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

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
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func TestResolveCreatesThenReuses(t *testing.T) {
	reg := NewRegistry()
	first, created := reg.Resolve("")
	require.True(t, created)
	require.NotEmpty(t, first.ID())

	again, created := reg.Resolve(first.ID())
	assert.False(t, created)
	assert.Same(t, first, again)
	assert.Equal(t, 1, reg.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	reg := NewRegistry()
	a, _ := reg.Resolve("")
	b, _ := reg.Resolve("")
	require.NotEqual(t, a.ID(), b.ID())

	a.Do(func(w *wizard.Controller, r *records.Store) {
		w.SelectOption(catalog.Oxygen)
		_, err := r.Add(records.Candidate{Type: "Oxygen", Date: "2024-02-02", Technician: "S. Pawar"})
		require.NoError(t, err)
	})
	b.Do(func(w *wizard.Controller, r *records.Store) {
		assert.Equal(t, wizard.StepSelectType, w.Step())
		assert.Zero(t, r.Len())
	})
}

func TestSeededSessionsGetDemoRecords(t *testing.T) {
	reg := NewRegistry(WithSeedRecords(true))
	sess, _ := reg.Resolve("")
	sess.Do(func(_ *wizard.Controller, r *records.Store) {
		assert.Equal(t, 3, r.Len())
	})
}

func TestExpiredSessionIsReplaced(t *testing.T) {
	clock := newClock()
	reg := NewRegistry(WithTTL(time.Minute), WithClock(clock.Now))
	old, _ := reg.Resolve("")

	clock.Advance(2 * time.Minute)
	_, ok := reg.lookup(old.ID())
	assert.False(t, ok)

	fresh, created := reg.Resolve(old.ID())
	assert.True(t, created)
	assert.NotEqual(t, old.ID(), fresh.ID())
	assert.Equal(t, 1, reg.Len())
}

func TestCookieIDWhitespaceIsIgnored(t *testing.T) {
	reg := NewRegistry()
	sess, _ := reg.Resolve("")
	padded := " " + sess.ID() + "\t"

	found, ok := reg.lookup(padded)
	assert.True(t, ok)
	assert.Same(t, sess, found)

	again, created := reg.Resolve(padded)
	assert.False(t, created)
	assert.Same(t, sess, again)
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	clock := newClock()
	reg := NewRegistry(WithTTL(time.Minute), WithClock(clock.Now))
	idle, _ := reg.Resolve("")
	clock.Advance(45 * time.Second)
	active, _ := reg.Resolve("")
	clock.Advance(30 * time.Second)

	assert.Equal(t, 1, reg.Sweep(clock.Now()))
	_, ok := reg.lookup(idle.ID())
	assert.False(t, ok)
	_, ok = reg.lookup(active.ID())
	assert.True(t, ok)
}

func TestMaxSessionsEvictsLeastRecentlySeen(t *testing.T) {
	clock := newClock()
	reg := NewRegistry(WithMaxSessions(2), WithClock(clock.Now))
	first, _ := reg.Resolve("")
	clock.Advance(time.Second)
	second, _ := reg.Resolve("")
	clock.Advance(time.Second)
	_, _ = reg.Resolve(first.ID())
	clock.Advance(time.Second)
	_, _ = reg.Resolve("")

	assert.Equal(t, 2, reg.Len())
	_, ok := reg.lookup(second.ID())
	assert.False(t, ok)
	_, ok = reg.lookup(first.ID())
	assert.True(t, ok)
}

func TestRunStopsWithContext(t *testing.T) {
	reg := NewRegistry(WithTTL(time.Nanosecond))
	_, _ = reg.Resolve("")

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan int, 1)
	done := make(chan error, 1)
	go func() {
		done <- reg.Run(ctx, time.Millisecond, func(removed, live int) {
			if removed > 0 {
				select {
				case swept <- live:
				default:
				}
			}
		})
	}()

	select {
	case live := <-swept:
		assert.Zero(t, live)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not run")
	}
	cancel()
	require.NoError(t, <-done)
}
