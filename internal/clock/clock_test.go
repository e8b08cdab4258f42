package clock

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"auction-arena/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

func TestClock_RemainingWhenDisarmed(t *testing.T) {
	t.Parallel()

	c := New(90*time.Second, nil, nil)
	require.Equal(t, 90, c.Remaining())
	require.False(t, c.Armed())
}

func TestClock_ArmReportsEndTimeAndRemaining(t *testing.T) {
	t.Parallel()

	c := New(60*time.Second, nil, nil)
	endTime, err := c.Arm()
	defer c.Stop()

	require.NoError(t, err)
	require.True(t, c.Armed())
	require.WithinDuration(t, time.Now().Add(60*time.Second), endTime, time.Second)
	require.InDelta(t, 60, c.Remaining(), 1)
}

func TestClock_DoubleArmRejected(t *testing.T) {
	t.Parallel()

	c := New(60*time.Second, nil, nil)
	_, err := c.Arm()
	require.NoError(t, err)
	defer c.Stop()

	_, err = c.Arm()
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrAlreadyRunning))
}

func TestClock_SetDurationRejectedWhileArmed(t *testing.T) {
	t.Parallel()

	c := New(60*time.Second, nil, nil)
	_, err := c.Arm()
	require.NoError(t, err)
	defer c.Stop()

	err = c.SetDuration(30 * time.Second)
	require.True(t, errors.Is(err, auctionerrors.ErrRunningLocked))

	c.Stop()
	require.NoError(t, c.SetDuration(30*time.Second))
	require.Equal(t, 30, c.Remaining())
}

// ForceExpire makes the next tick fire expiry exactly once.
func TestClock_ForceExpireFiresOnce(t *testing.T) {
	t.Parallel()

	var fired int32
	done := make(chan struct{})
	c := New(time.Hour, nil, func() {
		if atomic.AddInt32(&fired, 1) == 1 {
			close(done)
		}
	})

	_, err := c.Arm()
	require.NoError(t, err)

	c.ForceExpire()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("expiry did not fire")
	}

	// idempotence: more force-expires on the disarmed clock do nothing
	c.ForceExpire()
	time.Sleep(1500 * time.Millisecond)
	require.Equal(t, int32(1), atomic.LoadInt32(&fired))
	require.False(t, c.Armed())
}

// Stop cancels the cycle: no tick or expiry may fire afterwards.
func TestClock_StopCancelsPendingExpiry(t *testing.T) {
	t.Parallel()

	var fired int32
	c := New(2*time.Second, nil, func() { atomic.AddInt32(&fired, 1) })

	_, err := c.Arm()
	require.NoError(t, err)
	c.Stop()

	time.Sleep(3 * time.Second)
	require.Equal(t, int32(0), atomic.LoadInt32(&fired))
	require.False(t, c.Armed())
	require.Equal(t, 2, c.Remaining())
}

// A fresh cycle after expiry works: the latch is per cycle, not global.
func TestClock_RearmAfterExpiry(t *testing.T) {
	t.Parallel()

	fired := make(chan struct{}, 2)
	c := New(time.Hour, nil, func() { fired <- struct{}{} })

	_, err := c.Arm()
	require.NoError(t, err)
	c.ForceExpire()
	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("first expiry did not fire")
	}

	_, err = c.Arm()
	require.NoError(t, err)
	c.ForceExpire()
	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("second expiry did not fire")
	}
}

func TestClock_TickReportsRemaining(t *testing.T) {
	t.Parallel()

	ticks := make(chan int, 8)
	c := New(5*time.Second, func(remaining int) { ticks <- remaining }, nil)

	_, err := c.Arm()
	require.NoError(t, err)
	defer c.Stop()

	select {
	case remaining := <-ticks:
		require.Greater(t, remaining, 0)
		require.LessOrEqual(t, remaining, 5)
	case <-time.After(3 * time.Second):
		t.Fatal("no tick observed")
	}
}
