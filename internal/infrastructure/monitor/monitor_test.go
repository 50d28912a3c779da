package monitor

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshRecordsEveryProbe(t *testing.T) {
	m := New(time.Minute, nil,
		Probe{Name: "api", Check: func(context.Context) error { return nil }},
		Probe{Name: "storage", Check: func(context.Context) error { return assert.AnError }},
	)

	assert.False(t, m.IsOnline())

	st := m.Refresh(context.Background())
	assert.Equal(t, map[string]bool{"api": true, "storage": false}, st.Components)
	assert.Equal(t, []string{"api", "storage"}, st.Names())
	assert.False(t, m.IsOnline())
	assert.False(t, st.LastCheck.IsZero())
}

func TestOnlineWhenAllProbesPass(t *testing.T) {
	m := New(time.Minute, nil, Probe{Name: "api", Check: func(context.Context) error { return nil }})
	m.Refresh(context.Background())
	assert.True(t, m.IsOnline())
}

func TestProbeWithoutCheckFails(t *testing.T) {
	m := New(time.Minute, nil, Probe{Name: "api"})
	assert.False(t, m.Refresh(context.Background()).Components["api"])
}

func TestProbeGetsTimeout(t *testing.T) {
	m := New(time.Minute, nil, Probe{
		Name:    "slow",
		Timeout: 10 * time.Millisecond,
		Check: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})
	assert.False(t, m.Refresh(context.Background()).Components["slow"])
}

func TestStartRunsLoopUntilStop(t *testing.T) {
	var calls atomic.Int32
	m := New(5*time.Millisecond, nil, Probe{Name: "api", Check: func(context.Context) error {
		calls.Add(1)
		return nil
	}})
	m.Start()
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	m.Stop()
	m.Stop()
	assert.True(t, m.IsOnline())
}

func TestStatusIsACopy(t *testing.T) {
	m := New(time.Minute, nil, Probe{Name: "api", Check: func(context.Context) error { return nil }})
	m.Refresh(context.Background())

	st := m.GetStatus()
	st.Components["api"] = false
	assert.True(t, m.IsOnline())
}
