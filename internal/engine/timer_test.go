package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Tests ComputeAntiSnipeExtension
func TestComputeAntiSnipeExtension(t *testing.T) {
	tests := []struct {
		name             string
		nowMs            int64
		closesAtMs       int64
		windowSeconds    int
		extendBySeconds  int
		wantExtend       bool
		wantNewClosesAts int64
	}{
		{
			name:             "inside_window_extends",
			nowMs:            1000,
			closesAtMs:       2000,
			windowSeconds:    2,
			extendBySeconds:  5,
			wantExtend:       true,
			wantNewClosesAts: 7000,
		},
		{
			name:             "outside_window_no_change",
			nowMs:            1000,
			closesAtMs:       10000,
			windowSeconds:    2,
			extendBySeconds:  5,
			wantExtend:       false,
			wantNewClosesAts: 10000,
		},
		{
			name:             "exactly_on_boundary_extends",
			nowMs:            8000,
			closesAtMs:       10000,
			windowSeconds:    2,
			extendBySeconds:  5,
			wantExtend:       true,
			wantNewClosesAts: 15000,
		},
		{
			name:             "deadline_already_past_extends_from_deadline",
			nowMs:            10000,
			closesAtMs:       8000,
			windowSeconds:    2,
			extendBySeconds:  3,
			wantExtend:       true,
			wantNewClosesAts: 11000,
		},
		{
			name:             "zero_window_only_extends_at_or_past_deadline",
			nowMs:            5000,
			closesAtMs:       5000,
			windowSeconds:    0,
			extendBySeconds:  5,
			wantExtend:       true,
			wantNewClosesAts: 10000,
		},
		{
			name:             "zero_window_before_deadline_no_change",
			nowMs:            4999,
			closesAtMs:       5000,
			windowSeconds:    0,
			extendBySeconds:  5,
			wantExtend:       false,
			wantNewClosesAts: 5000,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gotExtend, gotClosesAt := ComputeAntiSnipeExtension(tc.nowMs, tc.closesAtMs, tc.windowSeconds, tc.extendBySeconds)
			require.Equal(t, tc.wantExtend, gotExtend)
			require.Equal(t, tc.wantNewClosesAts, gotClosesAt)
		})
	}
}

// Extension always stacks on the current deadline, never on now.
func TestComputeAntiSnipeExtension_StacksOnDeadline(t *testing.T) {
	t.Parallel()

	closesAt := int64(60000)
	now := int64(59000)

	_, first := ComputeAntiSnipeExtension(now, closesAt, 10, 10)
	require.Equal(t, int64(70000), first)

	// Second late bid a moment later nudges the new deadline again.
	_, second := ComputeAntiSnipeExtension(now+500, first, 10, 10)
	require.Equal(t, int64(80000), second)
}

// Tests TogglePauseTimer
func TestTogglePauseTimer(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC)

	t.Run("pause_then_resume_shifts_deadline", func(t *testing.T) {
		t.Parallel()

		ts := TimerState{ClosesAt: base.Add(20 * time.Second)}

		ts, action := TogglePauseTimer(ts, base, 10)
		require.Equal(t, TimerPaused, action)
		require.NotNil(t, ts.PausedAt)
		require.Equal(t, base, *ts.PausedAt)
		require.Equal(t, base.Add(20*time.Second), ts.ClosesAt) // untouched while pausing

		ts, action = TogglePauseTimer(ts, base.Add(5*time.Second), 10)
		require.Equal(t, TimerResumed, action)
		require.Nil(t, ts.PausedAt)
		require.Equal(t, base.Add(25*time.Second), ts.ClosesAt)
		require.Equal(t, 5, ts.PauseDurationSeconds)
	})

	t.Run("pause_accumulates_across_cycles", func(t *testing.T) {
		t.Parallel()

		ts := TimerState{ClosesAt: base.Add(30 * time.Second)}

		ts, _ = TogglePauseTimer(ts, base, 10)
		ts, _ = TogglePauseTimer(ts, base.Add(4*time.Second), 10)
		ts, _ = TogglePauseTimer(ts, base.Add(10*time.Second), 10)
		ts, _ = TogglePauseTimer(ts, base.Add(13*time.Second), 10)

		require.Equal(t, 7, ts.PauseDurationSeconds)
		require.Equal(t, base.Add(37*time.Second), ts.ClosesAt)
	})

	t.Run("pausing_expired_timer_grants_grace", func(t *testing.T) {
		t.Parallel()

		ts := TimerState{ClosesAt: base.Add(-3 * time.Second)}

		ts, action := TogglePauseTimer(ts, base, 10)
		require.Equal(t, TimerPaused, action)
		require.Equal(t, base.Add(10*time.Second), ts.ClosesAt)
	})

	t.Run("resume_after_expiry_at_pause_grants_grace", func(t *testing.T) {
		t.Parallel()

		// Deadline equal to the pause instant: nothing remained when paused.
		paused := base
		ts := TimerState{ClosesAt: base, PausedAt: &paused}

		ts, action := TogglePauseTimer(ts, base.Add(30*time.Second), 12)
		require.Equal(t, TimerResumed, action)
		require.Nil(t, ts.PausedAt)
		require.Equal(t, base.Add(30*time.Second).Add(12*time.Second), ts.ClosesAt)
	})
}

// Tests RemainingSeconds
func TestRemainingSeconds(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC)
	closes := base.Add(42 * time.Second)
	paused := base.Add(12 * time.Second)

	tests := []struct {
		name     string
		closesAt *time.Time
		pausedAt *time.Time
		now      time.Time
		want     int
	}{
		{name: "no_deadline", closesAt: nil, pausedAt: nil, now: base, want: 0},
		{name: "counting_down", closesAt: &closes, pausedAt: nil, now: base.Add(10 * time.Second), want: 32},
		{name: "frozen_while_paused", closesAt: &closes, pausedAt: &paused, now: base.Add(100 * time.Second), want: 30},
		{name: "expired_clamps_to_zero", closesAt: &closes, pausedAt: nil, now: base.Add(2 * time.Minute), want: 0},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, RemainingSeconds(tc.closesAt, tc.pausedAt, tc.now))
		})
	}
}
