package engine

import "time"

// Timer toggle actions
const (
	TimerPaused  = "paused"
	TimerResumed = "resumed"
)

// ComputeAntiSnipeExtension decides whether a bid landing at nowMs pushes the
// deadline. A bid inside the window extends the current deadline by
// extendBySeconds; it never resets to a full timer, so repeated late bids
// keep nudging the close forward by the extension amount.
func ComputeAntiSnipeExtension(nowMs, closesAtMs int64, antiSnipeWindowSeconds, extendBySeconds int) (shouldExtend bool, newClosesAtMs int64) {
	windowMs := int64(antiSnipeWindowSeconds) * 1000
	extendMs := int64(extendBySeconds) * 1000
	if closesAtMs-nowMs <= windowMs {
		return true, closesAtMs + extendMs
	}
	return false, closesAtMs
}

// TimerState carries the lot timer fields the pause toggle operates on.
type TimerState struct {
	ClosesAt             time.Time
	PausedAt             *time.Time
	PauseDurationSeconds int
}

// TogglePauseTimer applies one pause/resume toggle at now and returns the new
// timer state plus the action taken.
//
// Pausing freezes the countdown: PausedAt is set, ClosesAt untouched. Pausing
// a lot whose timer is already at or past zero first extends ClosesAt to
// now + graceSeconds so the frozen state shows a positive remaining time.
//
// Resuming shifts ClosesAt forward by the paused duration and accumulates
// PauseDurationSeconds. If the timer had already hit zero when the pause
// began, the resumed deadline is now + graceSeconds instead of a zero or
// negative remainder.
func TogglePauseTimer(ts TimerState, now time.Time, graceSeconds int) (TimerState, string) {
	grace := time.Duration(graceSeconds) * time.Second

	if ts.PausedAt == nil {
		if !ts.ClosesAt.After(now) {
			ts.ClosesAt = now.Add(grace)
		}
		paused := now
		ts.PausedAt = &paused
		return ts, TimerPaused
	}

	pausedFor := now.Sub(*ts.PausedAt)
	ts.PauseDurationSeconds += int(pausedFor / time.Second)
	if ts.ClosesAt.After(*ts.PausedAt) {
		ts.ClosesAt = ts.ClosesAt.Add(pausedFor)
	} else {
		ts.ClosesAt = now.Add(grace)
	}
	ts.PausedAt = nil
	return ts, TimerResumed
}

// RemainingSeconds is the display rule: frozen at ClosesAt-PausedAt while
// paused, counting down against now otherwise. Derived, never stored.
func RemainingSeconds(closesAt, pausedAt *time.Time, now time.Time) int {
	if closesAt == nil {
		return 0
	}
	var rem time.Duration
	if pausedAt != nil {
		rem = closesAt.Sub(*pausedAt)
	} else {
		rem = closesAt.Sub(now)
	}
	if rem < 0 {
		rem = 0
	}
	return int(rem / time.Second)
}
