// Package sim drives the headless tick loop: fixed-rate scheduling of the
// scene and player updates.
package sim

import "time"

// TickLimiter provides high-precision tick rate limiting.
type TickLimiter struct {
	rate int
	next time.Time
}

// NewTickLimiter creates a limiter for the given ticks-per-second rate.
// A rate <= 0 disables limiting.
func NewTickLimiter(rate int) *TickLimiter {
	return &TickLimiter{rate: rate}
}

// Wait blocks until the next tick is due. Uses a hybrid sleep/spin approach
// for better precision at high tick rates.
func (l *TickLimiter) Wait() {
	if l.rate <= 0 {
		l.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(l.rate)

	if l.next.IsZero() {
		l.next = time.Now().Add(target)
	} else {
		l.next = l.next.Add(target)
	}

	for {
		remaining := time.Until(l.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait the final few microseconds
		if time.Until(l.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift.
	if late := -time.Until(l.next); late > target {
		l.next = time.Now().Add(target)
	}
}
