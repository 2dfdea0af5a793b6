package core

import "time"

// Interval fires at a steady rate for callers that poll once per frame, such
// as the viewer's automatic re-roll.
type Interval struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewInterval constructs an Interval firing perSecond times per second. A
// non-positive rate yields a disabled interval.
func NewInterval(perSecond float64) *Interval {
	iv := &Interval{}
	iv.SetRate(perSecond)
	return iv
}

// SetRate changes the firing rate and resets any accumulated time.
func (iv *Interval) SetRate(perSecond float64) {
	iv.accumulator = 0
	iv.last = time.Time{}
	if perSecond <= 0 {
		iv.step = 0
		return
	}
	iv.step = time.Duration(float64(time.Second) / perSecond)
}

// Enabled reports whether the interval fires at all.
func (iv *Interval) Enabled() bool { return iv.step > 0 }

// Due reports whether the interval elapsed since the previous call. The first
// call only records now.
func (iv *Interval) Due(now time.Time) bool {
	if iv.step <= 0 {
		return false
	}
	if iv.last.IsZero() {
		iv.last = now
		return false
	}
	iv.accumulator += now.Sub(iv.last)
	iv.last = now
	if iv.accumulator >= iv.step {
		iv.accumulator -= iv.step
		if iv.accumulator > iv.step {
			iv.accumulator = 0
		}
		return true
	}
	return false
}
