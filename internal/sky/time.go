package sky

import "time"

// Clock returns the current wall-clock time in the local zone.
type Clock func() time.Time

// TimeState samples the clock for the orientation updater and remembers
// the time the sky was last oriented for.
type TimeState struct {
	clock   Clock
	last    time.Time
	sampled bool
}

// NewTimeState returns a time state reading clock. A nil clock reads
// time.Now.
func NewTimeState(clock Clock) *TimeState {
	if clock == nil {
		clock = time.Now
	}
	return &TimeState{clock: clock}
}

// Sample reads the clock and keeps the result.
func (ts *TimeState) Sample() time.Time {
	ts.last = ts.clock()
	ts.sampled = true
	return ts.last
}

// Last returns the most recent sample and whether one exists. While time
// is stopped this is the moment the sky is frozen at.
func (ts *TimeState) Last() (time.Time, bool) {
	return ts.last, ts.sampled
}
