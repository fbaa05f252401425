// Package voct converts a millivolt pitch control value into an
// oscillator frequency and period following the eurorack
// volts-per-octave convention: pitch doubles for every MvPerOctave
// millivolts of input. The mapping is stateless.
package voct

import (
	"math"
	"time"
)

const (
	// BaseHz is the frequency produced by a 0 mV pitch value (A0).
	BaseHz = 27.5

	// MvPerOctave is the millivolt increment that doubles the frequency.
	MvPerOctave = 1000.0

	secInUs = 1000000
)

// MvOct is a composite pitch value in millivolts. Negative values are
// valid and map below BaseHz.
type MvOct float32

// Hz returns the oscillator frequency for the pitch value.
func (mv MvOct) Hz() float32 {
	return float32(BaseHz * math.Pow(2, float64(mv)/MvPerOctave))
}

// Us returns the full-cycle period, truncated to whole microseconds.
func (mv MvOct) Us() uint32 {
	return uint32(secInUs / mv.Hz())
}

// Period returns the full-cycle period as a duration, truncated to
// whole microseconds like Us.
func (mv MvOct) Period() time.Duration {
	return time.Duration(mv.Us()) * time.Microsecond
}
