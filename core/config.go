// Package core is the real-time control core of the DCO: it samples the
// pitch CV, converts it to an oscillator period, drives the square-wave
// output, honors hard sync and encoder fine tuning. The package has no
// machine dependencies; targets inject hardware through the interfaces
// in hal.go and invoke the task methods from their interrupt handlers.
package core

// Rates and steps. These are compile-time constants; the reference
// hardware runs the fast timer at 200kHz and samples CV at half that.
const (
	// TickRateHz is the fast-timer rate driving the tick generator.
	TickRateHz = 200000

	// SampleRateHz is the CV sampling timer rate.
	SampleRateHz = TickRateHz / 2

	// AvgBufSize is the CV averaging window length in samples.
	AvgBufSize = 32

	// FineTuneStep is the millivolt adjustment per encoder detent.
	FineTuneStep = 2

	// RefPitchMv is the fixed reference the measured CV is subtracted
	// from when forming the composite pitch value.
	RefPitchMv = 6000.0

	// VrefScaleMv relates a raw sample to millivolts once divided by
	// the raw internal-reference reading: mv = raw * VrefScaleMv / vref.
	VrefScaleMv = 1191.55555

	secInUs = 1000000
)

// TickPeriodUs is the fast-timer tick length in microseconds.
// TickRateHz never exceeds 1MHz, so this is always non-zero.
const TickPeriodUs = secInUs / TickRateHz

// UsToTicks converts a full-cycle period in microseconds to fast-timer
// ticks per half cycle (two toggles make one output cycle).
func UsToTicks(us uint32) uint32 {
	return us / TickPeriodUs / 2
}
