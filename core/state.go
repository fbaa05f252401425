package core

import "sync/atomic"

// State is the cross-task shared state. Every field is a single
// machine word accessed atomically, so no reader can observe a torn
// value; consumers tolerate values up to one sample interval stale.
// Each field has exactly one writing task, enforced by which task
// structs receive the pointer.
type State struct {
	// Phase counts fast-timer ticks since the output last toggled or
	// was reset. Advanced by the tick generator; forced to zero by the
	// hard-sync handler.
	Phase atomic.Uint32

	// HalfPeriod is the target half-cycle length in fast-timer ticks.
	// Published whole by the sampler pipeline, read by the tick
	// generator. Zero means toggle on every tick.
	HalfPeriod atomic.Uint32

	// FineTune is the additive millivolt tuning offset. Stepped by the
	// encoder handler, read once per conversion by the sampler. It has
	// no clamp; extreme values are bounded only by converter behavior.
	FineTune atomic.Int32
}
