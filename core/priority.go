package core

// Priority is a fixed interrupt priority level. Higher values preempt
// lower ones at any instruction boundary; a task never preempts itself
// or an equal/higher level, and every task runs to completion.
type Priority uint8

const (
	PriorityEncoder Priority = iota + 1
	PrioritySampler
	PriorityHardSync
	PriorityTick
)

// PortCeiling is the highest priority that touches the shared GPIO
// port (the sampler's coarse-pitch writes). Lower-priority access to
// the port must raise to this ceiling.
const PortCeiling = PrioritySampler

// WithCeiling runs fn with preemption blocked for tasks at or below
// ceiling, releasing on every exit path including a panic in a test
// harness. Single-word atomics do not need this; it exists for the one
// non-atomic shared resource (InputPort).
//
// On single-core Cortex-M0 targets the only mask available is "all
// interrupts", which is a valid ceiling for every level.
func WithCeiling(ceiling Priority, fn func()) {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	fn()
}
