//go:build !tinygo

package core

// maskState is a placeholder for interrupt mask state on regular Go.
type maskState uintptr

// disableInterrupts is a no-op on regular Go; tests drive the tasks
// sequentially, so preemption cannot occur.
func disableInterrupts() maskState {
	return 0
}

func restoreInterrupts(state maskState) {
}
