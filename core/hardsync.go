package core

// HardSync realigns the oscillator to an external master clock. It runs
// just below the tick generator so a sync edge lands before the next
// tick whenever both are pending.
type HardSync struct {
	State *State
	Line  IRQLine
}

// Trigger handles one rising edge on the sync input: the phase counter
// is zeroed so the next tick treats the oscillator as freshly
// restarted. Edges are not debounced; sync inputs are clean logic
// pulses and every qualifying edge is honored.
func (h *HardSync) Trigger() {
	h.State.Phase.Store(0)
	traceEvent("hard sync")
	h.Line.Clear()
}
