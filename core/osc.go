package core

// TickGenerator is the highest-priority task. On every fast-timer tick
// it advances the phase counter and toggles the output when the counter
// reaches the published half period, producing a square wave at
// TickRateHz / (2 * HalfPeriod).
type TickGenerator struct {
	State *State
	Out   OutputPin
	Timer IRQLine
}

// Tick runs one fast-timer interrupt. Phase zero forces the output low
// so the first edge after any reset is deterministic; a half period of
// zero toggles on every tick, which is defined, not an error.
func (g *TickGenerator) Tick() {
	c := g.State.Phase.Load()

	if c == 0 {
		g.Out.Low()
	} else if c >= g.State.HalfPeriod.Load() {
		g.Out.Toggle()
		g.State.Phase.Store(0)
	}

	g.State.Phase.Add(1)

	g.Timer.Clear()
}
