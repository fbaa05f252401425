package core

// Encoder adjusts the fine-tune offset from a quadrature rotary
// encoder. Decoding is single-edge: on each channel-A edge the level of
// channel B picks the direction. Mechanical bounce can therefore
// double-count or skip a detent; that matches the reference hardware
// and is deliberately left as-is.
type Encoder struct {
	State *State

	// Port is the shared input-data register; ChanB masks the channel-B
	// bit within it.
	Port  InputPort
	ChanB uint32

	Line IRQLine
}

// Edge handles one channel-A edge. The port read shares a register
// with higher-priority code, so it happens under the port ceiling.
func (e *Encoder) Edge() {
	var bits uint32
	WithCeiling(PortCeiling, func() {
		bits = e.Port.Read()
	})

	if bits&e.ChanB == 0 {
		e.State.FineTune.Add(FineTuneStep)
	} else {
		e.State.FineTune.Add(-FineTuneStep)
	}

	e.Line.Clear()
}
