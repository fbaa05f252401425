package core

// AnalogReader samples the pitch CV channel. Reads are synchronous and
// are assumed to succeed; a broken ADC is fatal at the module level,
// not recoverable here.
type AnalogReader interface {
	// Read returns one raw CV sample.
	Read() uint16

	// ReadVref returns the raw reading of the internal voltage
	// reference, used to scale Read output to millivolts.
	ReadVref() uint16
}

// OutputPin is the square-wave output.
type OutputPin interface {
	Low()
	Toggle()
}

// InputPort is the raw GPIO input-data register shared between the
// encoder handler and initialization code. It is the one non-atomic
// shared resource; readers below the port ceiling must wrap Read in
// WithCeiling.
type InputPort interface {
	Read() uint32
}

// PitchPort is the 16-bit parallel output register carrying the coarse
// pitch byte in bits [7:0]. The high byte belongs to other outputs and
// must be preserved across writes.
type PitchPort interface {
	Read() uint16
	Write(uint16)
}

// IRQLine acknowledges a pending hardware interrupt condition. Every
// task invocation must call Clear exactly once; a missed clear means a
// re-entrant interrupt storm.
type IRQLine interface {
	Clear()
}
