package core

import "github.com/deusletum/oxide-dco/voct"

// Sampler is the CV acquisition and conversion task. Every sampling
// tick stores one raw reading in a circular window; each time the
// window wraps it averages the whole window, forms the composite pitch
// value and publishes the resulting half period and coarse pitch byte.
//
// The buffer and index live in the struct and are touched by no other
// task.
type Sampler struct {
	State *State
	ADC   AnalogReader
	Port  PitchPort
	Timer IRQLine

	// OnPublish, when set, is called with each newly published half
	// period and frequency. Targets use it to feed secondary outputs.
	// It runs in sampler interrupt context and must not block.
	OnPublish func(halfPeriod uint32, hz float32)

	buf   [AvgBufSize]uint16
	index uint32
}

// Sample runs one sampling-timer interrupt.
func (s *Sampler) Sample() {
	s.buf[s.index%AvgBufSize] = s.ADC.Read()
	s.index++

	if s.index%AvgBufSize == 0 {
		s.convert()
	}

	s.Timer.Clear()
}

// convert turns the filled window into a published period. The
// fine-tune offset is read exactly once so the conversion sees a
// consistent value even if the encoder fires mid-computation.
func (s *Sampler) convert() {
	mean := average(&s.buf)
	voltage := float32(mean) * VrefScaleMv / float32(s.ADC.ReadVref())
	pitch := voct.MvOct(RefPitchMv - 2*voltage + float32(s.State.FineTune.Load()))

	half := UsToTicks(pitch.Us())
	s.State.HalfPeriod.Store(half)
	traceEvent("cv: period published")

	hz := pitch.Hz()

	// Coarse pitch byte on bits [7:0]; the high byte is not ours.
	s.Port.Write(s.Port.Read()&0xff00 | uint16(uint32(hz/16)&0xff))

	if s.OnPublish != nil {
		s.OnPublish(half, hz)
	}
}

// average returns the integer-floor arithmetic mean of the window.
func average(buf *[AvgBufSize]uint16) uint32 {
	var acc uint32
	for i := 0; i < len(buf); i++ {
		acc += uint32(buf[i])
	}
	return acc / AvgBufSize
}
