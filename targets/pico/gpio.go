//go:build rp2040

package main

import (
	"device/rp"
	"machine"
)

// squareOut drives the main output through SIO so Low and Toggle are
// single atomic register writes, safe at the highest interrupt level.
type squareOut struct {
	mask uint32
}

func newSquareOut(pin machine.Pin) *squareOut {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &squareOut{mask: 1 << uint(pin)}
}

func (o *squareOut) Low() {
	rp.SIO.GPIO_OUT_CLR.Set(o.mask)
}

func (o *squareOut) Toggle() {
	rp.SIO.GPIO_OUT_XOR.Set(o.mask)
}

// inPort exposes the raw SIO input register; the core masks out the
// encoder channel-B bit itself.
type inPort struct{}

func (inPort) Read() uint32 {
	return rp.SIO.GPIO_IN.Get()
}

// pitchPort maps the 16-bit parallel pitch register onto GP0..GP15.
type pitchPort struct{}

func newPitchPort() pitchPort {
	for p := machine.GP0; p <= machine.GP15; p++ {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	return pitchPort{}
}

func (pitchPort) Read() uint16 {
	return uint16(rp.SIO.GPIO_OUT.Get())
}

// Write updates the low 16 bits of GPIO_OUT through the SET/CLR
// aliases: a plain read-modify-write here could lose a toggle when the
// tick interrupt lands on the same register mid-update.
func (pitchPort) Write(v uint16) {
	rp.SIO.GPIO_OUT_CLR.Set(uint32(^v) & 0xffff)
	rp.SIO.GPIO_OUT_SET.Set(uint32(v))
}
