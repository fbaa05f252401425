//go:build rp2040

// RP2040 (Raspberry Pi Pico) wiring for the DCO core.
//
// Pin map:
//
//	GP0..GP15  parallel pitch port (coarse byte on GP0..GP7)
//	GP16       square-wave output
//	GP17       hard-sync input, rising edge
//	GP18       encoder channel A, falling edge
//	GP19       encoder channel B, level read
//	GP20/GP21  I2C0 for the tuning display
//	GP22       PIO suboctave output
//	GP26       pitch CV (ADC0)
package main

import (
	"machine"
	"time"

	"github.com/deusletum/oxide-dco/core"
)

const (
	cvPin        = machine.GP26
	outPin       = machine.GP16
	hardSyncPin  = machine.GP17
	encoderAPin  = machine.GP18
	encoderBPin  = machine.GP19
	suboctavePin = machine.GP22
)

// Task singletons, shared between main and the interrupt handlers.
var (
	state    core.State
	tick     core.TickGenerator
	sampler  core.Sampler
	hardSync core.HardSync
	encoder  core.Encoder
)

func main() {
	// Give USB serial a moment to enumerate so early prints are seen.
	time.Sleep(2 * time.Second)
	core.SetTraceWriter(func(s string) { println(s) })

	machine.InitADC()
	cv := newCVReader(cvPin)
	out := newSquareOut(outPin)
	port := newPitchPort()

	tick = core.TickGenerator{State: &state, Out: out, Timer: fastTimer}
	sampler = core.Sampler{State: &state, ADC: cv, Port: port, Timer: cvTimer}
	hardSync = core.HardSync{State: &state, Line: pinLine{}}
	encoder = core.Encoder{
		State: &state,
		Port:  inPort{},
		ChanB: 1 << uint(encoderBPin),
		Line:  pinLine{},
	}

	sub, err := newSuboctave(suboctavePin)
	if err != nil {
		println("suboctave disabled:", err.Error())
	} else {
		sampler.OnPublish = func(half uint32, hz float32) {
			// The primary full-cycle period is the suboctave half cycle.
			sub.SetPeriodUs(half * 2 * core.TickPeriodUs)
		}
	}

	hardSyncPin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	encoderAPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	encoderBPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	// Both edge lines share IO_IRQ_BANK0 on the RP2040, so the encoder
	// runs at the hard-sync NVIC level instead of its own lower one.
	// Both bodies are a handful of instructions, so the inversion never
	// delays a sync edge by more than the encoder body.
	hardSyncPin.SetInterrupt(machine.PinRising, handlePinEdge)
	encoderAPin.SetInterrupt(machine.PinFalling, handlePinEdge)

	startTimers()

	disp, derr := newTuningDisplay()
	if derr != nil {
		println("display disabled:", derr.Error())
	}
	for {
		if disp != nil {
			disp.update(uint8(port.Read()), state.FineTune.Load())
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func handlePinEdge(p machine.Pin) {
	switch p {
	case hardSyncPin:
		hardSync.Trigger()
	case encoderAPin:
		encoder.Edge()
	}
}
