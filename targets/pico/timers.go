//go:build rp2040

package main

import (
	"device/arm"
	"device/rp"
	"runtime/interrupt"
	"runtime/volatile"

	"github.com/deusletum/oxide-dco/core"
)

// Alarms 2 and 3 of the 1MHz system timer drive the oscillator tick
// and the CV sampler. Alarms 0 and 1 are left to the TinyGo runtime.
const (
	tickIntervalUs   = 1000000 / core.TickRateHz
	sampleIntervalUs = 1000000 / core.SampleRateHz
)

// alarmLine satisfies core.IRQLine for a TIMER alarm. RP2040 alarms
// are one-shot, so acknowledging the interrupt also arms the next
// period.
type alarmLine struct {
	alarm      *volatile.Register32
	mask       uint32
	intervalUs uint32
}

func (a *alarmLine) Clear() {
	rp.TIMER.INTR.Set(a.mask)
	a.alarm.Set(rp.TIMER.TIMERAWL.Get() + a.intervalUs)
}

var (
	fastTimer = &alarmLine{
		alarm:      &rp.TIMER.ALARM2,
		mask:       rp.TIMER_INTR_ALARM_2,
		intervalUs: tickIntervalUs,
	}
	cvTimer = &alarmLine{
		alarm:      &rp.TIMER.ALARM3,
		mask:       rp.TIMER_INTR_ALARM_3,
		intervalUs: sampleIntervalUs,
	}
)

// pinLine satisfies core.IRQLine for the pin edge lines. machine's
// IO_BANK0 dispatcher acknowledges the edge before invoking the
// callback, so there is nothing left to clear here.
type pinLine struct{}

func (pinLine) Clear() {}

func startTimers() {
	tickInt := interrupt.New(rp.IRQ_TIMER_IRQ_2, tickISR)
	cvInt := interrupt.New(rp.IRQ_TIMER_IRQ_3, sampleISR)

	// Priority order: tick above the edge lines, edge lines above the
	// sampler. IO_IRQ_BANK0 is configured by machine; pin it between
	// the two timers.
	arm.SetPriority(rp.IRQ_TIMER_IRQ_2, 0x00)
	arm.SetPriority(rp.IRQ_IO_IRQ_BANK0, 0x40)
	arm.SetPriority(rp.IRQ_TIMER_IRQ_3, 0x80)

	rp.TIMER.INTE.SetBits(rp.TIMER_INTE_ALARM_2 | rp.TIMER_INTE_ALARM_3)
	now := rp.TIMER.TIMERAWL.Get()
	rp.TIMER.ALARM2.Set(now + tickIntervalUs)
	rp.TIMER.ALARM3.Set(now + sampleIntervalUs)

	tickInt.Enable()
	cvInt.Enable()
}

func tickISR(interrupt.Interrupt) {
	tick.Tick()
}

func sampleISR(interrupt.Interrupt) {
	sampler.Sample()
}
