//go:build rp2040

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// Suboctave square generator: a PIO state machine running one octave
// below the primary output. The program latches a half-period count in
// X via the pull-noblock trick (pull with an empty FIFO copies X into
// OSR), so it free-runs at the last published pitch and picks up new
// periods at cycle boundaries.
//
// buildSuboctaveProgram assembles:
//
//	.wrap_target
//	    pull noblock      ; OSR = FIFO word, or X when empty
//	    mov x, osr        ; latch half period
//	    mov y, x
//	    set pins, 1
//	hi: jmp y--, hi
//	    mov y, x
//	    set pins, 0
//	lo: jmp y--, lo
//	.wrap
func buildSuboctaveProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		asm.Pull(false, false).Encode(),                     // 0: pull noblock
		asm.Mov(rp2pio.MovDestX, rp2pio.MovSrcOSR).Encode(), // 1: mov x, osr
		asm.Mov(rp2pio.MovDestY, rp2pio.MovSrcX).Encode(),   // 2: mov y, x
		asm.Set(rp2pio.SetDestPins, 1).Encode(),             // 3: set pins, 1
		asm.Jmp(4, rp2pio.JmpYNZeroDec).Encode(),            // 4: jmp y--, 4
		asm.Mov(rp2pio.MovDestY, rp2pio.MovSrcX).Encode(),   // 5: mov y, x
		asm.Set(rp2pio.SetDestPins, 0).Encode(),             // 6: set pins, 0
		asm.Jmp(7, rp2pio.JmpYNZeroDec).Encode(),            // 7: jmp y--, 7
	}
}

const suboctaveOrigin = 0 // load at offset 0 for correct jump addresses

type suboctave struct {
	sm rp2pio.StateMachine
}

func newSuboctave(pin machine.Pin) (*suboctave, error) {
	Pio := rp2pio.PIO0
	sm := Pio.StateMachine(0)
	sm.TryClaim()

	program := buildSuboctaveProgram()
	offset, err := Pio.AddProgram(program, suboctaveOrigin)
	if err != nil {
		return nil, err
	}

	pin.Configure(machine.PinConfig{Mode: Pio.PinMode()})
	sm.SetPindirsConsecutive(pin, 1, true)

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(pin, 1)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	// One instruction per microsecond, so the Y loops count
	// microseconds directly.
	cfg.SetClkDivIntFrac(uint16(machine.CPUFrequency()/1000000), 0)

	sm.Init(offset, cfg)
	sm.SetEnabled(true)
	return &suboctave{sm: sm}, nil
}

// SetPeriodUs queues a new suboctave half period in microseconds.
// Called from sampler interrupt context: when the FIFO is full the
// update is dropped instead of blocking, the next publish replaces it.
func (s *suboctave) SetPeriodUs(us uint32) {
	if s.sm.IsTxFIFOFull() {
		return
	}
	s.sm.TxPut(us)
}
